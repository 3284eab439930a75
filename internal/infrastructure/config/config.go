package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "gymdesk/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Membership sharedConfig.MembershipConfig `mapstructure:"membership"`
	Reminder   sharedConfig.ReminderConfig   `mapstructure:"reminder"`
	Dashboard  sharedConfig.DashboardConfig  `mapstructure:"dashboard"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml, a .env file if present, and GYMDESK_*
// environment variables, in increasing order of precedence. A missing config
// file is not an error; defaults apply.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("GYMDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the configuration stored by the last successful Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Membership.ExpiringWindowDays < 0 {
		return fmt.Errorf("membership.expiring_window_days must not be negative")
	}
	if c.Reminder.Enabled && c.Reminder.IntervalMinutes <= 0 {
		return fmt.Errorf("reminder.interval_minutes must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "gymdesk_dev")
	v.SetDefault("database.sqlite_path", "gymdesk.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "frontdesk@gymdesk.local")
	v.SetDefault("email.from_name", "GymDesk")

	v.SetDefault("membership.expiring_window_days", 7)
	v.SetDefault("membership.series_months", 6)
	v.SetDefault("membership.business_timezone", "Asia/Kolkata")
	v.SetDefault("membership.currency_symbol", "₹")

	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.interval_minutes", 60)
	v.SetDefault("reminder.cooldown_hours", 24)

	v.SetDefault("dashboard.cache_ttl_seconds", 300)
}
