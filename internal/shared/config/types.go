package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects between MySQL (production) and a SQLite file
// (single-gym installs, local development).
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "sqlite"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MembershipConfig holds the lifecycle engine tunables.
type MembershipConfig struct {
	ExpiringWindowDays int    `mapstructure:"expiring_window_days"`
	SeriesMonths       int    `mapstructure:"series_months"`
	BusinessTimezone   string `mapstructure:"business_timezone"`
	CurrencySymbol     string `mapstructure:"currency_symbol"`
}

type ReminderConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalMinutes int  `mapstructure:"interval_minutes"`
	CooldownHours   int  `mapstructure:"cooldown_hours"`
}

func (r *ReminderConfig) Interval() time.Duration {
	return time.Duration(r.IntervalMinutes) * time.Minute
}

func (r *ReminderConfig) Cooldown() time.Duration {
	return time.Duration(r.CooldownHours) * time.Hour
}

type DashboardConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

func (d *DashboardConfig) CacheTTL() time.Duration {
	return time.Duration(d.CacheTTLSeconds) * time.Second
}
