// Package bootstrap opens configuration, logging and the database for the
// one-shot CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/database"
	"gymdesk/internal/infrastructure/migration"
	"gymdesk/internal/infrastructure/repository"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

type Env struct {
	Config     *config.Config
	Logger     logger.Interface
	DB         *gorm.DB
	Clock      biztime.Clock
	ClientRepo client.Repository
}

// Open prepares an Env. SQLite schemas are created on the fly so a fresh
// file can be seeded directly.
func Open() (*Env, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Membership.BusinessTimezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.Get()
	if cfg.Database.IsSQLite() {
		if err := migration.NewManager(cfg.Database.Driver, true).Migrate(db); err != nil {
			_ = database.Close()
			return nil, err
		}
	}

	log := logger.NewLogger()
	return &Env{
		Config:     cfg,
		Logger:     log,
		DB:         db,
		Clock:      biztime.SystemClock(),
		ClientRepo: repository.NewClientRepository(db, log),
	}, nil
}

func (e *Env) Close() error {
	return database.Close()
}
