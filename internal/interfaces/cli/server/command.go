package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/database"
	"gymdesk/internal/infrastructure/migration"
	httpRouter "gymdesk/internal/interfaces/http"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the GymDesk HTTP API and, when enabled, the expiry reminder scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Create or update tables with GORM AutoMigrate on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(mapEnvToGinMode(env))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Membership.BusinessTimezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate,
		"timezone", biztime.Location().String())

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	redisClient := httpRouter.ConnectRedis(cfg, log)

	container, err := httpRouter.NewContainer(database.Get(), redisClient, cfg, biztime.SystemClock(), log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	container.StartBackground()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		_ = container.Shutdown(context.Background())
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}
	if err := container.Shutdown(ctx); err != nil {
		log.Errorw("background shutdown incomplete", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}

// handleMigrations applies AutoMigrate when asked to (always for SQLite) and
// otherwise only reports the goose version; MySQL schemas are moved with
// `gymdesk migrate up`.
func handleMigrations(cfg *config.Config, log logger.Interface) error {
	manager := migration.NewManager(cfg.Database.Driver, autoMigrate)

	goose, ok := manager.Goose()
	if !ok {
		if autoMigrate && env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		return manager.Migrate(database.Get())
	}

	version, err := goose.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
