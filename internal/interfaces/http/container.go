package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gymdesk/internal/application/client/usecases"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/metrics"
	"gymdesk/internal/infrastructure/scheduler"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and the reminder scheduler, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	clock  biztime.Clock

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Collaborators shared by use cases. statsCache and reminderGuard are
	// nil when Redis is not available.
	txManager     usecases.TransactionRunner
	statsCache    usecases.StatsCache
	reminderGuard usecases.ReminderGuard
	renderer      markdown.NotesRenderer
	registry      *prometheus.Registry
	metrics       *metrics.Metrics

	scheduler *scheduler.SchedulerManager
}

// NewContainer wires the application. redisClient may be nil.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, clock biztime.Clock, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
		clock:  clock,
	}

	c.initInfrastructure()
	c.initUseCases()
	if err := c.initReminders(); err != nil {
		return nil, err
	}
	c.initHandlers()
	c.setupRoutes()

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// SendReminders runs the reminder batch once, outside the scheduler.
func (c *Container) SendReminders(ctx context.Context) (int, error) {
	return c.ucs.sendRemindersUC.Execute(ctx)
}

// StartBackground starts the reminder scheduler if reminders are enabled.
func (c *Container) StartBackground() {
	if c.scheduler != nil {
		c.scheduler.Start()
	}
}

// Shutdown stops background work and closes the Redis connection. The
// database handle is owned by the caller.
func (c *Container) Shutdown(ctx context.Context) error {
	var firstErr error
	if c.scheduler != nil {
		if err := c.scheduler.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
			firstErr = fmt.Errorf("failed to stop scheduler: %w", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close redis: %w", err)
		}
	}
	return firstErr
}
