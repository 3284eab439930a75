package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gymdesk/internal/application/client/usecases"
	"gymdesk/internal/infrastructure/cache"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/email"
	"gymdesk/internal/infrastructure/metrics"
	"gymdesk/internal/infrastructure/scheduler"
	"gymdesk/internal/shared/db"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
)

// ConnectRedis returns a connected client, or nil when Redis cannot be
// reached. Callers run without the dashboard cache and reminder
// de-duplication in that case.
func ConnectRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, running without dashboard cache and reminder de-duplication",
			"addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())
	return redisClient
}

// initInfrastructure builds the shared collaborators of the use cases. The
// Redis-backed pieces stay nil interfaces when Redis is absent.
func (c *Container) initInfrastructure() {
	c.repos = newRepositories(c.db, c.log)
	c.txManager = db.NewTransactionManager(c.db)
	c.renderer = markdown.NewNotesRenderer()

	c.registry = metrics.NewRegistry()
	c.metrics = metrics.New(c.registry)

	if c.redis != nil {
		c.statsCache = cache.NewRedisDashboardStatsCache(c.redis, c.cfg.Dashboard.CacheTTL(), c.log.Named("cache.dashboard"))
		c.reminderGuard = cache.NewReminderDeduplicator(c.redis)
	}
}

// initReminders wires the expiry reminder job. The scheduler is only created
// when reminders are enabled.
func (c *Container) initReminders() error {
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
	})

	c.ucs.sendRemindersUC = usecases.NewSendExpiryRemindersUseCase(
		c.repos.clientRepo,
		emailService,
		c.reminderGuard,
		c.metrics,
		c.cfg.Membership.ExpiringWindowDays,
		c.cfg.Reminder.Cooldown(),
		c.clock,
		c.log.Named("reminders"),
	)

	if !c.cfg.Reminder.Enabled {
		c.log.Infow("expiry reminders disabled")
		return nil
	}
	if c.reminderGuard == nil {
		c.log.Warnw("expiry reminders enabled without Redis, members may be mailed on every run")
	}

	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterReminderJob(c.ucs.sendRemindersUC, c.cfg.Reminder.Interval()); err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}
	c.scheduler = manager
	return nil
}
