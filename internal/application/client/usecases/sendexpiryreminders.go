package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

type SendExpiryRemindersUseCase struct {
	clientRepo client.Repository
	sender     ReminderSender
	guard      ReminderGuard
	metrics    ReminderRecorder
	windowDays int
	cooldown   time.Duration
	clock      biztime.Clock
	logger     logger.Interface
}

func NewSendExpiryRemindersUseCase(
	clientRepo client.Repository,
	sender ReminderSender,
	guard ReminderGuard,
	metrics ReminderRecorder,
	windowDays int,
	cooldown time.Duration,
	clock biztime.Clock,
	logger logger.Interface,
) *SendExpiryRemindersUseCase {
	return &SendExpiryRemindersUseCase{
		clientRepo: clientRepo,
		sender:     sender,
		guard:      guard,
		metrics:    metrics,
		windowDays: windowDays,
		cooldown:   cooldown,
		clock:      clock,
		logger:     logger,
	}
}

// Execute mails every client whose membership is about to expire, at most
// once per end date. Expired memberships are not mailed.
// It returns how many reminders went out; send failures are joined into the
// error but do not stop the batch.
func (uc *SendExpiryRemindersUseCase) Execute(ctx context.Context) (int, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list clients: %w", err)
	}

	byID := make(map[uint]*client.Client, len(clients))
	for _, c := range clients {
		byID[c.ID()] = c
	}

	now := uc.clock.Now()
	feed := membership.GenerateNotifications(clients, now, uc.windowDays)

	sent := 0
	var failures []error
	for _, n := range feed.Notifications {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		if n.Type != membership.NotificationExpiring {
			continue
		}
		c, ok := byID[n.ClientID]
		if !ok || c.Email() == "" {
			continue
		}

		endDate := biztime.FormatDate(c.EndDate())
		if uc.guard != nil {
			acquired, err := uc.guard.TryAcquire(ctx, c.SID(), endDate, uc.lockTTL(c.EndDate(), now))
			if err != nil {
				failures = append(failures, fmt.Errorf("reminder lock for %s: %w", c.SID(), err))
				continue
			}
			if !acquired {
				remaining, _ := uc.guard.RemainingCooldown(ctx, c.SID(), endDate)
				uc.logger.Debugw("reminder already sent", "sid", c.SID(), "end_date", endDate, "cooldown_left", remaining)
				continue
			}
		}

		if err := uc.sender.SendExpiryReminder(c.Email(), n); err != nil {
			uc.logger.Warnw("failed to send expiry reminder", "sid", c.SID(), "error", err)
			failures = append(failures, fmt.Errorf("reminder for %s: %w", c.SID(), err))
			if uc.guard != nil {
				if relErr := uc.guard.Release(ctx, c.SID(), endDate); relErr != nil {
					uc.logger.Warnw("failed to release reminder lock", "sid", c.SID(), "error", relErr)
				}
			}
			continue
		}

		sent++
		uc.logger.Infow("expiry reminder sent", "sid", c.SID(), "days_remaining", n.DaysRemaining)
	}

	if uc.metrics != nil {
		uc.metrics.RecordRemindersSent(sent)
	}
	return sent, stderrors.Join(failures...)
}

// lockTTL keeps the reminder lock until the day after the end date so a
// member is mailed once per term however many runs fall inside the window.
// The cooldown is a floor for end dates that are already close.
func (uc *SendExpiryRemindersUseCase) lockTTL(endDate, now time.Time) time.Duration {
	untilAfterEnd := biztime.StartOfDay(endDate).AddDate(0, 0, 1).Sub(now)
	if untilAfterEnd > uc.cooldown {
		return untilAfterEnd
	}
	return uc.cooldown
}
