package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const reminderKeyPrefix = "gymdesk:reminder:"

// ReminderDeduplicator keeps one expiry reminder per client and end date
// inside a cooldown window, across instances.
type ReminderDeduplicator struct {
	client *redis.Client
}

func NewReminderDeduplicator(client *redis.Client) *ReminderDeduplicator {
	return &ReminderDeduplicator{client: client}
}

// Format: gymdesk:reminder:{client_sid}:{end_date}
func (d *ReminderDeduplicator) buildKey(clientSID, endDate string) string {
	return fmt.Sprintf("%s%s:%s", reminderKeyPrefix, clientSID, endDate)
}

// TryAcquire reports whether the caller may send the reminder. SetNX makes
// the check and the mark one atomic step.
func (d *ReminderDeduplicator) TryAcquire(ctx context.Context, clientSID, endDate string, ttl time.Duration) (bool, error) {
	acquired, err := d.client.SetNX(ctx, d.buildKey(clientSID, endDate), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire reminder lock: %w", err)
	}
	return acquired, nil
}

// Release clears the cooldown, used when sending failed.
func (d *ReminderDeduplicator) Release(ctx context.Context, clientSID, endDate string) error {
	if err := d.client.Del(ctx, d.buildKey(clientSID, endDate)).Err(); err != nil {
		return fmt.Errorf("failed to release reminder lock: %w", err)
	}
	return nil
}

// RemainingCooldown returns 0 when no cooldown is active.
func (d *ReminderDeduplicator) RemainingCooldown(ctx context.Context, clientSID, endDate string) (time.Duration, error) {
	ttl, err := d.client.TTL(ctx, d.buildKey(clientSID, endDate)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get cooldown: %w", err)
	}
	// TTL returns -2 if key doesn't exist, -1 if no TTL set
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
