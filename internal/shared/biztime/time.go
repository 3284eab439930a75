// Package biztime anchors calendar arithmetic to the gym's business timezone.
// Membership dates are calendar dates; "today" is the business-timezone date
// of the current instant.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Kolkata"

	DateLayout = "2006-01-02"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone once at startup. Empty tz selects
// DefaultTimezone.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// Clock supplies the current instant. Everything that needs "now" takes a
// Clock so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock returns wall-clock time in the business timezone.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().In(Location()) }

// FakeClock is a manually driven Clock for tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// ParseDate parses YYYY-MM-DD as midnight in the business timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders the calendar date of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DateKey identifies a business day, used to scope cache entries.
func DateKey(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}
