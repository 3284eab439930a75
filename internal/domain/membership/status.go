package membership

import (
	"time"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

// Snapshot is a client annotated with its status at a fixed instant.
type Snapshot struct {
	Client        *client.Client
	Status        vo.Status
	DaysRemaining int
}

// ResolveStatus is Active while the end date is today or later.
func ResolveStatus(c *client.Client, now time.Time) vo.Status {
	return statusFor(DaysRemaining(c.EndDate(), now))
}

// Annotate resolves every client against the same now, keeping input order.
// Nil entries are skipped.
func Annotate(clients []*client.Client, now time.Time) []Snapshot {
	out := make([]Snapshot, 0, len(clients))
	for _, c := range clients {
		if c == nil {
			continue
		}
		days := DaysRemaining(c.EndDate(), now)
		out = append(out, Snapshot{
			Client:        c,
			Status:        statusFor(days),
			DaysRemaining: days,
		})
	}
	return out
}

func statusFor(daysRemaining int) vo.Status {
	if daysRemaining >= 0 {
		return vo.StatusActive
	}
	return vo.StatusExpired
}
