package membership

import (
	"fmt"
	"sort"
	"time"

	"gymdesk/internal/domain/client"
)

// DefaultExpiringWindowDays is how far ahead expiring memberships are flagged.
const DefaultExpiringWindowDays = 7

type NotificationType string

const (
	NotificationExpiring NotificationType = "expiring"
	NotificationExpired  NotificationType = "expired"
	// NotificationGeneric is reserved for announcements raised outside the
	// engine; GenerateNotifications never emits it.
	NotificationGeneric NotificationType = "generic"
)

// Notification is derived on every call and never stored.
type Notification struct {
	ID            string
	Type          NotificationType
	ClientID      uint
	ClientSID     string
	ClientName    string
	Title         string
	Message       string
	Date          time.Time
	DaysRemaining int
}

type NotificationFeed struct {
	Notifications []Notification
	UnreadCount   int
}

// GenerateNotifications flags expired memberships and those ending within
// windowDays, most urgent first. A negative window is treated as zero.
func GenerateNotifications(clients []*client.Client, now time.Time, windowDays int) NotificationFeed {
	if windowDays < 0 {
		windowDays = 0
	}

	var out []Notification
	for _, s := range Annotate(clients, now) {
		switch {
		case s.DaysRemaining < 0:
			out = append(out, newNotification(NotificationExpired, s))
		case s.DaysRemaining <= windowDays:
			out = append(out, newNotification(NotificationExpiring, s))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysRemaining != out[j].DaysRemaining {
			return out[i].DaysRemaining < out[j].DaysRemaining
		}
		return out[i].ClientID < out[j].ClientID
	})

	if out == nil {
		out = []Notification{}
	}
	return NotificationFeed{Notifications: out, UnreadCount: len(out)}
}

func newNotification(t NotificationType, s Snapshot) Notification {
	c := s.Client
	n := Notification{
		ID:            fmt.Sprintf("%s-%s", t, c.SID()),
		Type:          t,
		ClientID:      c.ID(),
		ClientSID:     c.SID(),
		ClientName:    c.FullName(),
		Date:          c.EndDate(),
		DaysRemaining: s.DaysRemaining,
	}

	switch t {
	case NotificationExpired:
		n.Title = "Membership expired"
		n.Message = fmt.Sprintf("%s's %s plan expired %s.", c.FullName(), c.PlanType(), daysAgo(-s.DaysRemaining))
	default:
		n.Title = "Membership expiring soon"
		n.Message = fmt.Sprintf("%s's %s plan expires %s.", c.FullName(), c.PlanType(), inDays(s.DaysRemaining))
	}
	return n
}

func inDays(d int) string {
	switch d {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", d)
}

func daysAgo(d int) string {
	if d == 1 {
		return "yesterday"
	}
	return fmt.Sprintf("%d days ago", d)
}
