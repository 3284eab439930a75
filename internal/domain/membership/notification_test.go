package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/client"
)

func TestGenerateNotifications_ExpiringSoon(t *testing.T) {
	c := newClient(t, 1, 5, withName("Asha Verma"))

	feed := GenerateNotifications([]*client.Client{c}, now, DefaultExpiringWindowDays)

	require.Len(t, feed.Notifications, 1)
	n := feed.Notifications[0]
	assert.Equal(t, NotificationExpiring, n.Type)
	assert.Equal(t, "expiring-cl_1", n.ID)
	assert.Equal(t, 5, n.DaysRemaining)
	assert.Equal(t, c.EndDate(), n.Date)
	assert.Equal(t, "Asha Verma's Monthly plan expires in 5 days.", n.Message)
	assert.Equal(t, 1, feed.UnreadCount)
}

func TestGenerateNotifications_Expired(t *testing.T) {
	c := newClient(t, 1, -3)

	feed := GenerateNotifications([]*client.Client{c}, now, 7)

	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, NotificationExpired, feed.Notifications[0].Type)
	assert.Contains(t, feed.Notifications[0].Message, "expired 3 days ago")
}

func TestGenerateNotifications_NothingBeyondWindow(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 1, 8),
		newClient(t, 2, 30),
		newClient(t, 3, 7),
	}

	feed := GenerateNotifications(clients, now, 7)

	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, uint(3), feed.Notifications[0].ClientID)
	for _, n := range feed.Notifications {
		assert.LessOrEqual(t, n.DaysRemaining, 7)
	}
}

func TestGenerateNotifications_Ordering(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 9, 2),
		newClient(t, 4, -1),
		newClient(t, 2, 2),
		newClient(t, 7, -10),
		newClient(t, 3, 0),
	}

	feed := GenerateNotifications(clients, now, 7)

	var ids []uint
	for _, n := range feed.Notifications {
		ids = append(ids, n.ClientID)
	}
	assert.Equal(t, []uint{7, 4, 3, 2, 9}, ids)
	assert.Equal(t, len(feed.Notifications), feed.UnreadCount)
}

func TestGenerateNotifications_WindowEdges(t *testing.T) {
	clients := []*client.Client{newClient(t, 1, 0), newClient(t, 2, 1)}

	feed := GenerateNotifications(clients, now, -5)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "Member 1's Monthly plan expires today.", feed.Notifications[0].Message)

	empty := GenerateNotifications(nil, now, 7)
	assert.NotNil(t, empty.Notifications)
	assert.Zero(t, empty.UnreadCount)
}
