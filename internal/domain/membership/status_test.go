package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

func TestResolveStatus_MatchesDaysRemaining(t *testing.T) {
	for days := -40; days <= 40; days++ {
		c := newClient(t, 1, days)
		got := ResolveStatus(c, now)

		assert.Equal(t, DaysRemaining(c.EndDate(), now) >= 0, got == vo.StatusActive, "days=%d", days)
	}
}

func TestResolveStatus_ExpiresTodayIsActive(t *testing.T) {
	c := newClient(t, 1, 0)

	assert.Equal(t, 0, DaysRemaining(c.EndDate(), now))
	assert.Equal(t, vo.StatusActive, ResolveStatus(c, now))
	assert.Equal(t, vo.StatusExpired, ResolveStatus(newClient(t, 2, -1), now))
}

func TestAnnotate(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 3, -3),
		nil,
		newClient(t, 1, 5),
	}

	snapshots := Annotate(clients, now)
	require.Len(t, snapshots, 2)

	assert.Equal(t, []string{"cl_3", "cl_1"}, sids(snapshots))
	assert.Equal(t, vo.StatusExpired, snapshots[0].Status)
	assert.Equal(t, -3, snapshots[0].DaysRemaining)
	assert.Equal(t, vo.StatusActive, snapshots[1].Status)
	assert.Equal(t, 5, snapshots[1].DaysRemaining)
}
