package membership

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

var now = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

type clientOpt func(p *client.Profile, m *client.Membership)

func withName(name string) clientOpt {
	return func(p *client.Profile, _ *client.Membership) { p.FullName = name }
}

func withEmail(email string) clientOpt {
	return func(p *client.Profile, _ *client.Membership) { p.Email = email }
}

func withPhone(phone string) clientOpt {
	return func(p *client.Profile, _ *client.Membership) { p.Phone = phone }
}

func withPlan(plan vo.PlanType, amount int64) clientOpt {
	return func(_ *client.Profile, m *client.Membership) {
		m.PlanType = plan
		m.PlanAmount = decimal.NewFromInt(amount)
	}
}

func withStart(start time.Time) clientOpt {
	return func(_ *client.Profile, m *client.Membership) { m.StartDate = start }
}

// newClient builds a persisted client whose membership ends daysLeft days
// from now.
func newClient(t *testing.T, id uint, daysLeft int, opts ...clientOpt) *client.Client {
	t.Helper()

	p := client.Profile{
		FullName: fmt.Sprintf("Member %d", id),
		Email:    fmt.Sprintf("member%d@example.com", id),
		Phone:    fmt.Sprintf("+91 90000 %05d", id),
		Age:      30,
		Gender:   vo.GenderOther,
	}
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysLeft)
	m := client.Membership{
		PlanType:   vo.PlanTypeMonthly,
		PlanAmount: decimal.NewFromInt(1000),
		StartDate:  end.AddDate(0, -1, 0),
		EndDate:    end,
	}
	for _, opt := range opts {
		opt(&p, &m)
	}

	c, err := client.ReconstructClient(id, fmt.Sprintf("cl_%d", id), p, m, now, now)
	require.NoError(t, err)
	return c
}

func sids(snapshots []Snapshot) []string {
	out := make([]string, len(snapshots))
	for i, s := range snapshots {
		out[i] = s.Client.SID()
	}
	return out
}
