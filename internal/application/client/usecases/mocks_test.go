package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
)

type mockClientRepository struct {
	CreateFunc   func(ctx context.Context, c *client.Client) error
	GetByIDFunc  func(ctx context.Context, id uint) (*client.Client, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*client.Client, error)
	ListFunc     func(ctx context.Context) ([]*client.Client, error)
	UpdateFunc   func(ctx context.Context, c *client.Client) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*client.Client{}, nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPaymentRepository struct {
	CreateFunc       func(ctx context.Context, p *client.Payment) error
	ListByClientFunc func(ctx context.Context, clientID uint) ([]*client.Payment, error)
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *client.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepository) ListByClient(ctx context.Context, clientID uint) ([]*client.Payment, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID)
	}
	return []*client.Payment{}, nil
}

// mockTxRunner runs fn inline and reports whether it was used.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockStatsCache struct {
	GenerationFunc  func(ctx context.Context) (int64, error)
	GetFunc         func(ctx context.Context, generation int64, dateKey string, months int) (*membership.DashboardStats, error)
	SetFunc         func(ctx context.Context, generation int64, dateKey string, months int, stats *membership.DashboardStats) error
	invalidateCalls int
}

func (m *mockStatsCache) Generation(ctx context.Context) (int64, error) {
	if m.GenerationFunc != nil {
		return m.GenerationFunc(ctx)
	}
	return int64(m.invalidateCalls), nil
}

func (m *mockStatsCache) Get(ctx context.Context, generation int64, dateKey string, months int) (*membership.DashboardStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, generation, dateKey, months)
	}
	return nil, nil
}

func (m *mockStatsCache) Set(ctx context.Context, generation int64, dateKey string, months int, stats *membership.DashboardStats) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, generation, dateKey, months, stats)
	}
	return nil
}

func (m *mockStatsCache) Invalidate(ctx context.Context) error {
	m.invalidateCalls++
	return nil
}

type mockRecorder struct {
	renewals []string
	sent     int
}

func (m *mockRecorder) RecordRenewal(planType string) { m.renewals = append(m.renewals, planType) }
func (m *mockRecorder) RecordRemindersSent(n int)     { m.sent += n }

type mockSender struct {
	mu       sync.Mutex
	SendFunc func(to string, n membership.Notification) error
	sentTo   []string
}

func (m *mockSender) SendExpiryReminder(to string, n membership.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendFunc != nil {
		if err := m.SendFunc(to, n); err != nil {
			return err
		}
	}
	m.sentTo = append(m.sentTo, to)
	return nil
}

// memoryGuard is an in-memory ReminderGuard without expiry. It records the
// TTL of every acquired lock.
type memoryGuard struct {
	held     map[string]bool
	ttls     map[string]time.Duration
	released []string
}

func newMemoryGuard() *memoryGuard {
	return &memoryGuard{held: make(map[string]bool), ttls: make(map[string]time.Duration)}
}

func (g *memoryGuard) TryAcquire(ctx context.Context, clientSID, endDate string, ttl time.Duration) (bool, error) {
	key := clientSID + ":" + endDate
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	g.ttls[key] = ttl
	return true, nil
}

func (g *memoryGuard) Release(ctx context.Context, clientSID, endDate string) error {
	key := clientSID + ":" + endDate
	delete(g.held, key)
	g.released = append(g.released, key)
	return nil
}

func (g *memoryGuard) RemainingCooldown(ctx context.Context, clientSID, endDate string) (time.Duration, error) {
	if g.held[clientSID+":"+endDate] {
		return time.Hour, nil
	}
	return 0, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(notes string) (string, error) { return "<p>" + notes + "</p>\n", nil }

// testNow is 2024-03-15 10:00 in the business timezone.
func testNow() time.Time {
	return time.Date(2024, time.March, 15, 10, 0, 0, 0, biztime.Location())
}

func testClock() *biztime.FakeClock {
	return biztime.NewFakeClock(testNow())
}

// newStoredClient builds a persisted client whose membership ends daysLeft
// days after testNow.
func newStoredClient(t *testing.T, id uint, sid, name string, plan vo.PlanType, daysLeft int) *client.Client {
	t.Helper()
	today := biztime.StartOfDay(testNow())
	end := today.AddDate(0, 0, daysLeft)
	start := end.AddDate(0, -plan.Months(), 0)
	c, err := client.ReconstructClient(id, sid, client.Profile{
		FullName: name,
		Email:    sid + "@example.com",
		Phone:    "+91 98765 43210",
		Age:      28,
		Gender:   vo.GenderFemale,
		Notes:    "prefers evening slots",
	}, client.Membership{
		PlanType:   plan,
		PlanAmount: decimal.RequireFromString("1200"),
		StartDate:  start,
		EndDate:    end,
	}, start, start)
	require.NoError(t, err)
	return c
}

func validClientRequest() dto.ClientRequest {
	return dto.ClientRequest{
		FullName:   "Meera Nair",
		Email:      "meera@example.com",
		Phone:      "9876543210",
		Age:        34,
		Gender:     "female",
		Address:    "12 MG Road",
		Notes:      "knee injury, avoid squats",
		PlanType:   "quarterly",
		PlanAmount: decimal.RequireFromString("3500"),
		StartDate:  "2024-03-01",
	}
}
