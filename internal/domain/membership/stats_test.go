package membership

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 10, 0, 0, 0, 0, time.UTC)
}

func TestComputeStats_Counts(t *testing.T) {
	clients := tenClients(t)
	stats := ComputeStats(clients, now, StatsOptions{})

	assert.Equal(t, len(clients), stats.TotalClients)
	assert.Equal(t, 6, stats.ActiveClients)
	assert.Equal(t, 4, stats.ExpiredClients)
}

func TestComputeStats_MonthlyRevenueExcludesExpired(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 1, 5, withPlan(vo.PlanTypeMonthly, 1000)),
		newClient(t, 2, 0, withPlan(vo.PlanTypeYearly, 9000)),
		newClient(t, 3, -3, withPlan(vo.PlanTypeQuarterly, 2700)),
	}

	stats := ComputeStats(clients, now, StatsOptions{})

	assert.True(t, decimal.NewFromInt(10000).Equal(stats.MonthlyRevenue), stats.MonthlyRevenue.String())
}

func TestComputeStats_ExplicitRangeIsContinuous(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 1, 5, withStart(month(2024, time.January)), withPlan(vo.PlanTypeMonthly, 1000)),
		newClient(t, 2, 5, withStart(month(2024, time.January)), withPlan(vo.PlanTypeYearly, 9000)),
		newClient(t, 3, 5, withStart(month(2024, time.March)), withPlan(vo.PlanTypeMonthly, 1200)),
		newClient(t, 4, 5, withStart(month(2023, time.June)), withPlan(vo.PlanTypeMonthly, 800)),
	}

	stats := ComputeStats(clients, now, LastMonths(now, 4))

	months := make([]string, len(stats.RevenueData))
	for i, p := range stats.RevenueData {
		months[i] = p.Month
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02", "2024-03"}, months)

	assert.True(t, decimal.Zero.Equal(stats.RevenueData[0].Revenue))
	assert.True(t, decimal.NewFromInt(10000).Equal(stats.RevenueData[1].Revenue))
	assert.True(t, decimal.Zero.Equal(stats.RevenueData[2].Revenue))
	assert.True(t, decimal.NewFromInt(1200).Equal(stats.RevenueData[3].Revenue))

	growth := make([]int, len(stats.ClientGrowthData))
	for i, p := range stats.ClientGrowthData {
		growth[i] = p.Clients
	}
	assert.Equal(t, []int{0, 2, 0, 1}, growth)

	// Out-of-range starts still count towards totals.
	assert.Equal(t, 4, stats.TotalClients)
}

func TestComputeStats_UnboundedSpansDataWithGaps(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 1, 5, withStart(month(2023, time.November))),
		newClient(t, 2, 5, withStart(month(2024, time.February))),
	}

	stats := ComputeStats(clients, now, StatsOptions{})

	require.Len(t, stats.ClientGrowthData, 4)
	assert.Equal(t, "2023-11", stats.ClientGrowthData[0].Month)
	assert.Equal(t, "2024-02", stats.ClientGrowthData[3].Month)
	assert.Equal(t, 0, stats.ClientGrowthData[1].Clients)
	assert.Equal(t, 1, stats.ClientGrowthData[3].Clients)
}

func TestComputeStats_PlanDistribution(t *testing.T) {
	clients := []*client.Client{
		newClient(t, 1, 5, withPlan(vo.PlanTypeYearly, 9000)),
		newClient(t, 2, -5, withPlan(vo.PlanTypeMonthly, 1000)),
		newClient(t, 3, 5, withPlan(vo.PlanTypeYearly, 9000)),
	}

	stats := ComputeStats(clients, now, StatsOptions{})

	assert.Equal(t, []PlanShare{
		{Name: vo.PlanTypeMonthly, Value: 1},
		{Name: vo.PlanTypeYearly, Value: 2},
	}, stats.PlanDistributionData)
}

func TestComputeStats_Deterministic(t *testing.T) {
	clients := tenClients(t)
	opts := LastMonths(now, 6)

	assert.Equal(t, ComputeStats(clients, now, opts), ComputeStats(clients, now, opts))
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, now, StatsOptions{})

	assert.Zero(t, stats.TotalClients)
	assert.True(t, stats.MonthlyRevenue.IsZero())
	assert.Empty(t, stats.RevenueData)
	assert.Empty(t, stats.PlanDistributionData)

	bounded := ComputeStats(nil, now, LastMonths(now, 3))
	assert.Len(t, bounded.RevenueData, 3)
}

func TestLastMonths(t *testing.T) {
	opts := LastMonths(time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC), 3)

	assert.Equal(t, time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC), opts.From)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), opts.To)
	assert.Equal(t, StatsOptions{}, LastMonths(now, 0))
}
