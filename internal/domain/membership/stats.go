package membership

import (
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

// MonthLayout labels series buckets.
const MonthLayout = "2006-01"

type RevenuePoint struct {
	Month   string
	Revenue decimal.Decimal
}

type GrowthPoint struct {
	Month   string
	Clients int
}

type PlanShare struct {
	Name  vo.PlanType
	Value int
}

// DashboardStats summarises a client collection at one instant.
type DashboardStats struct {
	TotalClients   int
	ActiveClients  int
	ExpiredClients int
	// MonthlyRevenue sums the full plan amount of every active client;
	// quarterly and yearly plans are not prorated.
	MonthlyRevenue       decimal.Decimal
	RevenueData          []RevenuePoint
	ClientGrowthData     []GrowthPoint
	PlanDistributionData []PlanShare
}

// StatsOptions bounds the monthly series. When From and To are both set every
// month between them (inclusive) gets a point and start dates outside are not
// bucketed. Otherwise the series runs from the earliest to the latest start
// month in the collection.
type StatsOptions struct {
	From time.Time
	To   time.Time
}

// LastMonths covers the n calendar months ending with now's month.
func LastMonths(now time.Time, n int) StatsOptions {
	if n <= 0 {
		return StatsOptions{}
	}
	y, m, _ := now.Date()
	to := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return StatsOptions{From: to.AddDate(0, -(n - 1), 0), To: to}
}

func (o StatsOptions) bounded() bool {
	return !o.From.IsZero() && !o.To.IsZero()
}

// ComputeStats aggregates clients. The result depends only on its inputs.
func ComputeStats(clients []*client.Client, now time.Time, opts StatsOptions) DashboardStats {
	snapshots := Annotate(clients, now)

	stats := DashboardStats{
		TotalClients:   len(snapshots),
		MonthlyRevenue: decimal.Zero,
	}
	planCounts := make(map[vo.PlanType]int, len(vo.PlanTypes))
	revenueByMonth := make(map[int]decimal.Decimal)
	growthByMonth := make(map[int]int)
	first, last := 0, -1

	for _, s := range snapshots {
		if s.Status.IsActive() {
			stats.ActiveClients++
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(s.Client.PlanAmount())
		} else {
			stats.ExpiredClients++
		}
		planCounts[s.Client.PlanType()]++

		idx := monthIndex(s.Client.StartDate())
		revenueByMonth[idx] = revenueByMonth[idx].Add(s.Client.PlanAmount())
		growthByMonth[idx]++
		if last < first || idx < first {
			first = idx
		}
		if idx > last {
			last = idx
		}
	}

	if opts.bounded() {
		first, last = monthIndex(opts.From), monthIndex(opts.To)
	}

	stats.RevenueData = make([]RevenuePoint, 0, max(last-first+1, 0))
	stats.ClientGrowthData = make([]GrowthPoint, 0, max(last-first+1, 0))
	for idx := first; idx <= last; idx++ {
		label := monthLabel(idx)
		rev, ok := revenueByMonth[idx]
		if !ok {
			rev = decimal.Zero
		}
		stats.RevenueData = append(stats.RevenueData, RevenuePoint{Month: label, Revenue: rev})
		stats.ClientGrowthData = append(stats.ClientGrowthData, GrowthPoint{Month: label, Clients: growthByMonth[idx]})
	}

	stats.PlanDistributionData = make([]PlanShare, 0, len(vo.PlanTypes))
	for _, p := range vo.PlanTypes {
		if n := planCounts[p]; n > 0 {
			stats.PlanDistributionData = append(stats.PlanDistributionData, PlanShare{Name: p, Value: n})
		}
	}
	return stats
}

func monthIndex(t time.Time) int {
	y, m, _ := t.Date()
	return y*12 + int(m) - 1
}

func monthLabel(idx int) string {
	return time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
}
