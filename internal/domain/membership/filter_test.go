package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

// tenClients has 6 active and 4 expired members across all plans.
func tenClients(t *testing.T) []*client.Client {
	return []*client.Client{
		newClient(t, 1, 20, withName("Asha Verma"), withPlan(vo.PlanTypeMonthly, 1000)),
		newClient(t, 2, -3, withName("Rahul Nair"), withPlan(vo.PlanTypeMonthly, 1000)),
		newClient(t, 3, 0, withName("Émile Zola"), withEmail("EMILE@Example.com"), withPlan(vo.PlanTypeQuarterly, 2700)),
		newClient(t, 4, 90, withName("Priya Shah"), withPlan(vo.PlanTypeYearly, 9000)),
		newClient(t, 5, -40, withName("Vikram Rao"), withPlan(vo.PlanTypeQuarterly, 2700)),
		newClient(t, 6, 5, withName("Meera Iyer"), withPhone("+91 98765-43210")),
		newClient(t, 7, 200, withName("Arjun Das"), withPlan(vo.PlanTypeYearly, 9500)),
		newClient(t, 8, -1, withName("Kavya Menon"), withPlan(vo.PlanTypeYearly, 9000)),
		newClient(t, 9, 12, withName("Sanjay Gupta")),
		newClient(t, 10, -10, withName("Nisha Pillai"), withPlan(vo.PlanTypeQuarterly, 2500)),
	}
}

func TestFilter_StatusActive(t *testing.T) {
	result := Filter(tenClients(t), FilterCriteria{Status: StatusFilterActive}, now)

	assert.Len(t, result.Matches, 6)
	assert.Equal(t, 10, result.Counts.All)
	for _, s := range result.Matches {
		assert.Equal(t, vo.StatusActive, s.Status)
	}
}

func TestFilter_CountsIgnoreCriteria(t *testing.T) {
	clients := tenClients(t)
	want := FacetCounts{All: 10, Active: 6, Expired: 4, Monthly: 4, Quarterly: 3, Yearly: 3}

	for _, criteria := range []FilterCriteria{
		{},
		{Status: StatusFilterExpired},
		{Plan: PlanFilter(vo.PlanTypeYearly)},
		{Search: "nobody-matches-this"},
	} {
		assert.Equal(t, want, Filter(clients, criteria, now).Counts, "criteria=%+v", criteria)
	}
}

func TestFilter_Conjunction(t *testing.T) {
	result := Filter(tenClients(t), FilterCriteria{
		Status: StatusFilterExpired,
		Plan:   PlanFilter(vo.PlanTypeQuarterly),
	}, now)

	assert.Equal(t, []string{"cl_5", "cl_10"}, sids(result.Matches))
}

func TestFilter_PreservesOrder(t *testing.T) {
	clients := tenClients(t)
	result := Filter(clients, FilterCriteria{}, now)

	want := make([]string, len(clients))
	for i, c := range clients {
		want[i] = c.SID()
	}
	assert.Equal(t, want, sids(result.Matches))
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := FilterCriteria{Search: "a", Status: StatusFilterActive}
	first := Filter(tenClients(t), criteria, now)

	again := make([]*client.Client, len(first.Matches))
	for i, s := range first.Matches {
		again[i] = s.Client
	}
	second := Filter(again, criteria, now)

	assert.Equal(t, sids(first.Matches), sids(second.Matches))
}

func TestFilter_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty matches all", "   ", nil},
		{"name case-insensitive", "ASHA", []string{"cl_1"}},
		{"unicode folding", "émile", []string{"cl_3"}},
		{"email substring", "emile@example", []string{"cl_3"}},
		{"phone verbatim", "98765-43210", []string{"cl_6"}},
		{"phone digits", "9876543210", []string{"cl_6"}},
		{"phone with different punctuation", "98765 43210", []string{"cl_6"}},
		{"no match", "zzz", []string{}},
	}

	clients := tenClients(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sids(Filter(clients, FilterCriteria{Search: tt.search}, now).Matches)
			if tt.want == nil {
				assert.Len(t, got, len(clients))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_UnknownValuesMatchAll(t *testing.T) {
	clients := tenClients(t)
	result := Filter(clients, FilterCriteria{Status: "pending", Plan: "Weekly"}, now)

	assert.Len(t, result.Matches, len(clients))
}

func TestParseFilters(t *testing.T) {
	s, ok := ParseStatusFilter("expired")
	assert.True(t, ok)
	assert.Equal(t, StatusFilterExpired, s)

	s, ok = ParseStatusFilter("lapsed")
	assert.False(t, ok)
	assert.Equal(t, StatusFilterAll, s)

	p, ok := ParsePlanFilter("yearly")
	assert.True(t, ok)
	assert.Equal(t, PlanFilter(vo.PlanTypeYearly), p)

	p, ok = ParsePlanFilter("")
	assert.True(t, ok)
	assert.Equal(t, PlanFilterAll, p)

	_, ok = ParsePlanFilter("weekly")
	assert.False(t, ok)
}

func TestFilter_EmptyInput(t *testing.T) {
	result := Filter(nil, FilterCriteria{Search: "x"}, now)

	assert.Empty(t, result.Matches)
	assert.Equal(t, FacetCounts{}, result.Counts)
}
