package membership

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

// StatusFilter selects clients by derived status.
type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "all"
	StatusFilterActive  StatusFilter = StatusFilter(vo.StatusActive)
	StatusFilterExpired StatusFilter = StatusFilter(vo.StatusExpired)
)

// ParseStatusFilter is case-insensitive. Unknown values fall back to all and
// report ok=false so the caller can log them.
func ParseStatusFilter(s string) (f StatusFilter, ok bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, string(StatusFilterAll)):
		return StatusFilterAll, true
	case strings.EqualFold(s, string(StatusFilterActive)):
		return StatusFilterActive, true
	case strings.EqualFold(s, string(StatusFilterExpired)):
		return StatusFilterExpired, true
	}
	return StatusFilterAll, false
}

// PlanFilter selects clients by plan type.
type PlanFilter string

const PlanFilterAll PlanFilter = "all"

// ParsePlanFilter follows ParseStatusFilter.
func ParsePlanFilter(s string) (f PlanFilter, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(PlanFilterAll)) {
		return PlanFilterAll, true
	}
	plan, err := vo.ParsePlanType(s)
	if err != nil {
		return PlanFilterAll, false
	}
	return PlanFilter(plan), true
}

// FilterCriteria is the conjunction of search, status and plan predicates.
// Zero values match everything.
type FilterCriteria struct {
	Search string
	Status StatusFilter
	Plan   PlanFilter
}

// FacetCounts are totals over the unfiltered collection.
type FacetCounts struct {
	All       int
	Active    int
	Expired   int
	Monthly   int
	Quarterly int
	Yearly    int
}

type FilterResult struct {
	Matches []Snapshot
	Counts  FacetCounts
}

// Filter returns the clients matching criteria in input order, plus facet
// counts that ignore criteria.
func Filter(clients []*client.Client, criteria FilterCriteria, now time.Time) FilterResult {
	snapshots := Annotate(clients, now)
	match := newMatcher(criteria)

	result := FilterResult{
		Matches: make([]Snapshot, 0, len(snapshots)),
		Counts:  countFacets(snapshots),
	}
	for _, s := range snapshots {
		if match(s) {
			result.Matches = append(result.Matches, s)
		}
	}
	return result
}

func countFacets(snapshots []Snapshot) FacetCounts {
	var fc FacetCounts
	fc.All = len(snapshots)
	for _, s := range snapshots {
		switch s.Status {
		case vo.StatusActive:
			fc.Active++
		case vo.StatusExpired:
			fc.Expired++
		}
		switch s.Client.PlanType() {
		case vo.PlanTypeMonthly:
			fc.Monthly++
		case vo.PlanTypeQuarterly:
			fc.Quarterly++
		case vo.PlanTypeYearly:
			fc.Yearly++
		}
	}
	return fc
}

func newMatcher(criteria FilterCriteria) func(Snapshot) bool {
	status, _ := ParseStatusFilter(string(criteria.Status))
	plan, _ := ParsePlanFilter(string(criteria.Plan))
	search := newSearch(criteria.Search)

	return func(s Snapshot) bool {
		if status != StatusFilterAll && string(status) != string(s.Status) {
			return false
		}
		if plan != PlanFilterAll && string(plan) != string(s.Client.PlanType()) {
			return false
		}
		return search.matches(s.Client)
	}
}

type search struct {
	raw    string
	folded string
	digits string
	fold   cases.Caser
}

func newSearch(q string) search {
	q = strings.TrimSpace(q)
	fold := cases.Fold()
	s := search{raw: q, folded: fold.String(q), fold: fold}
	if looksLikePhone(q) {
		s.digits = digitsOnly(q)
	}
	return s
}

// matches checks name and email by folded substring, and phone either
// verbatim or by digits when the query is phone-shaped.
func (s search) matches(c *client.Client) bool {
	if s.raw == "" {
		return true
	}
	if strings.Contains(s.fold.String(c.FullName()), s.folded) ||
		strings.Contains(s.fold.String(c.Email()), s.folded) {
		return true
	}
	if strings.Contains(c.Phone(), s.raw) {
		return true
	}
	return s.digits != "" && strings.Contains(digitsOnly(c.Phone()), s.digits)
}

func looksLikePhone(q string) bool {
	hasDigit := false
	for _, r := range q {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(" +-().", r):
		default:
			return false
		}
	}
	return hasDigit
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
