package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPlanType = errors.New("invalid plan type")

// PlanType is the billing term of a membership.
type PlanType string

const (
	PlanTypeMonthly   PlanType = "Monthly"
	PlanTypeQuarterly PlanType = "Quarterly"
	PlanTypeYearly    PlanType = "Yearly"
)

// PlanTypes lists every plan type in display order.
var PlanTypes = []PlanType{PlanTypeMonthly, PlanTypeQuarterly, PlanTypeYearly}

var planTermMonths = map[PlanType]int{
	PlanTypeMonthly:   1,
	PlanTypeQuarterly: 3,
	PlanTypeYearly:    12,
}

// ParsePlanType accepts any letter case and returns the canonical spelling.
func ParsePlanType(value string) (PlanType, error) {
	v := strings.TrimSpace(value)
	for _, p := range PlanTypes {
		if strings.EqualFold(v, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlanType, value)
}

func (p PlanType) String() string {
	return string(p)
}

func (p PlanType) IsValid() bool {
	_, ok := planTermMonths[p]
	return ok
}

// Months returns the term length, or 0 for an invalid plan type.
func (p PlanType) Months() int {
	return planTermMonths[p]
}
