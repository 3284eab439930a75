package mappers

import (
	"time"

	"gorm.io/datatypes"

	"gymdesk/internal/shared/biztime"
)

// toDate stores the calendar date of t as UTC midnight so drivers that
// convert to UTC before writing cannot shift it to the previous day.
func toDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// fromDate restores a stored date as midnight in the business timezone.
func fromDate(d datatypes.Date) time.Time {
	y, m, day := time.Time(d).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, biztime.Location())
}

func toDatePtr(t time.Time) *datatypes.Date {
	if t.IsZero() {
		return nil
	}
	d := toDate(t)
	return &d
}

func fromDatePtr(d *datatypes.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return fromDate(*d)
}
