package membership

import (
	"time"

	vo "gymdesk/internal/domain/client/valueobjects"
)

const day = 24 * time.Hour

// DaysRemaining is the number of calendar days from now until end. It is zero
// when end falls on today and negative once end has passed. Both values are
// reduced to their calendar date in now's location.
func DaysRemaining(end, now time.Time) int {
	return calendarDaysBetween(now, end.In(now.Location()))
}

// DaysElapsed is the number of calendar days from start until now, counted in
// now's location.
func DaysElapsed(start, now time.Time) int {
	return calendarDaysBetween(start.In(now.Location()), now)
}

// TermEnd is the end of a billing period of plan starting at start. Month
// overflow follows time.AddDate: Jan 31 + 1 month is Mar 3, or Mar 2 in a
// leap year.
func TermEnd(start time.Time, plan vo.PlanType) time.Time {
	return start.AddDate(0, plan.Months(), 0)
}

func calendarDaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / day)
}
