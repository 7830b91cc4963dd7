package clock

import (
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/usecase/interfaces"
)

// SystemClock reads the wall clock and reports the civil date in loc.
type SystemClock struct {
	loc *time.Location
	now func() time.Time
}

var _ interfaces.IClock = (*SystemClock)(nil)

func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc, now: time.Now}
}

func (c *SystemClock) Today() calendar.Date {
	return calendar.FromTime(c.now(), c.loc)
}
