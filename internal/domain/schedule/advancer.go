package schedule

import (
	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

// AdvanceToOnOrAfter fast-forwards a schedule that starts at start to its
// first occurrence on or after ref. A start on or after ref is returned as is.
func AdvanceToOnOrAfter(start calendar.Date, f entities.Frequency, ref calendar.Date) (calendar.Date, error) {
	next := start
	for next.Before(ref) {
		stepped, err := NextDate(next, f)
		if err != nil {
			return calendar.Date{}, err
		}
		next = stepped
	}
	return next, nil
}

// NextAfterExecution is the occurrence following an execution on executed.
// It always advances exactly one step.
func NextAfterExecution(executed calendar.Date, f entities.Frequency) (calendar.Date, error) {
	return NextDate(executed, f)
}
