// Package schedule holds the pure scheduling rules for recurring items:
// next-date arithmetic, fast-forwarding, due selection and monthly
// projection. Nothing here reads the clock or touches storage.
package schedule

import (
	"errors"
	"fmt"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

// ErrUnknownFrequency means a frequency outside the supported set reached
// the engine. Boundary parsing should have rejected it earlier.
var ErrUnknownFrequency = errors.New("unknown frequency")

// NextDate returns the next occurrence after from for the given cadence.
// Month and year steps clamp to the end of shorter target months.
func NextDate(from calendar.Date, f entities.Frequency) (calendar.Date, error) {
	switch f {
	case entities.FrequencyDaily:
		return from.AddDays(1), nil
	case entities.FrequencyWeekly:
		return from.AddDays(7), nil
	case entities.FrequencyBiweekly:
		return from.AddDays(14), nil
	case entities.FrequencyMonthly:
		return from.AddMonths(1), nil
	case entities.FrequencyYearly:
		return from.AddYears(1), nil
	default:
		return calendar.Date{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
	}
}
