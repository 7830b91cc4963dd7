package interfaces

import "recurring_finance/internal/domain/calendar"

// IClock supplies "today". Pure scheduling code never reads the system clock.
type IClock interface {
	Today() calendar.Date
}
