package interfaces

import (
	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

// ISummaryCache keeps monthly summaries per space and day.
type ISummaryCache interface {
	Get(ownerSpaceID string, asOf calendar.Date) (entities.MonthlySummary, bool)
	Set(summary entities.MonthlySummary)
	Invalidate(ownerSpaceID string)
}
