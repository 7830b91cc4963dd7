package schedule

import (
	"cmp"
	"slices"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

// IsDue reports whether item must be executed as of ref: it is active, its
// next occurrence is on or before ref and its end date (if any) has not
// passed.
func IsDue(item entities.RecurringItem, ref calendar.Date) bool {
	if !item.IsActive {
		return false
	}
	if item.NextExecutionDate.After(ref) {
		return false
	}
	if item.EndDate != nil && item.EndDate.Before(ref) {
		return false
	}
	return true
}

// DueItems selects the items due as of ref into a new slice. The input is
// not modified and the output order is unspecified.
func DueItems(items []entities.RecurringItem, ref calendar.Date) []entities.RecurringItem {
	due := make([]entities.RecurringItem, 0, len(items))
	for _, item := range items {
		if IsDue(item, ref) {
			due = append(due, item)
		}
	}
	return due
}

// SortByNextExecution orders items by next occurrence, then by id.
func SortByNextExecution(items []entities.RecurringItem) {
	slices.SortStableFunc(items, func(a, b entities.RecurringItem) int {
		if c := a.NextExecutionDate.Compare(b.NextExecutionDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
