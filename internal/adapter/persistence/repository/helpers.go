package repository

import (
	"fmt"
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Both backends keep dates as "YYYY-MM-DD" strings so that lexicographic
// comparisons in store-side filters match calendar order.

func optionalDate(d *calendar.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func parseOptionalDate(field, raw string) (*calendar.Date, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	return &d, nil
}

func parseDate(field, raw string) (calendar.Date, error) {
	d, err := calendar.Parse(raw)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("decode %s: %w", field, err)
	}
	return d, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", field, err)
	}
	return t, nil
}

// storedFields is the storage-agnostic flat shape both backends decode into
// before the domain entity is rebuilt.
type storedFields struct {
	ID, OwnerSpaceID, AccountID, CategoryID string
	Amount                                  string
	Kind, Frequency                         string
	StartDate, EndDate, LastExecutedDate    string
	NextExecutionDate                       string
	IsActive                                bool
	Note, CreatedBy, UpdatedBy              string
	Version                                 int64
	CreatedAt, UpdatedAt                    time.Time
}

// toEntity rebuilds the item. Kind and frequency tags are kept verbatim: an
// unknown stored tag is reported by the scheduling code when it is used.
func (f storedFields) toEntity() (entities.RecurringItem, error) {
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return entities.RecurringItem{}, fmt.Errorf("decode amount of %s: %w", f.ID, err)
	}
	start, err := parseDate("start_date", f.StartDate)
	if err != nil {
		return entities.RecurringItem{}, err
	}
	next, err := parseDate("next_execution_date", f.NextExecutionDate)
	if err != nil {
		return entities.RecurringItem{}, err
	}
	end, err := parseOptionalDate("end_date", f.EndDate)
	if err != nil {
		return entities.RecurringItem{}, err
	}
	last, err := parseOptionalDate("last_executed_date", f.LastExecutedDate)
	if err != nil {
		return entities.RecurringItem{}, err
	}

	return entities.RecurringItem{
		ID:                f.ID,
		OwnerSpaceID:      f.OwnerSpaceID,
		AccountID:         f.AccountID,
		CategoryID:        f.CategoryID,
		Amount:            amount,
		Kind:              entities.Kind(f.Kind),
		Frequency:         entities.Frequency(f.Frequency),
		StartDate:         start,
		EndDate:           end,
		LastExecutedDate:  last,
		NextExecutionDate: next,
		IsActive:          f.IsActive,
		Note:              f.Note,
		CreatedBy:         f.CreatedBy,
		UpdatedBy:         f.UpdatedBy,
		Version:           f.Version,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}, nil
}
