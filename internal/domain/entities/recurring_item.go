package entities

import (
	"fmt"
	"strings"
	"time"

	"recurring_finance/internal/domain/calendar"

	"github.com/shopspring/decimal"
)

// Frequency is the closed set of schedule cadences.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// Frequencies lists every supported cadence in ascending period order.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyYearly,
}

// ParseFrequency is the boundary parser for user or storage input.
// Unknown tags are an error; there is no default cadence.
func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(raw)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown frequency %q", raw)
	}
	return f, nil
}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Kind tells whether a recurring item moves money out of or into the space.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown kind %q", raw)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// ItemStatus is derived from IsActive, EndDate and NextExecutionDate; it is
// never stored.
type ItemStatus string

const (
	ItemStatusActive  ItemStatus = "active"
	ItemStatusPaused  ItemStatus = "paused"
	ItemStatusExpired ItemStatus = "expired"
)

// RecurringItem is the template of a periodically repeating transaction
// (bill, subscription, paycheck).
//
// Storage model:
//   - partition: owner_space_id, key: id
//   - dates are stored as "YYYY-MM-DD" strings, Amount as a decimal string
//
// Invariants:
//   - Amount is strictly positive.
//   - EndDate set and NextExecutionDate after EndDate implies !IsActive.
//   - Version grows by one on every write and guards read-modify-write.
type RecurringItem struct {
	ID           string
	OwnerSpaceID string
	AccountID    string
	CategoryID   string

	Amount    decimal.Decimal
	Kind      Kind
	Frequency Frequency

	StartDate         calendar.Date
	EndDate           *calendar.Date
	LastExecutedDate  *calendar.Date
	NextExecutionDate calendar.Date
	IsActive          bool

	Note string

	CreatedBy string
	UpdatedBy string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status reports the lifecycle state of the item.
func (i RecurringItem) Status() ItemStatus {
	if i.IsActive {
		return ItemStatusActive
	}
	if i.EndDate != nil && i.NextExecutionDate.After(*i.EndDate) {
		return ItemStatusExpired
	}
	return ItemStatusPaused
}

// Clone returns a copy that shares no pointers with i.
func (i RecurringItem) Clone() RecurringItem {
	out := i
	if i.EndDate != nil {
		end := *i.EndDate
		out.EndDate = &end
	}
	if i.LastExecutedDate != nil {
		last := *i.LastExecutedDate
		out.LastExecutedDate = &last
	}
	return out
}
