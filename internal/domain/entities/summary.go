package entities

import (
	"recurring_finance/internal/domain/calendar"

	"github.com/shopspring/decimal"
)

// MonthlySummary is the cash-flow projection of a space's recurring items.
// Figures are monthly equivalents, not ledger-accurate amounts.
type MonthlySummary struct {
	OwnerSpaceID string
	AsOf         calendar.Date
	Expenses     decimal.Decimal
	Income       decimal.Decimal
	Net          decimal.Decimal
	DueToday     int
	ActiveCount  int
}

// ExecutionFailure records an item the runner could not execute.
type ExecutionFailure struct {
	ItemID       string
	OwnerSpaceID string
	Reason       string
}

// ExecutionReport is the outcome of one due-scan run.
type ExecutionReport struct {
	ReferenceDate calendar.Date
	Executed      []RecurringItem
	Failed        []ExecutionFailure
}
