package schedule

import (
	"recurring_finance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Totals are monthly-equivalent sums split by kind.
type Totals struct {
	Expenses decimal.Decimal
	Income   decimal.Decimal
}

// Net is income minus expenses.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

var (
	thirty = decimal.NewFromInt(30)
	four   = decimal.NewFromInt(4)
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)
)

// MonthlyEquivalent projects amount onto a month using a fixed table
// (daily x30, weekly x4, biweekly x2, monthly x1, yearly /12). This is an
// approximation for projections, not a calendar-exact figure.
func MonthlyEquivalent(amount decimal.Decimal, f entities.Frequency) (decimal.Decimal, bool) {
	switch f {
	case entities.FrequencyDaily:
		return amount.Mul(thirty), true
	case entities.FrequencyWeekly:
		return amount.Mul(four), true
	case entities.FrequencyBiweekly:
		return amount.Mul(two), true
	case entities.FrequencyMonthly:
		return amount, true
	case entities.FrequencyYearly:
		return amount.Div(twelve), true
	default:
		return decimal.Zero, false
	}
}

// MonthlyTotals folds the active items into monthly-equivalent expense and
// income totals. Items with an unknown kind or frequency are skipped.
func MonthlyTotals(items []entities.RecurringItem) Totals {
	totals := Totals{Expenses: decimal.Zero, Income: decimal.Zero}
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		monthly, ok := MonthlyEquivalent(item.Amount, item.Frequency)
		if !ok {
			continue
		}
		switch item.Kind {
		case entities.KindExpense:
			totals.Expenses = totals.Expenses.Add(monthly)
		case entities.KindIncome:
			totals.Income = totals.Income.Add(monthly)
		}
	}
	return totals
}
