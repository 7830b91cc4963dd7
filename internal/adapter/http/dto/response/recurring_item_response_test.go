package response

import (
	"encoding/json"
	"strings"
	"testing"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromRecurringItem(t *testing.T) {
	end := calendar.MustParse("2024-03-31")
	item := entities.RecurringItem{
		ID:                "item-1",
		OwnerSpaceID:      "space-1",
		Amount:            decimal.RequireFromString("49.90"),
		Kind:              entities.KindExpense,
		Frequency:         entities.FrequencyMonthly,
		StartDate:         calendar.MustParse("2024-01-31"),
		EndDate:           &end,
		NextExecutionDate: calendar.MustParse("2024-04-30"),
		IsActive:          false,
	}

	got := FromRecurringItem(item)
	if got.Status != "expired" || got.Kind != "expense" || got.Frequency != "monthly" {
		t.Fatalf("unexpected response: %+v", got)
	}

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(b)
	for _, want := range []string{`"amount":"49.9"`, `"end_date":"2024-03-31"`, `"last_executed_date":null`, `"next_execution_date":"2024-04-30"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestFromRecurringItems_EmptyIsNotNull(t *testing.T) {
	b, _ := json.Marshal(FromRecurringItems(nil))
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}

func TestFromSummary_RoundsToCents(t *testing.T) {
	s := entities.MonthlySummary{
		Expenses: decimal.NewFromInt(1000).Div(decimal.NewFromInt(12)),
		Income:   decimal.NewFromInt(3000),
		Net:      decimal.NewFromInt(3000).Sub(decimal.NewFromInt(1000).Div(decimal.NewFromInt(12))),
	}
	got := FromSummary(s)
	if got.Expenses.String() != "83.33" || got.Net.String() != "2916.67" {
		t.Fatalf("unexpected rounding: %s / %s", got.Expenses, got.Net)
	}
}

func TestFromExecutionReport(t *testing.T) {
	got := FromExecutionReport(entities.ExecutionReport{
		ReferenceDate: calendar.MustParse("2024-04-15"),
		Failed:        []entities.ExecutionFailure{{ItemID: "a", Reason: "broker down"}},
	})
	if len(got.Executed) != 0 || got.Executed == nil || len(got.Failed) != 1 || got.Failed[0].ItemID != "a" {
		t.Fatalf("unexpected report: %+v", got)
	}
}
