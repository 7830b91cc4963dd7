package entities

import (
	"testing"

	"recurring_finance/internal/domain/calendar"
)

func TestParseFrequency(t *testing.T) {
	for _, raw := range []string{"daily", " Weekly ", "BIWEEKLY", "monthly", "yearly"} {
		if _, err := ParseFrequency(raw); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}
	for _, raw := range []string{"", "fortnightly", "month"} {
		if _, err := ParseFrequency(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(" Income "); err != nil || k != KindIncome {
		t.Fatalf("expected income, got %q (%v)", k, err)
	}
	if _, err := ParseKind("transfer"); err == nil {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestRecurringItem_Status(t *testing.T) {
	end := calendar.MustParse("2024-03-01")

	active := RecurringItem{IsActive: true, NextExecutionDate: calendar.MustParse("2024-04-01"), EndDate: &end}
	if got := active.Status(); got != ItemStatusActive {
		t.Fatalf("expected active, got %s", got)
	}

	expired := RecurringItem{IsActive: false, NextExecutionDate: calendar.MustParse("2024-04-01"), EndDate: &end}
	if got := expired.Status(); got != ItemStatusExpired {
		t.Fatalf("expected expired, got %s", got)
	}

	paused := RecurringItem{IsActive: false, NextExecutionDate: calendar.MustParse("2024-02-01"), EndDate: &end}
	if got := paused.Status(); got != ItemStatusPaused {
		t.Fatalf("expected paused, got %s", got)
	}

	pausedOpenEnded := RecurringItem{IsActive: false, NextExecutionDate: calendar.MustParse("2024-02-01")}
	if got := pausedOpenEnded.Status(); got != ItemStatusPaused {
		t.Fatalf("expected paused, got %s", got)
	}
}

func TestRecurringItem_CloneDetachesPointers(t *testing.T) {
	end := calendar.MustParse("2024-12-31")
	last := calendar.MustParse("2024-01-01")
	item := RecurringItem{ID: "item-1", EndDate: &end, LastExecutedDate: &last}

	clone := item.Clone()
	*clone.EndDate = calendar.MustParse("2025-01-01")
	*clone.LastExecutedDate = calendar.MustParse("2025-01-01")

	if item.EndDate.String() != "2024-12-31" || item.LastExecutedDate.String() != "2024-01-01" {
		t.Fatalf("clone mutated the original: %+v", item)
	}
}
