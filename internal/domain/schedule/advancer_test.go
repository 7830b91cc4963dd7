package schedule

import (
	"errors"
	"testing"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

func TestAdvanceToOnOrAfter_CatchesUpMonthly(t *testing.T) {
	got, err := AdvanceToOnOrAfter(calendar.MustParse("2024-01-01"), entities.FrequencyMonthly, calendar.MustParse("2024-04-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "2024-05-01" {
		t.Fatalf("expected 2024-05-01, got %s", got)
	}
}

func TestAdvanceToOnOrAfter_StartOnReferenceIsNotAdvanced(t *testing.T) {
	for _, f := range entities.Frequencies {
		for _, d := range sampleDates() {
			got, err := AdvanceToOnOrAfter(d, f, d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != d {
				t.Fatalf("expected %s to stay on %s for %s, got %s", d, d, f, got)
			}
		}
	}
}

func TestAdvanceToOnOrAfter_FutureStartUnchanged(t *testing.T) {
	start := calendar.MustParse("2024-06-01")
	got, err := AdvanceToOnOrAfter(start, entities.FrequencyWeekly, calendar.MustParse("2024-04-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != start {
		t.Fatalf("expected %s, got %s", start, got)
	}
}

func TestAdvanceToOnOrAfter_LandsOnReachableDate(t *testing.T) {
	ref := calendar.MustParse("2024-09-17")
	for _, f := range entities.Frequencies {
		for _, start := range sampleDates() {
			if start.After(ref) {
				continue
			}
			got, err := AdvanceToOnOrAfter(start, f, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Before(ref) {
				t.Fatalf("expected result on or after %s, got %s (%s from %s)", ref, got, f, start)
			}

			// Walk the schedule again: got must be one of its occurrences and the
			// occurrence before it must precede ref.
			prev, cur := calendar.Date{}, start
			for cur.Before(got) {
				prev = cur
				cur, _ = NextDate(cur, f)
			}
			if cur != got {
				t.Fatalf("%s is not reachable from %s by %s steps", got, start, f)
			}
			if !prev.IsZero() && !prev.Before(ref) {
				t.Fatalf("expected first occurrence on or after %s, previous %s already qualifies", ref, prev)
			}
		}
	}
}

func TestAdvanceToOnOrAfter_UnknownFrequency(t *testing.T) {
	_, err := AdvanceToOnOrAfter(calendar.MustParse("2024-01-01"), entities.Frequency("hourly"), calendar.MustParse("2024-02-01"))
	if !errors.Is(err, ErrUnknownFrequency) {
		t.Fatalf("expected ErrUnknownFrequency, got %v", err)
	}
}

func TestNextAfterExecution_AdvancesExactlyOnce(t *testing.T) {
	executed := calendar.MustParse("2023-01-01")
	got, err := NextAfterExecution(executed, entities.FrequencyMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "2023-02-01" {
		t.Fatalf("expected 2023-02-01, got %s", got)
	}
}
