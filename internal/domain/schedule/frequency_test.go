package schedule

import (
	"errors"
	"testing"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

func sampleDates() []calendar.Date {
	var out []calendar.Date
	for d := calendar.MustParse("2023-01-01"); d.Before(calendar.MustParse("2025-01-01")); d = d.AddDays(3) {
		out = append(out, d)
	}
	// month ends and leap day
	out = append(out,
		calendar.MustParse("2024-01-31"),
		calendar.MustParse("2024-02-29"),
		calendar.MustParse("2023-12-31"),
		calendar.MustParse("2024-08-31"),
	)
	return out
}

func TestNextDate_Steps(t *testing.T) {
	from := calendar.MustParse("2024-01-31")
	cases := []struct {
		f    entities.Frequency
		want string
	}{
		{f: entities.FrequencyDaily, want: "2024-02-01"},
		{f: entities.FrequencyWeekly, want: "2024-02-07"},
		{f: entities.FrequencyBiweekly, want: "2024-02-14"},
		{f: entities.FrequencyMonthly, want: "2024-02-29"},
		{f: entities.FrequencyYearly, want: "2025-01-31"},
	}

	for _, tc := range cases {
		t.Run(string(tc.f), func(t *testing.T) {
			got, err := NextDate(from, tc.f)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNextDate_MonthEndClamping(t *testing.T) {
	got, err := NextDate(calendar.MustParse("2024-01-31"), entities.FrequencyMonthly)
	if err != nil || got.String() != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s (%v)", got, err)
	}

	got, err = NextDate(calendar.MustParse("2025-01-31"), entities.FrequencyMonthly)
	if err != nil || got.String() != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s (%v)", got, err)
	}

	got, err = NextDate(calendar.MustParse("2024-02-29"), entities.FrequencyYearly)
	if err != nil || got.String() != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s (%v)", got, err)
	}
}

func TestNextDate_StrictForwardProgress(t *testing.T) {
	for _, f := range entities.Frequencies {
		for _, d := range sampleDates() {
			next, err := NextDate(d, f)
			if err != nil {
				t.Fatalf("unexpected error for %s/%s: %v", d, f, err)
			}
			if !next.After(d) {
				t.Fatalf("expected %s step from %s to move forward, got %s", f, d, next)
			}
		}
	}
}

func TestNextDate_UnknownFrequency(t *testing.T) {
	_, err := NextDate(calendar.MustParse("2024-01-01"), entities.Frequency("fortnightly"))
	if !errors.Is(err, ErrUnknownFrequency) {
		t.Fatalf("expected ErrUnknownFrequency, got %v", err)
	}
}
