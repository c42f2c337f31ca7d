package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestScheduleCovers(t *testing.T) {
	start, end := day("2024-02-01"), day("2024-02-29")
	s := Schedule{DaysOfWeek: Weekdays{1, 3, 5}, EffectiveDateStart: &start, EffectiveDateEnd: &end}

	cases := []struct {
		date string
		want bool
	}{
		{"2024-02-05", true},  // Monday inside the window
		{"2024-02-06", false}, // Tuesday
		{"2024-03-15", false}, // Friday after the window
		{"2024-01-31", false}, // Wednesday before the window
		{"2024-02-01", false}, // Thursday on the start bound
		{"2024-02-02", true},  // Friday
		{"2024-02-28", true},  // Wednesday
	}
	for _, tc := range cases {
		if got := s.Covers(day(tc.date)); got != tc.want {
			t.Fatalf("Covers(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestScheduleCoversQuarterWindow(t *testing.T) {
	start, end := day("2024-01-01"), day("2024-03-01")
	s := Schedule{DaysOfWeek: Weekdays{1, 3, 5}, EffectiveDateStart: &start, EffectiveDateEnd: &end}

	if !s.Covers(day("2024-02-05")) {
		t.Fatalf("expected Monday 2024-02-05 to be covered")
	}
	if s.Covers(day("2024-03-15")) {
		t.Fatalf("expected 2024-03-15 after the window to be rejected")
	}
	if s.Covers(day("2024-02-06")) {
		t.Fatalf("expected Tuesday 2024-02-06 to be rejected")
	}
}

func TestScheduleCoversInclusiveBounds(t *testing.T) {
	start := day("2024-02-05")
	end := day("2024-02-05")
	s := Schedule{DaysOfWeek: EveryDay(), EffectiveDateStart: &start, EffectiveDateEnd: &end}

	// time of day must not matter
	if !s.Covers(start.Add(23 * time.Hour)) {
		t.Fatalf("expected end bound to be inclusive")
	}
	if s.Covers(day("2024-02-06")) || s.Covers(day("2024-02-04")) {
		t.Fatalf("expected dates outside the single day window to be rejected")
	}
}

func TestScheduleCoversOpenEnded(t *testing.T) {
	s := Schedule{DaysOfWeek: Weekdays{0}}
	if !s.Covers(day("2030-06-02")) {
		t.Fatalf("expected open ended Sunday schedule to cover 2030-06-02")
	}
	if (Schedule{}).Covers(day("2030-06-02")) {
		t.Fatalf("expected empty day set to cover nothing")
	}
}

func TestWeekdaysNormalize(t *testing.T) {
	got := Weekdays{6, 1, 6, 0}.Normalize()
	want := Weekdays{0, 1, 6}
	if len(got) != len(want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Normalize = %v, want %v", got, want)
		}
	}
	if (Weekdays{}).Valid() || (Weekdays{1, 9}).Valid() || !(Weekdays{0, 6}).Valid() {
		t.Fatalf("unexpected Valid result")
	}
}
