package services

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	start := day(2025, time.March, 3)
	if got := daysBetween(start, start); got != 0 {
		t.Fatalf("same day = %d, want 0", got)
	}
	if got := daysBetween(start, day(2025, time.March, 9)); got != 6 {
		t.Fatalf("six days later = %d, want 6", got)
	}
	// partial days still count as whole calendar days
	late := time.Date(2025, time.March, 3, 23, 59, 0, 0, time.Local)
	early := time.Date(2025, time.March, 4, 0, 1, 0, 0, time.Local)
	if got := daysBetween(late, early); got != 1 {
		t.Fatalf("across midnight = %d, want 1", got)
	}
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	// Mutates time.Local, so no t.Parallel: parallel tests only start
	// once every serial test has finished.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	// 2025-03-09 is the spring-forward day: March 8 to March 10 spans
	// 47 hours but must still count as 2 calendar days.
	a := time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)
	b := time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)
	if got := daysBetween(a, b); got != 2 {
		t.Fatalf("across spring forward = %d, want 2", got)
	}

	// fall-back day: November 1 to November 3 spans 49 hours
	a = time.Date(2025, time.November, 1, 0, 0, 0, 0, loc)
	b = time.Date(2025, time.November, 3, 0, 0, 0, 0, loc)
	if got := daysBetween(a, b); got != 2 {
		t.Fatalf("across fall back = %d, want 2", got)
	}
}

func TestAdvanceWindowWithinWeek(t *testing.T) {
	t.Parallel()
	start := day(2025, time.March, 3)
	slots := [weekLength]bool{true, false, true}

	gotStart, gotSlots, idx := advanceWindow(start, slots, day(2025, time.March, 5))
	if !gotStart.Equal(start) {
		t.Fatalf("start moved to %v inside the window", gotStart)
	}
	if gotSlots != slots {
		t.Fatalf("slots changed inside the window: %v", gotSlots)
	}
	if idx != 2 {
		t.Fatalf("idx = %d, want 2", idx)
	}
}

func TestAdvanceWindowResetsAfterSevenDays(t *testing.T) {
	t.Parallel()
	start := day(2025, time.March, 3)
	slots := [weekLength]bool{true, true, true, true, true, true, true}

	// day 7 is the first day outside the window
	gotStart, gotSlots, idx := advanceWindow(start, slots, day(2025, time.March, 10))
	if !gotStart.Equal(day(2025, time.March, 10)) {
		t.Fatalf("start = %v, want today", gotStart)
	}
	if gotSlots != ([weekLength]bool{}) {
		t.Fatalf("slots not cleared: %v", gotSlots)
	}
	if idx != 0 {
		t.Fatalf("idx = %d, want 0", idx)
	}

	// a much later visit behaves the same, no sliding
	gotStart, gotSlots, _ = advanceWindow(start, slots, day(2025, time.June, 1))
	if !gotStart.Equal(day(2025, time.June, 1)) || gotSlots != ([weekLength]bool{}) {
		t.Fatalf("stale window not reset: start=%v slots=%v", gotStart, gotSlots)
	}
}

func TestAdvanceWindowClockRollback(t *testing.T) {
	t.Parallel()
	// today before the anchor (clock rolled back) starts a fresh window
	start := day(2025, time.March, 10)
	gotStart, gotSlots, idx := advanceWindow(start, [weekLength]bool{true}, day(2025, time.March, 8))
	if !gotStart.Equal(day(2025, time.March, 8)) {
		t.Fatalf("start = %v, want today", gotStart)
	}
	if gotSlots != ([weekLength]bool{}) || idx != 0 {
		t.Fatalf("expected cleared window, got slots=%v idx=%d", gotSlots, idx)
	}
}

func TestSlotsRoundTrip(t *testing.T) {
	t.Parallel()
	slots := [weekLength]bool{true, false, true, false, false, true, false}
	if got := decodeSlots(encodeSlots(slots)); got != slots {
		t.Fatalf("round trip = %v, want %v", got, slots)
	}
	if got := decodeSlots(nil); got != ([weekLength]bool{}) {
		t.Fatalf("empty blob = %v, want zero slots", got)
	}
	if got := decodeSlots([]byte("not json")); got != ([weekLength]bool{}) {
		t.Fatalf("bad blob = %v, want zero slots", got)
	}
}

func TestMonthlyPercent(t *testing.T) {
	t.Parallel()
	// March has 31 days
	got := monthlyPercent(5, day(2025, time.March, 15))
	want := 5.0 / 31.0 * 100
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("monthly percent = %v, want %v", got, want)
	}
	if got := monthlyPercent(0, day(2025, time.February, 1)); got != 0 {
		t.Fatalf("zero completed = %v, want 0", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		when time.Time
		want int
	}{
		{day(2025, time.February, 10), 28},
		{day(2024, time.February, 10), 29},
		{day(2025, time.April, 1), 30},
		{day(2025, time.December, 31), 31},
	}
	for _, tc := range cases {
		if got := daysInMonth(tc.when); got != tc.want {
			t.Fatalf("daysInMonth(%v) = %d, want %d", tc.when, got, tc.want)
		}
	}
}
