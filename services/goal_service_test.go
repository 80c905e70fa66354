package services

import (
	"testing"
	"time"
)

func TestPctOf(t *testing.T) {
	t.Parallel()
	if got := pctOf(1000, 2000); got != 50 {
		t.Fatalf("pctOf = %v, want 50", got)
	}
	if got := pctOf(2500, 2000); got != 125 {
		t.Fatalf("overshoot = %v, want 125 (unclamped)", got)
	}
	if got := pctOf(500, 0); got != 0 {
		t.Fatalf("zero goal = %v, want 0", got)
	}
}

func TestDayStartLocal(t *testing.T) {
	t.Parallel()
	in := time.Date(2025, time.July, 14, 23, 45, 12, 999, time.Local)
	got := dayStartLocal(in)
	want := time.Date(2025, time.July, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("dayStartLocal = %v, want %v", got, want)
	}
	if !dayStartLocal(got).Equal(got) {
		t.Fatal("dayStartLocal is not idempotent")
	}
}
