package services

import (
	"strings"
	"testing"
)

func TestDiseaseInsight(t *testing.T) {
	t.Parallel()
	got := diseaseInsight("Dengue Fever", 2.1, 84)
	if !strings.Contains(got, "2.10 L/day") || !strings.Contains(got, "84%") {
		t.Fatalf("insight missing figures: %q", got)
	}
	if !strings.Contains(got, "critical for recovery") {
		t.Fatalf("insight missing disease tail: %q", got)
	}

	fallback := diseaseInsight("", 1.5, 60)
	if !strings.Contains(fallback, "Follow your hydration plan") {
		t.Fatalf("unexpected fallback: %q", fallback)
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()
	if got := round2(1234.5678); got != 1234.57 {
		t.Fatalf("round2 = %v, want 1234.57", got)
	}
	if got := round2(99.999); got != 100 {
		t.Fatalf("round2 = %v, want 100", got)
	}
}
