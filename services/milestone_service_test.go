package services

import "testing"

var dengueMilestones = []MilestoneSpec{
	{GoalFraction: 1.0, TimeLabel: "bedtime", Reward: "Hydration Hero Badge"},
	{GoalFraction: 0.5, TimeLabel: "12:00", Reward: "50% Milestone"},
	{GoalFraction: 0.75, TimeLabel: "18:00", Reward: "75% Milestone"},
}

func TestNewlyReachedFiresInAscendingOrder(t *testing.T) {
	t.Parallel()
	got := newlyReached(dengueMilestones, map[float64]bool{}, 0.8)
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}
	if got[0].GoalFraction != 0.5 || got[1].GoalFraction != 0.75 {
		t.Fatalf("wrong order: %v then %v", got[0].GoalFraction, got[1].GoalFraction)
	}
}

func TestNewlyReachedSkipsAlreadyFired(t *testing.T) {
	t.Parallel()
	fired := map[float64]bool{0.5: true}
	got := newlyReached(dengueMilestones, fired, 0.8)
	if len(got) != 1 || got[0].GoalFraction != 0.75 {
		t.Fatalf("expected only 0.75, got %v", got)
	}
}

func TestNewlyReachedNothingBelowFirstThreshold(t *testing.T) {
	t.Parallel()
	if got := newlyReached(dengueMilestones, map[float64]bool{}, 0.4); got != nil {
		t.Fatalf("expected nothing, got %v", got)
	}
}

func TestNewlyReachedJumpFiresAllCrossedThresholds(t *testing.T) {
	t.Parallel()
	// a single large log can cross several thresholds at once
	got := newlyReached(dengueMilestones, map[float64]bool{}, 1.2)
	if len(got) != 3 {
		t.Fatalf("got %d milestones, want 3", len(got))
	}
	if got[2].Reward != "Hydration Hero Badge" {
		t.Fatalf("final reward = %q", got[2].Reward)
	}
}

func TestNewlyReachedExactThresholdCounts(t *testing.T) {
	t.Parallel()
	got := newlyReached(dengueMilestones, map[float64]bool{}, 0.5)
	if len(got) != 1 || got[0].GoalFraction != 0.5 {
		t.Fatalf("expected 0.5 to fire at exact progress, got %v", got)
	}
}
