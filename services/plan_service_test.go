package services

import (
	"errors"
	"fmt"
	"testing"

	"backend/models"

	"gorm.io/datatypes"
)

func validPlanRow() *models.DiseasePlan {
	return &models.DiseasePlan{
		Name:               "Dengue Fever",
		Description:        "Hydration is critical.",
		RecommendedIntakeL: 2.5,
		Schedule:           datatypes.JSON(`{"intervals":10,"amountPerInterval":0.25}`),
		Tips:               datatypes.JSON(`["Sip fluids."]`),
		Milestones:         datatypes.JSON(`[{"goal":0.5,"time":"12:00","reward":"50% Milestone"},{"goal":1.0,"time":"bedtime","reward":"Hero Badge"}]`),
	}
}

func TestParsePlanValid(t *testing.T) {
	t.Parallel()
	d, err := parsePlan(validPlanRow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Schedule.Intervals != 10 || d.Schedule.AmountPerIntervalL != 0.25 {
		t.Fatalf("schedule = %+v", d.Schedule)
	}
	if len(d.Tips) != 1 || len(d.Milestones) != 2 {
		t.Fatalf("tips=%d milestones=%d", len(d.Tips), len(d.Milestones))
	}
	if d.Milestones[1].Reward != "Hero Badge" {
		t.Fatalf("reward = %q", d.Milestones[1].Reward)
	}
}

func TestParsePlanRejectsMalformed(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*models.DiseasePlan)
	}{
		{"bad schedule json", func(p *models.DiseasePlan) { p.Schedule = datatypes.JSON(`{`) }},
		{"zero intervals", func(p *models.DiseasePlan) { p.Schedule = datatypes.JSON(`{"intervals":0,"amountPerInterval":0.25}`) }},
		{"negative amount", func(p *models.DiseasePlan) { p.Schedule = datatypes.JSON(`{"intervals":8,"amountPerInterval":-1}`) }},
		{"bad tips json", func(p *models.DiseasePlan) { p.Tips = datatypes.JSON(`"not a list`) }},
		{"bad milestones json", func(p *models.DiseasePlan) { p.Milestones = datatypes.JSON(`{}`) }},
		{"fraction above one", func(p *models.DiseasePlan) { p.Milestones = datatypes.JSON(`[{"goal":1.5,"time":"12:00","reward":"x"}]`) }},
		{"zero fraction", func(p *models.DiseasePlan) { p.Milestones = datatypes.JSON(`[{"goal":0,"time":"12:00","reward":"x"}]`) }},
		{"nonpositive intake", func(p *models.DiseasePlan) { p.RecommendedIntakeL = 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			row := validPlanRow()
			tc.mutate(row)
			_, err := parsePlan(row)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsPlanUnusable(err) {
				t.Fatalf("parse failure not marked unusable: %v", err)
			}
		})
	}
}

func TestIsPlanUnusable(t *testing.T) {
	t.Parallel()
	if !IsPlanUnusable(ErrPlanNotFound) {
		t.Fatal("missing plan must count as unusable")
	}
	if !IsPlanUnusable(fmt.Errorf("loading plan: %w", ErrPlanInvalid)) {
		t.Fatal("wrapped invalid plan must count as unusable")
	}
	// storage failures stay fatal so callers do not mask outages
	if IsPlanUnusable(errors.New("connection refused")) {
		t.Fatal("transient storage error must not count as unusable")
	}
	if IsPlanUnusable(nil) {
		t.Fatal("nil error is not a plan failure")
	}
}

func TestSortedFractionsDoesNotMutate(t *testing.T) {
	t.Parallel()
	in := []MilestoneSpec{{GoalFraction: 1.0}, {GoalFraction: 0.25}, {GoalFraction: 0.5}}
	out := sortedFractions(in)
	if out[0].GoalFraction != 0.25 || out[2].GoalFraction != 1.0 {
		t.Fatalf("not ascending: %v", out)
	}
	if in[0].GoalFraction != 1.0 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestSeedCatalogParses(t *testing.T) {
	t.Parallel()
	for _, p := range defaultPlans {
		row := &models.DiseasePlan{
			Name:               p.name,
			Description:        p.description,
			RecommendedIntakeL: p.intakeL,
			Notes:              p.notes,
			Schedule:           datatypes.JSON(p.schedule),
			Tips:               datatypes.JSON(p.tips),
			Milestones:         datatypes.JSON(p.milestones),
		}
		d, err := parsePlan(row)
		if err != nil {
			t.Fatalf("seed plan %q does not validate: %v", p.name, err)
		}
		if len(d.Milestones) == 0 || len(d.Tips) == 0 {
			t.Fatalf("seed plan %q missing tips or milestones", p.name)
		}
	}
}
