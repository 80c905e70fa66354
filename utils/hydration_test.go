package utils

import (
	"testing"
)

func TestCalcDailyGoal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		weightKg float64
		age      int
		activity string
		want     float64
	}{
		{"young sedentary", 70, 25, "Sedentary", 2450},
		{"middle aged sedentary", 70, 40, "Sedentary", 2205},
		{"older very active", 70, 60, "Very Active", 2548},
		{"young moderate", 70, 25, "Moderate Active", 2940},
		{"light weight extra active", 50, 30, "Extra Active", 2450},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := CalcDailyGoal(tc.weightKg, tc.age, tc.activity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("goal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalcDailyGoalRejectsBadInput(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		weightKg float64
		age      int
		activity string
	}{
		{"zero weight", 0, 25, "Sedentary"},
		{"negative weight", -10, 25, "Sedentary"},
		{"underage", 70, 17, "Sedentary"},
		{"unknown activity", 70, 25, "Couch Potato"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := CalcDailyGoal(tc.weightKg, tc.age, tc.activity)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestIsActivityLevel(t *testing.T) {
	t.Parallel()
	for _, level := range ActivityLevels() {
		if !IsActivityLevel(level) {
			t.Fatalf("accepted level %q not recognized", level)
		}
	}
	for _, bad := range []string{"", "sedentary", "Couch Potato"} {
		if IsActivityLevel(bad) {
			t.Fatalf("%q should not be a valid level", bad)
		}
	}
}

func TestAdjustGoalForTemperature(t *testing.T) {
	t.Parallel()
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		name string
		temp *float64
		want float64
	}{
		{"no weather data", nil, 2450},
		{"cold", f(10), 2205},
		{"hot", f(38), 2695},
		{"low boundary inside band", f(20), 2450},
		{"high boundary inside band", f(35), 2450},
		{"mild", f(27), 2450},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := AdjustGoalForTemperature(2450, tc.temp); got != tc.want {
				t.Fatalf("adjusted goal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDiseaseAdjustedGoal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		disease  string
		weightKg float64
		intakeL  float64
		want     float64
	}{
		{"dengue above threshold", "Dengue Fever", 70, 2.5, 2.9},
		{"dengue at threshold", "Dengue Fever", 50, 2.5, 2.5},
		{"ckd restricts above threshold", "Chronic Kidney Disease", 80, 1.5, 1.4},
		{"heart failure below threshold", "Heart Failure", 75, 1.5, 1.5},
		{"unknown disease passes through", "Common Cold", 90, 2.0, 2.0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DiseaseAdjustedGoal(tc.disease, tc.weightKg, tc.intakeL)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("goal = %v, want %v", got, tc.want)
			}
		})
	}
}
