package utils

import "math"

// Activity level modifiers applied on top of the weight-based base intake.
var activityModifiers = map[string]float64{
	"Sedentary":       0,
	"Light Active":    0.10,
	"Moderate Active": 0.20,
	"Very Active":     0.30,
	"Extra Active":    0.40,
}

// ActivityLevels returns the accepted activity level names.
func ActivityLevels() []string {
	return []string{"Sedentary", "Light Active", "Moderate Active", "Very Active", "Extra Active"}
}

// IsActivityLevel reports whether level is one of the accepted names.
func IsActivityLevel(level string) bool {
	_, ok := activityModifiers[level]
	return ok
}

func ageModifier(age int) float64 {
	switch {
	case age >= 18 && age <= 30:
		return 0
	case age >= 31 && age <= 55:
		return 0.10
	default:
		return 0.20
	}
}

// CalcDailyGoal computes the biometric daily water goal in milliliters:
// weight*35, reduced by the age modifier and raised by the activity modifier.
// It never substitutes a default; out-of-range input is rejected so the
// caller can re-prompt.
func CalcDailyGoal(weightKg float64, age int, activityLevel string) (float64, error) {
	if weightKg <= 0 {
		return 0, Invalid("weight", "must be positive")
	}
	if age < 18 {
		return 0, Invalid("age", "must be 18 or older")
	}
	am, ok := activityModifiers[activityLevel]
	if !ok {
		return 0, Invalid("activity level", "unknown level "+activityLevel)
	}

	base := weightKg * 35
	goal := base * (1 - ageModifier(age)) * (1 + am)
	return math.Round(goal), nil
}

const (
	lowTempThresholdC  = 20.0
	highTempThresholdC = 35.0
	tempAdjustment     = 0.10
)

// AdjustGoalForTemperature nudges the base goal by 10% outside the 20-35°C
// band. A nil temperature (no weather data) leaves the goal unchanged, as do
// the band edges themselves.
func AdjustGoalForTemperature(baseGoalMl float64, tempC *float64) float64 {
	if tempC == nil {
		return baseGoalMl
	}
	switch {
	case *tempC < lowTempThresholdC:
		return math.Round(baseGoalMl * (1 - tempAdjustment))
	case *tempC > highTempThresholdC:
		return math.Round(baseGoalMl * (1 + tempAdjustment))
	default:
		return baseGoalMl
	}
}

type weightCorrection struct {
	thresholdKg float64
	perKg       float64 // signed: negative restricts intake above threshold
}

// Per-disease weight corrections: perKg liters for every kilogram above the
// threshold. Diseases not listed keep the plan's recommended intake as-is.
var diseaseCorrections = map[string]weightCorrection{
	"Dengue Fever":             {50, 0.02},
	"Chronic Kidney Disease":   {70, -0.01},
	"Heart Failure":            {80, -0.01},
	"Gastritis":                {60, 0.01},
	"Hypertension":             {60, 0.01},
	"Diabetes":                 {60, 0.01},
	"Liver Disease":            {60, 0.01},
	"Asthma":                   {60, 0.01},
	"Urinary Tract Infections": {50, 0.02},
	"Kidney Stones":            {50, 0.02},
}

// DiseaseAdjustedGoal returns the plan's recommended intake in liters,
// corrected for body weight above the disease-specific threshold. While a
// plan is active this value fully replaces the biometric/temperature goal.
func DiseaseAdjustedGoal(disease string, weightKg, recommendedIntakeL float64) float64 {
	c, ok := diseaseCorrections[disease]
	if !ok {
		return recommendedIntakeL
	}
	excess := weightKg - c.thresholdKg
	if excess <= 0 {
		return recommendedIntakeL
	}
	return recommendedIntakeL + c.perKg*excess
}
