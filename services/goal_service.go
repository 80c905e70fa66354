package services

import (
	"context"
	"errors"
	"log"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// DefaultDailyGoalMl is the documented fallback applied above the pure
// calculation layer when a profile is incomplete.
const DefaultDailyGoalMl = 2000

var ErrUserNotFound = errors.New("user not found")

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// Coordinates is an optional location for the weather lookup.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RecalculateGoal rebuilds the user's effective daily goal from biometrics
// and, when coordinates are given, the ambient temperature. A failed or
// missing weather lookup leaves the base goal unadjusted. Nothing is written
// once ctx is cancelled, so an abandoned recalculation commits no state.
func RecalculateGoal(ctx context.Context, weather *WeatherService, userID uint, coords *Coordinates) (*models.User, error) {
	var user models.User
	if err := config.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// An active disease plan fully overrides the biometric pipeline; keep
	// the plan goal but refresh its weight correction. A missing or
	// malformed plan is not fatal: the biometric pipeline below takes over.
	if user.UsesDiseasePlan {
		plan, err := GetDiseasePlan(user.SelectedDisease)
		switch {
		case err == nil:
			user.PlanGoalL = utils.DiseaseAdjustedGoal(plan.Name, user.WeightKg, plan.RecommendedIntakeL)
			user.DailyGoalMl = user.PlanGoalL * 1000
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := config.DB.Save(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		case IsPlanUnusable(err):
			log.Printf("active plan %q unusable, falling back to biometric goal: %v", user.SelectedDisease, err)
		default:
			return nil, err
		}
	}

	base, err := utils.CalcDailyGoal(user.WeightKg, user.Age, user.ActivityLevel)
	if err != nil {
		return nil, err
	}

	var tempC *float64
	if weather != nil && coords != nil {
		t, werr := weather.CurrentTemperature(ctx, coords.Latitude, coords.Longitude)
		if werr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("weather lookup failed, keeping base goal: %v", werr)
		} else {
			tempC = &t
		}
	}

	user.BaseGoalMl = base
	user.DailyGoalMl = utils.AdjustGoalForTemperature(base, tempC)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GoalProgress is the display payload for the home screen.
type GoalProgress struct {
	DailyGoalMl float64 `json:"daily_goal_ml"`
	ConsumedMl  float64 `json:"consumed_ml"`
	Percent     float64 `json:"percent"`
}

// GetGoalAndProgress returns the effective goal and today's ledger-derived
// total. The cached counter on the profile is refreshed as a side effect so
// it converges with the append-only log.
func GetGoalAndProgress(userID uint) (*models.User, *GoalProgress, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	now := time.Now()
	start := dayStartLocal(now)
	total, err := TotalSince(userID, start, now)
	if err != nil {
		return &user, nil, err
	}

	if user.ConsumedMl != total {
		user.ConsumedMl = total
		config.DB.Model(&user).Update("consumed_ml", total)
	}

	goal := user.DailyGoalMl
	if goal <= 0 {
		goal = DefaultDailyGoalMl
	}

	return &user, &GoalProgress{
		DailyGoalMl: goal,
		ConsumedMl:  total,
		Percent:     pctOf(total, goal),
	}, nil
}

func pctOf(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed / goal * 100
}
