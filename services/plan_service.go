package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// ScheduleSpec is the validated form of a plan's schedule blob.
type ScheduleSpec struct {
	Intervals          int     `json:"intervals"`
	AmountPerIntervalL float64 `json:"amountPerInterval"`
	StartTimeField     string  `json:"startTimeField,omitempty"`
	EndTimeField       string  `json:"endTimeField,omitempty"`
}

// MilestoneSpec is one fractional-progress threshold with its reward.
type MilestoneSpec struct {
	GoalFraction float64 `json:"goal"`
	TimeLabel    string  `json:"time"`
	Reward       string  `json:"reward"`
}

// PlanDetail is a DiseasePlan with its serialized fields parsed and checked.
type PlanDetail struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	RecommendedIntakeL float64         `json:"recommended_intake_l"`
	Notes              string          `json:"notes"`
	Schedule           ScheduleSpec    `json:"schedule"`
	Tips               []string        `json:"tips"`
	Milestones         []MilestoneSpec `json:"milestones"`
}

var (
	ErrPlanNotFound = errors.New("disease plan not found")

	// ErrPlanInvalid wraps every parsePlan failure so callers can tell a
	// bad stored plan apart from a storage error.
	ErrPlanInvalid = errors.New("disease plan invalid")
)

// IsPlanUnusable reports whether err means the plan itself is missing or
// malformed, as opposed to a transient storage failure. An unusable plan is
// never fatal: readers skip it and goal paths fall back to the biometric
// pipeline.
func IsPlanUnusable(err error) bool {
	return errors.Is(err, ErrPlanNotFound) || errors.Is(err, ErrPlanInvalid)
}

func parsePlan(p *models.DiseasePlan) (*PlanDetail, error) {
	d := &PlanDetail{
		Name:               p.Name,
		Description:        p.Description,
		RecommendedIntakeL: p.RecommendedIntakeL,
		Notes:              p.Notes,
	}
	if p.RecommendedIntakeL <= 0 {
		return nil, fmt.Errorf("plan %q: recommended intake must be positive: %w", p.Name, ErrPlanInvalid)
	}
	if err := json.Unmarshal(p.Schedule, &d.Schedule); err != nil {
		return nil, fmt.Errorf("plan %q: bad schedule: %v: %w", p.Name, err, ErrPlanInvalid)
	}
	if d.Schedule.Intervals <= 0 || d.Schedule.AmountPerIntervalL <= 0 {
		return nil, fmt.Errorf("plan %q: schedule intervals and amount must be positive: %w", p.Name, ErrPlanInvalid)
	}
	if err := json.Unmarshal(p.Tips, &d.Tips); err != nil {
		return nil, fmt.Errorf("plan %q: bad tips: %v: %w", p.Name, err, ErrPlanInvalid)
	}
	if err := json.Unmarshal(p.Milestones, &d.Milestones); err != nil {
		return nil, fmt.Errorf("plan %q: bad milestones: %v: %w", p.Name, err, ErrPlanInvalid)
	}
	for _, m := range d.Milestones {
		if m.GoalFraction <= 0 || m.GoalFraction > 1 {
			return nil, fmt.Errorf("plan %q: milestone fraction %v out of (0,1]: %w", p.Name, m.GoalFraction, ErrPlanInvalid)
		}
	}
	return d, nil
}

// ListDiseasePlans returns every plan whose serialized fields validate.
// A malformed plan is logged and skipped; the rest stay usable.
func ListDiseasePlans() ([]PlanDetail, error) {
	var rows []models.DiseasePlan
	if err := config.DB.Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	plans := make([]PlanDetail, 0, len(rows))
	for i := range rows {
		d, err := parsePlan(&rows[i])
		if err != nil {
			log.Printf("skipping disease plan: %v", err)
			continue
		}
		plans = append(plans, *d)
	}
	return plans, nil
}

// GetDiseasePlan fetches and validates a single plan by name.
func GetDiseasePlan(name string) (*PlanDetail, error) {
	var row models.DiseasePlan
	if err := config.DB.Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return parsePlan(&row)
}

// SelectDiseasePlan activates the named plan for the user. The effective
// goal becomes the weight-corrected plan intake, fully replacing the
// biometric/temperature pipeline while the plan is on.
func SelectDiseasePlan(userID uint, diseaseName string) (*models.User, error) {
	plan, err := GetDiseasePlan(diseaseName)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	goalL := utils.DiseaseAdjustedGoal(plan.Name, user.WeightKg, plan.RecommendedIntakeL)
	user.SelectedDisease = plan.Name
	user.UsesDiseasePlan = true
	user.PlanGoalL = goalL
	user.DailyGoalMl = goalL * 1000
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeselectDiseasePlan switches the plan off and falls back to the biometric
// pipeline by recomputing the goal, not by restoring a stale cached value.
func DeselectDiseasePlan(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.SelectedDisease = ""
	user.UsesDiseasePlan = false
	user.PlanGoalL = 0

	base, err := utils.CalcDailyGoal(user.WeightKg, user.Age, user.ActivityLevel)
	if err != nil {
		// profile incomplete: documented fallback applied at this layer
		base = DefaultDailyGoalMl
	}
	user.BaseGoalMl = base
	user.DailyGoalMl = base

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// sortedFractions returns the plan's milestone fractions in ascending order;
// stored lists are not guaranteed to be ordered.
func sortedFractions(ms []MilestoneSpec) []MilestoneSpec {
	out := make([]MilestoneSpec, len(ms))
	copy(out, ms)
	sort.Slice(out, func(i, j int) bool { return out[i].GoalFraction < out[j].GoalFraction })
	return out
}
