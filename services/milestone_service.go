package services

import (
	"time"

	"backend/config"
	"backend/models"
)

// newlyReached picks the milestones whose threshold is now met but whose
// fraction is not in the already-fired set. Order of the stored list does
// not matter; results come back in ascending fraction order.
func newlyReached(milestones []MilestoneSpec, fired map[float64]bool, progress float64) []MilestoneSpec {
	var out []MilestoneSpec
	for _, m := range sortedFractions(milestones) {
		if m.GoalFraction <= progress && !fired[m.GoalFraction] {
			out = append(out, m)
		}
	}
	return out
}

// EvaluateMilestones fires every active-plan milestone reached by the given
// progress that has not already fired for this local day. Awards are keyed
// (user, day, fraction), so re-crossing a threshold on the same day emits
// nothing; the next day the same threshold can fire again.
func EvaluateMilestones(user *models.User, day time.Time, progress float64) ([]models.MilestoneAward, error) {
	if !user.UsesDiseasePlan || progress <= 0 {
		return nil, nil
	}
	plan, err := GetDiseasePlan(user.SelectedDisease)
	if err != nil {
		// A missing or malformed plan means no milestones, never a
		// failed intake log.
		if IsPlanUnusable(err) {
			return nil, nil
		}
		return nil, err
	}

	var prior []models.MilestoneAward
	if err := config.DB.
		Where("user_id = ? AND day = ?", user.ID, day).
		Find(&prior).Error; err != nil {
		return nil, err
	}
	fired := make(map[float64]bool, len(prior))
	for _, a := range prior {
		fired[a.GoalFraction] = true
	}

	var awards []models.MilestoneAward
	for _, m := range newlyReached(plan.Milestones, fired, progress) {
		award := models.MilestoneAward{
			UserID:       user.ID,
			Day:          day,
			GoalFraction: m.GoalFraction,
			TimeLabel:    m.TimeLabel,
			Reward:       m.Reward,
		}
		if err := config.DB.Create(&award).Error; err != nil {
			// unique index makes concurrent duplicates harmless
			continue
		}
		awards = append(awards, award)
	}
	return awards, nil
}

// AchievedMilestones lists the awards recorded for the user on a local day.
func AchievedMilestones(userID uint, day time.Time) ([]models.MilestoneAward, error) {
	var awards []models.MilestoneAward
	err := config.DB.
		Where("user_id = ? AND day = ?", userID, day).
		Order("goal_fraction asc").
		Find(&awards).Error
	return awards, err
}
