package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// LogResult summarizes one append: the converged running total plus any
// milestones that fired because of it.
type LogResult struct {
	Entry      *models.IntakeLog       `json:"entry"`
	TotalMl    float64                 `json:"total_ml"`
	Percent    float64                 `json:"percent"`
	Milestones []models.MilestoneAward `json:"milestones"`
}

// LogIntake appends one drink to the ledger and re-derives everything that
// hangs off today's total: the cached counter, milestone awards and the
// weekly completion slot. The append itself is the only source of truth;
// the rest converges from it.
func LogIntake(userID uint, amountMl float64, beverage string) (*LogResult, error) {
	if amountMl <= 0 {
		return nil, utils.Invalid("amount", "must be positive")
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entry := models.IntakeLog{
		UserID:      userID,
		AmountMl:    amountMl,
		Beverage:    beverage,
		DiseasePlan: user.SelectedDisease,
		Timestamp:   time.Now(),
	}
	if !user.UsesDiseasePlan {
		entry.DiseasePlan = ""
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	start := dayStartLocal(now)
	total, err := TotalSince(userID, start, now)
	if err != nil {
		return nil, err
	}

	user.ConsumedMl = total
	config.DB.Model(&user).Update("consumed_ml", total)

	goal := user.DailyGoalMl
	if goal <= 0 {
		goal = DefaultDailyGoalMl
	}
	progress := total / goal

	awards, err := EvaluateMilestones(&user, start, progress)
	if err != nil {
		return nil, err
	}
	for _, a := range awards {
		EmitAlert(userID, "milestone", a.Reward)
	}

	if err := UpdateWeeklyProgress(userID, start, progress >= 1); err != nil {
		return nil, err
	}

	return &LogResult{
		Entry:      &entry,
		TotalMl:    total,
		Percent:    progress * 100,
		Milestones: awards,
	}, nil
}

// TotalSince sums ledger entries for the user in [from, to].
func TotalSince(userID uint, from, to time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.IntakeLog{}).
		Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, from, to).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return total, err
}

// ListIntakeLogs returns the user's entries in a time range, oldest first.
func ListIntakeLogs(userID uint, from, to time.Time) ([]models.IntakeLog, error) {
	var logs []models.IntakeLog
	err := config.DB.
		Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, from, to).
		Order("timestamp asc").
		Find(&logs).Error
	return logs, err
}

// ResetRunningTotal zeroes the profile's cached counter. The append-only
// ledger is untouched; range queries still see every entry.
func ResetRunningTotal(userID uint) error {
	res := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("consumed_ml", 0)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
