package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

const (
	defaultWakeUpTime = "08:00"
	defaultBedtime    = "22:00"
)

// BuildDailySchedule spreads the active plan's doses across the user's
// waking window. Missing or malformed stored times fall back to the
// documented 08:00/22:00 defaults here, at the caller layer; the generator
// itself stays strict.
func BuildDailySchedule(userID uint) ([]utils.ScheduleSlot, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.UsesDiseasePlan {
		return nil, ErrPlanNotFound
	}

	plan, err := GetDiseasePlan(user.SelectedDisease)
	if err != nil {
		return nil, err
	}

	wake := user.WakeUpTime
	if _, err := utils.ParseClock(wake); err != nil {
		wake = defaultWakeUpTime
	}
	bed := user.Bedtime
	if _, err := utils.ParseClock(bed); err != nil {
		bed = defaultBedtime
	}

	return utils.GenerateSchedule(wake, bed, plan.Schedule.Intervals, plan.Schedule.AmountPerIntervalL)
}
