package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	Username       string   `json:"username"`
	PhoneNumber    string   `json:"phone_number"`
	Age            *int     `json:"age"`
	WeightKg       *float64 `json:"weight_kg"`
	Gender         string   `json:"gender"`
	ActivityLevel  string   `json:"activity_level"`
	WakeUpTime     string   `json:"wake_up_time"`
	Bedtime        string   `json:"bedtime"`
	ProfilePicture string   `json:"profile_picture"` // base64 data URL
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"username":          user.Username,
		"phone_number":      user.PhoneNumber,
		"profile_picture":   user.ProfilePicURL,
		"age":               user.Age,
		"weight_kg":         user.WeightKg,
		"gender":            user.Gender,
		"activity_level":    user.ActivityLevel,
		"wake_up_time":      user.WakeUpTime,
		"bedtime":           user.Bedtime,
		"daily_goal_ml":     user.DailyGoalMl,
		"consumed_ml":       user.ConsumedMl,
		"selected_disease":  user.SelectedDisease,
		"uses_disease_plan": user.UsesDiseasePlan,
		"onboarded":         user.Onboarded,
	}, nil
}

// UpdateUserProfile applies partial profile edits. Wake and bed times must
// parse as 24-hour clocks; biometric changes do not silently recompute the
// goal, the client calls the recalculation endpoint afterwards.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.User, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Age != nil {
		if *input.Age < 18 {
			return nil, utils.Invalid("age", "must be 18 or older")
		}
		user.Age = *input.Age
	}
	if input.WeightKg != nil {
		if *input.WeightKg <= 0 {
			return nil, utils.Invalid("weight", "must be positive")
		}
		user.WeightKg = *input.WeightKg
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.ActivityLevel != "" {
		if !utils.IsActivityLevel(input.ActivityLevel) {
			return nil, utils.Invalid("activity level", "unknown level "+input.ActivityLevel)
		}
		user.ActivityLevel = input.ActivityLevel
	}
	if input.WakeUpTime != "" {
		if _, err := utils.ParseClock(input.WakeUpTime); err != nil {
			return nil, err
		}
		user.WakeUpTime = input.WakeUpTime
	}
	if input.Bedtime != "" {
		if _, err := utils.ParseClock(input.Bedtime); err != nil {
			return nil, err
		}
		user.Bedtime = input.Bedtime
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicURL = url
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CompleteUserOnboarding stores the intro-flow answers and derives the first
// daily goal from them. Invalid biometrics surface as ValidationError so the
// client re-prompts instead of getting a silently defaulted goal.
func CompleteUserOnboarding(userID uint, age int, weightKg float64, gender, activityLevel, wakeUpTime, bedtime string) (*models.User, error) {
	var user models.User
	if err := config.DB.
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	base, err := utils.CalcDailyGoal(weightKg, age, activityLevel)
	if err != nil {
		return nil, err
	}
	if _, err := utils.ParseClock(wakeUpTime); err != nil {
		return nil, err
	}
	if _, err := utils.ParseClock(bedtime); err != nil {
		return nil, err
	}

	user.Age = age
	user.WeightKg = weightKg
	user.Gender = gender
	user.ActivityLevel = activityLevel
	user.WakeUpTime = wakeUpTime
	user.Bedtime = bedtime
	user.BaseGoalMl = base
	user.DailyGoalMl = base
	user.Onboarded = true

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DisableUser soft-disables the account. Profiles and their intake history
// are never hard-deleted.
func DisableUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
