package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.GetUserProfile(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(uid, input)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "profile updated",
		"daily_goal_ml":   user.DailyGoalMl,
		"profile_picture": user.ProfilePicURL,
	})
}

type OnboardInput struct {
	Age           int     `json:"age" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	WakeUpTime    string  `json:"wake_up_time" binding:"required"`
	Bedtime       string  `json:"bedtime" binding:"required"`
}

// Onboard captures the biometric profile and derives the first daily goal.
func Onboard(c *gin.Context) {
	uid := c.GetUint("userID")

	var input OnboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.CompleteUserOnboarding(
		uid,
		input.Age,
		input.WeightKg,
		input.Gender,
		input.ActivityLevel,
		input.WakeUpTime,
		input.Bedtime,
	)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "onboarding complete",
		"daily_goal_ml": user.DailyGoalMl,
	})
}

func DisableAccount(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DisableUser(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account disabled"})
}
