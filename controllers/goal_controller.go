package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Weather *services.WeatherService
}

func NewGoalController(w *services.WeatherService) *GoalController {
	return &GoalController{Weather: w}
}

func (gc *GoalController) GetGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	user, progress, err := services.GetGoalAndProgress(uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_goal_ml":     user.DailyGoalMl,
		"consumed_ml":       progress.ConsumedMl,
		"percent":           progress.Percent,
		"uses_disease_plan": user.UsesDiseasePlan,
		"selected_disease":  user.SelectedDisease,
	})
}

// Recalculate rebuilds the goal from the current profile. Pass lat/lon query
// params to fold today's outdoor temperature in; without them the biometric
// goal stands as-is.
func (gc *GoalController) Recalculate(c *gin.Context) {
	uid := c.GetUint("userID")

	var coords *services.Coordinates
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lon"})
			return
		}
		coords = &services.Coordinates{Latitude: lat, Longitude: lon}
	}

	user, err := services.RecalculateGoal(c.Request.Context(), gc.Weather, uid, coords)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_goal_ml": user.DailyGoalMl,
		"base_goal_ml":  user.BaseGoalMl,
	})
}
