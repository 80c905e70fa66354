package controllers

import (
	"errors"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// GetSchedule returns today's drinking slots from the active disease plan.
func GetSchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	slots, err := services.BuildDailySchedule(uid)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active disease plan"})
			return
		}
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

	c.JSON(http.StatusOK, gin.H{"schedule": slots})
}
