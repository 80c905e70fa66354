package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type LogIntakeInput struct {
	AmountMl float64 `json:"amount_ml" binding:"required"`
	Beverage string  `json:"beverage"`
}

func LogIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	var input LogIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.LogIntake(uid, input.AmountMl, input.Beverage)
	if err != nil {
		if utils.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetIntakeHistory returns the raw ledger for a date range, defaulting to
// today. Dates are YYYY-MM-DD in server-local time.
func GetIntakeHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date. Use YYYY-MM-DD"})
			return
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date. Use YYYY-MM-DD"})
			return
		}
		to = d.AddDate(0, 0, 1)
	}

	logs, err := services.ListIntakeLogs(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total, err := services.TotalSince(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":  logs,
		"total_ml": total,
	})
}

func ResetIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.ResetRunningTotal(uid); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "running total reset"})
}

func GetAchievedMilestones(c *gin.Context) {
	uid := c.GetUint("userID")

	awards, err := services.AchievedMilestones(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": awards})
}
