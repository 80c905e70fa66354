package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(rs *services.ReportService) *ReportController {
	return &ReportController{Reports: rs}
}

// GetReport summarizes intake over a date range, defaulting to the last 7 days.
func (rc *ReportController) GetReport(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	to := now
	from := now.AddDate(0, 0, -6)

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
		to = d
	}

	report, err := rc.Reports.Summary(uid, from, to)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) EmailReport(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := rc.Reports.EmailWeeklyReport(uid); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "weekly report sent"})
}
