package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetWeeklyOverview(c *gin.Context) {
	uid := c.GetUint("userID")

	overview, err := services.GetWeeklyOverview(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}
