package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AddBeverageInput struct {
	Name           string  `json:"name" binding:"required"`
	Emoji          string  `json:"emoji"`
	HydrationLevel float64 `json:"hydration_level"`
}

func AddBeverage(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AddBeverageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bev, err := services.AddBeverage(uid, input.Name, input.Emoji, input.HydrationLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bev)
}

// GetRecentBeverages returns the three quick-pick presets shown on the
// logging screen.
func GetRecentBeverages(c *gin.Context) {
	uid := c.GetUint("userID")

	bevs, err := services.RecentBeverages(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"beverages": bevs})
}

func GetBeverages(c *gin.Context) {
	uid := c.GetUint("userID")

	bevs, err := services.ListBeverages(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"beverages": bevs})
}
