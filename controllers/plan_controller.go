package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListPlans(c *gin.Context) {
	plans, err := services.ListDiseasePlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func GetPlan(c *gin.Context) {
	name := c.Param("name")

	plan, err := services.GetDiseasePlan(name)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "disease plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

type SelectPlanInput struct {
	Disease string `json:"disease" binding:"required"`
}

func SelectPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	var input SelectPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.SelectDiseasePlan(uid, input.Disease)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "disease plan not found"})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "plan selected",
		"disease":       user.SelectedDisease,
		"plan_goal_l":   user.PlanGoalL,
		"daily_goal_ml": user.DailyGoalMl,
	})
}

func DeselectPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.DeselectDiseasePlan(uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "plan deselected",
		"daily_goal_ml": user.DailyGoalMl,
	})
}
