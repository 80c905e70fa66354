package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Push *services.PushService
}

func NewDevController(p *services.PushService) *DevController {
	return &DevController{Push: p}
}

type pushReq struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

func (d *DevController) PushTest(c *gin.Context) {
	if d.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push delivery not configured"})
		return
	}
	uid := c.GetUint("userID")

	var req pushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		req.Title = "Test alert 🔔"
	}
	if req.Body == "" {
		req.Body = services.RandomReminderMessage()
	}
	if req.Data == nil {
		req.Data = map[string]string{"type": "reminder"}
	}

	d.Push.PushToUser(uid, req.Title, req.Body, req.Data)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SeedPlans loads or refreshes the built-in disease plan catalog.
func SeedPlans(c *gin.Context) {
	if err := services.SeedDiseasePlans(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "disease plans seeded"})
}
