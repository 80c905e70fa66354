package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Weather *services.WeatherService
	Reports *services.ReportService
	Push    *services.PushService
	Hub     *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	goalCtrl := controllers.NewGoalController(d.Weather)
	reportCtrl := controllers.NewReportController(d.Reports)
	deviceCtrl := controllers.NewDeviceController(d.Push)
	realtimeCtrl := controllers.NewRealtimeController(d.Hub)
	devCtrl := controllers.NewDevController(d.Push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboard", controllers.Onboard)
		user.DELETE("/account", controllers.DisableAccount)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	hydration := r.Group("/hydration")
	hydration.Use(middlewares.AuthMiddleware())
	{
		hydration.GET("/goal", goalCtrl.GetGoal)
		hydration.POST("/goal/recalculate", goalCtrl.Recalculate)

		hydration.POST("/intake", controllers.LogIntake)
		hydration.GET("/intake", controllers.GetIntakeHistory)
		hydration.POST("/intake/reset", controllers.ResetIntake)

		hydration.GET("/milestones", controllers.GetAchievedMilestones)
		hydration.GET("/schedule", controllers.GetSchedule)
		hydration.GET("/weekly", controllers.GetWeeklyOverview)

		hydration.GET("/report", reportCtrl.GetReport)
		hydration.POST("/report/email", reportCtrl.EmailReport)

		hydration.GET("/beverages", controllers.GetBeverages)
		hydration.GET("/beverages/recent", controllers.GetRecentBeverages)
		hydration.POST("/beverages", controllers.AddBeverage)
	}

	plans := r.Group("/plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.GET("", controllers.ListPlans)
		plans.GET("/:name", controllers.GetPlan)
		plans.POST("/select", controllers.SelectPlan)
		plans.POST("/deselect", controllers.DeselectPlan)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.GetAlerts)
		alerts.GET("/reminder-message", controllers.GetReminderMessage)
		alerts.GET("/ws", realtimeCtrl.EventsWS)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", deviceCtrl.Register)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/push-test", devCtrl.PushTest)
		dev.POST("/seed-plans", controllers.SeedPlans)
	}

	return r
}
