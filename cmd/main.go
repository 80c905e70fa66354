package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		// Push is optional in local dev; alerts still land in DB and websocket.
		log.Printf("push service unavailable: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	if err := services.SeedDiseasePlans(); err != nil {
		log.Printf("seeding disease plans: %v", err)
	}

	r := routes.SetupRouter(routes.Deps{
		Weather: services.NewWeatherService(),
		Reports: services.NewReportService(config.DB),
		Push:    push,
		Hub:     hub,
	})
	r.Run(":8080")
}
