package main

import (
	"log"

	"ticket_server/config"
	"ticket_server/database"
	"ticket_server/helper"
	"ticket_server/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	if err := helper.EnsureKeys(); err != nil {
		log.Fatalf("failed to provision signing keys: %v", err)
	}
	if err := helper.Settings.Load(database.DB); err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	helper.StartWriteOffScheduler()
	defer helper.StopWriteOffScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8000")))
}
