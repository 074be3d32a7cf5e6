package main

import (
	"log"

	"laundry_os/database"
	"laundry_os/helper"
	"laundry_os/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // stain photo uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartOverdueScheduler()
	defer helper.StopOverdueScheduler()
	helper.StartRevenueSnapshotScheduler()
	defer helper.StopRevenueSnapshotScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
