package main

import (
	"crev/config"
	authControllers "crev/controllers/auth"
	"crev/database"
	authRoutes "crev/routers/authRoutes"
	courseRoutes "crev/routers/courseRoutes"
	reviewRoutes "crev/routers/reviewRoutes"
	"crev/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	authControllers.InitGoogle()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)

	// Periodic aggregate refresh
	utils.InitializeSummaryScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
