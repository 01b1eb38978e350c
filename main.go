package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"learnlink/config"
	"learnlink/database"
	adminRoutes "learnlink/routers/adminRoutes"
	authRoutes "learnlink/routers/authRoutes"
	bookingRoutes "learnlink/routers/bookingRoutes"
	contactRoutes "learnlink/routers/contactRoutes"
	courseRoutes "learnlink/routers/courseRoutes"
	"learnlink/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

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
	bookingRoutes.SetupBookingRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	sweeper := utils.InitializeSweepScheduler()

	// Shut down cleanly on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		sweeper.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	database.Close()
}
