package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"hostelms_go/cache"
	"hostelms_go/config"
	"hostelms_go/middleware"
	"hostelms_go/routes"
	"hostelms_go/services"
	"hostelms_go/services/websocket"
	"hostelms_go/store"
)

func init() {
	config.LoadConfig()
	setupLogging()
	store.Connect()
	cache.Connect()
}

func main() {
	// Create WebSocket hub first
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	// Custom middleware
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.LogActivityMiddleware())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "Hostel MS API",
			"version": "1.0.0",
		})
	})

	// API routes
	routes.SetupRoutes(app, wsHub)

	startScheduledJobs(wsHub)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Route not found",
			"path":   c.Path(),
			"method": c.Method(),
		})
	})

	port := "localhost:" + config.AppConfig.Port
	log.Printf("Server starting on port %s", config.AppConfig.Port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)

	if err := app.Listen(port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// startScheduledJobs wires the occupancy sweep and the optional S3 backup
// onto a cron scheduler. Connected dashboards get a broadcast after each
// sweep so they refresh their room counts.
func startScheduledJobs(wsHub *websocket.Hub) {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.SweepCron, func() {
		services.SweepAllOwners()
		wsHub.Broadcast(websocket.Event{Type: "reconciled", Resource: "rooms"})
	}); err != nil {
		logrus.WithError(err).Error("Invalid SWEEP_CRON expression; occupancy sweep disabled")
	}

	if config.AppConfig.EnableBackups {
		backupService := services.NewBackupService()
		if _, err := c.AddFunc(config.AppConfig.BackupCron, func() {
			if err := backupService.BackupDataDir(); err != nil {
				logrus.WithError(err).Error("Scheduled backup failed")
			}
		}); err != nil {
			logrus.WithError(err).Error("Invalid BACKUP_CRON expression; backups disabled")
		}
	}

	c.Start()
}

// setupLogging configures the logging system from the loaded config
func setupLogging() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(config.AppConfig.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	// Log to stdout in development, to file otherwise
	if config.AppConfig.AppEnv == "development" {
		logrus.SetOutput(os.Stdout)
		return
	}

	if err := os.MkdirAll(filepath.Dir(config.AppConfig.LogFile), 0755); err != nil {
		log.Printf("Warning: Could not create logs directory: %v", err)
	}
	file, err := os.OpenFile(config.AppConfig.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		logrus.SetOutput(file)
	}
}

// customErrorHandler handles application errors
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	logrus.WithFields(logrus.Fields{
		"error":  err.Error(),
		"path":   c.Path(),
		"method": c.Method(),
		"ip":     c.IP(),
		"status": code,
	}).Error("Request error")

	return c.Status(code).JSON(fiber.Map{
		"error":  message,
		"code":   code,
		"path":   c.Path(),
		"method": c.Method(),
	})
}
