package routes

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	"hostelms_go/controllers"
	"hostelms_go/middleware"
	"hostelms_go/services/websocket"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, wsHub *websocket.Hub) {
	// Initialize controllers
	authController := &controllers.AuthController{}
	studentController := &controllers.StudentController{}
	roomController := &controllers.RoomController{}
	feeController := &controllers.FeeController{}
	dashboardController := &controllers.DashboardController{}
	reportController := &controllers.ReportController{}
	bookingController := controllers.NewBookingController(wsHub)
	wsController := controllers.NewWebSocketController(wsHub)

	// API group
	api := app.Group("/api")

	// Authentication routes (no middleware)
	auth := api.Group("/auth")
	auth.Post("/signup", authController.Signup)
	auth.Post("/login", authController.Login)

	// Protected routes (require authentication)
	protected := api.Group("/", middleware.JWTMiddleware())

	protected.Get("/profile", authController.GetProfile)
	protected.Post("/auth/logout", authController.Logout)

	// Dashboard
	protected.Get("/dashboard", dashboardController.GetDashboard)

	// Student management routes
	students := protected.Group("/students")
	students.Get("/", studentController.GetStudents)
	students.Post("/", studentController.CreateStudent)
	students.Put("/:id", studentController.UpdateStudent)
	students.Delete("/:id", studentController.DeleteStudent)

	// Room management routes
	rooms := protected.Group("/rooms")
	rooms.Get("/", roomController.GetRooms)
	rooms.Get("/availability", roomController.GetAvailability)
	rooms.Post("/", roomController.CreateRoom)
	rooms.Post("/seed", roomController.SeedRooms)
	rooms.Put("/:id", roomController.UpdateRoom)
	rooms.Delete("/:id", roomController.DeleteRoom)

	// Booking management routes
	bookings := protected.Group("/bookings")
	bookings.Get("/", bookingController.GetBookings)
	bookings.Post("/", bookingController.CreateBooking)
	bookings.Put("/:id", bookingController.UpdateBooking)
	bookings.Delete("/:id", bookingController.DeleteBooking)

	// Fee management routes
	fees := protected.Group("/fees")
	fees.Get("/", feeController.GetFees)
	fees.Post("/", feeController.CreateFee)
	fees.Put("/:id", feeController.UpdateFee)
	fees.Delete("/:id", feeController.DeleteFee)

	// Report exports
	reports := protected.Group("/reports")
	reports.Get("/fees.xlsx", reportController.ExportFees)
	reports.Get("/occupancy.xlsx", reportController.ExportOccupancy)

	// WebSocket stats
	wsGroup := protected.Group("/ws")
	wsGroup.Get("/stats", wsController.GetWebSocketStats)

	// WebSocket connection endpoint - use websocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", wsController.WebSocketHandler())
}
