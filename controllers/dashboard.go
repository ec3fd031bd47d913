package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hostelms_go/middleware"
	"hostelms_go/models"
	"hostelms_go/store"
)

type DashboardController struct{}

// GetDashboard returns per-owner headline counts and a quick peek at the
// most recent students and rooms.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	studentRows, err := store.Records.ListAll(store.Students)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	roomRows, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	bookingRows, err := store.Records.ListAll(store.Bookings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	students := models.StudentsFromRows(store.ScopeToOwner(studentRows, ownerID))
	rooms := models.RoomsFromRows(store.ScopeToOwner(roomRows, ownerID))
	bookings := models.BookingsFromRows(store.ScopeToOwner(bookingRows, ownerID))

	activeBookings := 0
	for _, b := range bookings {
		if models.IsActiveStatus(b.Status) {
			activeBookings++
		}
	}

	return c.JSON(fiber.Map{
		"totals": fiber.Map{
			"students":        len(students),
			"rooms":           len(rooms),
			"active_bookings": activeBookings,
		},
		"recent": fiber.Map{
			"students": tailStudents(students, 5),
			"rooms":    tailRooms(rooms, 5),
		},
	})
}

func tailStudents(s []models.Student, n int) []models.Student {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func tailRooms(r []models.Room, n int) []models.Room {
	if len(r) <= n {
		return r
	}
	return r[len(r)-n:]
}
