package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hostelms_go/middleware"
	"hostelms_go/models"
	"hostelms_go/services"
	ws "hostelms_go/services/websocket"
	"hostelms_go/store"
	"hostelms_go/utils"
)

type BookingController struct {
	hub *ws.Hub
}

func NewBookingController(hub *ws.Hub) *BookingController {
	return &BookingController{hub: hub}
}

// GetBookings returns the current owner's bookings with student and room
// labels resolved for display.
func (bc *BookingController) GetBookings(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	bookingRows, err := store.Records.ListAll(store.Bookings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	studentRows, err := store.Records.ListAll(store.Students)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	roomRows, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	studentNames := models.IDLabelMap(store.ScopeToOwner(studentRows, ownerID), "id", "name")
	roomNos := models.IDLabelMap(store.ScopeToOwner(roomRows, ownerID), "id", "room_no")

	bookings := models.BookingsFromRows(store.ScopeToOwner(bookingRows, ownerID))
	out := make([]utils.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, utils.ToBookingDTO(b, studentNames, roomNos))
	}

	return c.JSON(fiber.Map{
		"bookings": out,
		"total":    len(out),
	})
}

// CreateBooking creates a booking, gated on room capacity for active status
func (bc *BookingController) CreateBooking(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	var req services.BookingInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Student, room and both dates are required",
		})
	}

	booking, err := services.CreateBooking(ownerID, req)
	if err != nil {
		return bookingErrorResponse(c, err)
	}

	middleware.LogActivity(c, "CREATE", "bookings", booking.ID, req)
	bc.notify("created", "bookings", ownerID, booking.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created",
		"booking": booking,
	})
}

// UpdateBooking edits a booking owned by the current user. Status moves are
// free-form; invalid values are coerced to active.
func (bc *BookingController) UpdateBooking(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var req services.BookingInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	booking, err := services.UpdateBooking(ownerID, id, req)
	if err != nil {
		return bookingErrorResponse(c, err)
	}

	middleware.LogActivity(c, "UPDATE", "bookings", id, req)
	bc.notify("updated", "bookings", ownerID, id)

	return c.JSON(fiber.Map{
		"message": "Booking updated",
		"booking": booking,
	})
}

// DeleteBooking removes a booking owned by the current user
func (bc *BookingController) DeleteBooking(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	if err := services.DeleteBooking(ownerID, id); err != nil {
		return bookingErrorResponse(c, err)
	}

	middleware.LogActivity(c, "DELETE", "bookings", id, nil)
	bc.notify("deleted", "bookings", ownerID, id)

	return c.JSON(fiber.Map{
		"message": "Booking deleted",
	})
}

func (bc *BookingController) notify(eventType, resource string, ownerID, recordID int) {
	if bc.hub == nil {
		return
	}
	bc.hub.BroadcastToOwner(ownerID, ws.Event{
		Type:     eventType,
		Resource: resource,
		OwnerID:  ownerID,
		RecordID: recordID,
	})
}

func bookingErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRoomFull):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Room has no available beds",
		})
	case errors.Is(err, services.ErrEndBeforeStart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "End date must not be before start date",
		})
	case errors.Is(err, services.ErrStudentNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Student not found",
		})
	case errors.Is(err, services.ErrRoomNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Room not found",
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "The booking belongs to another account",
		})
	case errors.Is(err, services.ErrBadDateFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dates must be YYYY-MM-DD",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process booking",
		})
	}
}
