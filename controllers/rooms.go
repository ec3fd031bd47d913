package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hostelms_go/middleware"
	"hostelms_go/models"
	"hostelms_go/services"
	"hostelms_go/store"
	"hostelms_go/utils"
)

type RoomController struct{}

// RoomRequest carries caller-supplied room fields.
type RoomRequest struct {
	RoomNo   string `json:"room_no" validate:"required"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity" validate:"required,gte=1"`
	Occupied int    `json:"occupied"`
}

// GetRooms returns the current owner's rooms with their available-beds count
func (rc *RoomController) GetRooms(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	availability, err := services.OwnerAvailability(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch rooms",
		})
	}

	rows, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch rooms",
		})
	}

	rooms := models.RoomsFromRows(store.ScopeToOwner(rows, ownerID))
	out := make([]utils.RoomDTO, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, utils.ToRoomDTO(room, availability))
	}

	return c.JSON(fiber.Map{
		"rooms": out,
		"total": len(out),
	})
}

// GetAvailability returns the available-beds map used when picking a room
// for a new booking.
func (rc *RoomController) GetAvailability(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	availability, err := services.OwnerAvailability(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute availability",
		})
	}

	return c.JSON(fiber.Map{
		"availability": availability,
	})
}

// CreateRoom creates a new room owned by the current user
func (rc *RoomController) CreateRoom(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.RoomNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Room number is required",
		})
	}

	if req.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Capacity must be at least 1",
		})
	}

	occupied := req.Occupied
	if occupied < 0 {
		occupied = 0
	}
	if occupied > req.Capacity {
		occupied = req.Capacity
	}

	rows, err := store.Records.Create(store.Rooms, store.Row{
		"owner_id": strconv.Itoa(ownerID),
		"room_no":  utils.SanitizeString(req.RoomNo),
		"type":     req.Type,
		"capacity": strconv.Itoa(req.Capacity),
		"occupied": strconv.Itoa(occupied),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create room",
		})
	}

	room := models.RoomFromRow(rows[len(rows)-1])
	middleware.LogActivity(c, "CREATE", "rooms", room.ID, req)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Room added",
		"room":    room,
	})
}

// UpdateRoom updates an existing room owned by the current user. Occupied is
// a derived field; it gets recomputed from bookings right after the edit.
func (rc *RoomController) UpdateRoom(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid room ID",
		})
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Capacity must be at least 1",
		})
	}

	_, err = services.UpdateOwned(store.Rooms, ownerID, id, store.Row{
		"room_no":  utils.SanitizeString(req.RoomNo),
		"type":     req.Type,
		"capacity": strconv.Itoa(req.Capacity),
	})
	if err != nil {
		return ownedErrorResponse(c, err, "room")
	}

	if err := services.RecomputeOccupancy(ownerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reconcile occupancy",
		})
	}

	row, err := services.FindOwned(store.Rooms, ownerID, id)
	if err != nil {
		return ownedErrorResponse(c, err, "room")
	}

	middleware.LogActivity(c, "UPDATE", "rooms", id, req)
	return c.JSON(fiber.Map{
		"message": "Room updated",
		"room":    models.RoomFromRow(row),
	})
}

// DeleteRoom deletes a room owned by the current user. Bookings referencing
// the room are left orphaned.
func (rc *RoomController) DeleteRoom(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid room ID",
		})
	}

	if err := services.DeleteOwned(store.Rooms, ownerID, id); err != nil {
		return ownedErrorResponse(c, err, "room")
	}

	middleware.LogActivity(c, "DELETE", "rooms", id, nil)
	return c.JSON(fiber.Map{
		"message": "Room deleted",
	})
}

// SeedRooms creates the default 100-room layout for an owner with no rooms
func (rc *RoomController) SeedRooms(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	created, err := services.SeedDefaultRooms(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to seed rooms",
		})
	}
	if !created {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Rooms already exist for this account",
		})
	}

	middleware.LogActivity(c, "CREATE", "rooms", 0, fiber.Map{"seeded": 100})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Default rooms created",
		"count":   100,
	})
}
