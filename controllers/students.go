package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hostelms_go/middleware"
	"hostelms_go/models"
	"hostelms_go/services"
	"hostelms_go/store"
	"hostelms_go/utils"
)

type StudentController struct{}

// StudentRequest carries caller-supplied student fields.
type StudentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
	Course string `json:"course"`
}

// GetStudents returns the current owner's students
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	rows, err := store.Records.ListAll(store.Students)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch students",
		})
	}

	students := models.StudentsFromRows(store.ScopeToOwner(rows, ownerID))
	return c.JSON(fiber.Map{
		"students": students,
		"total":    len(students),
	})
}

// CreateStudent creates a new student owned by the current user
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	rows, err := store.Records.Create(store.Students, store.Row{
		"owner_id": strconv.Itoa(ownerID),
		"name":     utils.SanitizeString(req.Name),
		"email":    req.Email,
		"phone":    req.Phone,
		"gender":   req.Gender,
		"course":   req.Course,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create student",
		})
	}

	student := models.StudentFromRow(rows[len(rows)-1])
	middleware.LogActivity(c, "CREATE", "students", student.ID, req)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added",
		"student": student,
	})
}

// UpdateStudent updates an existing student owned by the current user
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID",
		})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	row, err := services.UpdateOwned(store.Students, ownerID, id, store.Row{
		"name":   utils.SanitizeString(req.Name),
		"email":  req.Email,
		"phone":  req.Phone,
		"gender": req.Gender,
		"course": req.Course,
	})
	if err != nil {
		return ownedErrorResponse(c, err, "student")
	}

	middleware.LogActivity(c, "UPDATE", "students", id, req)
	return c.JSON(fiber.Map{
		"message": "Student updated",
		"student": models.StudentFromRow(row),
	})
}

// DeleteStudent deletes a student owned by the current user. Bookings and
// fees that reference the student are left orphaned.
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID",
		})
	}

	if err := services.DeleteOwned(store.Students, ownerID, id); err != nil {
		return ownedErrorResponse(c, err, "student")
	}

	middleware.LogActivity(c, "DELETE", "students", id, nil)
	return c.JSON(fiber.Map{
		"message": "Student deleted",
	})
}

// ownedErrorResponse maps owned-record errors onto the shared response
// shapes: missing rows are 404, ownership violations 403.
func ownedErrorResponse(c *fiber.Ctx, err error, resource string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "The " + resource + " was not found",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "The " + resource + " belongs to another account",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update " + resource,
		})
	}
}
