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

type FeeController struct{}

// FeeRequest carries caller-supplied fee fields.
type FeeRequest struct {
	StudentID int     `json:"student_id" validate:"required,gt=0"`
	Month     string  `json:"month" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	PaidOn    string  `json:"paid_on"`
	Status    string  `json:"status"`
}

// GetFees returns the current owner's fee records with student labels
func (fc *FeeController) GetFees(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	feeRows, err := store.Records.ListAll(store.Fees)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch fees",
		})
	}
	studentRows, err := store.Records.ListAll(store.Students)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch fees",
		})
	}

	studentNames := models.IDLabelMap(store.ScopeToOwner(studentRows, ownerID), "id", "name")

	fees := models.FeesFromRows(store.ScopeToOwner(feeRows, ownerID))
	out := make([]utils.FeeDTO, 0, len(fees))
	for _, f := range fees {
		out = append(out, utils.ToFeeDTO(f, studentNames))
	}

	return c.JSON(fiber.Map{
		"fees":  out,
		"total": len(out),
	})
}

// CreateFee records a fee payment for a student owned by the current user
func (fc *FeeController) CreateFee(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Student and month are required, amount must not be negative",
		})
	}

	if !utils.IsValidMonth(req.Month) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Month must be YYYY-MM",
		})
	}

	if _, err := services.FindOwned(store.Students, ownerID, req.StudentID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Student not found",
		})
	}

	status := req.Status
	if !utils.IsValidFeeStatus(status) {
		status = models.FeePaid
	}

	rows, err := store.Records.Create(store.Fees, store.Row{
		"owner_id":   strconv.Itoa(ownerID),
		"student_id": strconv.Itoa(req.StudentID),
		"month":      req.Month,
		"amount":     strconv.FormatFloat(req.Amount, 'f', -1, 64),
		"paid_on":    req.PaidOn,
		"status":     status,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create fee record",
		})
	}

	fee := models.FeeFromRow(rows[len(rows)-1])
	middleware.LogActivity(c, "CREATE", "fees", fee.ID, req)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Fee recorded",
		"fee":     fee,
	})
}

// UpdateFee edits a fee record owned by the current user
func (fc *FeeController) UpdateFee(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid fee ID",
		})
	}

	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Month != "" && !utils.IsValidMonth(req.Month) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Month must be YYYY-MM",
		})
	}

	row, err := services.UpdateOwned(store.Fees, ownerID, id, feeUpdateFields(req))
	if err != nil {
		return ownedErrorResponse(c, err, "fee record")
	}

	middleware.LogActivity(c, "UPDATE", "fees", id, req)
	return c.JSON(fiber.Map{
		"message": "Fee updated",
		"fee":     models.FeeFromRow(row),
	})
}

// feeUpdateFields builds the partial-update set for a fee edit. Only supplied
// fields are written, so a status-only edit leaves month, amount and paid_on
// untouched.
func feeUpdateFields(req FeeRequest) store.Row {
	fields := store.Row{}
	if req.Month != "" {
		fields["month"] = req.Month
	}
	if req.Amount > 0 {
		fields["amount"] = strconv.FormatFloat(req.Amount, 'f', -1, 64)
	}
	if req.PaidOn != "" {
		fields["paid_on"] = req.PaidOn
	}
	if utils.IsValidFeeStatus(req.Status) {
		fields["status"] = req.Status
	}
	return fields
}

// DeleteFee deletes a fee record owned by the current user
func (fc *FeeController) DeleteFee(c *fiber.Ctx) error {
	ownerID, err := middleware.CurrentOwnerID(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid fee ID",
		})
	}

	if err := services.DeleteOwned(store.Fees, ownerID, id); err != nil {
		return ownedErrorResponse(c, err, "fee record")
	}

	middleware.LogActivity(c, "DELETE", "fees", id, nil)
	return c.JSON(fiber.Map{
		"message": "Fee deleted",
	})
}
