package controllers

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"hostelms_go/middleware"
	"hostelms_go/models"
	"hostelms_go/services"
	"hostelms_go/store"
)

type ReportController struct{}

// ExportFees streams the owner's fee records as an xlsx workbook with a
// per-month total sheet.
func (rc *ReportController) ExportFees(c *fiber.Ctx) error {
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

	fees := models.FeesFromRows(store.ScopeToOwner(feeRows, ownerID))
	studentNames := models.IDLabelMap(store.ScopeToOwner(studentRows, ownerID), "id", "name")

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Fees"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Student", "Month", "Amount", "Paid On", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	monthTotals := make(map[string]float64)
	for i, fee := range fees {
		rowNum := i + 2
		name := studentNames[fee.StudentID]
		if name == "" {
			name = fmt.Sprintf("#%d", fee.StudentID)
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), fee.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), fee.Month)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), fee.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), fee.PaidOn)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), fee.Status)
		monthTotals[fee.Month] += fee.Amount
	}

	if _, err := f.NewSheet("Monthly Totals"); err == nil {
		f.SetCellValue("Monthly Totals", "A1", "Month")
		f.SetCellValue("Monthly Totals", "B1", "Total")
		months := make([]string, 0, len(monthTotals))
		for m := range monthTotals {
			months = append(months, m)
		}
		sort.Strings(months)
		for i, m := range months {
			f.SetCellValue("Monthly Totals", fmt.Sprintf("A%d", i+2), m)
			f.SetCellValue("Monthly Totals", fmt.Sprintf("B%d", i+2), monthTotals[m])
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="fees_report.xlsx"`)
	return c.Send(buf.Bytes())
}

// ExportOccupancy streams the owner's room occupancy summary as an xlsx
// workbook.
func (rc *ReportController) ExportOccupancy(c *fiber.Ctx) error {
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

	roomRows, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch rooms",
		})
	}
	rooms := models.RoomsFromRows(store.ScopeToOwner(roomRows, ownerID))

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Occupancy"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Room No", "Type", "Capacity", "Occupied", "Available"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, room := range rooms {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), room.RoomNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), room.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), room.Capacity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), room.Occupied)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), availability[room.ID])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="occupancy_report.xlsx"`)
	return c.Send(buf.Bytes())
}
