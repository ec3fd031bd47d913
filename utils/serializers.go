package utils

import (
	"strconv"

	"hostelms_go/models"
)

// Compact representations used across APIs

type RoomDTO struct {
	ID        int    `json:"id"`
	RoomNo    string `json:"room_no"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
}

type BookingDTO struct {
	ID          int    `json:"id"`
	StudentID   int    `json:"student_id"`
	StudentName string `json:"student_name"`
	RoomID      int    `json:"room_id"`
	RoomNo      string `json:"room_no"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type FeeDTO struct {
	ID          int     `json:"id"`
	StudentID   int     `json:"student_id"`
	StudentName string  `json:"student_name"`
	Month       string  `json:"month"`
	Amount      float64 `json:"amount"`
	PaidOn      string  `json:"paid_on"`
	Status      string  `json:"status"`
}

// ToRoomDTO attaches the derived available-beds count to a room.
func ToRoomDTO(r models.Room, availability map[int]int) RoomDTO {
	return RoomDTO{
		ID:        r.ID,
		RoomNo:    r.RoomNo,
		Type:      r.Type,
		Capacity:  r.Capacity,
		Occupied:  r.Occupied,
		Available: availability[r.ID],
	}
}

// ToBookingDTO resolves student and room labels for display. Orphaned
// references fall back to the raw id.
func ToBookingDTO(b models.Booking, studentNames, roomNos map[int]string) BookingDTO {
	dto := BookingDTO{
		ID:          b.ID,
		StudentID:   b.StudentID,
		StudentName: labelOr(studentNames, b.StudentID),
		RoomID:      b.RoomID,
		RoomNo:      labelOr(roomNos, b.RoomID),
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status,
	}
	return dto
}

// ToFeeDTO resolves the student label for display.
func ToFeeDTO(f models.Fee, studentNames map[int]string) FeeDTO {
	return FeeDTO{
		ID:          f.ID,
		StudentID:   f.StudentID,
		StudentName: labelOr(studentNames, f.StudentID),
		Month:       f.Month,
		Amount:      f.Amount,
		PaidOn:      f.PaidOn,
		Status:      f.Status,
	}
}

func labelOr(m map[int]string, id int) string {
	if label, ok := m[id]; ok && label != "" {
		return label
	}
	return "#" + strconv.Itoa(id)
}
