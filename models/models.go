package models

import (
	"strconv"
	"strings"

	"hostelms_go/store"
)

// Booking status values. Transitions are free-form through the edit path;
// unknown values are coerced back to active on save.
const (
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Fee status values.
const (
	FeePaid = "paid"
	FeeDue  = "due"
)

// User model
type User struct {
	ID       int    `json:"id"`
	OwnerID  int    `json:"owner_id"` // unused self-reference, kept for legacy files
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Student model
type Student struct {
	ID      int    `json:"id"`
	OwnerID int    `json:"owner_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Gender  string `json:"gender"`
	Course  string `json:"course"`
}

// Room model. Occupied is a derived field kept consistent by occupancy
// reconciliation; it never exceeds capacity.
type Room struct {
	ID       int    `json:"id"`
	OwnerID  int    `json:"owner_id"`
	RoomNo   string `json:"room_no"`
	Type     string `json:"type"` // "Double", "Triple" or free text
	Capacity int    `json:"capacity"`
	Occupied int    `json:"occupied"`
}

// Booking model
type Booking struct {
	ID        int    `json:"id"`
	OwnerID   int    `json:"owner_id"`
	StudentID int    `json:"student_id"`
	RoomID    int    `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// Fee model
type Fee struct {
	ID        int     `json:"id"`
	OwnerID   int     `json:"owner_id"`
	StudentID int     `json:"student_id"`
	Month     string  `json:"month"` // "YYYY-MM"
	Amount    float64 `json:"amount"`
	PaidOn    string  `json:"paid_on"`
	Status    string  `json:"status"`
}

// AtoiOr0 coerces stored text to an integer, substituting 0 for blank or
// malformed values.
func AtoiOr0(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// FloatOr0 coerces stored text to a float, substituting 0 for blank or
// malformed values.
func FloatOr0(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// IsActiveStatus reports whether a booking status counts toward occupancy.
// The match is case-insensitive.
func IsActiveStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), BookingActive)
}

// NormalizeBookingStatus coerces unknown status values to active.
func NormalizeBookingStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case BookingCompleted:
		return BookingCompleted
	case BookingCancelled:
		return BookingCancelled
	default:
		return BookingActive
	}
}

// IsValidBookingStatus checks enum membership without coercing.
func IsValidBookingStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func UserFromRow(r store.Row) User {
	return User{
		ID:       AtoiOr0(r["id"]),
		OwnerID:  AtoiOr0(r["owner_id"]),
		Name:     r["name"],
		Email:    r["email"],
		Password: r["password"],
		Role:     r["role"],
	}
}

func (u User) ToRow() store.Row {
	return store.Row{
		"id":       strconv.Itoa(u.ID),
		"owner_id": strconv.Itoa(u.OwnerID),
		"name":     u.Name,
		"email":    u.Email,
		"password": u.Password,
		"role":     u.Role,
	}
}

func StudentFromRow(r store.Row) Student {
	return Student{
		ID:      AtoiOr0(r["id"]),
		OwnerID: AtoiOr0(r["owner_id"]),
		Name:    r["name"],
		Email:   r["email"],
		Phone:   r["phone"],
		Gender:  r["gender"],
		Course:  r["course"],
	}
}

func (s Student) ToRow() store.Row {
	return store.Row{
		"id":       strconv.Itoa(s.ID),
		"owner_id": strconv.Itoa(s.OwnerID),
		"name":     s.Name,
		"email":    s.Email,
		"phone":    s.Phone,
		"gender":   s.Gender,
		"course":   s.Course,
	}
}

func RoomFromRow(r store.Row) Room {
	return Room{
		ID:       AtoiOr0(r["id"]),
		OwnerID:  AtoiOr0(r["owner_id"]),
		RoomNo:   r["room_no"],
		Type:     r["type"],
		Capacity: AtoiOr0(r["capacity"]),
		Occupied: AtoiOr0(r["occupied"]),
	}
}

func (rm Room) ToRow() store.Row {
	return store.Row{
		"id":       strconv.Itoa(rm.ID),
		"owner_id": strconv.Itoa(rm.OwnerID),
		"room_no":  rm.RoomNo,
		"type":     rm.Type,
		"capacity": strconv.Itoa(rm.Capacity),
		"occupied": strconv.Itoa(rm.Occupied),
	}
}

func BookingFromRow(r store.Row) Booking {
	return Booking{
		ID:        AtoiOr0(r["id"]),
		OwnerID:   AtoiOr0(r["owner_id"]),
		StudentID: AtoiOr0(r["student_id"]),
		RoomID:    AtoiOr0(r["room_id"]),
		StartDate: r["start_date"],
		EndDate:   r["end_date"],
		Status:    r["status"],
	}
}

func (b Booking) ToRow() store.Row {
	return store.Row{
		"id":         strconv.Itoa(b.ID),
		"owner_id":   strconv.Itoa(b.OwnerID),
		"student_id": strconv.Itoa(b.StudentID),
		"room_id":    strconv.Itoa(b.RoomID),
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"status":     b.Status,
	}
}

func FeeFromRow(r store.Row) Fee {
	return Fee{
		ID:        AtoiOr0(r["id"]),
		OwnerID:   AtoiOr0(r["owner_id"]),
		StudentID: AtoiOr0(r["student_id"]),
		Month:     r["month"],
		Amount:    FloatOr0(r["amount"]),
		PaidOn:    r["paid_on"],
		Status:    r["status"],
	}
}

func (f Fee) ToRow() store.Row {
	return store.Row{
		"id":         strconv.Itoa(f.ID),
		"owner_id":   strconv.Itoa(f.OwnerID),
		"student_id": strconv.Itoa(f.StudentID),
		"month":      f.Month,
		"amount":     strconv.FormatFloat(f.Amount, 'f', -1, 64),
		"paid_on":    f.PaidOn,
		"status":     f.Status,
	}
}

// BookingsFromRows converts a scoped row set, tolerating malformed rows.
func BookingsFromRows(rows []store.Row) []Booking {
	out := make([]Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingFromRow(r))
	}
	return out
}

// RoomsFromRows converts a scoped row set.
func RoomsFromRows(rows []store.Row) []Room {
	out := make([]Room, 0, len(rows))
	for _, r := range rows {
		out = append(out, RoomFromRow(r))
	}
	return out
}

// StudentsFromRows converts a scoped row set.
func StudentsFromRows(rows []store.Row) []Student {
	out := make([]Student, 0, len(rows))
	for _, r := range rows {
		out = append(out, StudentFromRow(r))
	}
	return out
}

// FeesFromRows converts a scoped row set.
func FeesFromRows(rows []store.Row) []Fee {
	out := make([]Fee, 0, len(rows))
	for _, r := range rows {
		out = append(out, FeeFromRow(r))
	}
	return out
}

// IDLabelMap builds an id -> label lookup used for display, skipping rows
// whose id does not parse.
func IDLabelMap(rows []store.Row, idCol, labelCol string) map[int]string {
	m := make(map[int]string, len(rows))
	for _, row := range rows {
		id, err := strconv.Atoi(strings.TrimSpace(row[idCol]))
		if err != nil {
			continue
		}
		m[id] = row[labelCol]
	}
	return m
}
