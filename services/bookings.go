package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"hostelms_go/models"
	"hostelms_go/store"
)

var (
	// ErrRoomFull means the capacity gate rejected an active booking.
	ErrRoomFull = errors.New("room has no available beds")
	// ErrEndBeforeStart means the booking dates are inverted.
	ErrEndBeforeStart = errors.New("end date must not be before start date")
	// ErrBadDateFormat means a date field is not YYYY-MM-DD.
	ErrBadDateFormat = errors.New("dates must be YYYY-MM-DD")
	// ErrStudentNotFound means the referenced student is not owned by the caller.
	ErrStudentNotFound = errors.New("student not found")
	// ErrRoomNotFound means the referenced room is not owned by the caller.
	ErrRoomNotFound = errors.New("room not found")
)

const dateLayout = "2006-01-02"

// BookingInput carries the caller-supplied fields for creating or editing a
// booking.
type BookingInput struct {
	StudentID int    `json:"student_id" validate:"required,gt=0"`
	RoomID    int    `json:"room_id" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Status    string `json:"status"`
}

// CreateBooking validates references and dates, applies the capacity gate
// against freshly reloaded tables, appends the booking and reconciles
// occupancy. Active bookings for a full room are rejected with ErrRoomFull
// and the booking table is left unchanged.
func CreateBooking(ownerID int, in BookingInput) (models.Booking, error) {
	if _, err := FindOwned(store.Students, ownerID, in.StudentID); err != nil {
		return models.Booking{}, ErrStudentNotFound
	}
	if _, err := FindOwned(store.Rooms, ownerID, in.RoomID); err != nil {
		return models.Booking{}, ErrRoomNotFound
	}

	if err := checkDates(in.StartDate, in.EndDate); err != nil {
		return models.Booking{}, err
	}

	status := models.NormalizeBookingStatus(in.Status)

	if status == models.BookingActive {
		// The capacity check runs against data reloaded at this moment, not
		// a snapshot taken earlier in the interaction.
		available, err := availableForRoom(ownerID, in.RoomID)
		if err != nil {
			return models.Booking{}, err
		}
		if available <= 0 {
			return models.Booking{}, ErrRoomFull
		}
	}

	rows, err := store.Records.Create(store.Bookings, store.Row{
		"owner_id":   strconv.Itoa(ownerID),
		"student_id": strconv.Itoa(in.StudentID),
		"room_id":    strconv.Itoa(in.RoomID),
		"start_date": in.StartDate,
		"end_date":   in.EndDate,
		"status":     status,
	})
	if err != nil {
		return models.Booking{}, err
	}

	if err := RecomputeOccupancy(ownerID); err != nil {
		return models.Booking{}, err
	}

	created := models.BookingFromRow(rows[len(rows)-1])
	logrus.WithFields(logrus.Fields{
		"owner_id":   ownerID,
		"booking_id": created.ID,
		"room_id":    created.RoomID,
		"status":     created.Status,
	}).Info("Booking created")
	return created, nil
}

// UpdateBooking applies a free-form edit to an owned booking. Any status may
// be changed to any other status; invalid values are coerced to active on
// save. Date ordering is enforced at creation only. Occupancy is reconciled
// afterwards.
func UpdateBooking(ownerID, id int, in BookingInput) (models.Booking, error) {
	fields := store.Row{
		"status": models.NormalizeBookingStatus(in.Status),
	}
	if in.StartDate != "" {
		fields["start_date"] = in.StartDate
	}
	if in.EndDate != "" {
		fields["end_date"] = in.EndDate
	}
	if in.StudentID > 0 {
		fields["student_id"] = strconv.Itoa(in.StudentID)
	}
	if in.RoomID > 0 {
		fields["room_id"] = strconv.Itoa(in.RoomID)
	}

	row, err := UpdateOwned(store.Bookings, ownerID, id, fields)
	if err != nil {
		return models.Booking{}, err
	}

	if err := RecomputeOccupancy(ownerID); err != nil {
		return models.Booking{}, err
	}
	return models.BookingFromRow(row), nil
}

// DeleteBooking removes an owned booking and reconciles occupancy.
func DeleteBooking(ownerID, id int) error {
	if err := DeleteOwned(store.Bookings, ownerID, id); err != nil {
		return err
	}
	return RecomputeOccupancy(ownerID)
}

// OwnerAvailability returns the available-beds map for one owner from
// freshly loaded tables.
func OwnerAvailability(ownerID int) (map[int]int, error) {
	fullRooms, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return nil, err
	}
	fullBookings, err := store.Records.ListAll(store.Bookings)
	if err != nil {
		return nil, err
	}

	rooms := models.RoomsFromRows(store.ScopeToOwner(fullRooms, ownerID))
	bookings := models.BookingsFromRows(store.ScopeToOwner(fullBookings, ownerID))
	return AvailableBeds(rooms, bookings), nil
}

func availableForRoom(ownerID, roomID int) (int, error) {
	availability, err := OwnerAvailability(ownerID)
	if err != nil {
		return 0, err
	}
	available, ok := availability[roomID]
	if !ok {
		return 0, ErrRoomNotFound
	}
	return available, nil
}

func checkDates(start, end string) error {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return ErrBadDateFormat
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return ErrBadDateFormat
	}
	if e.Before(s) {
		return ErrEndBeforeStart
	}
	return nil
}
