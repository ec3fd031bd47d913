package services

import (
	"strconv"
	"testing"

	"hostelms_go/models"
	"hostelms_go/store"
)

func setupStore(t *testing.T) {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	store.Records = s
}

func seedRoom(t *testing.T, ownerID int, roomNo string, capacity, occupied int) models.Room {
	t.Helper()
	rows, err := store.Records.Create(store.Rooms, store.Row{
		"owner_id": strconv.Itoa(ownerID),
		"room_no":  roomNo,
		"type":     "Double",
		"capacity": strconv.Itoa(capacity),
		"occupied": strconv.Itoa(occupied),
	})
	if err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return models.RoomFromRow(rows[len(rows)-1])
}

func seedStudent(t *testing.T, ownerID int, name string) models.Student {
	t.Helper()
	rows, err := store.Records.Create(store.Students, store.Row{
		"owner_id": strconv.Itoa(ownerID),
		"name":     name,
	})
	if err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return models.StudentFromRow(rows[len(rows)-1])
}

func seedBooking(t *testing.T, ownerID, studentID, roomID int, status string) models.Booking {
	t.Helper()
	rows, err := store.Records.Create(store.Bookings, store.Row{
		"owner_id":   strconv.Itoa(ownerID),
		"student_id": strconv.Itoa(studentID),
		"room_id":    strconv.Itoa(roomID),
		"start_date": "2026-01-01",
		"end_date":   "2026-06-30",
		"status":     status,
	})
	if err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return models.BookingFromRow(rows[len(rows)-1])
}

func ownerRoom(t *testing.T, ownerID, roomID int) models.Room {
	t.Helper()
	rows, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		t.Fatalf("failed to list rooms: %v", err)
	}
	for _, row := range store.ScopeToOwner(rows, ownerID) {
		room := models.RoomFromRow(row)
		if room.ID == roomID {
			return room
		}
	}
	t.Fatalf("room %d not found for owner %d", roomID, ownerID)
	return models.Room{}
}

func TestRecomputeOccupancyNoRoomsIsNoop(t *testing.T) {
	setupStore(t)

	if err := RecomputeOccupancy(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecomputeOccupancyNoBookingsZeroes(t *testing.T) {
	setupStore(t)
	room := seedRoom(t, 5, "01", 2, 2) // stale occupied count

	if err := RecomputeOccupancy(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ownerRoom(t, 5, room.ID).Occupied; got != 0 {
		t.Fatalf("expected occupied 0, got %d", got)
	}
}

func TestRecomputeOccupancyCountsActivePerRoom(t *testing.T) {
	setupStore(t)
	r1 := seedRoom(t, 5, "01", 3, 0)
	r2 := seedRoom(t, 5, "02", 2, 0)
	st := seedStudent(t, 5, "Asha")

	seedBooking(t, 5, st.ID, r1.ID, "active")
	seedBooking(t, 5, st.ID, r1.ID, "Active") // case-insensitive
	seedBooking(t, 5, st.ID, r1.ID, "completed")
	seedBooking(t, 5, st.ID, r2.ID, "active")

	if err := RecomputeOccupancy(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ownerRoom(t, 5, r1.ID).Occupied; got != 2 {
		t.Fatalf("room 1: expected occupied 2, got %d", got)
	}
	if got := ownerRoom(t, 5, r2.ID).Occupied; got != 1 {
		t.Fatalf("room 2: expected occupied 1, got %d", got)
	}
}

func TestRecomputeOccupancyClampsToCapacity(t *testing.T) {
	setupStore(t)
	room := seedRoom(t, 5, "01", 2, 0)
	st := seedStudent(t, 5, "Asha")

	// Overbooking stays in the booking rows but occupied is clamped.
	for i := 0; i < 4; i++ {
		seedBooking(t, 5, st.ID, room.ID, "active")
	}

	if err := RecomputeOccupancy(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ownerRoom(t, 5, room.ID).Occupied; got != 2 {
		t.Fatalf("expected occupied clamped to 2, got %d", got)
	}
}

func TestRecomputeOccupancyLeavesOtherOwnersAlone(t *testing.T) {
	setupStore(t)
	mine := seedRoom(t, 5, "01", 2, 0)
	theirs := seedRoom(t, 6, "01", 2, 1) // same room_no, different owner
	st := seedStudent(t, 5, "Asha")
	seedBooking(t, 5, st.ID, mine.ID, "active")

	if err := RecomputeOccupancy(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ownerRoom(t, 5, mine.ID).Occupied; got != 1 {
		t.Fatalf("expected my occupied 1, got %d", got)
	}
	// Owner 6's row, stale occupied and all, is untouched by owner 5's
	// reconciliation.
	if got := ownerRoom(t, 6, theirs.ID).Occupied; got != 1 {
		t.Fatalf("other owner's room changed: occupied %d", got)
	}
}

func TestSweepAllOwners(t *testing.T) {
	setupStore(t)

	if _, err := store.Records.Create(store.Users, store.Row{"name": "a", "email": "a@x.com"}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	room := seedRoom(t, 1, "01", 2, 2)
	SweepAllOwners()

	if got := ownerRoom(t, 1, room.ID).Occupied; got != 0 {
		t.Fatalf("sweep did not reconcile: occupied %d", got)
	}
}
