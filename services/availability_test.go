package services

import (
	"testing"

	"hostelms_go/models"
	"hostelms_go/store"
)

func TestAvailableBeds(t *testing.T) {
	tests := []struct {
		name     string
		rooms    []models.Room
		bookings []models.Booking
		exp      map[int]int
	}{
		{
			name:  "no bookings leaves full capacity",
			rooms: []models.Room{{ID: 1, Capacity: 2}},
			exp:   map[int]int{1: 2},
		},
		{
			name:  "active bookings reduce availability",
			rooms: []models.Room{{ID: 1, Capacity: 3}},
			bookings: []models.Booking{
				{RoomID: 1, Status: "active"},
				{RoomID: 1, Status: "active"},
			},
			exp: map[int]int{1: 1},
		},
		{
			name:  "completed and cancelled do not count",
			rooms: []models.Room{{ID: 1, Capacity: 2}},
			bookings: []models.Booking{
				{RoomID: 1, Status: "completed"},
				{RoomID: 1, Status: "cancelled"},
			},
			exp: map[int]int{1: 2},
		},
		{
			name:  "status match is case-insensitive",
			rooms: []models.Room{{ID: 1, Capacity: 2}},
			bookings: []models.Booking{
				{RoomID: 1, Status: "Active"},
			},
			exp: map[int]int{1: 1},
		},
		{
			name:  "overbooked room clamps at zero",
			rooms: []models.Room{{ID: 1, Capacity: 1}},
			bookings: []models.Booking{
				{RoomID: 1, Status: "active"},
				{RoomID: 1, Status: "active"},
				{RoomID: 1, Status: "active"},
			},
			exp: map[int]int{1: 0},
		},
		{
			name:  "malformed room references are excluded",
			rooms: []models.Room{{ID: 1, Capacity: 2}},
			bookings: []models.Booking{
				{RoomID: 0, Status: "active"}, // room_id failed coercion
				{RoomID: 1, Status: "active"},
			},
			exp: map[int]int{1: 1},
		},
		{
			name: "per-room counts stay separate",
			rooms: []models.Room{
				{ID: 1, Capacity: 2},
				{ID: 2, Capacity: 3},
			},
			bookings: []models.Booking{
				{RoomID: 1, Status: "active"},
				{RoomID: 2, Status: "active"},
				{RoomID: 2, Status: "active"},
			},
			exp: map[int]int{1: 1, 2: 1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := AvailableBeds(tc.rooms, tc.bookings)
			if len(got) != len(tc.exp) {
				t.Fatalf("expected %d entries, got %d", len(tc.exp), len(got))
			}
			for id, want := range tc.exp {
				if got[id] != want {
					t.Fatalf("room %d: expected %d available, got %d", id, want, got[id])
				}
			}
		})
	}
}

func TestAvailableBedsMalformedRows(t *testing.T) {
	// Rows with malformed numeric fields must degrade, not fail.
	roomRows := []store.Row{
		{"id": "1", "owner_id": "5", "room_no": "01", "capacity": "2", "occupied": ""},
	}
	bookingRows := []store.Row{
		{"id": "1", "owner_id": "5", "room_id": "abc", "status": "active"},
		{"id": "2", "owner_id": "5", "room_id": "1", "status": ""},
		{"id": "3", "owner_id": "5", "room_id": "1", "status": "active"},
	}

	got := AvailableBeds(models.RoomsFromRows(roomRows), models.BookingsFromRows(bookingRows))
	if got[1] != 1 {
		t.Fatalf("expected 1 available, got %d", got[1])
	}
}
