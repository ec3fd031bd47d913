package models

import (
	"testing"

	"hostelms_go/store"
)

func TestAtoiOr0(t *testing.T) {
	tests := []struct {
		in  string
		exp int
	}{
		{"7", 7},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"-3", -3},
	}
	for _, tc := range tests {
		if got := AtoiOr0(tc.in); got != tc.exp {
			t.Errorf("AtoiOr0(%q) = %d, expected %d", tc.in, got, tc.exp)
		}
	}
}

func TestFloatOr0(t *testing.T) {
	if got := FloatOr0("4500.50"); got != 4500.50 {
		t.Errorf("expected 4500.50, got %v", got)
	}
	if got := FloatOr0("n/a"); got != 0 {
		t.Errorf("expected 0 for malformed value, got %v", got)
	}
}

func TestIsActiveStatus(t *testing.T) {
	tests := []struct {
		in  string
		exp bool
	}{
		{"active", true},
		{"Active", true},
		{"ACTIVE", true},
		{" active ", true},
		{"completed", false},
		{"cancelled", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsActiveStatus(tc.in); got != tc.exp {
			t.Errorf("IsActiveStatus(%q) = %v, expected %v", tc.in, got, tc.exp)
		}
	}
}

func TestNormalizeBookingStatus(t *testing.T) {
	tests := []struct {
		in  string
		exp string
	}{
		{"active", BookingActive},
		{"Completed", BookingCompleted},
		{"CANCELLED", BookingCancelled},
		{"paused", BookingActive}, // unknown coerces to active
		{"", BookingActive},
	}
	for _, tc := range tests {
		if got := NormalizeBookingStatus(tc.in); got != tc.exp {
			t.Errorf("NormalizeBookingStatus(%q) = %q, expected %q", tc.in, got, tc.exp)
		}
	}
}

func TestRoomFromRowCoercion(t *testing.T) {
	room := RoomFromRow(store.Row{
		"id":       "3",
		"owner_id": "5",
		"room_no":  "07",
		"type":     "Triple",
		"capacity": "3",
		"occupied": "bad",
	})
	if room.ID != 3 || room.OwnerID != 5 || room.Capacity != 3 {
		t.Fatalf("unexpected coercion: %+v", room)
	}
	if room.Occupied != 0 {
		t.Fatalf("malformed occupied should coerce to 0, got %d", room.Occupied)
	}
}

func TestIDLabelMap(t *testing.T) {
	rows := []store.Row{
		{"id": "1", "name": "Asha"},
		{"id": "2", "name": "Binu"},
		{"id": "x", "name": "skipped"},
	}
	m := IDLabelMap(rows, "id", "name")
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m[1] != "Asha" || m[2] != "Binu" {
		t.Fatalf("unexpected map: %v", m)
	}
}
