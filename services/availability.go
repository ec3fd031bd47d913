package services

import "hostelms_go/models"

// AvailableBeds derives available-beds-per-room from capacity minus the
// count of active bookings referencing each room. Rooms and bookings must
// already be scoped to one owner. Bookings with a malformed or missing
// room_id (coerced to 0) or a non-active status contribute nothing; a room
// never goes below zero even when overbooked.
func AvailableBeds(rooms []models.Room, bookings []models.Booking) map[int]int {
	active := CountActiveBookings(bookings)

	out := make(map[int]int, len(rooms))
	for _, room := range rooms {
		available := room.Capacity - active[room.ID]
		if available < 0 {
			available = 0
		}
		out[room.ID] = available
	}
	return out
}

// CountActiveBookings counts active-status bookings per room id. Room ids
// that failed numeric coercion (0) are excluded since table ids start at 1.
func CountActiveBookings(bookings []models.Booking) map[int]int {
	counts := make(map[int]int)
	for _, b := range bookings {
		if b.RoomID <= 0 {
			continue
		}
		if !models.IsActiveStatus(b.Status) {
			continue
		}
		counts[b.RoomID]++
	}
	return counts
}
