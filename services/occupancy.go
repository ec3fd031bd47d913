package services

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"hostelms_go/models"
	"hostelms_go/store"
)

// RecomputeOccupancy recomputes each room's occupied-bed count from the
// owner's active bookings and persists the owner's room subset via
// merge-back, leaving other owners' rows untouched.
//
// Invariant on return: for every room owned by ownerID,
// occupied == min(capacity, count of active bookings for that room).
// Overbooking stays recorded in the booking rows; occupied is clamped to
// capacity. Must be called after every booking create, edit or delete.
func RecomputeOccupancy(ownerID int) error {
	fullRooms, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return err
	}
	fullBookings, err := store.Records.ListAll(store.Bookings)
	if err != nil {
		return err
	}

	myRooms := store.ScopeToOwner(fullRooms, ownerID)
	if len(myRooms) == 0 {
		return nil
	}

	myBookings := store.ScopeToOwner(fullBookings, ownerID)
	active := CountActiveBookings(models.BookingsFromRows(myBookings))

	updated := make([]store.Row, 0, len(myRooms))
	for _, row := range myRooms {
		room := models.RoomFromRow(row)
		occupied := active[room.ID]
		if occupied > room.Capacity {
			occupied = room.Capacity
		}
		edited := row.Clone()
		edited["occupied"] = strconv.Itoa(occupied)
		updated = append(updated, edited)
	}

	merged := store.MergeOwnerRows(fullRooms, updated, ownerID)
	if err := store.Records.SaveAll(store.Rooms, merged); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"rooms":    len(updated),
	}).Debug("Occupancy reconciled")
	return nil
}

// SweepAllOwners reconciles occupancy for every user account. Run on a
// schedule as a safety net for a crash between a booking write and its
// reconciliation.
func SweepAllOwners() {
	users, err := store.Records.ListAll(store.Users)
	if err != nil {
		logrus.WithError(err).Error("Occupancy sweep: failed to list users")
		return
	}

	for _, row := range users {
		ownerID := models.AtoiOr0(row["id"])
		if ownerID <= 0 {
			continue
		}
		if err := RecomputeOccupancy(ownerID); err != nil {
			logrus.WithError(err).WithField("owner_id", ownerID).Error("Occupancy sweep failed for owner")
		}
	}
}
