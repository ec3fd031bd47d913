package services

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"hostelms_go/store"
)

var typeCapacity = map[string]int{
	"Triple": 3,
	"Double": 2,
}

// SeedDefaultRooms creates the standard 100-room layout for an owner that
// has no rooms yet: 01-50 Triple, 51-100 Double. Returns false when the
// owner already has rooms.
func SeedDefaultRooms(ownerID int) (bool, error) {
	full, err := store.Records.ListAll(store.Rooms)
	if err != nil {
		return false, err
	}
	if len(store.ScopeToOwner(full, ownerID)) > 0 {
		return false, nil
	}

	nextID := store.NextID(full, store.Rooms.IDColumn)
	seeded := make([]store.Row, 0, 100)
	for i := 1; i <= 100; i++ {
		roomType := "Triple"
		if i > 50 {
			roomType = "Double"
		}
		seeded = append(seeded, store.Row{
			"id":       strconv.Itoa(nextID),
			"owner_id": strconv.Itoa(ownerID),
			"room_no":  fmt.Sprintf("%02d", i),
			"type":     roomType,
			"capacity": strconv.Itoa(typeCapacity[roomType]),
			"occupied": "0",
		})
		nextID++
	}

	if err := store.Records.SaveAll(store.Rooms, append(full, seeded...)); err != nil {
		return false, err
	}

	logrus.WithField("owner_id", ownerID).Info("Seeded default rooms")
	return true, nil
}
