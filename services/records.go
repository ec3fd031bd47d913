package services

import (
	"errors"

	"hostelms_go/models"
	"hostelms_go/store"
)

var (
	// ErrNotFound means no row with the given id exists in the table.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner means the row exists but belongs to another account.
	ErrNotOwner = errors.New("record belongs to another account")
)

// FindOwned returns the row with the given id if it belongs to ownerID.
func FindOwned(t store.Table, ownerID, id int) (store.Row, error) {
	row, err := store.Records.FindByID(t, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	if models.AtoiOr0(row[store.OwnerColumn]) != ownerID {
		return nil, ErrNotOwner
	}
	return row, nil
}

// DeleteOwned deletes the row with the given id after verifying ownership.
// An ownership violation leaves the table untouched.
func DeleteOwned(t store.Table, ownerID, id int) error {
	if _, err := FindOwned(t, ownerID, id); err != nil {
		return err
	}
	_, err := store.Records.DeleteByID(t, id)
	return err
}

// UpdateOwned overwrites the editable fields of an owned row and persists
// via full-table save. The id and owner tag are never taken from the caller.
func UpdateOwned(t store.Table, ownerID, id int, fields store.Row) (store.Row, error) {
	if _, err := FindOwned(t, ownerID, id); err != nil {
		return nil, err
	}

	rows, err := store.Records.ListAll(t)
	if err != nil {
		return nil, err
	}

	var updated store.Row
	for i, row := range rows {
		if models.AtoiOr0(row[t.IDColumn]) != id {
			continue
		}
		edited := row.Clone()
		for k, v := range fields {
			if k == t.IDColumn || k == store.OwnerColumn {
				continue
			}
			edited[k] = v
		}
		rows[i] = edited
		updated = edited
		break
	}

	if err := store.Records.SaveAll(t, rows); err != nil {
		return nil, err
	}
	return updated, nil
}
