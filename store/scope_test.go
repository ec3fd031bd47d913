package store

import (
	"reflect"
	"testing"
)

func TestScopeToOwner(t *testing.T) {
	full := []Row{
		{"id": "1", "owner_id": "5", "room_no": "01"},
		{"id": "2", "owner_id": "6", "room_no": "01"},
		{"id": "3", "owner_id": "5", "room_no": "02"},
		{"id": "4", "owner_id": "", "room_no": "03"}, // legacy untagged
	}

	scoped := ScopeToOwner(full, 5)
	if len(scoped) != 2 {
		t.Fatalf("expected 2 rows for owner 5, got %d", len(scoped))
	}
	for _, row := range scoped {
		if row["owner_id"] != "5" {
			t.Fatalf("foreign row leaked into scope: %v", row)
		}
	}

	// Two owners can hold the same room_no; scoping must separate them.
	mine := ScopeToOwner(full, 5)
	theirs := ScopeToOwner(full, 6)
	if mine[0]["id"] == theirs[0]["id"] {
		t.Fatal("owners 5 and 6 resolved to the same room row")
	}
}

func TestMergeOwnerRowsPreservesOtherOwners(t *testing.T) {
	full := []Row{
		{"id": "1", "owner_id": "5", "room_no": "01", "occupied": "0"},
		{"id": "2", "owner_id": "6", "room_no": "01", "occupied": "1"},
		{"id": "3", "owner_id": "5", "room_no": "02", "occupied": "0"},
	}

	edited := []Row{
		{"id": "1", "owner_id": "5", "room_no": "01", "occupied": "2"},
		{"id": "3", "owner_id": "5", "room_no": "02", "occupied": "1"},
	}

	merged := MergeOwnerRows(full, edited, 5)
	if len(merged) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(merged))
	}

	var other Row
	mineByID := map[string]Row{}
	for _, row := range merged {
		if row["owner_id"] == "6" {
			other = row
		} else {
			mineByID[row["id"]] = row
		}
	}

	// Owner 6's "01" row is byte-for-byte unchanged.
	if !reflect.DeepEqual(other, full[1]) {
		t.Fatalf("other owner's row changed: %v", other)
	}

	// Owner 5's rows equal exactly the edited subset.
	if mineByID["1"]["occupied"] != "2" || mineByID["3"]["occupied"] != "1" {
		t.Fatalf("edited subset not applied: %v", mineByID)
	}
}

func TestMergeOwnerRowsForcesOwnerTag(t *testing.T) {
	edited := []Row{
		{"id": "1", "room_no": "01"}, // no owner tag supplied
	}

	merged := MergeOwnerRows([]Row{{"id": "9", "owner_id": "6"}}, edited, 5)
	if len(merged) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(merged))
	}
	for _, row := range merged {
		if row["id"] == "1" && row["owner_id"] != "5" {
			t.Fatalf("edited row not tagged with owner: %v", row)
		}
	}
}

func TestMergeOwnerRowsBothEmpty(t *testing.T) {
	merged := MergeOwnerRows(nil, nil, 5)
	if len(merged) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(merged))
	}
}

func TestMergeOwnerRowsDoesNotMutateInput(t *testing.T) {
	edited := []Row{{"id": "1", "owner_id": ""}}
	MergeOwnerRows(nil, edited, 5)
	if edited[0]["owner_id"] != "" {
		t.Fatal("merge mutated the caller's edited rows")
	}
}
