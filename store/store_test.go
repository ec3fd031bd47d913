package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		exp  int
	}{
		{
			name: "empty table",
			rows: nil,
			exp:  1,
		},
		{
			name: "unordered ids",
			rows: []Row{{"id": "3"}, {"id": "7"}, {"id": "2"}},
			exp:  8,
		},
		{
			name: "reversed order gives same answer",
			rows: []Row{{"id": "2"}, {"id": "7"}, {"id": "3"}},
			exp:  8,
		},
		{
			name: "non-numeric ids ignored",
			rows: []Row{{"id": "abc"}, {"id": "4"}},
			exp:  5,
		},
		{
			name: "all non-numeric falls back to 1",
			rows: []Row{{"id": "x"}, {"id": ""}},
			exp:  1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := NextID(tc.rows, "id"); got != tc.exp {
				t.Fatalf("expected %d, got %d", tc.exp, got)
			}
		})
	}
}

func TestListAllAutoCreatesFile(t *testing.T) {
	s := openTestStore(t)

	rows, err := s.ListAll(Rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}

	data, err := os.ReadFile(filepath.Join(s.DataDir(), Rooms.File))
	if err != nil {
		t.Fatalf("table file was not created: %v", err)
	}
	header := strings.TrimSpace(string(data))
	if header != strings.Join(Rooms.Columns, ",") {
		t.Fatalf("unexpected header: %q", header)
	}
}

func TestCreateAssignsIDAndFillsDefaults(t *testing.T) {
	s := openTestStore(t)

	rows, err := s.Create(Students, Row{"name": "Asha", "owner_id": "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row["id"] != "1" {
		t.Fatalf("expected generated id 1, got %q", row["id"])
	}
	for _, col := range Students.Columns {
		if _, ok := row[col]; !ok {
			t.Fatalf("column %q missing from created row", col)
		}
	}
	if row["course"] != "" {
		t.Fatalf("expected empty default for course, got %q", row["course"])
	}

	rows, err = s.Create(Students, Row{"name": "Binu", "owner_id": "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[1]["id"] != "2" {
		t.Fatalf("expected generated id 2, got %q", rows[1]["id"])
	}
}

func TestDeleteByID(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.Create(Students, Row{"name": name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	rows, err := s.DeleteByID(Students, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after delete, got %d", len(rows))
	}
	for _, row := range rows {
		if row["id"] == "2" {
			t.Fatal("deleted row still present")
		}
	}

	// Persisted remainder survives a reload.
	reloaded, err := s.ListAll(Students)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded) != 2 {
		t.Fatalf("expected 2 rows after reload, got %d", len(reloaded))
	}
}

func TestSaveAllNormalizesColumns(t *testing.T) {
	s := openTestStore(t)

	err := s.SaveAll(Rooms, []Row{
		{"id": "1", "room_no": "01"}, // missing type/capacity/occupied/owner_id
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := s.ListAll(Rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	for _, col := range Rooms.Columns {
		if _, ok := rows[0][col]; !ok {
			t.Fatalf("column %q missing after normalize", col)
		}
	}
	if rows[0]["capacity"] != "" {
		t.Fatalf("expected empty default capacity, got %q", rows[0]["capacity"])
	}
}

func TestLegacyFileMissingOwnerColumn(t *testing.T) {
	s := openTestStore(t)

	// Simulate a legacy file written before owner tagging existed.
	legacy := "id,room_no,type,capacity,occupied\n1,01,Double,2,0\n"
	if err := os.WriteFile(filepath.Join(s.DataDir(), Rooms.File), []byte(legacy), 0644); err != nil {
		t.Fatalf("failed to write legacy file: %v", err)
	}

	rows, err := s.ListAll(Rooms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][OwnerColumn] != "" {
		t.Fatalf("expected empty owner tag for legacy row, got %q", rows[0][OwnerColumn])
	}
	if len(ScopeToOwner(rows, 5)) != 0 {
		t.Fatal("legacy row leaked into an owner's scope")
	}
}

func TestFindByID(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Create(Fees, Row{"owner_id": "6", "month": "2026-01"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row, err := s.FindByID(Fees, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row == nil || row["month"] != "2026-01" {
		t.Fatalf("expected fee row, got %v", row)
	}

	missing, err := s.FindByID(Fees, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing id, got %v", missing)
	}
}
