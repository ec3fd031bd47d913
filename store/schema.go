package store

// Row is a single record keyed by column name. Everything is stored as text;
// numeric coercion happens on use.
type Row map[string]string

// Table declares the schema of one CSV-backed table: file name, ordered
// column list and the id column used for generated ids.
type Table struct {
	Name     string
	File     string
	Columns  []string
	IDColumn string
}

var (
	Users = Table{
		Name:     "users",
		File:     "users.csv",
		Columns:  []string{"id", "owner_id", "name", "email", "password", "role"},
		IDColumn: "id",
	}

	Students = Table{
		Name:     "students",
		File:     "students.csv",
		Columns:  []string{"id", "owner_id", "name", "email", "phone", "gender", "course"},
		IDColumn: "id",
	}

	Rooms = Table{
		Name:     "rooms",
		File:     "rooms.csv",
		Columns:  []string{"id", "owner_id", "room_no", "type", "capacity", "occupied"},
		IDColumn: "id",
	}

	Bookings = Table{
		Name:     "bookings",
		File:     "bookings.csv",
		Columns:  []string{"id", "owner_id", "student_id", "room_id", "start_date", "end_date", "status"},
		IDColumn: "id",
	}

	Fees = Table{
		Name:     "fees",
		File:     "fees.csv",
		Columns:  []string{"id", "owner_id", "student_id", "month", "amount", "paid_on", "status"},
		IDColumn: "id",
	}
)

// AllTables lists every declared table, used by startup initialization and
// the backup service.
func AllTables() []Table {
	return []Table{Users, Students, Rooms, Bookings, Fees}
}

// Clone returns a deep copy of a row so callers can mutate without aliasing
// the slice they read from.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
