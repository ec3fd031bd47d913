package store

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"hostelms_go/config"
)

// Records is the global record store handle, set by Connect.
var Records *Store

// Store is a CSV-backed record store. Each table lives in its own file under
// the data directory; updates are read-all, mutate, overwrite-all.
type Store struct {
	dataDir string
}

// Connect initializes the global store from configuration and pre-creates
// every declared table file.
func Connect() {
	s, err := Open(config.AppConfig.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize record store")
	}
	Records = s
	logrus.WithField("data_dir", s.dataDir).Info("Record store initialized")
}

// Open creates a store rooted at dir and ensures every table file exists.
func Open(dir string) (*Store, error) {
	s := &Store{dataDir: dir}
	for _, t := range AllTables() {
		if err := ensureFile(s.path(t), t.Columns); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DataDir returns the directory holding the table files.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) path(t Table) string {
	return filepath.Join(s.dataDir, t.File)
}

// ListAll returns every row of a table. An absent table yields an empty
// result set, never an error.
func (s *Store) ListAll(t Table) ([]Row, error) {
	return readFile(s.path(t), t.Columns)
}

// Create fills missing declared columns with the empty default, assigns a
// generated id, appends the row and returns the full updated table.
func (s *Store) Create(t Table, fields Row) ([]Row, error) {
	rows, err := s.ListAll(t)
	if err != nil {
		return nil, err
	}

	row := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		row[col] = fields[col]
	}
	if t.IDColumn != "" {
		row[t.IDColumn] = strconv.Itoa(NextID(rows, t.IDColumn))
	}

	rows = append(rows, row)
	if err := writeFile(s.path(t), t.Columns, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveAll overwrites the entire table. Missing declared columns are filled
// with the empty default and columns are ordered per the schema. This is the
// only bulk-update primitive; there is no per-row update.
func (s *Store) SaveAll(t Table, rows []Row) error {
	normalized := make([]Row, 0, len(rows))
	for _, row := range rows {
		n := make(Row, len(t.Columns))
		for _, col := range t.Columns {
			n[col] = row[col]
		}
		normalized = append(normalized, n)
	}
	return writeFile(s.path(t), t.Columns, normalized)
}

// DeleteByID removes all rows matching the id, persists and returns the
// remainder.
func (s *Store) DeleteByID(t Table, id int) ([]Row, error) {
	rows, err := s.ListAll(t)
	if err != nil {
		return nil, err
	}

	want := strconv.Itoa(id)
	remainder := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row[t.IDColumn] != want {
			remainder = append(remainder, row)
		}
	}

	if err := s.SaveAll(t, remainder); err != nil {
		return nil, err
	}
	return remainder, nil
}

// FindByID returns the first row whose id column matches, or nil.
func (s *Store) FindByID(t Table, id int) (Row, error) {
	rows, err := s.ListAll(t)
	if err != nil {
		return nil, err
	}
	want := strconv.Itoa(id)
	for _, row := range rows {
		if row[t.IDColumn] == want {
			return row, nil
		}
	}
	return nil, nil
}

// NextID returns 1 for an empty table, otherwise the maximum numeric id plus
// one. Non-numeric id values are ignored; if no id parses at all the counter
// falls back to 1.
func NextID(rows []Row, idCol string) int {
	if len(rows) == 0 {
		return 1
	}
	max := 0
	found := false
	for _, row := range rows {
		id, err := strconv.Atoi(row[idCol])
		if err != nil {
			continue
		}
		found = true
		if id > max {
			max = id
		}
	}
	if !found {
		return 1
	}
	return max + 1
}

// String implements fmt.Stringer for log output.
func (s *Store) String() string {
	return fmt.Sprintf("Store(%s)", s.dataDir)
}
