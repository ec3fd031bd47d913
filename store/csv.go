package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// ensureFile creates the CSV with just the header row if it does not exist.
func ensureFile(path string, columns []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

// readFile loads all rows from a table file, auto-creating it first. Rows are
// keyed by the header actually present in the file; columns declared in the
// schema but absent from a legacy file are filled with the empty default.
func readFile(path string, columns []string) ([]Row, error) {
	if err := ensureFile(path, columns); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate short/long legacy rows

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		for _, col := range columns {
			if _, ok := row[col]; !ok {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeFile overwrites the table file with the given rows, emitting columns
// in declared schema order.
func writeFile(path string, columns []string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	w.Flush()
	return w.Error()
}
