package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnsureDir creates the results directory if it does not exist yet.
// Failure here is fatal to the harness: without an output location no
// configuration can be persisted.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("results: create output dir: %w", err)
	}
	return nil
}

// TimestampedPath returns a unique CSV path under dir for one sweep.
func TimestampedPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("normality_check_%s.csv", now.Format("20060102_150405")))
}

// WriteCSV writes the header and all rows to path, truncating any previous
// file.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("results: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("results: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return fmt.Errorf("results: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("results: flush: %w", err)
	}
	return nil
}
