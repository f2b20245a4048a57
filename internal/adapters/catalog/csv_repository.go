package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// CSVRepository loads the catalog from a comma-separated file with a header row
type CSVRepository struct {
	path string
}

// NewCSVRepository creates a CSV-backed catalog repository
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// LoadEntries reads and validates every row of the file
func (r *CSVRepository) LoadEntries(_ context.Context) ([]entities.CatalogEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", r.path, err)
	}
	defer f.Close()

	entries, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", r.path, err)
	}
	return entries, nil
}

// ReadCSV parses catalog rows from any reader
func ReadCSV(reader io.Reader) ([]entities.CatalogEntry, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return parseRecords(rows)
}

// WriteCSV writes the entries with a header row in Columns order
func WriteCSV(w io.Writer, entries []entities.CatalogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(formatRow(e)); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", e.Name(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
