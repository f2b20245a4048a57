package catalog

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// DefaultSheet is the worksheet written by WriteXLSX and read when none is configured
const DefaultSheet = "Masks"

// XLSXRepository loads the catalog from one worksheet of an Excel workbook
type XLSXRepository struct {
	path  string
	sheet string
}

// NewXLSXRepository creates a workbook-backed catalog repository. An empty
// or missing sheet name falls back to the first worksheet.
func NewXLSXRepository(path, sheet string) *XLSXRepository {
	return &XLSXRepository{path: path, sheet: sheet}
}

// LoadEntries opens the workbook and parses the configured sheet
func (r *XLSXRepository) LoadEntries(_ context.Context) ([]entities.CatalogEntry, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook %s: %w", r.path, err)
	}
	defer f.Close()

	entries, err := readWorkbook(f, r.sheet)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", r.path, err)
	}
	return entries, nil
}

// ReadXLSX parses a workbook from any reader
func ReadXLSX(reader io.Reader, sheet string) ([]entities.CatalogEntry, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) ([]entities.CatalogEntry, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	if sheet == "" || !slices.Contains(sheets, sheet) {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return parseRecords(rows)
}

// WriteXLSX renders the entries as a workbook with a styled header row
func WriteXLSX(w io.Writer, entries []entities.CatalogEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(DefaultSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := slices.Clone(Columns)
	if err := f.SetSheetRow(DefaultSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(DefaultSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(DefaultSheet, "A", lastCol, 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := formatRow(e)
		if err := f.SetSheetRow(DefaultSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", e.Name(), err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
