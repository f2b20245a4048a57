package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// ListSeparator joins multi-value cells such as key features
const ListSeparator = "|"

// Columns is the tabular layout shared by the CSV and XLSX sources
var Columns = []string{
	"brand",
	"model",
	"category",
	"tube_up",
	"cushion_material",
	"facial_hair_compatible",
	"skin_friendly",
	"magnetic_clips",
	"match_hints",
	"description",
	"key_features",
	"best_for",
	"avoid_if",
	"image_ref",
	"external_link",
}

// headerIndex maps normalized column names to their position in a header row
type headerIndex map[string]int

func newHeaderIndex(header []string) (headerIndex, error) {
	idx := make(headerIndex, len(header))
	for i, name := range header {
		idx[normalizeHeader(name)] = i
	}
	for _, required := range []string{"model", "category"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("catalog header is missing the %q column", required)
		}
	}
	return idx, nil
}

// normalizeHeader accepts "Tube Up", "tube-up" and "TUBE_UP" alike
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

func (h headerIndex) cell(record []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseRow converts one data row. A row with neither model nor category is
// reported as blank so readers can skip trailing spreadsheet rows.
func (h headerIndex) parseRow(record []string) (entry entities.CatalogEntry, blank bool, err error) {
	model := h.cell(record, "model")
	rawCategory := h.cell(record, "category")
	if model == "" && rawCategory == "" {
		return entry, true, nil
	}

	entry = entities.CatalogEntry{
		Brand:           h.cell(record, "brand"),
		Model:           model,
		Category:        entities.ParseMaskCategory(rawCategory),
		CushionMaterial: entities.CushionMaterial(strings.ToLower(h.cell(record, "cushion_material"))),
		MatchHints:      h.cell(record, "match_hints"),
		Description:     h.cell(record, "description"),
		KeyFeatures:     splitList(h.cell(record, "key_features")),
		BestFor:         splitList(h.cell(record, "best_for")),
		AvoidIf:         splitList(h.cell(record, "avoid_if")),
		ImageRef:        h.cell(record, "image_ref"),
		ExternalLink:    h.cell(record, "external_link"),
	}
	if entry.Category == "" {
		return entry, false, fmt.Errorf("model %q: unknown category %q", model, rawCategory)
	}

	flags := []struct {
		column string
		target *bool
	}{
		{"tube_up", &entry.TubeUp},
		{"facial_hair_compatible", &entry.FacialHairCompatible},
		{"skin_friendly", &entry.SkinFriendly},
		{"magnetic_clips", &entry.MagneticClips},
	}
	for _, f := range flags {
		v, err := parseFlag(h.cell(record, f.column))
		if err != nil {
			return entry, false, fmt.Errorf("model %q column %s: %w", model, f.column, err)
		}
		*f.target = v
	}

	return entry, false, nil
}

// formatRow renders an entry in Columns order
func formatRow(e entities.CatalogEntry) []string {
	return []string{
		e.Brand,
		e.Model,
		string(e.Category),
		strconv.FormatBool(e.TubeUp),
		string(e.CushionMaterial),
		strconv.FormatBool(e.FacialHairCompatible),
		strconv.FormatBool(e.SkinFriendly),
		strconv.FormatBool(e.MagneticClips),
		e.MatchHints,
		e.Description,
		strings.Join(e.KeyFeatures, ListSeparator),
		strings.Join(e.BestFor, ListSeparator),
		strings.Join(e.AvoidIf, ListSeparator),
		e.ImageRef,
		e.ExternalLink,
	}
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "", "false", "no", "n", "0":
		return false, nil
	case "true", "yes", "y", "1", "x":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean %q", value)
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseRecords turns a header row plus data rows into validated entries
func parseRecords(rows [][]string) ([]entities.CatalogEntry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog has no header row")
	}
	header, err := newHeaderIndex(rows[0])
	if err != nil {
		return nil, err
	}

	entries := make([]entities.CatalogEntry, 0, len(rows)-1)
	for i, record := range rows[1:] {
		entry, blank, err := header.parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if blank {
			continue
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
