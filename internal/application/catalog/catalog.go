package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// Catalog is the validated, read-only mask catalog held for the life of the process
type Catalog struct {
	entries []entities.CatalogEntry
}

// New validates and copies the entries. Duplicate brand/model pairs are rejected.
func New(entries []entities.CatalogEntry) (*Catalog, error) {
	seen := make(map[string]struct{}, len(entries))
	copied := make([]entities.CatalogEntry, 0, len(entries))

	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		key := strings.ToLower(entry.Name())
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate mask %q", i, entry.Name())
		}
		seen[key] = struct{}{}

		entry.KeyFeatures = slices.Clone(entry.KeyFeatures)
		entry.BestFor = slices.Clone(entry.BestFor)
		entry.AvoidIf = slices.Clone(entry.AvoidIf)
		copied = append(copied, entry)
	}

	return &Catalog{entries: copied}, nil
}

// Entries returns a copy of the catalog in declaration order
func (c *Catalog) Entries() []entities.CatalogEntry {
	return slices.Clone(c.entries)
}

// ByCategory returns the entries of one category in declaration order. An
// empty category returns the whole catalog.
func (c *Catalog) ByCategory(category entities.MaskCategory) []entities.CatalogEntry {
	if category == "" {
		return c.Entries()
	}
	var out []entities.CatalogEntry
	for _, entry := range c.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// Query filters entries of the category by the hard criteria, scores the
// survivors and returns them highest score first. Ties keep catalog order.
func (c *Catalog) Query(category entities.MaskCategory, criteria entities.CatalogCriteria) []entities.ScoredEntry {
	if !category.IsValid() {
		return nil
	}

	var scored []entities.ScoredEntry
	for _, entry := range c.entries {
		if entry.Category != category || !passesFilters(entry, criteria) {
			continue
		}
		score, reasons := Score(entry, criteria)
		scored = append(scored, entities.ScoredEntry{Entry: entry, Score: score, Reasons: reasons})
	}

	slices.SortStableFunc(scored, func(a, b entities.ScoredEntry) int {
		return b.Score - a.Score
	})
	return scored
}

func passesFilters(entry entities.CatalogEntry, criteria entities.CatalogCriteria) bool {
	if criteria.TubeUp != nil && entry.TubeUp != *criteria.TubeUp {
		return false
	}
	if criteria.SkinFriendly && !entry.SkinFriendly {
		return false
	}
	if criteria.FacialHairCompatible && !entry.FacialHairCompatible {
		return false
	}
	if criteria.NonMagnetic && entry.MagneticClips {
		return false
	}
	return true
}
