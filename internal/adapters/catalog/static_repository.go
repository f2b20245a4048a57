package catalog

import (
	"context"
	"slices"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// StaticRepository serves a catalog compiled into the binary
type StaticRepository struct {
	entries []entities.CatalogEntry
}

// NewStaticRepository creates a repository over a fixed table
func NewStaticRepository(entries []entities.CatalogEntry) *StaticRepository {
	return &StaticRepository{entries: entries}
}

// LoadEntries returns a copy of the table
func (r *StaticRepository) LoadEntries(_ context.Context) ([]entities.CatalogEntry, error) {
	return slices.Clone(r.entries), nil
}
