package repositories

import (
	"context"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// CatalogRepository loads the mask catalog from its backing store
type CatalogRepository interface {
	LoadEntries(ctx context.Context) ([]entities.CatalogEntry, error)
}

// CatalogWriter replaces the stored catalog, used by seeding tools
type CatalogWriter interface {
	ReplaceAll(ctx context.Context, entries []entities.CatalogEntry) error
}
