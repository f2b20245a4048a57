package services

import (
	"context"

	"github.com/zatekoja/cpapmaskselector/internal/application/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
	"github.com/zatekoja/cpapmaskselector/internal/domain/repositories"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

// LoadCatalog reads the catalog from its repository and builds the read-only
// in-memory catalog used for the life of the process.
func LoadCatalog(ctx context.Context, repo repositories.CatalogRepository) (*catalog.Catalog, error) {
	entries, err := repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(entries)
	if err != nil {
		return nil, apperrors.NewInternalError("invalid catalog", err)
	}
	observability.LoggerFromContext(ctx).Info().Int("entries", len(entries)).Msg("Mask catalog loaded")
	return c, nil
}

// CatalogSeeder replaces the stored catalog and drops recommendations that
// were computed against the previous one.
type CatalogSeeder struct {
	writer repositories.CatalogWriter
	cache  providers.CacheProvider
}

// NewCatalogSeeder creates a seeder. cache may be nil.
func NewCatalogSeeder(writer repositories.CatalogWriter, cache providers.CacheProvider) *CatalogSeeder {
	return &CatalogSeeder{writer: writer, cache: cache}
}

// Seed validates and writes the entries, then invalidates cached
// recommendations. It returns how many cache entries were removed.
func (s *CatalogSeeder) Seed(ctx context.Context, entries []entities.CatalogEntry) (int, error) {
	if _, err := catalog.New(entries); err != nil {
		return 0, apperrors.NewValidationError(err.Error())
	}
	if err := s.writer.ReplaceAll(ctx, entries); err != nil {
		return 0, err
	}
	if s.cache == nil {
		return 0, nil
	}

	removed, err := s.cache.DeleteByPrefix(ctx, RecommendationCachePrefix)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to invalidate cached recommendations")
	}
	return removed, nil
}
