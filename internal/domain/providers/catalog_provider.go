package providers

import (
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// CatalogQuerier defines the read-only catalog lookup consumed by the recommendation engine
type CatalogQuerier interface {
	// Query filters and ranks entries of the given category against the criteria
	Query(category entities.MaskCategory, criteria entities.CatalogCriteria) []entities.ScoredEntry

	// Entries returns the loaded catalog in declaration order
	Entries() []entities.CatalogEntry
}
