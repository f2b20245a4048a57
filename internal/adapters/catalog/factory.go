package catalog

import (
	"fmt"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/repositories"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/cpapmaskselector/pkg/config"
)

// NewRepository picks the catalog source named by the configuration. The
// Postgres client is only required for the postgres source.
func NewRepository(cfg config.CatalogConfig, pg *postgres.Client, builtin []entities.CatalogEntry) (repositories.CatalogRepository, error) {
	switch cfg.Source {
	case config.CatalogSourceBuiltin, "":
		return NewStaticRepository(builtin), nil
	case config.CatalogSourceCSV:
		return NewCSVRepository(cfg.Path), nil
	case config.CatalogSourceXLSX:
		return NewXLSXRepository(cfg.Path, cfg.Sheet), nil
	case config.CatalogSourcePostgres:
		if pg == nil {
			return nil, fmt.Errorf("catalog source postgres requires a database connection")
		}
		return NewPostgresRepository(pg), nil
	}
	return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
}
