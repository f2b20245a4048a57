package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

const catalogTable = "mask_catalog"

//go:embed schema.sql
var schemaSQL string

var selectColumns = []interface{}{
	"brand", "model", "category", "tube_up", "cushion_material",
	"facial_hair_compatible", "skin_friendly", "magnetic_clips",
	"match_hints", "description", "key_features", "best_for", "avoid_if",
	"image_ref", "external_link",
}

// PostgresRepository stores the catalog in the mask_catalog table. Row
// order is kept in the position column so ties rank the same after a reload.
type PostgresRepository struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresRepository creates a Postgres-backed catalog repository
func NewPostgresRepository(client *postgres.Client) *PostgresRepository {
	return &PostgresRepository{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// EnsureSchema creates the catalog table when it does not exist yet
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.client.DB().ExecContext(ctx, schemaSQL); err != nil {
		return apperrors.NewExternalError("failed to create catalog schema", err)
	}
	return nil
}

// LoadEntries reads the whole catalog in position order
func (r *PostgresRepository) LoadEntries(ctx context.Context) ([]entities.CatalogEntry, error) {
	query, args, err := r.db.From(catalogTable).
		Select(selectColumns...).
		Order(goqu.C("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build catalog query", err)
	}

	rows, err := r.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to load catalog", err)
	}
	defer rows.Close()

	entries := []entities.CatalogEntry{}
	for rows.Next() {
		var (
			entry    entities.CatalogEntry
			category string
			material string
		)
		err := rows.Scan(
			&entry.Brand,
			&entry.Model,
			&category,
			&entry.TubeUp,
			&material,
			&entry.FacialHairCompatible,
			&entry.SkinFriendly,
			&entry.MagneticClips,
			&entry.MatchHints,
			&entry.Description,
			pq.Array(&entry.KeyFeatures),
			pq.Array(&entry.BestFor),
			pq.Array(&entry.AvoidIf),
			&entry.ImageRef,
			&entry.ExternalLink,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan catalog entry", err)
		}
		entry.Category = entities.ParseMaskCategory(category)
		entry.CushionMaterial = entities.CushionMaterial(material)
		if err := entry.Validate(); err != nil {
			return nil, apperrors.NewInternalError("invalid catalog row", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewExternalError("error iterating catalog", err)
	}
	return entries, nil
}

// ReplaceAll swaps the stored catalog for entries inside one transaction
func (r *PostgresRepository) ReplaceAll(ctx context.Context, entries []entities.CatalogEntry) error {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("entry %d: %v", i, err))
		}
	}

	deleteSQL, _, err := r.db.Delete(catalogTable).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build catalog delete", err)
	}

	rows := make([]interface{}, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, goqu.Record{
			"position":               i,
			"brand":                  e.Brand,
			"model":                  e.Model,
			"category":               string(e.Category),
			"tube_up":                e.TubeUp,
			"cushion_material":       string(e.CushionMaterial),
			"facial_hair_compatible": e.FacialHairCompatible,
			"skin_friendly":          e.SkinFriendly,
			"magnetic_clips":         e.MagneticClips,
			"match_hints":            e.MatchHints,
			"description":            e.Description,
			"key_features":           pq.Array(nonNilList(e.KeyFeatures)),
			"best_for":               pq.Array(nonNilList(e.BestFor)),
			"avoid_if":               pq.Array(nonNilList(e.AvoidIf)),
			"image_ref":              e.ImageRef,
			"external_link":          e.ExternalLink,
		})
	}

	tx, err := r.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewExternalError("failed to begin catalog transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteSQL); err != nil {
		return apperrors.NewExternalError("failed to clear catalog", err)
	}

	if len(rows) > 0 {
		insertSQL, args, err := r.db.Insert(catalogTable).Prepared(true).Rows(rows...).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build catalog insert", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			return apperrors.NewExternalError("failed to insert catalog entries", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewExternalError("failed to commit catalog", err)
	}
	return nil
}

func nonNilList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
