package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

func setupMockRepository(t *testing.T) (sqlmock.Sqlmock, *PostgresRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewPostgresRepository(postgres.NewClientFromDB(db))
}

var catalogColumns = []string{
	"brand", "model", "category", "tube_up", "cushion_material",
	"facial_hair_compatible", "skin_friendly", "magnetic_clips",
	"match_hints", "description", "key_features", "best_for", "avoid_if",
	"image_ref", "external_link",
}

func TestPostgresRepository_LoadEntries(t *testing.T) {
	mock, repo := setupMockRepository(t)

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("ResMed", "AirFit P30i", "NASAL_PILLOWS", true, "silicone", true, true, false,
			"", "Tube-up nasal pillows", "{\"Tube-up design\",\"Seal retention\"}", "{\"Side sleepers\"}", "{}", "", "").
		AddRow("Philips", "FitLife Total Face", "FULL_FACE", false, "silicone", true, true, false,
			"", "", "{}", "{\"Facial hair\"}", "{Claustrophobic}", "", "")

	mock.ExpectQuery(`SELECT .* FROM "mask_catalog" ORDER BY "position" ASC`).WillReturnRows(rows)

	entries, err := repo.LoadEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, entities.CategoryNasalPillows, entries[0].Category)
	assert.Equal(t, []string{"Tube-up design", "Seal retention"}, entries[0].KeyFeatures)
	assert.Equal(t, entities.CushionSilicone, entries[0].CushionMaterial)
	assert.Equal(t, "Philips FitLife Total Face", entries[1].Name())
	assert.Equal(t, []string{"Claustrophobic"}, entries[1].AvoidIf)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_LoadEntriesRejectsBadCategory(t *testing.T) {
	mock, repo := setupMockRepository(t)

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("ResMed", "AirFit X", "HELMET", false, "", false, false, false, "", "", "{}", "{}", "{}", "", "")
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	_, err := repo.LoadEntries(context.Background())
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_LoadEntriesQueryError(t *testing.T) {
	mock, repo := setupMockRepository(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection refused"))

	_, err := repo.LoadEntries(context.Background())
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ReplaceAll(t *testing.T) {
	mock, repo := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "mask_catalog"`).WillReturnResult(sqlmock.NewResult(0, 19))
	mock.ExpectExec(`INSERT INTO "mask_catalog"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(context.Background(), sampleEntries))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ReplaceAllRollsBackOnInsertFailure(t *testing.T) {
	mock, repo := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "mask_catalog"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "mask_catalog"`).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), sampleEntries)
	assert.ErrorContains(t, err, "failed to insert catalog entries")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ReplaceAllValidatesFirst(t *testing.T) {
	mock, repo := setupMockRepository(t)

	err := repo.ReplaceAll(context.Background(), []entities.CatalogEntry{{Model: "AirFit X", Category: "HELMET"}})
	assert.True(t, apperrors.IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	mock, repo := setupMockRepository(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS mask_catalog`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
