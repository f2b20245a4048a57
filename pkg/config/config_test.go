package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, CatalogSourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, 3600, cfg.Recommendation.CacheTTLSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
}

func TestLoad_CatalogFromCSV(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "CSV")
	t.Setenv("CATALOG_PATH", "/data/masks.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CatalogSourceCSV, cfg.Catalog.Source)
	assert.Equal(t, "/data/masks.csv", cfg.Catalog.Path)
}

func TestLoad_FileSourceRequiresPath(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "xlsx")
	t.Setenv("CATALOG_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown catalog source")
}

func TestLoad_AllowedOriginsList(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "masks", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=masks sslmode=disable", db.DatabaseDSN())
}
