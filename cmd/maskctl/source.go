package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	catalogadapter "github.com/zatekoja/cpapmaskselector/internal/adapters/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/application/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/repositories"
	"github.com/zatekoja/cpapmaskselector/pkg/config"
)

// catalogFlags selects a catalog file; an empty path means the builtin table
type catalogFlags struct {
	path  string
	sheet string
}

func (f catalogFlags) config() (config.CatalogConfig, error) {
	if f.path == "" {
		return config.CatalogConfig{Source: config.CatalogSourceBuiltin}, nil
	}
	switch ext := strings.ToLower(filepath.Ext(f.path)); ext {
	case ".csv":
		return config.CatalogConfig{Source: config.CatalogSourceCSV, Path: f.path}, nil
	case ".xlsx":
		return config.CatalogConfig{Source: config.CatalogSourceXLSX, Path: f.path, Sheet: f.sheet}, nil
	default:
		return config.CatalogConfig{}, fmt.Errorf("unsupported catalog file %q: expected .csv or .xlsx", f.path)
	}
}

func (f catalogFlags) repository() (repositories.CatalogRepository, error) {
	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	return catalogadapter.NewRepository(cfg, nil, catalog.Builtin())
}

func (f catalogFlags) entries(ctx context.Context) ([]entities.CatalogEntry, error) {
	repo, err := f.repository()
	if err != nil {
		return nil, err
	}
	entries, err := repo.LoadEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return entries, nil
}

func (f catalogFlags) load(ctx context.Context) (*catalog.Catalog, error) {
	entries, err := f.entries(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(entries)
}
