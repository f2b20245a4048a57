package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	catalogadapter "github.com/zatekoja/cpapmaskselector/internal/adapters/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/adapters/cache"
	"github.com/zatekoja/cpapmaskselector/internal/application/services"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/redis"
	"github.com/zatekoja/cpapmaskselector/pkg/config"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List, export and seed the mask catalog",
	}
	cmd.AddCommand(
		newCatalogListCmd(),
		newCatalogExportCmd(),
		newCatalogSeedCmd(),
	)
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var (
		source   catalogFlags
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := source.load(cmd.Context())
			if err != nil {
				return err
			}

			var filter entities.MaskCategory
			if category != "" {
				if filter = entities.ParseMaskCategory(category); filter == "" {
					return fmt.Errorf("unknown mask category %q", category)
				}
			}

			printCatalog(cmd.OutOrStdout(), c.ByCategory(filter))
			return nil
		},
	}

	cmd.Flags().StringVar(&source.path, "catalog", "", "Catalog file (.csv or .xlsx); builtin catalog when empty")
	cmd.Flags().StringVar(&source.sheet, "sheet", "Masks", "Worksheet name for .xlsx catalogs")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list one category (e.g. \"nasal pillows\")")

	return cmd
}

func newCatalogExportCmd() *cobra.Command {
	var (
		source catalogFlags
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a CSV or XLSX file",
		Long: `Write the catalog to a CSV or XLSX file that can be edited and loaded
back with CATALOG_SOURCE=csv|xlsx or seeded into Postgres.

Examples:
  maskctl catalog export --out masks.xlsx
  maskctl catalog export --format csv > masks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := source.entries(cmd.Context())
			if err != nil {
				return err
			}

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			}

			var buf bytes.Buffer
			switch format {
			case "csv":
				err = catalogadapter.WriteCSV(&buf, entries)
			case "xlsx":
				err = catalogadapter.WriteXLSX(&buf, entries)
			default:
				return fmt.Errorf("unknown export format %q: use csv or xlsx", format)
			}
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			successColor.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d masks to %s\n", len(entries), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&source.path, "catalog", "", "Catalog file to convert; builtin catalog when empty")
	cmd.Flags().StringVar(&source.sheet, "sheet", "Masks", "Worksheet name for .xlsx catalogs")
	cmd.Flags().StringVar(&out, "out", "", "Output file; stdout when empty")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (csv, xlsx); inferred from --out")

	return cmd
}

func newCatalogSeedCmd() *cobra.Command {
	var source catalogFlags

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the Postgres catalog and invalidate cached recommendations",
		Long: `Replace the contents of the mask_catalog table with the given catalog,
creating the table first if needed.
Connection settings come from the DB_* and REDIS_* environment variables;
when REDIS_ENABLED is true cached recommendations are dropped afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			entries, err := source.entries(ctx)
			if err != nil {
				return err
			}

			pgClient, err := postgres.NewClient(ctx, &cfg.Database)
			if err != nil {
				return err
			}
			defer pgClient.Close()

			var cacheProvider providers.CacheProvider
			if cfg.Redis.Enabled {
				redisClient, err := redis.NewClient(ctx, &cfg.Redis)
				if err != nil {
					moderateColor.Fprintf(cmd.ErrOrStderr(), "! Redis unavailable, cached recommendations not invalidated: %v\n", err)
				} else {
					defer redisClient.Close()
					cacheProvider = cache.NewRedisAdapter(redisClient)
				}
			}

			repo := catalogadapter.NewPostgresRepository(pgClient)
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}

			seeder := services.NewCatalogSeeder(repo, cacheProvider)
			removed, err := seeder.Seed(ctx, entries)
			if err != nil {
				return err
			}

			successColor.Fprintf(cmd.OutOrStdout(), "✓ Seeded %d masks (%d cached recommendations invalidated)\n", len(entries), removed)
			return nil
		},
	}

	cmd.Flags().StringVar(&source.path, "catalog", "", "Catalog file to seed from; builtin catalog when empty")
	cmd.Flags().StringVar(&source.sheet, "sheet", "Masks", "Worksheet name for .xlsx catalogs")

	return cmd
}
