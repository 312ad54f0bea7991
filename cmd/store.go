package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/internal/iocache"
	"github.com/huangsam/benchplot/internal/samples"
	"github.com/huangsam/benchplot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetupWrapper runs the shared setup without treating the positional
// argument as the plot input.
func storeSetupWrapper(cmd *cobra.Command, _ []string) error {
	return sharedSetup(rootCtx, cmd, nil)
}

// storeCmd groups the sample store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the SQLite sample store",
	Long: `Manage the SQLite sample store that keeps benchmark results between runs.

Every import becomes a numbered run. Plot commands read the latest run when
given the store file (.db, .sqlite, .sqlite3) as input.

Available operations:
  store import  - Add a result file as a new run
  store export  - Write a stored run to JSON, CSV or Parquet
  store runs    - List stored runs
  store migrate - Upgrade or roll back the store schema`,
}

// storeImportCmd loads any input format into the store.
var storeImportCmd = &cobra.Command{
	Use:   "import <input>",
	Short: "Import a result file into the sample store as a new run",
	Long: `Import benchmark curves from JSON, CSV, Parquet or another store into
the store given by --db.

Examples:
  benchplot store import results/sort.json
  benchplot store import results/sort.csv --db bench/history.db`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runImport(rootCtx, cfg.Clone()); err != nil {
			contract.LogFatal("Import failed", err)
		}
	},
}

// storeExportCmd writes a stored run to a file.
var storeExportCmd = &cobra.Command{
	Use:   "export <output>",
	Short: "Export a stored run to JSON, CSV or Parquet",
	Long: `Export the curves of one run. The output extension picks the format.

Examples:
  # Latest run as Parquet for DuckDB or pandas
  benchplot store export latest.parquet

  # A specific run as CSV
  benchplot store export run-3.csv --run-id 3`,
	Args:    cobra.ExactArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := runExport(rootCtx, cfg.Clone(), args[0], viper.GetInt64("run-id")); err != nil {
			contract.LogFatal("Export failed", err)
		}
	},
}

// storeRunsCmd lists stored runs.
var storeRunsCmd = &cobra.Command{
	Use:     "runs",
	Short:   "List stored runs, newest first",
	Args:    cobra.NoArgs,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runRuns(rootCtx, cfg.Clone()); err != nil {
			contract.LogFatal("Failed to list runs", err)
		}
	},
}

// storeMigrateCmd moves the store schema to a target version.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the sample store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  benchplot store migrate

  # Rollback to initial state
  benchplot store migrate --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := iocache.MigrateSampleStore(cfg.DBPath, viper.GetInt("target-version"))
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		if !result.Changed {
			_, _ = fmt.Fprintf(os.Stderr, "✅ Store %s already at version %d\n", cfg.DBPath, result.To)
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "✅ Migrated %s from version %d to %d\n", cfg.DBPath, result.From, result.To)
	},
}

func runImport(ctx context.Context, cfg *contract.Config) error {
	curves, err := samples.Load(ctx, cfg.InputPath, cfg.InputFormat)
	if err != nil {
		return err
	}
	store, err := iocache.OpenSampleStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runID, err := importCurves(ctx, store, cfg.InputPath, curves)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Imported %d curves from %s into %s as run %d\n", len(curves), cfg.InputPath, cfg.DBPath, runID)
	return nil
}

// importCurves stores curves as a new run tagged with their source.
func importCurves(ctx context.Context, store contract.SampleStore, source string, curves []schema.Curve) (int64, error) {
	if len(curves) == 0 {
		return 0, schema.NewContractError("import", source, "no curves to import")
	}
	runID, err := store.Import(ctx, source, curves)
	if err != nil {
		return 0, fmt.Errorf("failed to import %s: %w", source, err)
	}
	return runID, nil
}

func runExport(ctx context.Context, cfg *contract.Config, output string, runID int64) error {
	store, err := iocache.OpenSampleStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	curves, err := store.Load(ctx, runID)
	if err != nil {
		return err
	}
	if err := samples.Save(ctx, output, curves); err != nil {
		return fmt.Errorf("failed to export to %s: %w", output, err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Exported %d curves to %s\n", len(curves), output)
	return nil
}

func runRuns(ctx context.Context, cfg *contract.Config) error {
	store, err := iocache.OpenSampleStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Runs(ctx)
	if err != nil {
		return err
	}
	return writer.WriteRuns(runs, cfg)
}
