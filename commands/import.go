package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pricing-dashboard/reference"
	"pricing-dashboard/services"
	"pricing-dashboard/storage"
)

var importCSVPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate the catalog CSV and store it in the configured database",
	Long: `import reads the catalog CSV, drops invalid rows and replaces the catalog
held by the configured store (STORE_DRIVER=postgres or sqlite) under a new
batch id.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "catalog CSV path (defaults to CATALOG_CSV_PATH)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	path := cfg.CatalogCSVPath
	if importCSVPath != "" {
		path = importCSVPath
	}

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if store == nil {
		return fmt.Errorf("import needs a database store; set STORE_DRIVER to %s or %s",
			storage.DriverPostgres, storage.DriverSQLite)
	}
	defer store.Close()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat catalog: %w", err)
	}

	bar := progressbar.NewOptions64(
		info.Size(),
		progressbar.OptionSetDescription("Reading catalog"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	reader := progressbar.NewReader(f, bar)

	raw, err := storage.NewCSVReader(&reader).ReadAll()
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	_ = bar.Finish()

	obs := services.NewValidator(logger, reference.Default()).Validate(raw)

	batchID := storage.NewBatchID()
	if err := store.Write(ctx, batchID, obs); err != nil {
		return fmt.Errorf("store catalog: %w", err)
	}

	color.New(color.FgGreen).Printf("✓ Imported %d of %d rows into %s (batch %s)\n",
		len(obs), len(raw), cfg.StoreDriver, batchID)
	return nil
}
