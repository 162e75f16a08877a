package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pricing-dashboard/services"
)

var (
	reportFilters filterFlags
	reportTop     int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a catalog summary to the terminal",
	RunE:  runReport,
}

func init() {
	reportFilters.register(reportCmd)
	reportCmd.Flags().IntVar(&reportTop, "top", 15, "number of product groups to list")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	f, sortKey, err := reportFilters.parse()
	if err != nil {
		return err
	}

	obs, err := loadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	svc := services.NewReportService(logger)
	svc.Print(os.Stdout, svc.Generate(newEngine(obs), f, sortKey, reportTop))
	return nil
}
