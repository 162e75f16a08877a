package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pricing-dashboard/render"
	"pricing-dashboard/services"
	"pricing-dashboard/storage"
	"pricing-dashboard/utils"
)

var (
	exportFilters filterFlags
	exportDir     string
	exportPDF     bool
	exportTop     int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export product groups to CSV and, optionally, a PDF report",
	RunE:  runExport,
}

func init() {
	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", "", "output directory (defaults to EXPORT_DIR)")
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "also render a PDF report with headless Chrome")
	exportCmd.Flags().IntVar(&exportTop, "top", 0, "limit the PDF report to the first N groups (0 = all)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	f, sortKey, err := exportFilters.parse()
	if err != nil {
		return err
	}

	dir := cfg.ExportDir
	if exportDir != "" {
		dir = exportDir
	}

	obs, err := loadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	engine := newEngine(obs)
	groups := engine.Groups(f, sortKey)

	csvPath := filepath.Join(dir, "groups.csv")
	w, err := storage.NewCSVWriter(csvPath)
	if err != nil {
		return err
	}
	if err := w.WriteGroups(groups); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("csv: close: %w", err)
	}
	color.New(color.FgGreen).Printf("✓ %d groups → %s\n", len(groups), csvPath)

	if !exportPDF {
		return nil
	}

	if exportTop > 0 && len(groups) > exportTop {
		groups = groups[:exportTop]
	}

	start := time.Now()
	analyses := engine.Analyses(groups, utils.NewWorkerPool(cfg.MaxConcurrency, 0))
	logger.Duration(start, "[export] Analysed %d groups", len(groups))

	sections := make([]render.GroupSection, len(groups))
	for i := range groups {
		sections[i] = render.GroupSection{Group: groups[i], Analysis: analyses[i]}
	}

	html, err := render.NewHTMLReport()
	if err != nil {
		return err
	}
	doc, err := html.RenderBytes(render.ReportData{
		Title:       "Painel de Preços",
		GeneratedAt: time.Now(),
		Report:      services.NewReportService(logger).Generate(engine, f, sortKey, 0),
		Groups:      sections,
	})
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(dir, "report.pdf")
	if err := render.NewPDFExporter(cfg.ChromeBin, 2*time.Minute, logger).Export(ctx, doc, pdfPath); err != nil {
		return err
	}
	color.New(color.FgGreen).Printf("✓ PDF report → %s\n", pdfPath)
	return nil
}
