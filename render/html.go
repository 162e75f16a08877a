package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"pricing-dashboard/models"
	"pricing-dashboard/services"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// GroupSection pairs a product group with its analysis.
type GroupSection struct {
	Group    models.ProductGroup
	Analysis models.GroupAnalysis
}

// ReportData is the input of the HTML report template.
type ReportData struct {
	Title       string
	GeneratedAt time.Time
	Report      *models.Report
	Groups      []GroupSection
}

// HTMLReport renders reports with the embedded template.
type HTMLReport struct {
	tmpl *template.Template
}

func NewHTMLReport() (*HTMLReport, error) {
	tmpl, err := template.New("report.html.tmpl").Funcs(template.FuncMap{
		"price":    services.FormatPrice,
		"percent":  func(p float64) string { return fmt.Sprintf("%.1f%%", p) },
		"barWidth": func(n int) int { return min(n*6, 300) },
		"join":     func(s []string) string { return strings.Join(s, ", ") },
	}).ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse template: %w", err)
	}
	return &HTMLReport{tmpl: tmpl}, nil
}

// Render writes the report document to w.
func (h *HTMLReport) Render(w io.Writer, data ReportData) error {
	if data.Report == nil {
		data.Report = &models.Report{}
	}
	if err := h.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render: execute template: %w", err)
	}
	return nil
}

// RenderBytes renders the report into memory.
func (h *HTMLReport) RenderBytes(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.Render(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
