package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pricing-dashboard/models"
	"pricing-dashboard/utils"
)

// ReportService builds and prints the catalog summary.
type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate summarises the filtered catalog. top limits the number of groups
// kept; groups are ordered by sortKey.
func (s *ReportService) Generate(engine *Engine, f models.Filter, sortKey models.SortKey, top int) *models.Report {
	groups := engine.Groups(f, sortKey)
	view := engine.Map(f)

	report := &models.Report{
		Filter:      f,
		Overview:    engine.Overview(f),
		Regions:     view.Regions,
		States:      view.States,
		Retailers:   RetailerRollup(engine.Filter(f)),
		TotalGroups: len(groups),
	}

	for i := range groups {
		if groups[i].TotalProducts < 2 {
			continue
		}
		if report.WidestSpread == nil || groups[i].PriceVariation > report.WidestSpread.PriceVariation {
			g := groups[i]
			report.WidestSpread = &g
		}
	}

	if top > 0 && len(groups) > top {
		groups = groups[:top]
	}
	report.TopGroups = groups

	s.logger.Info("[report] %d groups, %d observations, %d states",
		report.TotalGroups, report.Overview.TotalProducts, report.Overview.TotalStates)
	return report
}

var (
	titleColor   = color.New(color.FgMagenta, color.Bold)
	sectionColor = color.New(color.FgYellow, color.Bold)
	valueColor   = color.New(color.Bold)
	priceColor   = color.New(color.FgGreen, color.Bold)
	alertColor   = color.New(color.FgRed, color.Bold)
)

// Print writes the report to w.
func (s *ReportService) Print(w io.Writer, r *models.Report) {
	sep := strings.Repeat("═", 64)
	thin := strings.Repeat("─", 64)

	titleColor.Fprintf(w, "\n%s\n", sep)
	titleColor.Fprintf(w, "  PAINEL DE PREÇOS\n")
	titleColor.Fprintf(w, "%s\n\n", sep)

	sectionColor.Fprintf(w, "  Visão geral\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Produtos      : %s\n", valueColor.Sprintf("%d", r.Overview.TotalProducts))
	fmt.Fprintf(w, "  Grupos        : %s\n", valueColor.Sprintf("%d", r.TotalGroups))
	fmt.Fprintf(w, "  Lojas         : %s\n", valueColor.Sprintf("%d", r.Overview.TotalStores))
	fmt.Fprintf(w, "  Estados       : %s\n", valueColor.Sprintf("%d", r.Overview.TotalStates))
	if r.Overview.TotalProducts > 0 {
		fmt.Fprintf(w, "  Preço médio   : %s\n", priceColor.Sprint(FormatPrice(r.Overview.AvgPrice)))
	} else {
		fmt.Fprintf(w, "  Nenhum produto encontrado\n")
	}
	fmt.Fprintln(w)

	if r.WidestSpread != nil {
		g := r.WidestSpread
		sectionColor.Fprintf(w, "  Maior variação\n")
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s\n", truncate(g.Description, 60))
		fmt.Fprintf(w, "  Mínimo : %s  (%s)\n", priceColor.Sprint(FormatPrice(g.MinPrice)), g.MinPriceLocation)
		fmt.Fprintf(w, "  Máximo : %s  (%s)\n", alertColor.Sprint(FormatPrice(g.MaxPrice)), g.MaxPriceLocation)
		fmt.Fprintln(w)
	}

	sectionColor.Fprintf(w, "  Produtos\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.TopGroups) == 0 {
		fmt.Fprintf(w, "  Nenhum grupo\n")
	}
	for i, g := range r.TopGroups {
		fmt.Fprintf(w, "  %s %-40s %s  %d lojas\n",
			valueColor.Sprintf("%2d.", i+1),
			truncate(g.Description, 38),
			priceColor.Sprintf("%9s", FormatPrice(g.AvgPrice)),
			g.MarketCount)
	}
	fmt.Fprintln(w)

	sectionColor.Fprintf(w, "  Regiões\n")
	fmt.Fprintf(w, "  %s\n", thin)
	for _, reg := range r.Regions {
		bar := strings.Repeat("█", int(reg.Coverage/10))
		fmt.Fprintf(w, "  %-14s %-10s %3.0f%%  %5d produtos  %s\n",
			reg.Name, bar, reg.Coverage, reg.ProductCount, FormatPrice(reg.AvgPrice))
	}

	titleColor.Fprintf(w, "\n%s\n\n", sep)
}

// FormatPrice renders a price in Brazilian currency notation ("R$ 12,50").
func FormatPrice(p float64) string {
	s := fmt.Sprintf("%.2f", p)
	return "R$ " + strings.Replace(s, ".", ",", 1)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
