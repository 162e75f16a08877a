package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pricing-dashboard/models"
)

// SortGroups orders groups in place for the product grid. Names compare
// with Brazilian Portuguese collation so accented initials sort naturally.
// The sort is stable.
func SortGroups(groups []models.ProductGroup, key models.SortKey) {
	var less func(a, b *models.ProductGroup) bool

	switch key {
	case models.SortByPriceAsc:
		less = func(a, b *models.ProductGroup) bool { return a.AvgPrice < b.AvgPrice }
	case models.SortByPriceDesc:
		less = func(a, b *models.ProductGroup) bool { return a.AvgPrice > b.AvgPrice }
	case models.SortByMarkets:
		less = func(a, b *models.ProductGroup) bool { return a.MarketCount > b.MarketCount }
	case models.SortByVariation:
		less = func(a, b *models.ProductGroup) bool { return a.PriceVariation > b.PriceVariation }
	default:
		// collate.Collator keeps internal buffers, so one per call.
		col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
		less = func(a, b *models.ProductGroup) bool {
			return col.CompareString(a.Description, b.Description) < 0
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return less(&groups[i], &groups[j])
	})
}
