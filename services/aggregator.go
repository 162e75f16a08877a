package services

import (
	"sort"

	"pricing-dashboard/models"
)

// Aggregate computes price statistics over observations. Invalid prices are
// skipped for the statistics but still counted in Count. Cheapest and
// Priciest are the first observations reaching the extreme values. An empty
// or price-less input yields zero statistics and nil references.
func Aggregate(observations []*models.ProductObservation) models.PriceStats {
	stats := models.PriceStats{Count: len(observations)}
	if len(observations) == 0 {
		return stats
	}

	retailers := make(map[string]struct{})
	states := make(map[string]struct{})
	prices := make([]float64, 0, len(observations))
	var total float64

	for _, obs := range observations {
		retailers[obs.RetailerName] = struct{}{}
		states[obs.StateCode] = struct{}{}

		p := obs.UnitPrice
		if !ValidPrice(p) {
			continue
		}
		prices = append(prices, p)
		total += p

		if stats.Cheapest == nil || p < stats.MinPrice {
			stats.MinPrice = p
			stats.Cheapest = obs
		}
		if stats.Priciest == nil || p > stats.MaxPrice {
			stats.MaxPrice = p
			stats.Priciest = obs
		}
	}

	stats.DistinctRetailers = len(retailers)
	stats.DistinctStates = len(states)
	stats.PricedCount = len(prices)
	if len(prices) > 0 {
		stats.AvgPrice = total / float64(len(prices))
		stats.MedianPrice = Median(prices)
		stats.Variation = stats.MaxPrice - stats.MinPrice
	}
	return stats
}

// Median returns the lower median of prices: for an even number of values
// the smaller of the two middle elements. The input is not modified.
func Median(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)
	return sorted[(len(sorted)-1)/2]
}

// mean guards the division for empty inputs.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// BuildGroups turns clusters into product groups with their statistics.
// Group order follows cluster order.
func BuildGroups(clusters []Cluster) []models.ProductGroup {
	groups := make([]models.ProductGroup, 0, len(clusters))
	for _, c := range clusters {
		if len(c.Members) == 0 {
			continue
		}
		groups = append(groups, BuildGroup(c))
	}
	return groups
}

// BuildGroup summarises a single cluster.
func BuildGroup(c Cluster) models.ProductGroup {
	stats := Aggregate(c.Members)
	first := c.Members[0]

	g := models.ProductGroup{
		Key:            c.Key,
		Description:    first.Description,
		Category:       Classify(first.Description),
		Members:        c.Members,
		TotalProducts:  stats.Count,
		MinPrice:       stats.MinPrice,
		MaxPrice:       stats.MaxPrice,
		AvgPrice:       stats.AvgPrice,
		MedianPrice:    stats.MedianPrice,
		PriceVariation: stats.Variation,
		MarketCount:    stats.DistinctRetailers,
		StateCount:     stats.DistinctStates,
		Cheapest:       stats.Cheapest,
		Priciest:       stats.Priciest,
		Representative: first,
	}
	if stats.Cheapest != nil {
		g.MinPriceLocation = stats.Cheapest.Location()
	}
	if stats.Priciest != nil {
		g.MaxPriceLocation = stats.Priciest.Location()
	}
	for _, m := range c.Members {
		if m.HasImage() {
			g.Representative = m
			break
		}
	}
	return g
}
