package services

import (
	"math"
	"sort"

	"pricing-dashboard/models"
	"pricing-dashboard/reference"
)

// histogramEdges are the lower bounds of the price histogram buckets; each
// bucket is half-open [edge, next edge) and the last one is unbounded.
var histogramEdges = []float64{0, 5, 10, 15, 20}

// rankedMembersLimit caps the cheapest and priciest member listings.
const rankedMembersLimit = 5

// expandStatesLimit is how many of the least covered states are suggested
// for expansion.
const expandStatesLimit = 3

var histogramLabels = []string{"R$ 0-5", "R$ 5-10", "R$ 10-15", "R$ 15-20", "R$ 20+"}

// Histogram counts valid prices into the fixed five buckets.
func Histogram(observations []*models.ProductObservation) []models.PriceBucket {
	buckets := make([]models.PriceBucket, len(histogramEdges))
	for i, lo := range histogramEdges {
		buckets[i] = models.PriceBucket{Label: histogramLabels[i], Min: lo}
		if i+1 < len(histogramEdges) {
			buckets[i].Max = histogramEdges[i+1]
		} else {
			buckets[i].Unbounded = true
		}
	}

	for _, obs := range observations {
		p := obs.UnitPrice
		if !ValidPrice(p) {
			continue
		}
		for i := len(buckets) - 1; i >= 0; i-- {
			if p >= buckets[i].Min {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// Analyze builds the detailed breakdown of one product group: per-state and
// per-retailer figures, the price histogram and the headline insights.
func Analyze(group models.ProductGroup, ref *reference.Tables) models.GroupAnalysis {
	if ref == nil {
		ref = reference.Default()
	}
	states := StateRollup(group.Members, ref)
	retailers := RetailerRollup(group.Members)
	stats := Aggregate(group.Members)

	return models.GroupAnalysis{
		States:          states,
		Retailers:       retailers,
		Histogram:       Histogram(group.Members),
		MedianPrice:     stats.MedianPrice,
		TotalVariation:  stats.Variation,
		Insights:        insights(group, states, ref),
		CheapestMembers: rankMembers(group.Members, false),
		PriciestMembers: rankMembers(group.Members, true),
		Recommendations: recommend(group, states, retailers),
	}
}

// rankMembers returns up to five priced members ordered by unit price,
// ascending or descending. Equal prices keep first-seen order.
func rankMembers(members []*models.ProductObservation, descending bool) []*models.ProductObservation {
	ranked := make([]*models.ProductObservation, 0, len(members))
	for _, m := range members {
		if ValidPrice(m.UnitPrice) {
			ranked = append(ranked, m)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return ranked[i].UnitPrice > ranked[j].UnitPrice
		}
		return ranked[i].UnitPrice < ranked[j].UnitPrice
	})
	if len(ranked) > rankedMembersLimit {
		ranked = ranked[:rankedMembersLimit]
	}
	return ranked
}

// recommend picks the best-priced retailer, the most expensive location and
// the tail of the state ranking as expansion targets.
func recommend(group models.ProductGroup, states []models.StateAggregate, retailers []models.RetailerAggregate) models.Recommendations {
	rec := models.Recommendations{AvoidLocation: group.MaxPriceLocation}
	if len(retailers) > 0 {
		rec.BestMarket = retailers[0].Name
	}

	tail := states
	if len(tail) > expandStatesLimit {
		tail = tail[len(tail)-expandStatesLimit:]
	}
	rec.ExpandStates = make([]string, len(tail))
	for i, s := range tail {
		rec.ExpandStates[i] = s.Code
	}
	return rec
}

func insights(group models.ProductGroup, states []models.StateAggregate, ref *reference.Tables) models.Insights {
	in := models.Insights{
		BestPrice:           group.MinPrice,
		BestPriceLocation:   group.MinPriceLocation,
		CoveredStates:       group.StateCount,
		TotalNationalStates: ref.TotalStates(),
	}

	lowest, highest := math.Inf(1), math.Inf(-1)
	for _, s := range states {
		if s.PricedCount == 0 {
			continue
		}
		if s.AvgPrice < lowest {
			lowest = s.AvgPrice
			in.CheapestState = s.Code
			in.CheapestStateAvg = s.AvgPrice
		}
		if s.AvgPrice > highest {
			highest = s.AvgPrice
		}
	}
	if in.CheapestState != "" {
		in.StateSpread = highest - lowest
	}

	if len(states) > 0 && group.TotalProducts > 0 {
		in.TopState = states[0].Code
		in.Concentration = float64(states[0].Count) / float64(group.TotalProducts) * 100
	}
	if in.TotalNationalStates > 0 {
		in.NationalCoverage = float64(group.StateCount) / float64(in.TotalNationalStates) * 100
	}
	return in
}
