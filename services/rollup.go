package services

import (
	"sort"
	"strings"

	"pricing-dashboard/models"
	"pricing-dashboard/reference"
)

// StateRollup aggregates observations per state code. States appear sorted
// by descending observation count; ties keep first-seen order.
func StateRollup(observations []*models.ProductObservation, ref *reference.Tables) []models.StateAggregate {
	var order []string
	byState := make(map[string][]*models.ProductObservation)
	for _, obs := range observations {
		if _, ok := byState[obs.StateCode]; !ok {
			order = append(order, obs.StateCode)
		}
		byState[obs.StateCode] = append(byState[obs.StateCode], obs)
	}

	states := make([]models.StateAggregate, 0, len(order))
	for _, code := range order {
		states = append(states, stateAggregate(code, byState[code], ref))
	}

	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Count > states[j].Count
	})
	return states
}

func stateAggregate(code string, obs []*models.ProductObservation, ref *reference.Tables) models.StateAggregate {
	stats := Aggregate(obs)
	agg := models.StateAggregate{
		Code:        code,
		Count:       stats.Count,
		MarketCount: stats.DistinctRetailers,
		AvgPrice:    stats.AvgPrice,
		MinPrice:    stats.MinPrice,
		MaxPrice:    stats.MaxPrice,
		Retailers:   distinctRetailers(obs),
		PricedCount: stats.PricedCount,
	}
	for _, o := range obs {
		if ValidPrice(o.UnitPrice) {
			agg.PriceSum += o.UnitPrice
		}
	}
	if ref != nil {
		agg.Name = ref.StateName(code)
		agg.Region = ref.RegionOf(code)
	}
	return agg
}

func distinctRetailers(obs []*models.ProductObservation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range obs {
		if _, ok := seen[o.RetailerName]; ok {
			continue
		}
		seen[o.RetailerName] = struct{}{}
		out = append(out, o.RetailerName)
	}
	return out
}

// RegionRollup composes per-state aggregates into one entry per region,
// sorted by descending product count (ties keep region table order).
// Coverage is the percentage of a region's states with at least one
// observation.
func RegionRollup(states []models.StateAggregate, regions []reference.Region) []models.RegionAggregate {
	byCode := make(map[string]models.StateAggregate, len(states))
	for _, s := range states {
		byCode[s.Code] = s
	}

	out := make([]models.RegionAggregate, 0, len(regions))
	for _, r := range regions {
		agg := models.RegionAggregate{
			Name:        r.Name,
			States:      append([]string(nil), r.States...),
			TotalStates: len(r.States),
		}

		retailers := make(map[string]struct{})
		var priceSum float64
		var priced int
		for _, code := range r.States {
			s, ok := byCode[code]
			if !ok || s.Count == 0 {
				continue
			}
			agg.ActiveStates++
			agg.ProductCount += s.Count
			priceSum += s.PriceSum
			priced += s.PricedCount
			for _, name := range s.Retailers {
				retailers[name] = struct{}{}
			}
		}

		agg.MarketCount = len(retailers)
		agg.AvgPrice = mean(priceSum, priced)
		if agg.TotalStates > 0 {
			agg.Coverage = float64(agg.ActiveStates) / float64(agg.TotalStates) * 100
		}
		out = append(out, agg)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProductCount > out[j].ProductCount
	})
	return out
}

// RetailerName strips the branch suffix from a retailer label
// ("Atacadão - Centro" → "Atacadão").
func RetailerName(label string) string {
	if i := strings.Index(label, " - "); i >= 0 {
		return label[:i]
	}
	return label
}

// RetailerRollup ranks retailers by ascending average price; ties keep
// first-seen order.
func RetailerRollup(observations []*models.ProductObservation) []models.RetailerAggregate {
	var order []string
	byName := make(map[string][]*models.ProductObservation)
	for _, obs := range observations {
		name := RetailerName(obs.RetailerName)
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], obs)
	}

	out := make([]models.RetailerAggregate, 0, len(order))
	for _, name := range order {
		obs := byName[name]
		stats := Aggregate(obs)

		locations := make(map[string]struct{})
		for _, o := range obs {
			locations[o.City+" - "+o.StateCode] = struct{}{}
		}

		out = append(out, models.RetailerAggregate{
			Name:         name,
			AvgPrice:     stats.AvgPrice,
			MinPrice:     stats.MinPrice,
			MaxPrice:     stats.MaxPrice,
			ProductCount: stats.Count,
			Locations:    len(locations),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgPrice < out[j].AvgPrice
	})
	return out
}

// CityMarkers places each reference city whose state has observations on
// the map, carrying that state's figures.
func CityMarkers(states []models.StateAggregate, ref *reference.Tables) []models.CityMarker {
	byCode := make(map[string]models.StateAggregate, len(states))
	for _, s := range states {
		byCode[s.Code] = s
	}

	var out []models.CityMarker
	for _, c := range ref.Cities {
		s, ok := byCode[c.State]
		if !ok || s.Count == 0 {
			continue
		}
		out = append(out, models.CityMarker{
			City:         c.Name,
			State:        c.State,
			Region:       c.Region,
			Lat:          c.Lat,
			Lng:          c.Lng,
			ProductCount: s.Count,
			MarketCount:  s.MarketCount,
			AvgPrice:     s.AvgPrice,
		})
	}
	return out
}
