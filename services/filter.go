package services

import (
	"strings"

	"pricing-dashboard/models"
)

// Apply returns the observations matching every active predicate of f, in
// input order. The input slice is not modified.
func Apply(observations []*models.ProductObservation, f models.Filter) []*models.ProductObservation {
	if f.IsZero() {
		return observations
	}

	category := strings.TrimSpace(string(f.Category))
	state := strings.ToUpper(strings.TrimSpace(f.State))
	retailer := strings.ToLower(strings.TrimSpace(f.Retailer))
	query := strings.ToLower(f.Query)

	out := make([]*models.ProductObservation, 0, len(observations))
	for _, obs := range observations {
		if models.Active(category) && string(Classify(obs.Description)) != category {
			continue
		}
		if models.Active(state) && obs.StateCode != state {
			continue
		}
		if models.Active(retailer) && !strings.Contains(strings.ToLower(obs.RetailerName), retailer) {
			continue
		}
		if !f.PriceBand.Contains(obs.UnitPrice) {
			continue
		}
		if query != "" && !matchesQuery(obs, query) {
			continue
		}
		out = append(out, obs)
	}
	return out
}

// matchesQuery is a case-insensitive substring test on description,
// retailer and city. query must already be lower-cased; surrounding spaces
// are part of the match.
func matchesQuery(obs *models.ProductObservation, query string) bool {
	return strings.Contains(strings.ToLower(obs.Description), query) ||
		strings.Contains(strings.ToLower(obs.RetailerName), query) ||
		strings.Contains(strings.ToLower(obs.City), query)
}
