package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"pricing-dashboard/models"
	"pricing-dashboard/reference"
	"pricing-dashboard/utils"
)

// ErrGroupNotFound is returned when no group of the filtered catalog has the
// requested key.
var ErrGroupNotFound = errors.New("product group not found")

// Engine answers dashboard queries over an immutable snapshot of validated
// observations. Every method is a pure pass over the snapshot, so an Engine
// can be shared by concurrent callers without locking.
type Engine struct {
	observations []*models.ProductObservation
	grouper      *Grouper
	ref          *reference.Tables
	logger       *utils.Logger
}

// NewEngine creates an Engine over observations. The slice is copied; the
// observations themselves must not be mutated afterwards.
func NewEngine(observations []*models.ProductObservation, normalizer *Normalizer, ref *reference.Tables, logger *utils.Logger) *Engine {
	if ref == nil {
		ref = reference.Default()
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Engine{
		observations: append([]*models.ProductObservation(nil), observations...),
		grouper:      NewGrouper(normalizer),
		ref:          ref,
		logger:       logger,
	}
}

// Observations returns the snapshot in input order.
func (e *Engine) Observations() []*models.ProductObservation {
	return e.observations
}

// Reference returns the reference tables the engine resolves states with.
func (e *Engine) Reference() *reference.Tables {
	return e.ref
}

// Filter applies f to the snapshot.
func (e *Engine) Filter(f models.Filter) []*models.ProductObservation {
	return Apply(e.observations, f)
}

// Groups filters, clusters and summarises the catalog, then orders the
// groups for the product grid.
func (e *Engine) Groups(f models.Filter, key models.SortKey) []models.ProductGroup {
	start := time.Now()
	filtered := e.Filter(f)
	groups := BuildGroups(e.grouper.Group(filtered))
	SortGroups(groups, key)
	e.logger.Duration(start, "[engine] Grouped %d observations into %d groups", len(filtered), len(groups))
	return groups
}

// Group looks up one group of the filtered catalog by key and returns it
// with its detailed analysis.
func (e *Engine) Group(key string, f models.Filter) (models.ProductGroup, models.GroupAnalysis, error) {
	clusters := e.grouper.Group(e.Filter(f))
	for _, c := range clusters {
		if c.Key == key {
			g := BuildGroup(c)
			return g, Analyze(g, e.ref), nil
		}
	}
	return models.ProductGroup{}, models.GroupAnalysis{}, ErrGroupNotFound
}

// Analyses computes the analysis of every group concurrently. Results are
// index-aligned with groups.
func (e *Engine) Analyses(groups []models.ProductGroup, pool *utils.WorkerPool) []models.GroupAnalysis {
	out := make([]models.GroupAnalysis, len(groups))
	pool.Map(len(groups), func(i int) {
		out[i] = Analyze(groups[i], e.ref)
	})
	return out
}

// Map builds the regional, state and city rollups of the filtered catalog.
func (e *Engine) Map(f models.Filter) models.MapView {
	states := StateRollup(e.Filter(f), e.ref)
	return models.MapView{
		Regions: RegionRollup(states, e.ref.Regions),
		States:  states,
		Cities:  CityMarkers(states, e.ref),
	}
}

// Overview returns the headline counters. A store is a distinct
// retailer and city pair.
func (e *Engine) Overview(f models.Filter) models.Overview {
	filtered := e.Filter(f)
	stats := Aggregate(filtered)

	stores := make(map[string]struct{})
	for _, obs := range filtered {
		stores[obs.RetailerName+"|"+obs.City] = struct{}{}
	}

	return models.Overview{
		TotalProducts: stats.Count,
		AvgPrice:      stats.AvgPrice,
		TotalStores:   len(stores),
		TotalStates:   stats.DistinctStates,
	}
}

// FilterOptions lists the values offered by the filter controls: every
// category, the valid states present in the catalog (sorted) and the
// retailer brands (first word, first-seen order).
func (e *Engine) FilterOptions() models.FilterOptions {
	opts := models.FilterOptions{Categories: Categories()}

	seenStates := make(map[string]struct{})
	seenMarkets := make(map[string]struct{})
	for _, obs := range e.observations {
		if _, ok := seenStates[obs.StateCode]; !ok && e.ref.IsValidState(obs.StateCode) {
			seenStates[obs.StateCode] = struct{}{}
			opts.States = append(opts.States, obs.StateCode)
		}

		fields := strings.Fields(obs.RetailerName)
		if len(fields) == 0 {
			continue
		}
		if _, ok := seenMarkets[fields[0]]; !ok {
			seenMarkets[fields[0]] = struct{}{}
			opts.Markets = append(opts.Markets, fields[0])
		}
	}
	sort.Strings(opts.States)
	return opts
}

// PricePoints returns the first limit filtered observations as chart points.
// A non-positive limit returns every point.
func (e *Engine) PricePoints(f models.Filter, limit int) []models.PricePoint {
	filtered := e.Filter(f)
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	points := make([]models.PricePoint, 0, len(filtered))
	for i, obs := range filtered {
		points = append(points, models.PricePoint{
			Index:       i,
			Price:       obs.UnitPrice,
			Description: obs.Description,
			State:       obs.StateCode,
			Retailer:    obs.RetailerName,
		})
	}
	return points
}

// ImageURL resolves an observation's image reference against base. Absolute
// references are returned unchanged; a missing reference yields "".
func ImageURL(base, ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
