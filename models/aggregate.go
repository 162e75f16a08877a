package models

// StateAggregate rolls up observations for a single state code.
type StateAggregate struct {
	Code        string  `json:"uf"`
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	Count       int     `json:"product_count"`
	MarketCount int     `json:"market_count"`
	AvgPrice    float64 `json:"avg_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`

	// Carried so regions can be composed from states without revisiting
	// the observations.
	Retailers   []string `json:"-"`
	PriceSum    float64  `json:"-"`
	PricedCount int      `json:"-"`
}

// RegionAggregate composes the state aggregates of one region.
type RegionAggregate struct {
	Name         string   `json:"name"`
	States       []string `json:"states"`
	ActiveStates int      `json:"active_states"`
	TotalStates  int      `json:"total_states"`
	ProductCount int      `json:"product_count"`
	MarketCount  int      `json:"market_count"`
	AvgPrice     float64  `json:"avg_price"`
	Coverage     float64  `json:"coverage"`
}

// RetailerAggregate ranks a retailer (name before " - ") by price.
type RetailerAggregate struct {
	Name         string  `json:"market_name"`
	AvgPrice     float64 `json:"avg_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	ProductCount int     `json:"product_count"`
	Locations    int     `json:"locations"`
}

// CityMarker places state-level figures at a reference city on the map.
type CityMarker struct {
	City         string  `json:"city"`
	State        string  `json:"state"`
	Region       string  `json:"region"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	ProductCount int     `json:"product_count"`
	MarketCount  int     `json:"market_count"`
	AvgPrice     float64 `json:"avg_price"`
}

// PriceBucket is one bar of the price histogram. Max is exclusive;
// Unbounded marks the last bucket.
type PriceBucket struct {
	Label     string  `json:"range"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max,omitempty"`
	Unbounded bool    `json:"unbounded,omitempty"`
	Count     int     `json:"count"`
}

// Insights are the headline findings shown for a single product group.
type Insights struct {
	BestPrice           float64 `json:"best_price"`
	BestPriceLocation   string  `json:"best_price_location"`
	CheapestState       string  `json:"cheapest_state"`
	CheapestStateAvg    float64 `json:"cheapest_state_avg"`
	StateSpread         float64 `json:"state_spread"`
	TopState            string  `json:"top_state"`
	Concentration       float64 `json:"concentration"`
	NationalCoverage    float64 `json:"national_coverage"`
	CoveredStates       int     `json:"covered_states"`
	TotalNationalStates int     `json:"total_national_states"`
}

// GroupAnalysis is the detailed breakdown of one product group.
type GroupAnalysis struct {
	States         []StateAggregate    `json:"state_analysis"`
	Retailers      []RetailerAggregate `json:"market_ranking"`
	Histogram      []PriceBucket       `json:"price_distribution"`
	MedianPrice    float64             `json:"median_price"`
	TotalVariation float64             `json:"total_variance"`
	Insights       Insights            `json:"insights"`

	CheapestMembers []*ProductObservation `json:"cheapest_products"`
	PriciestMembers []*ProductObservation `json:"priciest_products"`
	Recommendations Recommendations       `json:"recommendations"`
}

// Recommendations are the suggested actions derived from a group analysis.
type Recommendations struct {
	BestMarket    string   `json:"best_market"`
	AvoidLocation string   `json:"avoid_location"`
	ExpandStates  []string `json:"expand_states"`
}

// MapView bundles everything the map screen needs.
type MapView struct {
	Regions []RegionAggregate `json:"regions"`
	States  []StateAggregate  `json:"states"`
	Cities  []CityMarker      `json:"cities"`
}

// Overview holds the headline counters of the dashboard.
type Overview struct {
	TotalProducts int     `json:"total_products"`
	AvgPrice      float64 `json:"avg_price"`
	TotalStores   int     `json:"total_stores"`
	TotalStates   int     `json:"total_states"`
}

// FilterOptions lists the values the filter controls can offer.
type FilterOptions struct {
	Categories []Category `json:"categories"`
	States     []string   `json:"states"`
	Markets    []string   `json:"markets"`
}

// PricePoint is one dot of the price scatter chart.
type PricePoint struct {
	Index       int     `json:"index"`
	Price       float64 `json:"unit_price"`
	Description string  `json:"description"`
	State       string  `json:"uf"`
	Retailer    string  `json:"mercado"`
}
