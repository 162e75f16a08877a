package models

// PriceStats summarises a set of observations. Statistics only consider
// valid prices (finite, non-negative); Count includes every observation.
type PriceStats struct {
	Count             int                 `json:"count"`
	PricedCount       int                 `json:"priced_count"`
	AvgPrice          float64             `json:"avg_price"`
	MinPrice          float64             `json:"min_price"`
	MaxPrice          float64             `json:"max_price"`
	MedianPrice       float64             `json:"median_price"`
	Variation         float64             `json:"variation"`
	DistinctRetailers int                 `json:"distinct_retailers"`
	DistinctStates    int                 `json:"distinct_states"`
	Cheapest          *ProductObservation `json:"cheapest,omitempty"`
	Priciest          *ProductObservation `json:"priciest,omitempty"`
}

// ProductGroup is a cluster of observations considered the same product.
// Key is the normalized description of the anchor (first) cluster.
type ProductGroup struct {
	Key              string                `json:"key"`
	Description      string                `json:"description"`
	Category         Category              `json:"category"`
	Members          []*ProductObservation `json:"products,omitempty"`
	TotalProducts    int                   `json:"total_products"`
	MinPrice         float64               `json:"min_price"`
	MaxPrice         float64               `json:"max_price"`
	AvgPrice         float64               `json:"avg_price"`
	MedianPrice      float64               `json:"median_price"`
	PriceVariation   float64               `json:"price_variation"`
	MarketCount      int                   `json:"market_count"`
	StateCount       int                   `json:"state_count"`
	MinPriceLocation string                `json:"min_price_location"`
	MaxPriceLocation string                `json:"max_price_location"`
	Cheapest         *ProductObservation   `json:"cheapest,omitempty"`
	Priciest         *ProductObservation   `json:"priciest,omitempty"`
	Representative   *ProductObservation   `json:"representative,omitempty"`
}
