package models

// RawObservation holds one catalog row exactly as read from the CSV source,
// before any validation or type conversion.
type RawObservation struct {
	ProductID         string
	Description       string
	UnitPrice         string
	UnitOriginalPrice string
	UnitMinPrice      string
	Details           string
	LogoURL           string
	Retailer          string
	State             string
	City              string
	Neighborhood      string
	MerchantID        string
}

// ProductObservation is one validated price sighting of a product at a
// retailer in a given location. Values are never mutated after validation.
type ProductObservation struct {
	ProductID         string   `json:"product_id"`
	Description       string   `json:"description"`
	UnitPrice         float64  `json:"unit_price"`
	UnitOriginalPrice *float64 `json:"unit_original_price,omitempty"`
	UnitMinPrice      *float64 `json:"unit_min_price,omitempty"`
	Details           string   `json:"details"`
	ImageRef          string   `json:"logo_url"`
	RetailerName      string   `json:"mercado"`
	StateCode         string   `json:"uf"`
	City              string   `json:"city"`
	Neighborhood      string   `json:"neighborhood"`
	MerchantID        string   `json:"merchant_id"`
}

// Location formats the "<retailer> - <city>" label used for cheapest and
// priciest member references.
func (o *ProductObservation) Location() string {
	return o.RetailerName + " - " + o.City
}

// HasImage reports whether the observation carries a usable image reference.
func (o *ProductObservation) HasImage() bool {
	return o.ImageRef != ""
}
