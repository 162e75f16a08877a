package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPriceBand = errors.New("invalid price band")
	ErrInvalidSortKey   = errors.New("invalid sort key")
)

// All is the wildcard accepted by every filter dimension.
const All = "all"

// Category is the product family derived from a description.
type Category string

const (
	CategoryCondensedMilk Category = "Leite Condensado"
	CategoryPowderedMilk  Category = "Leite em Pó"
	CategoryLiquidMilk    Category = "Leite UHT"
	CategoryDulceDeLeche  Category = "Doce de Leite"
	CategoryButter        Category = "Manteiga"
	CategoryCreamCheese   Category = "Requeijão"
	CategoryCheese        Category = "Queijo"
	CategoryCream         Category = "Creme de Leite"
	CategoryOther         Category = "Outros"
)

// PriceBand is a coarse price-range bucket used for filtering.
type PriceBand string

const (
	PriceBandAll    PriceBand = "all"
	PriceBandLow    PriceBand = "low"    // < 8
	PriceBandMedium PriceBand = "medium" // [8, 15]
	PriceBandHigh   PriceBand = "high"   // > 15
)

// ParsePriceBand accepts "", "all", "low", "medium" or "high".
func ParsePriceBand(s string) (PriceBand, error) {
	switch PriceBand(strings.ToLower(strings.TrimSpace(s))) {
	case "", PriceBandAll:
		return PriceBandAll, nil
	case PriceBandLow:
		return PriceBandLow, nil
	case PriceBandMedium:
		return PriceBandMedium, nil
	case PriceBandHigh:
		return PriceBandHigh, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriceBand, s)
}

// Contains reports whether price falls inside the band.
func (b PriceBand) Contains(price float64) bool {
	switch b {
	case PriceBandLow:
		return price < 8
	case PriceBandMedium:
		return price >= 8 && price <= 15
	case PriceBandHigh:
		return price > 15
	default:
		return true
	}
}

// SortKey selects the ordering of the product grid.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price-asc"
	SortByPriceDesc SortKey = "price-desc"
	SortByMarkets   SortKey = "markets"
	SortByVariation SortKey = "variation"
)

// ParseSortKey defaults to SortByName for an empty string.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortByName, nil
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByMarkets, SortByVariation:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Filter is the compound predicate applied before grouping. Empty strings
// and "all" leave a dimension unconstrained.
type Filter struct {
	Category  Category
	State     string
	Retailer  string
	PriceBand PriceBand
	Query     string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return isWildcard(string(f.Category)) &&
		isWildcard(f.State) &&
		isWildcard(f.Retailer) &&
		isWildcard(string(f.PriceBand)) &&
		f.Query == ""
}

func isWildcard(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, All)
}

// Active returns true when the dimension value is an actual constraint.
func Active(s string) bool {
	return !isWildcard(s)
}
