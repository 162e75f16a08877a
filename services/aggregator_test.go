package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-dashboard/models"
)

func TestAggregate(t *testing.T) {
	input := []*models.ProductObservation{
		obsAt("Manteiga", "SP", 10, "Extra - Centro", "São Paulo"),
		obsAt("Manteiga", "SP", 5, "Dia - Lapa", "São Paulo"),
		obsAt("Manteiga", "RJ", 15, "Extra - Centro", "Niterói"),
	}

	stats := Aggregate(input)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 3, stats.PricedCount)
	assert.InDelta(t, 10.0, stats.AvgPrice, 1e-9)
	assert.Equal(t, 5.0, stats.MinPrice)
	assert.Equal(t, 15.0, stats.MaxPrice)
	assert.Equal(t, 10.0, stats.MedianPrice)
	assert.Equal(t, 10.0, stats.Variation)
	assert.Equal(t, 2, stats.DistinctRetailers)
	assert.Equal(t, 2, stats.DistinctStates)
	assert.Same(t, input[1], stats.Cheapest)
	assert.Same(t, input[2], stats.Priciest)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0.0, stats.AvgPrice)
	assert.Equal(t, 0.0, stats.MinPrice)
	assert.Equal(t, 0.0, stats.MaxPrice)
	assert.Nil(t, stats.Cheapest)
	assert.Nil(t, stats.Priciest)
}

func TestAggregateSkipsInvalidPrices(t *testing.T) {
	input := []*models.ProductObservation{
		obs("Queijo", "SP", math.NaN()),
		obs("Queijo", "SP", 0),
		obs("Queijo", "SP", 4),
	}

	stats := Aggregate(input)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 2, stats.PricedCount)
	assert.Equal(t, 2.0, stats.AvgPrice)
	assert.Equal(t, 0.0, stats.MinPrice)
	assert.Same(t, input[1], stats.Cheapest)
}

func TestAggregateFirstExtremeWins(t *testing.T) {
	input := []*models.ProductObservation{
		obs("Queijo", "SP", 3),
		obs("Queijo", "RJ", 3),
	}
	stats := Aggregate(input)
	assert.Same(t, input[0], stats.Cheapest)
	assert.Same(t, input[0], stats.Priciest)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{nil, 0},
		{[]float64{7}, 7},
		{[]float64{15, 5, 10}, 10},
		{[]float64{4, 1, 3, 2}, 2},
	}
	for _, tt := range tests {
		if got := Median(tt.in); got != tt.want {
			t.Errorf("Median(%v) = %.2f; want %.2f", tt.in, got, tt.want)
		}
	}

	in := []float64{3, 1, 2}
	Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in, "Median must not reorder its input")
}

func TestBuildGroups(t *testing.T) {
	g := NewGrouper(NewNormalizer(DefaultBrand))
	groups := BuildGroups(g.Group(scenario()))
	require.Len(t, groups, 2)

	milk := groups[0]
	assert.Equal(t, "leite condensado", milk.Key)
	assert.Equal(t, models.CategoryCondensedMilk, milk.Category)
	assert.Equal(t, 2, milk.TotalProducts)
	assert.InDelta(t, 8.75, milk.AvgPrice, 1e-9)
	assert.Equal(t, 8.50, milk.MinPrice)
	assert.Equal(t, 9.00, milk.MaxPrice)
	assert.InDelta(t, 0.5, milk.PriceVariation, 1e-9)
	assert.Equal(t, "Carrefour - Pinheiros - São Paulo", milk.MinPriceLocation)
	assert.Equal(t, 2, milk.MarketCount)
	assert.Equal(t, 1, milk.StateCount)

	cheese := groups[1]
	assert.Equal(t, models.CategoryCheese, cheese.Category)
	assert.Equal(t, 1, cheese.TotalProducts)
	assert.InDelta(t, 12.00, cheese.AvgPrice, 1e-9)
}

func TestBuildGroupRepresentativePrefersImage(t *testing.T) {
	withImage := obs("Manteiga", "SP", 9)
	withImage.ImageRef = "abc.jpg"

	g := BuildGroup(Cluster{Key: "manteiga", Members: []*models.ProductObservation{obs("Manteiga", "SP", 8), withImage}})
	assert.Same(t, withImage, g.Representative)

	g = BuildGroup(Cluster{Key: "manteiga", Members: []*models.ProductObservation{obs("Manteiga", "RJ", 8)}})
	require.NotNil(t, g.Representative)
	assert.Equal(t, "RJ", g.Representative.StateCode)
}
