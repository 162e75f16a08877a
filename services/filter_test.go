package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricing-dashboard/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		desc string
		want models.Category
	}{
		{"Leite Condensado Camponesa 395g", models.CategoryCondensedMilk},
		{"Leite em Pó Integral", models.CategoryPowderedMilk},
		{"Leite Integral UHT 1L", models.CategoryLiquidMilk},
		{"Doce de Leite Pastoso", models.CategoryDulceDeLeche},
		{"Manteiga com Sal", models.CategoryButter},
		{"Requeijão Cremoso", models.CategoryCreamCheese},
		{"Queijo Minas Frescal", models.CategoryCheese},
		{"Creme de Leite", models.CategoryCream},
		{"Iogurte Natural", models.CategoryOther},
		{"Leite em Po", models.CategoryOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.desc); got != tt.want {
			t.Errorf("Classify(%q) = %q; want %q", tt.desc, got, tt.want)
		}
	}
}

func TestCategoriesOtherLast(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 9)
	assert.Equal(t, models.CategoryOther, cats[len(cats)-1])
}

func TestApplyPriceBand(t *testing.T) {
	input := []*models.ProductObservation{
		obs("Queijo", "SP", 5),
		obs("Queijo", "SP", 8),
		obs("Queijo", "SP", 12),
	}

	low := Apply(input, models.Filter{PriceBand: models.PriceBandLow})
	if assert.Len(t, low, 1) {
		assert.Equal(t, 5.0, low[0].UnitPrice)
	}

	medium := Apply(input, models.Filter{PriceBand: models.PriceBandMedium})
	assert.Len(t, medium, 2)

	high := Apply(input, models.Filter{PriceBand: models.PriceBandHigh})
	assert.Empty(t, high)
}

func TestApplyZeroFilterReturnsInput(t *testing.T) {
	input := scenario()
	got := Apply(input, models.Filter{Category: "all", State: "ALL", PriceBand: models.PriceBandAll})
	assert.Equal(t, input, got)
}

func TestApplyComposesPredicates(t *testing.T) {
	input := scenario()

	tests := []struct {
		name   string
		filter models.Filter
		want   int
	}{
		{"state", models.Filter{State: "sp"}, 2},
		{"category", models.Filter{Category: models.CategoryCheese}, 1},
		{"retailer substring", models.Filter{Retailer: "carrefour"}, 1},
		{"query on city", models.Filter{Query: "belo"}, 1},
		{"query on description", models.Filter{Query: "LATA"}, 1},
		{"query keeps leading space", models.Filter{Query: " belo"}, 0},
		{"query keeps trailing space", models.Filter{Query: "Queijo "}, 1},
		{"blank query matches spaced text", models.Filter{Query: " "}, 3},
		{"state and category", models.Filter{State: "SP", Category: models.CategoryCheese}, 0},
		{"state and band", models.Filter{State: "SP", PriceBand: models.PriceBandMedium}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Apply(input, tt.filter), tt.want)
		})
	}
}
