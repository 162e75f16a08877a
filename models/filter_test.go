package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceBand(t *testing.T) {
	tests := []struct {
		in   string
		want PriceBand
	}{
		{"", PriceBandAll},
		{"all", PriceBandAll},
		{"LOW", PriceBandLow},
		{" medium ", PriceBandMedium},
		{"high", PriceBandHigh},
	}
	for _, tt := range tests {
		got, err := ParsePriceBand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePriceBand("cheap")
	assert.ErrorIs(t, err, ErrInvalidPriceBand)
}

func TestPriceBandBoundaries(t *testing.T) {
	assert.True(t, PriceBandLow.Contains(7.99))
	assert.False(t, PriceBandLow.Contains(8))
	assert.True(t, PriceBandMedium.Contains(8))
	assert.True(t, PriceBandMedium.Contains(15))
	assert.False(t, PriceBandMedium.Contains(15.01))
	assert.True(t, PriceBandHigh.Contains(15.01))
	assert.False(t, PriceBandHigh.Contains(15))
	assert.True(t, PriceBandAll.Contains(-1))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByName, k)

	k, err = ParseSortKey("Price-Desc")
	require.NoError(t, err)
	assert.Equal(t, SortByPriceDesc, k)

	_, err = ParseSortKey("random")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Category: "all", State: "ALL", PriceBand: PriceBandAll}.IsZero())
	assert.False(t, Filter{State: "SP"}.IsZero())
	assert.False(t, Filter{Query: "leite"}.IsZero())
	assert.False(t, Filter{Query: " "}.IsZero())
}
