package storage

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-dashboard/config"
	"pricing-dashboard/models"
	"pricing-dashboard/utils"
)

const sampleCSV = `product_id,description,unit_price,unit_original_price,unit_min_price,details,logo_url,mercado,uf,city,neighborhood,merchant_id
1,Leite Condensado 395g,8.50,9.90,,"Lata, 395g",abc.jpg,Carrefour - Pinheiros,SP,São Paulo,Pinheiros,m1

2,"Queijo Minas, Frescal",12.00
`

func TestCSVReaderReadAll(t *testing.T) {
	rows, err := NewCSVReader(strings.NewReader(sampleCSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0].ProductID)
	assert.Equal(t, "Lata, 395g", rows[0].Details)
	assert.Equal(t, "Carrefour - Pinheiros", rows[0].Retailer)
	assert.Equal(t, "SP", rows[0].State)
	assert.Equal(t, "m1", rows[0].MerchantID)

	assert.Equal(t, "Queijo Minas, Frescal", rows[1].Description)
	assert.Equal(t, "12.00", rows[1].UnitPrice)
	assert.Equal(t, "", rows[1].Retailer)
	assert.Equal(t, "", rows[1].MerchantID)
}

func TestCSVReaderEmpty(t *testing.T) {
	rows, err := NewCSVReader(strings.NewReader("")).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCatalogFileMissing(t *testing.T) {
	_, err := ReadCatalogFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestCSVWriterWriteGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "groups.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteGroups([]models.ProductGroup{{
		Key:              "leite condensado",
		Description:      "Leite Condensado 395g",
		Category:         models.CategoryCondensedMilk,
		TotalProducts:    2,
		MinPrice:         8.5,
		AvgPrice:         8.75,
		MedianPrice:      8.5,
		MaxPrice:         9,
		PriceVariation:   0.5,
		MarketCount:      2,
		StateCount:       1,
		MinPriceLocation: "Carrefour - São Paulo",
	}}))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "key", records[0][0])
	assert.Equal(t, []string{
		"leite condensado", "Leite Condensado 395g", "Leite Condensado", "2",
		"8.50", "8.75", "8.50", "9.00", "0.50", "2", "1", "Carrefour - São Paulo", "",
	}, records[1])
}

func sampleObservations() []*models.ProductObservation {
	original := 9.9
	return []*models.ProductObservation{
		{
			ProductID: "1", Description: "Leite Condensado 395g", UnitPrice: 8.5,
			UnitOriginalPrice: &original, ImageRef: "abc.jpg",
			RetailerName: "Carrefour - Pinheiros", StateCode: "SP", City: "São Paulo",
		},
		{ProductID: "2", Description: "Queijo Minas", UnitPrice: 12, RetailerName: "Supernosso", StateCode: "MG"},
		{ProductID: "3", Description: "Manteiga", UnitPrice: 0, RetailerName: "Assaí", StateCode: "RJ"},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "catalog.sqlite"), utils.NewNopLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Write(ctx, NewBatchID(), sampleObservations()))

	got, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "1", got[0].ProductID)
	require.NotNil(t, got[0].UnitOriginalPrice)
	assert.Equal(t, 9.9, *got[0].UnitOriginalPrice)
	assert.Nil(t, got[0].UnitMinPrice)
	assert.Equal(t, "abc.jpg", got[0].ImageRef)
	assert.Equal(t, "Queijo Minas", got[1].Description)
	assert.Equal(t, 0.0, got[2].UnitPrice)
}

func TestSQLiteStoreWriteReplacesCatalog(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "catalog.sqlite"), utils.NewNopLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Write(ctx, NewBatchID(), sampleObservations()))
	require.NoError(t, store.Write(ctx, NewBatchID(), sampleObservations()[:1]))

	got, err := store.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, &config.Config{StoreDriver: DriverCSV}, utils.NewNopLogger())
	assert.NoError(t, err)
	assert.Nil(t, store)

	_, err = Open(ctx, &config.Config{StoreDriver: "mongo"}, utils.NewNopLogger())
	assert.ErrorIs(t, err, ErrUnknownDriver)

	store, err = Open(ctx, &config.Config{
		StoreDriver: DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "db", "catalog.sqlite"),
	}, utils.NewNopLogger())
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestNewBatchID(t *testing.T) {
	id := NewBatchID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewBatchID())
}
