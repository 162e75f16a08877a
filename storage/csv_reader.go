package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"pricing-dashboard/models"
)

// catalogColumns is the positional layout of the catalog CSV.
var catalogColumns = []string{
	"product_id", "description", "unit_price", "unit_original_price", "unit_min_price",
	"details", "logo_url", "mercado", "uf", "city", "neighborhood", "merchant_id",
}

// CSVReader reads raw catalog rows from a CSV source. The first row is a
// header and is skipped; fields are read by position. Quoted fields may
// contain commas, and short rows are padded with empty fields.
type CSVReader struct {
	r io.Reader
}

func NewCSVReader(r io.Reader) *CSVReader {
	return &CSVReader{r: r}
}

// ReadCatalogFile opens path and reads every catalog row from it.
func ReadCatalogFile(path string) ([]*models.RawObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	return NewCSVReader(f).ReadAll()
}

// ReadAll returns every data row in file order.
func (c *CSVReader) ReadAll() ([]*models.RawObservation, error) {
	cr := csv.NewReader(c.r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	var rows []*models.RawObservation
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rawFromRecord(record))
	}
	return rows, nil
}

func rawFromRecord(record []string) *models.RawObservation {
	if len(record) < len(catalogColumns) {
		padded := make([]string, len(catalogColumns))
		copy(padded, record)
		record = padded
	}
	return &models.RawObservation{
		ProductID:         record[0],
		Description:       record[1],
		UnitPrice:         record[2],
		UnitOriginalPrice: record[3],
		UnitMinPrice:      record[4],
		Details:           record[5],
		LogoURL:           record[6],
		Retailer:          record[7],
		State:             record[8],
		City:              record[9],
		Neighborhood:      record[10],
		MerchantID:        record[11],
	}
}
