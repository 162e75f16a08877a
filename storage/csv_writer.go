package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"pricing-dashboard/models"
)

// CSVWriter exports product groups to a CSV file, one row per group.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"key", "description", "category", "members", "min_price", "avg_price",
		"median_price", "max_price", "variation", "markets", "states",
		"min_price_location", "max_price_location",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteGroups appends one row per group.
func (c *CSVWriter) WriteGroups(groups []models.ProductGroup) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, g := range groups {
		row := []string{
			g.Key,
			g.Description,
			string(g.Category),
			strconv.Itoa(g.TotalProducts),
			formatFloat(g.MinPrice),
			formatFloat(g.AvgPrice),
			formatFloat(g.MedianPrice),
			formatFloat(g.MaxPrice),
			formatFloat(g.PriceVariation),
			strconv.Itoa(g.MarketCount),
			strconv.Itoa(g.StateCount),
			g.MinPriceLocation,
			g.MaxPriceLocation,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
