package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pricing-dashboard/models"
	"pricing-dashboard/reference"
	"pricing-dashboard/services"
	"pricing-dashboard/storage"
)

// loadCatalog returns the validated catalog: straight from the CSV file for
// the csv driver, otherwise from the configured store.
func loadCatalog(ctx context.Context) ([]*models.ProductObservation, error) {
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if store == nil {
		logger.Info("[catalog] Reading %s", cfg.CatalogCSVPath)
		raw, err := storage.ReadCatalogFile(cfg.CatalogCSVPath)
		if err != nil {
			return nil, err
		}
		return services.NewValidator(logger, reference.Default()).Validate(raw), nil
	}
	defer store.Close()

	logger.Info("[catalog] Reading %s store", cfg.StoreDriver)
	obs, err := store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return obs, nil
}

func newEngine(obs []*models.ProductObservation) *services.Engine {
	return services.NewEngine(obs, services.NewNormalizer(cfg.BrandName), reference.Default(), logger)
}

// filterFlags are the catalog filter options shared by report and export.
type filterFlags struct {
	category string
	state    string
	market   string
	price    string
	query    string
	sort     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "only products of this category (e.g. \"Leite Condensado\")")
	cmd.Flags().StringVar(&f.state, "state", "", "only observations from this state code")
	cmd.Flags().StringVar(&f.market, "market", "", "only retailers whose name contains this text")
	cmd.Flags().StringVar(&f.price, "price", "", "price band: low, medium or high")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "free-text search on description, retailer and city")
	cmd.Flags().StringVar(&f.sort, "sort", "", "group order: name, price-asc, price-desc, markets, variation")
}

func (f *filterFlags) parse() (models.Filter, models.SortKey, error) {
	band, err := models.ParsePriceBand(f.price)
	if err != nil {
		return models.Filter{}, "", err
	}
	sortKey, err := models.ParseSortKey(f.sort)
	if err != nil {
		return models.Filter{}, "", err
	}
	return models.Filter{
		Category:  models.Category(f.category),
		State:     f.state,
		Retailer:  f.market,
		PriceBand: band,
		Query:     f.query,
	}, sortKey, nil
}
