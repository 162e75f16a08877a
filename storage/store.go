package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pricing-dashboard/config"
	"pricing-dashboard/utils"
)

var ErrUnknownDriver = errors.New("unknown store driver")

const (
	DriverCSV      = "csv"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open returns the store selected by cfg.StoreDriver. The csv driver has no
// store: the catalog is read straight from the CSV file, so Open returns a
// nil store and no error.
func Open(ctx context.Context, cfg *config.Config, logger *utils.Logger) (ObservationStore, error) {
	switch cfg.StoreDriver {
	case DriverCSV, "":
		return nil, nil
	case DriverPostgres:
		retry := &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		}
		store, err := NewPostgresStore(ctx, cfg.DSN(), retry, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverSQLite:
		store, err := NewSQLiteStore(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("storage: %w: %q", ErrUnknownDriver, cfg.StoreDriver)
}

// NewBatchID returns a fresh identifier for one import run.
func NewBatchID() string {
	return uuid.NewString()
}
