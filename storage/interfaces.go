package storage

import (
	"context"

	"pricing-dashboard/models"
)

// ObservationStore is the interface any catalog storage backend must satisfy.
// Write replaces the stored catalog; FetchAll returns it in write order.
type ObservationStore interface {
	Write(ctx context.Context, batchID string, observations []*models.ProductObservation) error
	FetchAll(ctx context.Context) ([]*models.ProductObservation, error)
	Close() error
}

// GroupWriter is the interface for exporting summarised product groups.
type GroupWriter interface {
	WriteGroups(groups []models.ProductGroup) error
	Close() error
}
