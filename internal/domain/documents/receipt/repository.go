package receipt

import (
	"context"
	"time"

	"minipos/internal/core/id"
	"minipos/internal/domain"
)

// Filter narrows receipt list queries.
type Filter struct {
	// PointID scopes results to a point of sale
	PointID *id.ID

	// Status filters by lifecycle state; empty matches all
	Status Status

	// CreatedFrom / CreatedTo bound the sale timestamp (inclusive from,
	// exclusive to)
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// Pagination
	Limit  int
	Offset int
}

// Repository defines the interface for Receipt persistence.
type Repository interface {
	// Create inserts a receipt with its items.
	Create(ctx context.Context, r *Receipt) error

	// GetByID retrieves a receipt including items.
	GetByID(ctx context.Context, id id.ID) (*Receipt, error)

	// Update modifies receipt header fields (with optimistic locking).
	// Items are immutable after creation.
	Update(ctx context.Context, r *Receipt) error

	// List retrieves receipts with items, newest first.
	List(ctx context.Context, filter Filter) (domain.ListResult[*Receipt], error)

	// ListSince retrieves all receipts for a point created at or after
	// the given moment, regardless of status. Used by analytics.
	ListSince(ctx context.Context, pointID id.ID, since time.Time) ([]*Receipt, error)
}
