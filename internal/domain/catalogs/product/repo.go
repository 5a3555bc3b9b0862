package product

import (
	"context"

	"minipos/internal/core/id"
	"minipos/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	// Create inserts a new product.
	Create(ctx context.Context, p *Product) error

	// GetByID retrieves a product by ID.
	GetByID(ctx context.Context, id id.ID) (*Product, error)

	// Update modifies an existing product (with optimistic locking).
	Update(ctx context.Context, p *Product) error

	// SetDeletionMark sets or clears the soft-delete mark.
	SetDeletionMark(ctx context.Context, id id.ID, marked bool) error

	// List retrieves products with filtering and pagination.
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error)

	// FindByBarcode retrieves the first live product with the given barcode.
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// ListCategories returns distinct non-empty category labels for a point.
	ListCategories(ctx context.Context, pointID id.ID) ([]string, error)
}
