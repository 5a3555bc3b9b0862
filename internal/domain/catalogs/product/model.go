// Package product provides the Product catalog.
// Products are what a point of sale sells; the barcode field is the
// lookup key for scan-to-add matching.
package product

import (
	"context"
	"strings"

	"minipos/internal/core/apperror"
	"minipos/internal/core/entity"
	"minipos/internal/core/id"
	"minipos/internal/core/types"
)

// UncategorizedLabel is the sentinel category for products without one.
const UncategorizedLabel = "Без категории"

// Product represents a catalog entry.
type Product struct {
	entity.BaseCatalog

	// PointID is the owning point of sale
	PointID id.ID `db:"point_id" json:"pointId"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Price is the current unit price
	Price types.Money `db:"price" json:"price"`

	// Category is a free-text label; empty means uncategorized
	Category string `db:"category" json:"category"`

	// Barcode is the scan lookup key (unique among live products)
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// IsFast marks the product for the expedited checkout panel
	IsFast bool `db:"is_fast" json:"isFast"`

	// ImageURL is an optional product image reference
	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`
}

// New creates a new Product with required fields.
func New(pointID id.ID, name string, price types.Money) *Product {
	return &Product{
		BaseCatalog: entity.NewBaseCatalog(),
		PointID:     pointID,
		Name:        name,
		Price:       price,
	}
}

// CategoryOrDefault returns the category label, substituting the
// sentinel for empty values.
func (p *Product) CategoryOrDefault() string {
	if strings.TrimSpace(p.Category) == "" {
		return UncategorizedLabel
	}
	return p.Category
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("product name is required").
			WithDetail("field", "name")
	}

	if id.IsNil(p.PointID) {
		return apperror.NewValidation("product must belong to a point").
			WithDetail("field", "pointId")
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}

	if p.Barcode != nil && strings.TrimSpace(*p.Barcode) == "" {
		return apperror.NewValidation("barcode cannot be blank").
			WithDetail("field", "barcode")
	}

	return nil
}
