// Package point provides the Point catalog (points of sale).
package point

import (
	"context"
	"strings"

	"minipos/internal/core/apperror"
	"minipos/internal/core/entity"
)

// Point represents a point of sale (a kiosk, shop, or stall).
type Point struct {
	entity.BaseCatalog

	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address,omitempty"`
}

// New creates a new Point.
func New(name string) *Point {
	return &Point{
		BaseCatalog: entity.NewBaseCatalog(),
		Name:        name,
	}
}

// Validate implements entity.Validatable.
func (p *Point) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("point name is required").
			WithDetail("field", "name")
	}
	return nil
}
