package dto

import (
	"minipos/internal/domain/catalogs/point"
)

// CreatePointRequest for creating points of sale.
type CreatePointRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// ToEntity builds a Point.
func (r CreatePointRequest) ToEntity() *point.Point {
	p := point.New(r.Name)
	p.Address = r.Address
	return p
}

// UpdatePointRequest for updating points of sale.
type UpdatePointRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Version int     `json:"version" binding:"required,min=1"`
}

// ApplyTo merges the request into an existing point.
func (r UpdatePointRequest) ApplyTo(p *point.Point) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	p.SetVersion(r.Version)
}
