package dto

import (
	"minipos/internal/core/id"
	"minipos/internal/core/types"
	"minipos/internal/domain/catalogs/product"
)

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Name     string      `json:"name" binding:"required"`
	Price    types.Money `json:"price"`
	Category string      `json:"category"`
	Barcode  *string     `json:"barcode"`
	IsFast   bool        `json:"isFast"`
	ImageURL *string     `json:"imageUrl"`
}

// ToEntity builds a Product owned by the given point.
func (r CreateProductRequest) ToEntity(pointID id.ID) *product.Product {
	p := product.New(pointID, r.Name, r.Price)
	p.Category = r.Category
	p.Barcode = r.Barcode
	p.IsFast = r.IsFast
	p.ImageURL = r.ImageURL
	return p
}

// UpdateProductRequest for updating products.
// Nil fields keep their current values.
type UpdateProductRequest struct {
	Name     *string      `json:"name"`
	Price    *types.Money `json:"price"`
	Category *string      `json:"category"`
	Barcode  *string      `json:"barcode"`
	IsFast   *bool        `json:"isFast"`
	ImageURL *string      `json:"imageUrl"`
	Version  int          `json:"version" binding:"required,min=1"`
}

// ApplyTo merges the request into an existing product.
func (r UpdateProductRequest) ApplyTo(p *product.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Barcode != nil {
		p.Barcode = r.Barcode
	}
	if r.IsFast != nil {
		p.IsFast = *r.IsFast
	}
	if r.ImageURL != nil {
		p.ImageURL = r.ImageURL
	}
	p.SetVersion(r.Version)
}

// AddScannedRequest registers a product for an unknown barcode.
type AddScannedRequest struct {
	Barcode string      `json:"barcode" binding:"required"`
	Name    string      `json:"name" binding:"required"`
	Price   types.Money `json:"price"`
}
