package handlers

import (
	"github.com/gin-gonic/gin"

	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/scanner"
	"minipos/internal/infrastructure/http/v1/dto"
)

// ProductHandler provides product catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
	scans   *scanner.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service, scans *scanner.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service, scans: scans}
}

// List returns products of the current point.
// GET /api/v1/catalog/products
func (h *ProductHandler) List(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := query.ToFilter(pointID)
	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	result.Limit = filter.Limit
	result.Offset = filter.Offset
	h.OK(c, result)
}

// Get returns one product.
// GET /api/v1/catalog/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, p)
}

// Create adds a product to the current point's catalog.
// POST /api/v1/catalog/products
func (h *ProductHandler) Create(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToEntity(pointID)
	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, p.ID)
}

// Update modifies a product.
// PUT /api/v1/catalog/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(existing)
	if err := h.service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, existing)
}

// Delete soft-deletes a product.
// DELETE /api/v1/catalog/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// FindByBarcode resolves a barcode to a product.
// GET /api/v1/catalog/products/barcode/:code
func (h *ProductHandler) FindByBarcode(c *gin.Context) {
	p, err := h.service.FindByBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, p)
}

// Categories returns the distinct category labels of the current point.
// GET /api/v1/catalog/products/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	categories, err := h.service.Categories(c.Request.Context(), pointID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"categories": categories})
}

// AddScanned registers a product for a barcode that had no match.
// POST /api/v1/catalog/products/scanned
func (h *ProductHandler) AddScanned(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	var req dto.AddScannedRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.scans.AddScanned(c.Request.Context(), pointID, req.Barcode, req.Name, req.Price)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, p.ID)
}
