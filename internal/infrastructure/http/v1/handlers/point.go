package handlers

import (
	"github.com/gin-gonic/gin"

	"minipos/internal/core/id"
	"minipos/internal/domain/catalogs/point"
	"minipos/internal/infrastructure/http/v1/dto"
)

// PointHandler provides point-of-sale catalog endpoints.
type PointHandler struct {
	*BaseHandler
	service *point.Service
}

// NewPointHandler creates a new point handler.
func NewPointHandler(base *BaseHandler, service *point.Service) *PointHandler {
	return &PointHandler{BaseHandler: base, service: service}
}

// List returns points of sale.
// GET /api/v1/catalog/points
func (h *PointHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := query.ToFilter(id.Nil())
	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	result.Limit = filter.Limit
	result.Offset = filter.Offset
	h.OK(c, result)
}

// Get returns one point of sale.
// GET /api/v1/catalog/points/:id
func (h *PointHandler) Get(c *gin.Context) {
	pointID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), pointID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, p)
}

// Create adds a point of sale.
// POST /api/v1/catalog/points
func (h *PointHandler) Create(c *gin.Context) {
	var req dto.CreatePointRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, p.ID)
}

// Update modifies a point of sale.
// PUT /api/v1/catalog/points/:id
func (h *PointHandler) Update(c *gin.Context) {
	pointID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePointRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), pointID)
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

// Delete soft-deletes a point of sale.
// DELETE /api/v1/catalog/points/:id
func (h *PointHandler) Delete(c *gin.Context) {
	pointID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), pointID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
