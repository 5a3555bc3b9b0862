package handlers

import (
	"github.com/gin-gonic/gin"

	"minipos/internal/core/id"
	"minipos/internal/domain/catalogs/client"
	"minipos/internal/infrastructure/http/v1/dto"
)

// ClientHandler provides client catalog endpoints.
type ClientHandler struct {
	*BaseHandler
	service *client.Service
}

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHandler {
	return &ClientHandler{BaseHandler: base, service: service}
}

// List returns clients.
// GET /api/v1/catalog/clients
func (h *ClientHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	// Clients are shared across points.
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

// Get returns one client.
// GET /api/v1/catalog/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	clientID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	cl, err := h.service.GetByID(c.Request.Context(), clientID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, cl)
}

// Create adds a client.
// POST /api/v1/catalog/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cl := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), cl); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, cl.ID)
}

// Update modifies a client.
// PUT /api/v1/catalog/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	clientID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), clientID)
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

// Delete soft-deletes a client.
// DELETE /api/v1/catalog/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), clientID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
