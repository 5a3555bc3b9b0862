package handlers

import (
	"github.com/gin-gonic/gin"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/domain/documents/receipt"
	"minipos/internal/domain/printing"
	"minipos/internal/infrastructure/http/v1/dto"
)

// ReceiptHandler provides receipt endpoints.
type ReceiptHandler struct {
	*BaseHandler
	service  *receipt.Service
	printing *printing.Service
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(base *BaseHandler, service *receipt.Service, printingService *printing.Service) *ReceiptHandler {
	return &ReceiptHandler{BaseHandler: base, service: service, printing: printingService}
}

// List returns the receipt journal of the current point.
// GET /api/v1/receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	var query dto.ReceiptListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	result, err := h.service.List(c.Request.Context(), query.ToFilter(pointID))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// Get returns one receipt with its lines.
// GET /api/v1/receipts/:id
func (h *ReceiptHandler) Get(c *gin.Context) {
	receiptID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), receiptID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, r)
}

// Create completes a sale.
// POST /api/v1/receipts
func (h *ReceiptHandler) Create(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	user := h.GetUser(c)
	cashierID, err := id.Parse(user.UserID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("invalid token subject"))
		return
	}

	var req dto.CreateReceiptRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity(pointID, cashierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, doc)
}

// Cancel voids a paid receipt.
// POST /api/v1/receipts/:id/cancel
func (h *ReceiptHandler) Cancel(c *gin.Context) {
	receiptID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CancelReceiptRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), receiptID, req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, r)
}

// Ticket returns the printer payload for a receipt.
// GET /api/v1/receipts/:id/ticket
func (h *ReceiptHandler) Ticket(c *gin.Context) {
	receiptID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), receiptID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.TicketResponse{
		ReceiptID: r.ID.String(),
		Number:    r.Number,
		Payload:   h.printing.RenderTicket(r),
	})
}

// Print renders a receipt and sends it to the printer transport.
// POST /api/v1/receipts/:id/print
func (h *ReceiptHandler) Print(c *gin.Context) {
	receiptID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), receiptID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.printing.PrintReceipt(c.Request.Context(), r); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "ticket sent to printer")
}
