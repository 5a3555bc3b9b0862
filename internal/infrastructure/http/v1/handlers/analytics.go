package handlers

import (
	"github.com/gin-gonic/gin"

	"minipos/internal/domain/analytics"
)

// AnalyticsHandler provides sales analytics endpoints.
type AnalyticsHandler struct {
	*BaseHandler
	service *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(base *BaseHandler, service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, service: service}
}

// Sales returns the sales summary of the current point.
// GET /api/v1/analytics/sales?period=day|week|month
func (h *AnalyticsHandler) Sales(c *gin.Context) {
	pointID, ok := h.PointScope(c)
	if !ok {
		return
	}

	period, err := analytics.ParsePeriod(c.DefaultQuery("period", string(analytics.PeriodDay)))
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.service.SalesSummary(c.Request.Context(), pointID, period)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, summary)
}
