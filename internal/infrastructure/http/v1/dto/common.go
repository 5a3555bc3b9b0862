// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"minipos/internal/core/id"
	"minipos/internal/domain"
)

// --- List Query ---

// ListQuery contains common list query parameters.
type ListQuery struct {
	Search         string `form:"search"`
	Category       string `form:"category"`
	IncludeDeleted bool   `form:"includeDeleted"`
	OrderBy        string `form:"orderBy"`
	Limit          int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset         int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query to a domain filter scoped to one point.
func (q ListQuery) ToFilter(pointID id.ID) domain.ListFilter {
	filter := domain.DefaultListFilter()
	filter.Search = q.Search
	filter.Category = q.Category
	filter.IncludeDeleted = q.IncludeDeleted
	if q.OrderBy != "" {
		filter.OrderBy = q.OrderBy
	}
	if q.Limit > 0 {
		filter.Limit = q.Limit
	}
	filter.Offset = q.Offset
	if !id.IsNil(pointID) {
		filter.PointID = &pointID
	}
	return filter
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
