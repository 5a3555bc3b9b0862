package client

import (
	"context"

	"minipos/internal/core/id"
	"minipos/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id id.ID) (*Client, error)
	Update(ctx context.Context, c *Client) error
	SetDeletionMark(ctx context.Context, id id.ID, marked bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Client], error)
}
