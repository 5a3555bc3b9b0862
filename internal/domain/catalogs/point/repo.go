package point

import (
	"context"

	"minipos/internal/core/id"
	"minipos/internal/domain"
)

// Repository defines the interface for Point persistence.
type Repository interface {
	Create(ctx context.Context, p *Point) error
	GetByID(ctx context.Context, id id.ID) (*Point, error)
	Update(ctx context.Context, p *Point) error
	SetDeletionMark(ctx context.Context, id id.ID, marked bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Point], error)
}
