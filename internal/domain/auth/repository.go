package auth

import (
	"context"

	"minipos/internal/core/id"
)

// Repository defines the interface for User persistence.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id id.ID) (*User, error)

	// GetByEmail retrieves a user by email (case-insensitive).
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update modifies an existing user (with optimistic locking).
	Update(ctx context.Context, u *User) error

	// ListByPoint retrieves users assigned to a point.
	ListByPoint(ctx context.Context, pointID id.ID) ([]*User, error)
}
