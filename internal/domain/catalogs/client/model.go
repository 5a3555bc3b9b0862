// Package client provides the Client catalog (loyalty customers).
package client

import (
	"context"
	"strings"

	"minipos/internal/core/apperror"
	"minipos/internal/core/entity"
)

// Client represents a known customer.
type Client struct {
	entity.BaseCatalog

	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone,omitempty"`
	Notes string `db:"notes" json:"notes,omitempty"`
}

// New creates a new Client.
func New(name string) *Client {
	return &Client{
		BaseCatalog: entity.NewBaseCatalog(),
		Name:        name,
	}
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("client name is required").
			WithDetail("field", "name")
	}
	return nil
}
