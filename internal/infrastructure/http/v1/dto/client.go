package dto

import (
	"minipos/internal/domain/catalogs/client"
)

// CreateClientRequest for creating clients.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// ToEntity builds a Client.
func (r CreateClientRequest) ToEntity() *client.Client {
	c := client.New(r.Name)
	c.Phone = r.Phone
	c.Notes = r.Notes
	return c
}

// UpdateClientRequest for updating clients.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Notes   *string `json:"notes"`
	Version int     `json:"version" binding:"required,min=1"`
}

// ApplyTo merges the request into an existing client.
func (r UpdateClientRequest) ApplyTo(c *client.Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	c.SetVersion(r.Version)
}
