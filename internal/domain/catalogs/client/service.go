package client

import (
	"context"

	"minipos/internal/core/id"
	"minipos/internal/core/tx"
	"minipos/internal/domain"
	"minipos/internal/domain/audit"
)

// Service provides business logic for the Client catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     audit.Recorder
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, txManager: txManager, audit: recorder}
}

func (s *Service) Create(ctx context.Context, c *Client) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "client", c.ID, audit.ActionCreate, map[string]any{"name": c.Name})
	return nil
}

func (s *Service) Update(ctx context.Context, c *Client) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, c)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "client", c.ID, audit.ActionUpdate, map[string]any{"name": c.Name})
	return nil
}

func (s *Service) GetByID(ctx context.Context, clientID id.ID) (*Client, error) {
	return s.repo.GetByID(ctx, clientID)
}

func (s *Service) Delete(ctx context.Context, clientID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, clientID, true)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "client", clientID, audit.ActionDelete, nil)
	return nil
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Client], error) {
	return s.repo.List(ctx, filter)
}
