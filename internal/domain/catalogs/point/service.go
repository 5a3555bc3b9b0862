package point

import (
	"context"

	"minipos/internal/core/id"
	"minipos/internal/core/tx"
	"minipos/internal/domain"
	"minipos/internal/domain/audit"
)

// Service provides business logic for the Point catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     audit.Recorder
}

// NewService creates a new Point service.
func NewService(repo Repository, txManager tx.Manager, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, txManager: txManager, audit: recorder}
}

func (s *Service) Create(ctx context.Context, p *Point) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "point", p.ID, audit.ActionCreate, map[string]any{"name": p.Name})
	return nil
}

func (s *Service) Update(ctx context.Context, p *Point) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "point", p.ID, audit.ActionUpdate, map[string]any{"name": p.Name})
	return nil
}

func (s *Service) GetByID(ctx context.Context, pointID id.ID) (*Point, error) {
	return s.repo.GetByID(ctx, pointID)
}

func (s *Service) Delete(ctx context.Context, pointID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, pointID, true)
	})
	if err != nil {
		return err
	}
	s.audit.Record(ctx, "point", pointID, audit.ActionDelete, nil)
	return nil
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Point], error) {
	return s.repo.List(ctx, filter)
}
