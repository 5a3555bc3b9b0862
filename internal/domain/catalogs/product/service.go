package product

import (
	"context"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/core/tx"
	"minipos/internal/domain"
	"minipos/internal/domain/audit"
	"minipos/pkg/logger"
)

// Service provides business logic for the Product catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     audit.Recorder
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		audit:     recorder,
	}
}

// Create validates and persists a new product.
// Barcodes are unique among live products; uniqueness is enforced here
// rather than at scan time so lookups never need tie-breaking.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkBarcodeFree(ctx, p); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, "product", p.ID, audit.ActionCreate, map[string]any{
		"name":  p.Name,
		"price": p.Price,
	})
	logger.Info(ctx, "product created", "product_id", p.ID, "name", p.Name)
	return nil
}

// Update validates and persists product changes.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkBarcodeFree(ctx, p); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, "product", p.ID, audit.ActionUpdate, map[string]any{
		"name":  p.Name,
		"price": p.Price,
	})
	return nil
}

// GetByID retrieves a product by ID.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// Delete soft-deletes a product.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, productID, true)
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, "product", productID, audit.ActionDelete, nil)
	logger.Info(ctx, "product deleted", "product_id", productID)
	return nil
}

// List retrieves products with filtering and pagination.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	return s.repo.List(ctx, filter)
}

// FindByBarcode retrieves the first live product matching a barcode.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*Product, error) {
	return s.repo.FindByBarcode(ctx, barcode)
}

// Categories returns distinct category labels used within a point.
func (s *Service) Categories(ctx context.Context, pointID id.ID) ([]string, error) {
	return s.repo.ListCategories(ctx, pointID)
}

// checkBarcodeFree rejects a barcode already used by another product.
func (s *Service) checkBarcodeFree(ctx context.Context, p *Product) error {
	if p.Barcode == nil {
		return nil
	}

	existing, err := s.repo.FindByBarcode(ctx, *p.Barcode)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != p.ID {
		return apperror.NewDuplicate("product", "barcode", *p.Barcode)
	}
	return nil
}
