package analytics

import (
	"context"
	"fmt"
	"time"

	"minipos/internal/core/id"
	"minipos/internal/domain"
	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/documents/receipt"
)

// Service loads the snapshots and runs the aggregation.
type Service struct {
	receipts receipt.Repository
	products product.Repository

	// now is the clock source, replaceable in tests
	now func() time.Time
}

// NewService creates a new analytics service.
func NewService(receipts receipt.Repository, products product.Repository) *Service {
	return &Service{
		receipts: receipts,
		products: products,
		now:      time.Now,
	}
}

// WithClock replaces the clock source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SalesSummary computes the sales summary for a point and period.
func (s *Service) SalesSummary(ctx context.Context, pointID id.ID, period Period) (*SalesSummary, error) {
	now := s.now()
	start := period.Start(now)

	receipts, err := s.receipts.ListSince(ctx, pointID, start)
	if err != nil {
		return nil, fmt.Errorf("load receipts: %w", err)
	}

	products, err := s.products.List(ctx, domain.ListFilter{PointID: &pointID})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	return Aggregate(receipts, products.Items, period, now), nil
}
