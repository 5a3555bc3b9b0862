package scanner

import (
	"context"
	"strings"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/core/types"
	"minipos/internal/domain/catalogs/product"
	"minipos/pkg/logger"
)

// Service drives the scan-to-add flow.
type Service struct {
	scanner  Scanner
	products *product.Service
}

// NewService creates a new scanner service.
func NewService(scanner Scanner, products *product.Service) *Service {
	return &Service{
		scanner:  scanner,
		products: products,
	}
}

// ScanOnce captures a single barcode. The session is stopped on every
// exit path, including decode errors and context cancellation.
func (s *Service) ScanOnce(ctx context.Context) (string, error) {
	if err := s.scanner.Start(ctx); err != nil {
		return "", apperror.NewBusinessRule("scanner_unavailable", "could not start the scanner").
			WithCause(err)
	}
	defer func() {
		if err := s.scanner.Stop(); err != nil {
			logger.Warn(ctx, "scanner stop failed", "error", err)
		}
	}()

	code, err := s.scanner.Read(ctx)
	if err != nil {
		return "", err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return "", apperror.NewValidation("scanner produced an empty barcode")
	}

	logger.Debug(ctx, "barcode scanned", "barcode", code)
	return code, nil
}

// Resolve looks up the product for a barcode.
func (s *Service) Resolve(ctx context.Context, barcode string) (*product.Product, error) {
	return s.products.FindByBarcode(ctx, barcode)
}

// ScanAndResolve captures one barcode and resolves it against the
// catalog in a single step.
func (s *Service) ScanAndResolve(ctx context.Context) (*product.Product, error) {
	code, err := s.ScanOnce(ctx)
	if err != nil {
		return nil, err
	}
	return s.Resolve(ctx, code)
}

// AddScanned creates a catalog entry for a barcode the catalog does not
// know yet. The product starts uncategorized; the category is edited
// later in the catalog.
func (s *Service) AddScanned(ctx context.Context, pointID id.ID, barcode, name string, price types.Money) (*product.Product, error) {
	p := product.New(pointID, name, price)
	p.Barcode = &barcode

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
