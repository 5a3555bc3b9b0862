// Package receipt provides the Receipt document service.
package receipt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"minipos/internal/core/apperror"
	appctx "minipos/internal/core/context"
	"minipos/internal/core/id"
	"minipos/internal/core/numerator"
	"minipos/internal/core/tx"
	"minipos/internal/domain"
	"minipos/internal/domain/audit"
	"minipos/pkg/logger"
)

// NumberPrefix for receipt document numbers.
const NumberPrefix = "RC"

// Service provides business operations for receipts.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
	audit     audit.Recorder
}

// NewService creates a new receipt service.
func NewService(repo Repository, num numerator.Generator, txManager tx.Manager, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{
		repo:      repo,
		numerator: num,
		txManager: txManager,
		audit:     recorder,
	}
}

// Create validates a receipt, assigns its number, and persists it.
// The receipt is stored as paid; cancellation goes through Cancel.
func (s *Service) Create(ctx context.Context, r *Receipt) error {
	if r.Status == "" {
		r.Status = StatusPaid
	}

	if r.CashierName == "" {
		if user := appctx.GetUser(ctx); user != nil {
			r.CashierName = user.Name
		}
	}

	if err := r.Validate(ctx); err != nil {
		return err
	}

	if r.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		r.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, r); err != nil {
			return fmt.Errorf("create receipt: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, "receipt", r.ID, audit.ActionCreate, map[string]any{
		"number":      r.Number,
		"total":       r.Total,
		"paymentType": r.PaymentType,
		"items":       len(r.Items),
	})

	logger.Info(ctx, "receipt created",
		"id", r.ID,
		"number", r.Number,
		"total", r.Total,
		"payment_type", r.PaymentType)

	return nil
}

// GetByID retrieves a receipt with its items.
func (s *Service) GetByID(ctx context.Context, receiptID id.ID) (*Receipt, error) {
	return s.repo.GetByID(ctx, receiptID)
}

// List retrieves receipts matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) (domain.ListResult[*Receipt], error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

// Cancel marks a paid receipt as cancelled.
// Cancelled receipts are kept for the audit trail but excluded from
// every sales aggregate.
func (s *Service) Cancel(ctx context.Context, receiptID id.ID, reason string) (*Receipt, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperror.NewValidation("cancellation reason is required").
			WithDetail("field", "reason")
	}

	var cancelled *Receipt
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		r, err := s.repo.GetByID(ctx, receiptID)
		if err != nil {
			return err
		}

		if r.IsCancelled() {
			return apperror.NewReceiptCancelled(receiptID.String())
		}

		r.Status = StatusCancelled
		r.CancelReason = reason
		r.Touch()

		if err := s.repo.Update(ctx, r); err != nil {
			return err
		}

		cancelled = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "receipt", cancelled.ID, audit.ActionCancel, map[string]any{
		"number": cancelled.Number,
		"reason": reason,
	})

	logger.Info(ctx, "receipt cancelled",
		"id", cancelled.ID,
		"number", cancelled.Number,
		"reason", reason)

	return cancelled, nil
}
