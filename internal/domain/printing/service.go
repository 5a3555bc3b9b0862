// Package printing turns receipts into printer payloads and hands them
// to a transport.
package printing

import (
	"context"
	"time"

	"minipos/internal/domain/documents/receipt"
	"minipos/pkg/logger"
	"minipos/pkg/ticket"
)

// Transport delivers a rendered payload to a printer. The mechanism
// (USB, network, vendor bridge) is not this package's concern.
type Transport interface {
	Send(ctx context.Context, payload string) error
}

// Service renders and prints receipt tickets.
type Service struct {
	transport Transport
}

// NewService creates a new printing service.
func NewService(transport Transport) *Service {
	return &Service{transport: transport}
}

// RenderTicket produces the printer payload for a receipt without
// sending it anywhere. The printed timestamp is the sale time.
func (s *Service) RenderTicket(r *receipt.Receipt) string {
	return ticket.Render(toTicket(r, r.CreatedAt))
}

// PrintReceipt renders the ticket and sends it to the printer.
func (s *Service) PrintReceipt(ctx context.Context, r *receipt.Receipt) error {
	payload := s.RenderTicket(r)

	if err := s.transport.Send(ctx, payload); err != nil {
		return err
	}

	logger.Info(ctx, "receipt printed", "receipt_id", r.ID, "number", r.Number)
	return nil
}

func toTicket(r *receipt.Receipt, ts time.Time) ticket.Receipt {
	items := make([]ticket.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ticket.Item{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			Price:       item.Price,
		})
	}

	payment := ticket.PaymentQR
	if r.PaymentType == receipt.PaymentCash {
		payment = ticket.PaymentCash
	}

	return ticket.Receipt{
		Items:       items,
		Total:       r.Total,
		Discount:    r.Discount,
		PaymentType: payment,
		Timestamp:   ts,
	}
}
