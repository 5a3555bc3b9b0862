// Package receipt provides the Receipt document (a completed sale).
package receipt

import (
	"context"

	"minipos/internal/core/apperror"
	"minipos/internal/core/entity"
	"minipos/internal/core/id"
	"minipos/internal/core/types"
)

// PaymentType identifies how a receipt was paid.
type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentQR   PaymentType = "qr"
)

// Status is the receipt lifecycle state.
type Status string

const (
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Item represents one line of a receipt.
// ProductName is denormalized at sale time so historical receipts
// survive catalog renames.
type Item struct {
	LineID      id.ID       `db:"line_id" json:"lineId"`
	ProductID   id.ID       `db:"product_id" json:"productId"`
	ProductName string      `db:"product_name" json:"productName"`
	Qty         types.Money `db:"qty" json:"qty"`
	Price       types.Money `db:"price" json:"price"`
}

// Sum returns qty * price for the line.
func (i Item) Sum() types.Money {
	return i.Qty.Mul(i.Price)
}

// Receipt represents a sale transaction.
type Receipt struct {
	entity.BaseDocument

	// Number is the human-readable document number (e.g., RC-2026-00001)
	Number string `db:"number" json:"number"`

	// PointID is the point of sale where the sale happened
	PointID id.ID `db:"point_id" json:"pointId"`

	// CashierID is the user who completed the sale
	CashierID id.ID `db:"cashier_id" json:"cashierId"`

	// CashierName is denormalized for display
	CashierName string `db:"cashier_name" json:"cashierName"`

	// ClientID optionally links a known customer
	ClientID *id.ID `db:"client_id" json:"clientId,omitempty"`

	// ClientName is denormalized for display
	ClientName string `db:"client_name" json:"clientName,omitempty"`

	// Items is the table part
	Items []Item `db:"-" json:"items"`

	// Total is the post-discount amount actually charged
	Total types.Money `db:"total" json:"total"`

	// Discount applied to the whole receipt
	Discount types.Money `db:"discount" json:"discount"`

	// PaymentType is cash or qr
	PaymentType PaymentType `db:"payment_type" json:"paymentType"`

	// Status is paid or cancelled
	Status Status `db:"status" json:"status"`

	// CancelReason explains a cancellation
	CancelReason string `db:"cancel_reason" json:"cancelReason,omitempty"`
}

// New creates a new paid Receipt.
func New(pointID, cashierID id.ID) *Receipt {
	return &Receipt{
		BaseDocument: entity.NewBaseDocument(),
		PointID:      pointID,
		CashierID:    cashierID,
		Total:        types.Zero(),
		Discount:     types.Zero(),
		Status:       StatusPaid,
		Items:        make([]Item, 0),
	}
}

// AddItem appends a line and recalculates the total.
func (r *Receipt) AddItem(productID id.ID, productName string, qty, price types.Money) {
	r.Items = append(r.Items, Item{
		LineID:      id.New(),
		ProductID:   productID,
		ProductName: productName,
		Qty:         qty,
		Price:       price,
	})
	r.RecalculateTotal()
}

// ItemsSum returns the pre-discount sum over all lines.
func (r *Receipt) ItemsSum() types.Money {
	sum := types.Zero()
	for _, item := range r.Items {
		sum = sum.Add(item.Sum())
	}
	return sum
}

// RecalculateTotal sets Total = sum(qty*price) - discount.
func (r *Receipt) RecalculateTotal() {
	r.Total = r.ItemsSum().Sub(r.Discount)
}

// IsCancelled reports whether the receipt was cancelled.
func (r *Receipt) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Validate implements entity.Validatable.
// Total must reconcile with the item lines: every downstream figure
// (analytics, tickets) can then trust either source.
func (r *Receipt) Validate(ctx context.Context) error {
	if id.IsNil(r.PointID) {
		return apperror.NewValidation("point is required").
			WithDetail("field", "pointId")
	}

	if id.IsNil(r.CashierID) {
		return apperror.NewValidation("cashier is required").
			WithDetail("field", "cashierId")
	}

	if len(r.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, item := range r.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if !item.Qty.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Price.IsNegative() {
			return apperror.NewValidation("price cannot be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	if r.Discount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}

	if !isValidPaymentType(r.PaymentType) {
		return apperror.NewValidation("unknown payment type").
			WithDetail("field", "paymentType").
			WithDetail("value", string(r.PaymentType))
	}

	if !isValidStatus(r.Status) {
		return apperror.NewValidation("unknown status").
			WithDetail("field", "status").
			WithDetail("value", string(r.Status))
	}

	if expected := r.ItemsSum().Sub(r.Discount); !r.Total.Equal(expected) {
		return apperror.NewValidation("total does not match items minus discount").
			WithDetail("field", "total").
			WithDetail("expected", expected.String()).
			WithDetail("actual", r.Total.String())
	}

	return nil
}

func isValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentCash, PaymentQR:
		return true
	}
	return false
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPaid, StatusCancelled:
		return true
	}
	return false
}
