package dto

import (
	"time"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/core/types"
	"minipos/internal/domain/documents/receipt"
)

// ReceiptItemRequest is one line of a new receipt.
type ReceiptItemRequest struct {
	ProductID   string      `json:"productId" binding:"required"`
	ProductName string      `json:"productName" binding:"required"`
	Qty         types.Money `json:"qty"`
	Price       types.Money `json:"price"`
}

// CreateReceiptRequest for completing a sale.
type CreateReceiptRequest struct {
	Items       []ReceiptItemRequest `json:"items" binding:"required,min=1"`
	Discount    types.Money          `json:"discount"`
	PaymentType string               `json:"paymentType" binding:"required"`
	ClientID    *string              `json:"clientId"`
	ClientName  string               `json:"clientName"`
}

// ToEntity builds a Receipt for the given point and cashier.
// Total is derived from the lines, never taken from the client.
func (r CreateReceiptRequest) ToEntity(pointID, cashierID id.ID) (*receipt.Receipt, error) {
	doc := receipt.New(pointID, cashierID)
	doc.Discount = r.Discount
	doc.PaymentType = receipt.PaymentType(r.PaymentType)
	doc.ClientName = r.ClientName

	if r.ClientID != nil && *r.ClientID != "" {
		clientID, err := id.Parse(*r.ClientID)
		if err != nil {
			return nil, apperror.NewValidation("invalid client id").
				WithDetail("field", "clientId").
				WithDetail("value", *r.ClientID)
		}
		doc.ClientID = &clientID
	}

	for i, item := range r.Items {
		productID, err := id.Parse(item.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid product id").
				WithDetail("line", i+1).
				WithDetail("value", item.ProductID)
		}
		doc.AddItem(productID, item.ProductName, item.Qty, item.Price)
	}

	return doc, nil
}

// CancelReceiptRequest voids a paid receipt.
type CancelReceiptRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReceiptListQuery filters the receipt journal.
type ReceiptListQuery struct {
	Status string     `form:"status"`
	From   *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int        `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int        `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query to a repository filter scoped to one point.
func (q ReceiptListQuery) ToFilter(pointID id.ID) receipt.Filter {
	filter := receipt.Filter{
		Status:      receipt.Status(q.Status),
		CreatedFrom: q.From,
		CreatedTo:   q.To,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	if !id.IsNil(pointID) {
		filter.PointID = &pointID
	}
	return filter
}

// TicketResponse carries the rendered printer payload.
type TicketResponse struct {
	ReceiptID string `json:"receiptId"`
	Number    string `json:"number"`
	Payload   string `json:"payload"`
}
