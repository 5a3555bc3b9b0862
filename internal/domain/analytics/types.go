// Package analytics turns receipts into sales summaries.
package analytics

import (
	"minipos/internal/core/id"
	"minipos/internal/core/types"
)

// ProductSales accumulates sales for one product.
type ProductSales struct {
	ProductID id.ID       `json:"productId"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Count     types.Money `json:"count"`
	Revenue   types.Money `json:"revenue"`
}

// CategorySales accumulates sales for one category label.
type CategorySales struct {
	Category string      `json:"category"`
	Count    types.Money `json:"count"`
	Revenue  types.Money `json:"revenue"`
}

// DailyRevenue is one point of the per-day revenue series.
// Date is a zero-padded YYYY-MM-DD key so lexicographic order is
// chronological order.
type DailyRevenue struct {
	Date    string      `json:"date"`
	Revenue types.Money `json:"revenue"`
}

// PaymentStats describes one side of the payment split.
type PaymentStats struct {
	Count   int         `json:"count"`
	Percent float64     `json:"percent"`
	Revenue types.Money `json:"revenue"`
}

// PaymentSplit partitions receipts by payment method.
type PaymentSplit struct {
	Cash PaymentStats `json:"cash"`
	QR   PaymentStats `json:"qr"`
}

// SalesSummary is the full set of derived views for one period.
type SalesSummary struct {
	Period        Period         `json:"period"`
	TotalRevenue  types.Money    `json:"totalRevenue"`
	TotalReceipts int            `json:"totalReceipts"`
	AverageCheck  types.Money    `json:"averageCheck"`
	TopProducts   []ProductSales `json:"topProducts"`
	TopCategories []CategorySales `json:"topCategories"`
	DailyRevenue  []DailyRevenue `json:"dailyRevenue"`
	// MaxDailyRevenue is floored at 1 so chart scaling never divides
	// by zero.
	MaxDailyRevenue types.Money  `json:"maxDailyRevenue"`
	Payments        PaymentSplit `json:"payments"`
}
