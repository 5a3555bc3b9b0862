package analytics

import (
	"sort"
	"time"

	"minipos/internal/core/id"
	"minipos/internal/core/types"
	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/documents/receipt"
)

const (
	topProductsLimit   = 10
	topCategoriesLimit = 5
	dailySeriesLimit   = 7

	dateKeyLayout = "2006-01-02"
)

// Aggregate computes the full sales summary for one period.
//
// Pure function: inputs are not mutated and the result depends only on
// the arguments, including the explicit reference moment. Receipts
// outside the window or not paid are skipped here even if the caller
// pre-filtered, so the guarantees do not depend on the data source.
//
// Revenue figures use two sources deliberately kept apart: summary and
// daily series sum the stored receipt totals, while product and
// category breakdowns sum qty*price over items. Validation at the
// document boundary keeps the two reconciled.
func Aggregate(receipts []*receipt.Receipt, products []*product.Product, period Period, now time.Time) *SalesSummary {
	start := period.Start(now)

	filtered := make([]*receipt.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if r.Status != receipt.StatusPaid {
			continue
		}
		if r.CreatedAt.Before(start) {
			continue
		}
		filtered = append(filtered, r)
	}

	summary := &SalesSummary{
		Period:        period,
		TotalRevenue:  types.Zero(),
		TotalReceipts: len(filtered),
		AverageCheck:  types.Zero(),
	}

	for _, r := range filtered {
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Total)
	}
	if len(filtered) > 0 {
		summary.AverageCheck = summary.TotalRevenue.Div(types.NewMoneyFromInt(int64(len(filtered))))
	}

	productSales := accumulateProducts(filtered, products)
	summary.TopProducts = topProducts(productSales)
	summary.TopCategories = topCategories(productSales)
	summary.DailyRevenue, summary.MaxDailyRevenue = dailySeries(filtered, now.Location())
	summary.Payments = paymentSplit(filtered)

	return summary
}

// accumulateProducts folds receipt items into per-product entries,
// preserving first-seen order for stable ranking ties.
//
// Name comes from the item snapshot so historical receipts keep the
// name the product had at sale time. Category is resolved from the
// current catalog; unknown products fall back to the uncategorized
// sentinel.
func accumulateProducts(receipts []*receipt.Receipt, products []*product.Product) []ProductSales {
	categories := make(map[id.ID]string, len(products))
	for _, p := range products {
		categories[p.ID] = p.CategoryOrDefault()
	}

	index := make(map[id.ID]int)
	entries := make([]ProductSales, 0)

	for _, r := range receipts {
		for _, item := range r.Items {
			i, ok := index[item.ProductID]
			if !ok {
				category, known := categories[item.ProductID]
				if !known {
					category = product.UncategorizedLabel
				}
				entries = append(entries, ProductSales{
					ProductID: item.ProductID,
					Name:      item.ProductName,
					Category:  category,
					Count:     types.Zero(),
					Revenue:   types.Zero(),
				})
				i = len(entries) - 1
				index[item.ProductID] = i
			}
			entries[i].Count = entries[i].Count.Add(item.Qty)
			entries[i].Revenue = entries[i].Revenue.Add(item.Sum())
		}
	}

	return entries
}

func topProducts(entries []ProductSales) []ProductSales {
	ranked := make([]ProductSales, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	return ranked
}

// topCategories derives the category ranking from the per-product
// entries, so category revenue is exactly the sum of its products.
func topCategories(entries []ProductSales) []CategorySales {
	index := make(map[string]int)
	categories := make([]CategorySales, 0)

	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			categories = append(categories, CategorySales{
				Category: e.Category,
				Count:    types.Zero(),
				Revenue:  types.Zero(),
			})
			i = len(categories) - 1
			index[e.Category] = i
		}
		categories[i].Count = categories[i].Count.Add(e.Count)
		categories[i].Revenue = categories[i].Revenue.Add(e.Revenue)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Revenue.GreaterThan(categories[j].Revenue)
	})

	if len(categories) > topCategoriesLimit {
		categories = categories[:topCategoriesLimit]
	}
	return categories
}

// dailySeries buckets receipt totals by local calendar date and keeps
// the last 7 dates that actually had sales. Dates without sales stay
// absent rather than back-filled with zero, so the series can span more
// than 7 calendar days.
func dailySeries(receipts []*receipt.Receipt, loc *time.Location) ([]DailyRevenue, types.Money) {
	buckets := make(map[string]types.Money)
	for _, r := range receipts {
		key := r.CreatedAt.In(loc).Format(dateKeyLayout)
		buckets[key] = buckets[key].Add(r.Total)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Zero-padded fixed-width keys sort chronologically.
	sort.Strings(keys)

	if len(keys) > dailySeriesLimit {
		keys = keys[len(keys)-dailySeriesLimit:]
	}

	series := make([]DailyRevenue, 0, len(keys))
	maxRevenue := types.NewMoneyFromInt(1)
	for _, key := range keys {
		revenue := buckets[key]
		series = append(series, DailyRevenue{Date: key, Revenue: revenue})
		if revenue.GreaterThan(maxRevenue) {
			maxRevenue = revenue
		}
	}

	return series, maxRevenue
}

// paymentSplit partitions receipts by payment method. A receipt with a
// payment type that is neither cash nor qr counts toward the total but
// toward neither side, so the percentages need not sum to 100.
func paymentSplit(receipts []*receipt.Receipt) PaymentSplit {
	split := PaymentSplit{
		Cash: PaymentStats{Revenue: types.Zero()},
		QR:   PaymentStats{Revenue: types.Zero()},
	}

	for _, r := range receipts {
		switch r.PaymentType {
		case receipt.PaymentCash:
			split.Cash.Count++
			split.Cash.Revenue = split.Cash.Revenue.Add(r.Total)
		case receipt.PaymentQR:
			split.QR.Count++
			split.QR.Revenue = split.QR.Revenue.Add(r.Total)
		}
	}

	if total := len(receipts); total > 0 {
		split.Cash.Percent = float64(split.Cash.Count) / float64(total) * 100
		split.QR.Percent = float64(split.QR.Count) / float64(total) * 100
	}

	return split
}
