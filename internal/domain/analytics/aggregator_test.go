package analytics

import (
	"fmt"
	"regexp"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipos/internal/core/id"
	"minipos/internal/core/types"
	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/documents/receipt"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func paidReceipt(createdAt time.Time, payment receipt.PaymentType, items ...receipt.Item) *receipt.Receipt {
	r := receipt.New(id.New(), id.New())
	r.CreatedAt = createdAt
	r.PaymentType = payment
	for _, item := range items {
		r.AddItem(item.ProductID, item.ProductName, item.Qty, item.Price)
	}
	return r
}

func line(productID id.ID, name string, qty, price int64) receipt.Item {
	return receipt.Item{
		ProductID:   productID,
		ProductName: name,
		Qty:         types.NewMoneyFromInt(qty),
		Price:       types.NewMoneyFromInt(price),
	}
}

func catalogProduct(productID id.ID, name, category string) *product.Product {
	p := product.New(id.New(), name, types.NewMoneyFromInt(10))
	p.ID = productID
	p.Category = category
	return p
}

func TestAggregate_ConcreteScenario(t *testing.T) {
	bread := id.New()
	cola := id.New()
	r := paidReceipt(testNow, receipt.PaymentCash,
		line(bread, "Хлеб", 2, 30),
		line(cola, "Кола 0.5л", 1, 65),
	)
	require.True(t, r.Total.Equal(types.NewMoneyFromInt(125)))

	s := Aggregate([]*receipt.Receipt{r}, nil, PeriodDay, testNow)

	assert.True(t, s.TotalRevenue.Equal(types.NewMoneyFromInt(125)), "revenue = %s", s.TotalRevenue)
	assert.Equal(t, 1, s.TotalReceipts)
	assert.True(t, s.AverageCheck.Equal(types.NewMoneyFromInt(125)), "average = %s", s.AverageCheck)
	assert.Equal(t, 100.0, s.Payments.Cash.Percent)
	assert.Equal(t, 0.0, s.Payments.QR.Percent)
	assert.True(t, s.Payments.Cash.Revenue.Equal(types.NewMoneyFromInt(125)))
}

func TestAggregate_Empty(t *testing.T) {
	for _, period := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		s := Aggregate(nil, nil, period, testNow)

		assert.True(t, s.TotalRevenue.IsZero())
		assert.Equal(t, 0, s.TotalReceipts)
		assert.True(t, s.AverageCheck.IsZero(), "average check must be 0 on empty input")
		assert.Empty(t, s.TopProducts)
		assert.Empty(t, s.TopCategories)
		assert.Empty(t, s.DailyRevenue)
		assert.True(t, s.MaxDailyRevenue.Equal(types.NewMoneyFromInt(1)))
		assert.Equal(t, 0.0, s.Payments.Cash.Percent)
		assert.Equal(t, 0.0, s.Payments.QR.Percent)
	}
}

func TestAggregate_ExcludesCancelledAndOutOfWindow(t *testing.T) {
	pid := id.New()

	inWindow := paidReceipt(testNow.Add(-time.Hour), receipt.PaymentCash, line(pid, "Хлеб", 1, 30))
	cancelled := paidReceipt(testNow.Add(-time.Hour), receipt.PaymentCash, line(pid, "Хлеб", 5, 30))
	cancelled.Status = receipt.StatusCancelled
	tooOld := paidReceipt(testNow.AddDate(0, 0, -2), receipt.PaymentQR, line(pid, "Хлеб", 7, 30))

	s := Aggregate([]*receipt.Receipt{inWindow, cancelled, tooOld}, nil, PeriodDay, testNow)

	assert.Equal(t, 1, s.TotalReceipts)
	assert.True(t, s.TotalRevenue.Equal(types.NewMoneyFromInt(30)))
	require.Len(t, s.TopProducts, 1)
	assert.True(t, s.TopProducts[0].Count.Equal(types.NewMoneyFromInt(1)),
		"cancelled and out-of-window items must not leak into breakdowns")
}

func TestAggregate_WindowBoundaryInclusive(t *testing.T) {
	pid := id.New()
	atMidnight := paidReceipt(PeriodDay.Start(testNow), receipt.PaymentCash, line(pid, "Хлеб", 1, 30))

	s := Aggregate([]*receipt.Receipt{atMidnight}, nil, PeriodDay, testNow)
	assert.Equal(t, 1, s.TotalReceipts)
}

func TestAggregate_TopProducts(t *testing.T) {
	receipts := make([]*receipt.Receipt, 0)
	for i := 0; i < 12; i++ {
		pid := id.New()
		// Product i sells for (i+1)*10 total.
		receipts = append(receipts, paidReceipt(testNow, receipt.PaymentCash,
			line(pid, fmt.Sprintf("Товар %d", i), 1, int64((i+1)*10))))
	}

	s := Aggregate(receipts, nil, PeriodDay, testNow)

	require.Len(t, s.TopProducts, 10, "truncated to 10 of 12 distinct products")
	assert.Equal(t, "Товар 11", s.TopProducts[0].Name)
	for i := 1; i < len(s.TopProducts); i++ {
		assert.False(t, s.TopProducts[i].Revenue.GreaterThan(s.TopProducts[i-1].Revenue),
			"revenue must be non-increasing")
	}
}

func TestAggregate_TopProducts_StableTies(t *testing.T) {
	first := id.New()
	second := id.New()
	r := paidReceipt(testNow, receipt.PaymentCash,
		line(first, "Первый", 1, 50),
		line(second, "Второй", 1, 50),
	)

	s := Aggregate([]*receipt.Receipt{r}, nil, PeriodDay, testNow)

	require.Len(t, s.TopProducts, 2)
	assert.Equal(t, "Первый", s.TopProducts[0].Name, "ties keep first-seen order")
	assert.Equal(t, "Второй", s.TopProducts[1].Name)
}

func TestAggregate_ProductAccumulationAcrossReceipts(t *testing.T) {
	pid := id.New()
	r1 := paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 2, 30))
	r2 := paidReceipt(testNow, receipt.PaymentQR, line(pid, "Хлеб", 3, 30))

	s := Aggregate([]*receipt.Receipt{r1, r2}, nil, PeriodDay, testNow)

	require.Len(t, s.TopProducts, 1)
	assert.True(t, s.TopProducts[0].Count.Equal(types.NewMoneyFromInt(5)))
	assert.True(t, s.TopProducts[0].Revenue.Equal(types.NewMoneyFromInt(150)))
}

func TestAggregate_ProductNameFromItemSnapshot(t *testing.T) {
	pid := id.New()
	r := paidReceipt(testNow, receipt.PaymentCash, line(pid, "Старое имя", 1, 30))
	renamed := catalogProduct(pid, "Новое имя", "Выпечка")

	s := Aggregate([]*receipt.Receipt{r}, []*product.Product{renamed}, PeriodDay, testNow)

	require.Len(t, s.TopProducts, 1)
	assert.Equal(t, "Старое имя", s.TopProducts[0].Name, "name stays as sold")
	assert.Equal(t, "Выпечка", s.TopProducts[0].Category, "category resolves from catalog")
}

func TestAggregate_UnknownProductGetsSentinelCategory(t *testing.T) {
	r := paidReceipt(testNow, receipt.PaymentCash, line(id.New(), "Загадка", 1, 30))

	s := Aggregate([]*receipt.Receipt{r}, nil, PeriodDay, testNow)

	require.Len(t, s.TopProducts, 1)
	assert.Equal(t, product.UncategorizedLabel, s.TopProducts[0].Category)
	require.Len(t, s.TopCategories, 1)
	assert.Equal(t, product.UncategorizedLabel, s.TopCategories[0].Category)
}

func TestAggregate_TopCategories(t *testing.T) {
	receipts := make([]*receipt.Receipt, 0)
	products := make([]*product.Product, 0)
	for i := 0; i < 7; i++ {
		pid := id.New()
		products = append(products, catalogProduct(pid, "x", fmt.Sprintf("Категория %d", i)))
		receipts = append(receipts, paidReceipt(testNow, receipt.PaymentCash,
			line(pid, "x", 1, int64((i+1)*10))))
	}

	s := Aggregate(receipts, products, PeriodDay, testNow)

	require.Len(t, s.TopCategories, 5, "truncated to 5 of 7 distinct categories")
	assert.Equal(t, "Категория 6", s.TopCategories[0].Category)
	for i := 1; i < len(s.TopCategories); i++ {
		assert.False(t, s.TopCategories[i].Revenue.GreaterThan(s.TopCategories[i-1].Revenue))
	}
}

func TestAggregate_CategoryRevenueConservation(t *testing.T) {
	// Few enough categories that nothing is truncated: category revenue
	// must then equal total item revenue, no double counting, no loss.
	bakery := id.New()
	drinks1 := id.New()
	drinks2 := id.New()
	products := []*product.Product{
		catalogProduct(bakery, "Хлеб", "Выпечка"),
		catalogProduct(drinks1, "Кола", "Напитки"),
		catalogProduct(drinks2, "Вода", "Напитки"),
	}
	r := paidReceipt(testNow, receipt.PaymentCash,
		line(bakery, "Хлеб", 2, 30),
		line(drinks1, "Кола", 1, 65),
		line(drinks2, "Вода", 3, 20),
	)

	s := Aggregate([]*receipt.Receipt{r}, products, PeriodDay, testNow)

	require.Len(t, s.TopCategories, 2)
	categoryTotal := types.Zero()
	for _, c := range s.TopCategories {
		categoryTotal = categoryTotal.Add(c.Revenue)
	}
	productTotal := types.Zero()
	for _, p := range s.TopProducts {
		productTotal = productTotal.Add(p.Revenue)
	}
	assert.True(t, categoryTotal.Equal(productTotal))
	assert.True(t, categoryTotal.Equal(types.NewMoneyFromInt(185)))
}

func TestAggregate_DailySeries(t *testing.T) {
	pid := id.New()
	receipts := make([]*receipt.Receipt, 0)
	// Nine distinct days within the month window, oldest first omitted
	// from the final series.
	for i := 8; i >= 0; i-- {
		receipts = append(receipts, paidReceipt(testNow.AddDate(0, 0, -i), receipt.PaymentCash,
			line(pid, "Хлеб", 1, 30)))
	}

	s := Aggregate(receipts, nil, PeriodMonth, testNow)

	require.Len(t, s.DailyRevenue, 7, "series keeps the last 7 present dates")

	keyFormat := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	for _, point := range s.DailyRevenue {
		assert.Regexp(t, keyFormat, point.Date)
	}
	assert.True(t, sort.SliceIsSorted(s.DailyRevenue, func(i, j int) bool {
		return s.DailyRevenue[i].Date < s.DailyRevenue[j].Date
	}))
	assert.Equal(t, "2026-08-29", s.DailyRevenue[len(s.DailyRevenue)-1].Date)
	assert.Equal(t, "2026-08-23", s.DailyRevenue[0].Date)
}

func TestAggregate_DailySeriesPreservesGaps(t *testing.T) {
	pid := id.New()
	receipts := []*receipt.Receipt{
		paidReceipt(testNow.AddDate(0, 0, -10), receipt.PaymentCash, line(pid, "Хлеб", 1, 30)),
		paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 1, 40)),
	}

	s := Aggregate(receipts, nil, PeriodMonth, testNow)

	// Days without sales are absent, not zero-filled: two entries that
	// span eleven calendar days.
	require.Len(t, s.DailyRevenue, 2)
	assert.Equal(t, "2026-08-19", s.DailyRevenue[0].Date)
	assert.Equal(t, "2026-08-29", s.DailyRevenue[1].Date)
}

func TestAggregate_DailySeriesAccumulatesSameDay(t *testing.T) {
	pid := id.New()
	receipts := []*receipt.Receipt{
		paidReceipt(testNow.Add(-2*time.Hour), receipt.PaymentCash, line(pid, "Хлеб", 1, 30)),
		paidReceipt(testNow.Add(-1*time.Hour), receipt.PaymentQR, line(pid, "Хлеб", 1, 70)),
	}

	s := Aggregate(receipts, nil, PeriodDay, testNow)

	require.Len(t, s.DailyRevenue, 1)
	assert.True(t, s.DailyRevenue[0].Revenue.Equal(types.NewMoneyFromInt(100)))
	assert.True(t, s.MaxDailyRevenue.Equal(types.NewMoneyFromInt(100)))
}

func TestAggregate_MaxDailyRevenueFlooredAtOne(t *testing.T) {
	pid := id.New()
	free := paidReceipt(testNow, receipt.PaymentCash, line(pid, "Акция", 1, 0))

	s := Aggregate([]*receipt.Receipt{free}, nil, PeriodDay, testNow)

	require.Len(t, s.DailyRevenue, 1)
	assert.True(t, s.DailyRevenue[0].Revenue.IsZero())
	assert.True(t, s.MaxDailyRevenue.Equal(types.NewMoneyFromInt(1)))
}

func TestAggregate_PaymentSplit(t *testing.T) {
	pid := id.New()
	receipts := []*receipt.Receipt{
		paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 1, 30)),
		paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 1, 30)),
		paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 1, 30)),
		paidReceipt(testNow, receipt.PaymentQR, line(pid, "Хлеб", 1, 50)),
	}

	s := Aggregate(receipts, nil, PeriodDay, testNow)

	assert.Equal(t, 3, s.Payments.Cash.Count)
	assert.Equal(t, 1, s.Payments.QR.Count)
	assert.InDelta(t, 75.0, s.Payments.Cash.Percent, 1e-9)
	assert.InDelta(t, 25.0, s.Payments.QR.Percent, 1e-9)
	assert.True(t, s.Payments.Cash.Revenue.Equal(types.NewMoneyFromInt(90)))
	assert.True(t, s.Payments.QR.Revenue.Equal(types.NewMoneyFromInt(50)))
	assert.LessOrEqual(t, s.Payments.Cash.Count+s.Payments.QR.Count, s.TotalReceipts)
}

func TestAggregate_UnknownPaymentTypeCountsTowardTotalOnly(t *testing.T) {
	pid := id.New()
	odd := paidReceipt(testNow, "card", line(pid, "Хлеб", 1, 30))
	cash := paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 1, 30))

	s := Aggregate([]*receipt.Receipt{odd, cash}, nil, PeriodDay, testNow)

	assert.Equal(t, 2, s.TotalReceipts)
	assert.Equal(t, 1, s.Payments.Cash.Count)
	assert.Equal(t, 0, s.Payments.QR.Count)
	assert.Less(t, s.Payments.Cash.Count+s.Payments.QR.Count, s.TotalReceipts)
}

func TestAggregate_SummaryUsesStoredTotals(t *testing.T) {
	// Summary figures trust the stored total; breakdowns use item math.
	// Boundary validation normally keeps the two equal, but the
	// aggregator itself never reconciles them.
	pid := id.New()
	r := paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 2, 30))
	r.Total = types.NewMoneyFromInt(999)

	s := Aggregate([]*receipt.Receipt{r}, nil, PeriodDay, testNow)

	assert.True(t, s.TotalRevenue.Equal(types.NewMoneyFromInt(999)))
	require.Len(t, s.TopProducts, 1)
	assert.True(t, s.TopProducts[0].Revenue.Equal(types.NewMoneyFromInt(60)))
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	pid := id.New()
	r := paidReceipt(testNow, receipt.PaymentCash, line(pid, "Хлеб", 2, 30))
	total := r.Total
	items := len(r.Items)

	_ = Aggregate([]*receipt.Receipt{r}, nil, PeriodDay, testNow)

	assert.True(t, r.Total.Equal(total))
	assert.Equal(t, items, len(r.Items))
	assert.Equal(t, receipt.StatusPaid, r.Status)
}
