package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipos/internal/core/types"
)

func sampleReceipt() Receipt {
	return Receipt{
		Items: []Item{
			{ProductName: "Хлеб", Qty: types.NewMoneyFromInt(2), Price: types.NewMoneyFromInt(30)},
		},
		Total:       types.NewMoneyFromInt(50),
		Discount:    types.NewMoneyFromInt(10),
		PaymentType: PaymentCash,
		Timestamp:   time.Date(2026, 8, 29, 14, 5, 9, 0, time.UTC),
	}
}

func TestRender_Layout(t *testing.T) {
	payload := Render(sampleReceipt())
	lines := strings.Split(payload, "\r\r")

	require.Len(t, lines, 12)
	assert.Equal(t, "<F3232><CENTER>----------------------------\r</CENTER></F3232>", lines[0])
	assert.Equal(t, "<CENTER><F3232>Eldik Kassa</F3232></CENTER>", lines[1])
	assert.Equal(t, "<F2424><CENTER>29.08.2026, 14:05:09</CENTER></F2424>", lines[2])
	assert.Equal(t, "<F2424>Хлеб</F2424>", lines[3])
	assert.Equal(t, "<F2424><CENTER>2 × 30 = 60.00</CENTER></F2424>", lines[4])
	assert.Equal(t, "<F3232><CENTER>----------------------------</CENTER></F3232>", lines[5])
	assert.Equal(t, "<CENTER>Спасибо за покупку\r</CENTER>\r\n", lines[10])
	assert.Equal(t, "<F3232><CENTER>\r</CENTER></F3232>", lines[11])
}

func TestRender_SubtotalIsRecomputedFromItems(t *testing.T) {
	// Total intentionally disagrees with subtotal minus discount:
	// both figures are printed without reconciliation.
	payload := Render(sampleReceipt())

	assert.Contains(t, payload, "Подытог: 60.00")
	assert.Contains(t, payload, "Скидка: 10.00")
	assert.Contains(t, payload, "<F3232><CENTER>ИТОГО: 50.00</CENTER></F3232>")
}

func TestRender_PaymentTypes(t *testing.T) {
	r := sampleReceipt()

	r.PaymentType = PaymentCash
	assert.Contains(t, Render(r), "Тип оплаты: НАЛИЧНЫМИ")

	r.PaymentType = PaymentQR
	assert.Contains(t, Render(r), "Тип оплаты: QR ОПЛАТА")
}

func TestRender_FractionalQtyAndPrice(t *testing.T) {
	r := Receipt{
		Items: []Item{
			{ProductName: "Сахар", Qty: types.MustMoney("0.5"), Price: types.MustMoney("90.50")},
		},
		Total:       types.MustMoney("45.25"),
		Discount:    types.Zero(),
		PaymentType: PaymentQR,
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	payload := Render(r)
	assert.Contains(t, payload, "0.5 × 90.5 = 45.25")
	assert.Contains(t, payload, "Подытог: 45.25")
	assert.Contains(t, payload, "Скидка: 0.00")
}

func TestRender_NoItems(t *testing.T) {
	r := Receipt{
		Total:       types.Zero(),
		Discount:    types.Zero(),
		PaymentType: PaymentCash,
		Timestamp:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	lines := strings.Split(Render(r), "\r\r")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[6], "Подытог: 0.00")
}
