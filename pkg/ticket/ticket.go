// Package ticket renders receipt payloads for ESC-tag thermal printers.
//
// The printer understands a small markup language: <F2424> and <F3232>
// select font sizes, <CENTER> centers a line. Lines are joined with
// a double carriage return.
package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType identifies how the receipt was paid.
type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentQR   PaymentType = "qr"
)

// Item is a single receipt line.
type Item struct {
	ProductName string
	Qty         decimal.Decimal
	Price       decimal.Decimal
}

// Receipt holds everything needed to render a ticket.
type Receipt struct {
	Items       []Item
	Total       decimal.Decimal
	Discount    decimal.Decimal
	PaymentType PaymentType
	// Timestamp printed in the header. Callers pass the sale time
	// rather than letting the renderer read the clock.
	Timestamp time.Time
}

const (
	header    = "Eldik Kassa"
	separator = "----------------------------"
	// timeLayout matches the 24-hour ru-KG locale format.
	timeLayout = "02.01.2006, 15:04:05"
)

// Render produces the full printer payload for a receipt.
//
// The subtotal line is recomputed from the items. The total line prints
// the stored receipt total as-is, so a discrepancy between the two stays
// visible on paper instead of being silently reconciled.
func Render(r Receipt) string {
	lines := make([]string, 0, 10+2*len(r.Items))

	lines = append(lines, "<F3232><CENTER>"+separator+"\r</CENTER></F3232>")
	lines = append(lines, "<CENTER><F3232>"+header+"</F3232></CENTER>")
	lines = append(lines, "<F2424><CENTER>"+r.Timestamp.Format(timeLayout)+"</CENTER></F2424>")

	subtotal := decimal.Zero
	for _, item := range r.Items {
		sum := item.Qty.Mul(item.Price)
		subtotal = subtotal.Add(sum)
		lines = append(lines, "<F2424>"+item.ProductName+"</F2424>")
		lines = append(lines, fmt.Sprintf("<F2424><CENTER>%s × %s = %s</CENTER></F2424>",
			item.Qty.String(), item.Price.String(), sum.StringFixed(2)))
	}

	lines = append(lines, "<F3232><CENTER>"+separator+"</CENTER></F3232>")
	lines = append(lines, "<F2424><CENTER>Подытог: "+subtotal.StringFixed(2)+"</CENTER></F2424>")
	lines = append(lines, "<F2424><CENTER>Скидка: "+r.Discount.StringFixed(2)+"</CENTER></F2424>")
	lines = append(lines, "<F3232><CENTER>ИТОГО: "+r.Total.StringFixed(2)+"</CENTER></F3232>")

	payment := "QR ОПЛАТА"
	if r.PaymentType == PaymentCash {
		payment = "НАЛИЧНЫМИ"
	}
	lines = append(lines, "<F2424><CENTER>Тип оплаты: "+payment+"</CENTER></F2424>")

	lines = append(lines, "<CENTER>Спасибо за покупку\r</CENTER>\r\n")
	lines = append(lines, "<F3232><CENTER>\r</CENTER></F3232>")

	return strings.Join(lines, "\r\r")
}
