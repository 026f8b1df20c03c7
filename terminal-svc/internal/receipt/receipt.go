package receipt

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"restopos/terminal-svc/internal/domain"
)

const (
	BusinessName    = "RESTORAN"
	BusinessAddress = "Jl. Contoh No. 123"
	BusinessPhone   = "Telp: 0812-3456-7890"

	// Width is the column count of an 80mm thermal roll.
	Width = 32
)

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Item struct {
	Name     string `json:"name"`
	Detail   string `json:"detail,omitempty"`
	Subtotal string `json:"subtotal,omitempty"`
}

// Document is the laid-out receipt, independent of the output medium.
type Document struct {
	OrderID int      `json:"order_id"`
	Header  []string `json:"header"`
	Info    []string `json:"info"`
	Items   []Item   `json:"items"`
	Total   string   `json:"total"`
	Payment []Field  `json:"payment,omitempty"`
	Footer  []string `json:"footer"`
}

// Build lays out a receipt for order. currentUser is the cashier fallback when
// the order carries none; payment is optional.
func Build(order domain.Order, currentUser *domain.User, payment *domain.Payment) Document {
	doc := Document{
		OrderID: order.ID,
		Header:  []string{BusinessName, BusinessAddress, BusinessPhone},
		Info: []string{
			"No: #" + strconv.Itoa(order.ID),
			"Tgl: " + Date(order.CreatedAt),
			"Meja: " + tableLabel(order),
			"Kasir: " + cashierName(order, currentUser),
		},
		Total:  Rupiah(order.TotalPrice),
		Footer: []string{"Terima Kasih", "Silakan Datang Kembali"},
	}

	for _, it := range order.Items {
		name := "Item"
		if it.Food != nil && it.Food.Name != "" {
			name = it.Food.Name
		}
		subtotal := it.Subtotal
		if subtotal == 0 {
			subtotal = it.LineTotal()
		}
		doc.Items = append(doc.Items, Item{
			Name:     name,
			Detail:   strconv.Itoa(it.Quantity) + " x " + Number(it.PriceAtTime),
			Subtotal: Number(subtotal),
		})
	}
	if len(doc.Items) == 0 {
		doc.Items = []Item{{Name: "-"}}
	}

	if payment != nil {
		doc.Payment = []Field{
			{Label: "Metode", Value: payment.Method.Label()},
			{Label: "Bayar", Value: Rupiah(payment.Amount)},
			{Label: "Kembali", Value: Rupiah(payment.Change)},
		}
	}
	return doc
}

func tableLabel(order domain.Order) string {
	if order.Table != nil && order.Table.Name != "" {
		return order.Table.Name
	}
	return strconv.Itoa(order.TableID)
}

func cashierName(order domain.Order, currentUser *domain.User) string {
	if order.Cashier != nil && order.Cashier.Name != "" {
		return order.Cashier.Name
	}
	if currentUser != nil && currentUser.Name != "" {
		return currentUser.Name
	}
	return "-"
}

// Text renders the document for a thermal printer of the given column width.
func Text(doc Document, width int) string {
	if width <= 0 {
		width = Width
	}
	rule := strings.Repeat("-", width)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	for _, h := range doc.Header {
		line(center(h, width))
	}
	line(rule)
	for _, info := range doc.Info {
		line(info)
	}
	line(rule)
	for _, it := range doc.Items {
		line(it.Name)
		if it.Detail != "" || it.Subtotal != "" {
			line(spread("  "+it.Detail, it.Subtotal, width))
		}
	}
	line(rule)
	line(spread("TOTAL", doc.Total, width))
	for _, f := range doc.Payment {
		line(spread(f.Label, f.Value, width))
	}
	line("")
	for _, f := range doc.Footer {
		line(center(f, width))
	}
	return b.String()
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func spread(left, right string, width int) string {
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
