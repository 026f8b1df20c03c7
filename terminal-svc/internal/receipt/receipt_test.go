package receipt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"restopos/terminal-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() domain.Order {
	created := time.Date(2026, time.March, 7, 19, 30, 0, 0, time.UTC)
	return domain.Order{
		ID:      42,
		TableID: 3,
		Table:   &domain.Table{ID: 3, Name: "Meja 3"},
		Cashier: &domain.Cashier{ID: 9, Name: "Sari"},
		Items: []domain.OrderItem{
			{ID: 1, FoodID: 1, Food: &domain.Food{ID: 1, Name: "Nasi Goreng"}, Quantity: 2, PriceAtTime: 25000, Subtotal: 50000},
			{ID: 2, FoodID: 2, Quantity: 1, PriceAtTime: 25000},
		},
		TotalPrice: 75000,
		Status:     domain.OrderClosed,
		CreatedAt:  &created,
	}
}

func TestNumberFormatting(t *testing.T) {
	assert.Equal(t, "75.000", Number(75000))
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "1.250.000", Number(1250000))
	assert.Equal(t, "Rp 75.000", Rupiah(75000))
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5/10/2026", Date(&d))
	assert.Equal(t, "-", Date(nil))
	assert.Equal(t, "-", Date(&time.Time{}))
}

func TestBuild_Layout(t *testing.T) {
	doc := Build(sampleOrder(), &domain.User{Name: "Budi"}, nil)

	assert.Equal(t, []string{BusinessName, BusinessAddress, BusinessPhone}, doc.Header)
	assert.Equal(t, []string{"No: #42", "Tgl: 7/3/2026", "Meja: Meja 3", "Kasir: Sari"}, doc.Info)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, Item{Name: "Nasi Goreng", Detail: "2 x 25.000", Subtotal: "50.000"}, doc.Items[0])
	assert.Equal(t, Item{Name: "Item", Detail: "1 x 25.000", Subtotal: "25.000"}, doc.Items[1])
	assert.Equal(t, "Rp 75.000", doc.Total)
	assert.Empty(t, doc.Payment)
	assert.Equal(t, []string{"Terima Kasih", "Silakan Datang Kembali"}, doc.Footer)
}

func TestBuild_Deterministic(t *testing.T) {
	order := sampleOrder()
	assert.Equal(t, Build(order, nil, nil), Build(order, nil, nil))
}

func TestBuild_Placeholders(t *testing.T) {
	doc := Build(domain.Order{ID: 5, TableID: 7}, nil, nil)

	assert.Equal(t, []string{"No: #5", "Tgl: -", "Meja: 7", "Kasir: -"}, doc.Info)
	assert.Equal(t, []Item{{Name: "-"}}, doc.Items)
	assert.Equal(t, "Rp 0", doc.Total)
}

func TestBuild_CashierFallsBackToCurrentUser(t *testing.T) {
	order := sampleOrder()
	order.Cashier = nil

	doc := Build(order, &domain.User{Name: "Budi"}, nil)

	assert.Equal(t, "Kasir: Budi", doc.Info[3])
}

func TestBuild_Payment(t *testing.T) {
	doc := Build(sampleOrder(), nil, &domain.Payment{Amount: 100000, Method: domain.PaymentCash, Change: 25000})

	assert.Equal(t, []Field{
		{Label: "Metode", Value: "Tunai"},
		{Label: "Bayar", Value: "Rp 100.000"},
		{Label: "Kembali", Value: "Rp 25.000"},
	}, doc.Payment)
}

func TestText(t *testing.T) {
	out := Text(Build(sampleOrder(), nil, nil), Width)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "            RESTORAN", lines[0])
	assert.Contains(t, lines, "No: #42")
	assert.Contains(t, lines, "  2 x 25.000              50.000")
	assert.Contains(t, lines, "TOTAL                  Rp 75.000")
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), Width, l)
	}

	total := indexOf(lines, "TOTAL                  Rp 75.000")
	firstItem := indexOf(lines, "Nasi Goreng")
	footer := indexOf(lines, "          Terima Kasih")
	assert.True(t, firstItem < total && total < footer)
}

func TestHTML(t *testing.T) {
	doc := Build(sampleOrder(), nil, nil)

	page, err := HTML(doc, []byte{0x89, 'P', 'N', 'G'}, true)
	require.NoError(t, err)
	assert.Contains(t, string(page), `onload="window.print()"`)
	assert.Contains(t, string(page), "data:image/png;base64,")
	assert.Contains(t, string(page), "Rp 75.000")

	page, err = HTML(doc, nil, false)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "window.print")
	assert.NotContains(t, string(page), "<img")
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := DefaultQRGenerator{BaseURL: "http://pos.local/"}
	assert.Equal(t, "http://pos.local/orders/42", gen.Link(42))

	png, err := gen.Generate(42)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

type fakePDF struct {
	got []byte
	err error
}

func (f *fakePDF) Render(_ context.Context, html []byte) ([]byte, error) {
	f.got = html
	return []byte("%PDF-1.4"), f.err
}

func TestRenderer(t *testing.T) {
	pdf := &fakePDF{}
	r := NewRenderer(DefaultQRGenerator{BaseURL: "http://pos.local"}, pdf)
	doc := Build(sampleOrder(), nil, nil)
	ctx := context.Background()

	body, ctype, err := r.Render(ctx, doc, FormatText)
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", ctype)
	assert.Contains(t, string(body), "RESTORAN")

	_, ctype, err = r.Render(ctx, doc, FormatQR)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ctype)

	body, ctype, err = r.Render(ctx, doc, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ctype)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.NotContains(t, string(pdf.got), "window.print")

	_, _, err = r.Render(ctx, doc, "docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func indexOf(lines []string, want string) int {
	for i, l := range lines {
		if l == want {
			return i
		}
	}
	return -1
}
