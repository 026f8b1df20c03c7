package receipt

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownFormat = errors.New("unknown receipt format")

const (
	FormatText = "text"
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatQR   = "qr"
)

type Renderer struct {
	QR  QRGenerator
	PDF PDFRenderer
}

func NewRenderer(qr QRGenerator, pdf PDFRenderer) *Renderer {
	return &Renderer{QR: qr, PDF: pdf}
}

// Render returns the encoded document and its content type.
func (r *Renderer) Render(ctx context.Context, doc Document, format string) ([]byte, string, error) {
	switch format {
	case "", FormatText:
		return []byte(Text(doc, Width)), "text/plain; charset=utf-8", nil
	case FormatQR:
		png, err := r.qr(doc.OrderID)
		if err != nil {
			return nil, "", err
		}
		return png, "image/png", nil
	case FormatHTML:
		page, err := r.html(doc, true)
		if err != nil {
			return nil, "", err
		}
		return page, "text/html; charset=utf-8", nil
	case FormatPDF:
		if r.PDF == nil {
			return nil, "", fmt.Errorf("%w: pdf renderer not configured", ErrUnknownFormat)
		}
		page, err := r.html(doc, false)
		if err != nil {
			return nil, "", err
		}
		data, err := r.PDF.Render(ctx, page)
		if err != nil {
			return nil, "", err
		}
		return data, "application/pdf", nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (r *Renderer) html(doc Document, autoPrint bool) ([]byte, error) {
	var png []byte
	if r.QR != nil {
		var err error
		if png, err = r.qr(doc.OrderID); err != nil {
			return nil, err
		}
	}
	return HTML(doc, png, autoPrint)
}

func (r *Renderer) qr(orderID int) ([]byte, error) {
	if r.QR == nil {
		return nil, fmt.Errorf("%w: qr generator not configured", ErrUnknownFormat)
	}
	png, err := r.QR.Generate(orderID)
	if err != nil {
		return nil, fmt.Errorf("generate qr: %w", err)
	}
	return png, nil
}
