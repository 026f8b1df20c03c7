package receipt

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

type PDFRenderer interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// RodRenderer prints receipt HTML to PDF through a headless Chromium.
// Bin overrides the browser binary; empty lets rod locate or download one.
type RodRenderer struct {
	Bin string
}

// 80mm roll.
const paperWidthInches = 3.15

func (r RodRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	l := launcher.New().Headless(true).Leakless(false)
	if r.Bin != "" {
		l = l.Bin(r.Bin)
	}
	defer l.Kill()

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("load receipt: %w", err)
	}

	width := paperWidthInches
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      &width,
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return data, nil
}
