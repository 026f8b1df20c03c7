package receipt

import (
	"fmt"
	"time"

	"restopos/terminal-svc/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Number formats an amount with id-ID grouping and no decimals: 75000 -> "75.000".
func Number(m domain.Money) string {
	return printer.Sprintf("%d", int64(m))
}

func Rupiah(m domain.Money) string {
	return "Rp " + Number(m)
}

// Date renders d/m/yyyy, or "-" when the order carries no timestamp.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
