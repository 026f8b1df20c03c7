package service

import (
	"strconv"

	"restopos/terminal-svc/internal/cart"
	"restopos/terminal-svc/internal/domain"
)

const (
	GroupExisting = "Sudah dipesan"
	GroupNew      = "Pesanan baru"
)

type SummaryLine struct {
	Key       string       `json:"key"`
	ItemID    int          `json:"item_id,omitempty"`
	FoodID    int          `json:"food_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice domain.Money `json:"unit_price"`
	Subtotal  domain.Money `json:"subtotal"`
}

type SummaryGroup struct {
	Label    string        `json:"label"`
	Lines    []SummaryLine `json:"lines"`
	Subtotal domain.Money  `json:"subtotal"`
}

// Summary is a preview; the backend's total_price stays authoritative.
type Summary struct {
	Existing   SummaryGroup `json:"existing"`
	New        SummaryGroup `json:"new"`
	GrandTotal domain.Money `json:"grand_total"`
}

// Reconcile merges persisted items (priced at price_at_time, keyed by item
// id) with pending cart lines (priced at the current food price, keyed by
// food id). Neither input is modified.
func Reconcile(existing []domain.OrderItem, lines []cart.Line) Summary {
	summary := Summary{
		Existing: SummaryGroup{Label: GroupExisting, Lines: make([]SummaryLine, 0, len(existing))},
		New:      SummaryGroup{Label: GroupNew, Lines: make([]SummaryLine, 0, len(lines))},
	}

	for _, item := range existing {
		line := SummaryLine{
			Key:       "item-" + strconv.Itoa(item.ID),
			ItemID:    item.ID,
			FoodID:    item.FoodID,
			Name:      itemName(item),
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtTime,
			Subtotal:  item.LineTotal(),
		}
		summary.Existing.Lines = append(summary.Existing.Lines, line)
		summary.Existing.Subtotal += line.Subtotal
	}

	for _, l := range lines {
		line := SummaryLine{
			Key:       "food-" + strconv.Itoa(l.Food.ID),
			FoodID:    l.Food.ID,
			Name:      l.Food.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Food.Price,
			Subtotal:  l.Subtotal(),
		}
		summary.New.Lines = append(summary.New.Lines, line)
		summary.New.Subtotal += line.Subtotal
	}

	summary.GrandTotal = summary.Existing.Subtotal + summary.New.Subtotal
	return summary
}

func itemName(item domain.OrderItem) string {
	if item.Food != nil && item.Food.Name != "" {
		return item.Food.Name
	}
	return "Item #" + strconv.Itoa(item.FoodID)
}
