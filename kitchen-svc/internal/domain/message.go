package domain

import "time"

const (
	TypeItemsSent   = "items_sent"
	TypeOrderClosed = "order_closed"
)

type TicketMessage struct {
	Type      string       `json:"type"`
	OrderID   int          `json:"order_id"`
	TableID   int          `json:"table_id"`
	Items     []TicketItem `json:"items,omitempty"`
	Operator  string       `json:"operator"`
	Timestamp time.Time    `json:"timestamp"`
}

type TicketItem struct {
	FoodID   int    `json:"food_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Quantity is the number of portions on the ticket.
func (m TicketMessage) Quantity() int {
	total := 0
	for _, item := range m.Items {
		total += item.Quantity
	}
	return total
}

// PendingTable is one row of the kitchen board: a table and the portions
// still waiting for it.
type PendingTable struct {
	TableID  int `json:"table_id"`
	Portions int `json:"portions"`
}
