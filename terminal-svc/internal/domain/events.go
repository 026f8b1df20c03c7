package domain

import "time"

const (
	EventItemsSent   = "items_sent"
	EventOrderClosed = "order_closed"
)

// KitchenEvent is published on the kitchen topic after a successful write.
type KitchenEvent struct {
	Type      string        `json:"type"`
	OrderID   int           `json:"order_id"`
	TableID   int           `json:"table_id"`
	Items     []TicketItem  `json:"items,omitempty"`
	Total     Money         `json:"total,omitempty"`
	Method    PaymentMethod `json:"payment_method,omitempty"`
	Operator  string        `json:"operator"`
	Timestamp time.Time     `json:"timestamp"`
}

type TicketItem struct {
	FoodID   int    `json:"food_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ReceiptEntry is the terminal's local record of a closed order.
type ReceiptEntry struct {
	OrderID     int       `json:"order_id"`
	Payment     Payment   `json:"payment"`
	Order       Order     `json:"order"`
	CashierName string    `json:"cashier_name"`
	PrintedAt   time.Time `json:"printed_at"`
}
