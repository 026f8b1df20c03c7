package domain

import (
	"time"
)

type FoodCategory string

const (
	CategoryAppetizer  FoodCategory = "appetizer"
	CategoryMainCourse FoodCategory = "main_course"
	CategoryDessert    FoodCategory = "dessert"
	CategoryBeverage   FoodCategory = "beverage"
)

func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

type Food struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Category  FoodCategory `json:"category"`
	Price     Money        `json:"price"`
	Image     string       `json:"image,omitempty"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableInactive  TableStatus = "inactive"
)

type Table struct {
	ID        int         `json:"id"`
	Name      string      `json:"table_name"`
	Status    TableStatus `json:"status"`
	Capacity  int         `json:"capacity"`
	Orders    []Order     `json:"orders,omitempty"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
}

// OpenOrders returns every order of the table still in status open.
func (t Table) OpenOrders() []Order {
	var open []Order
	for _, o := range t.Orders {
		if o.Status == OrderOpen {
			open = append(open, o)
		}
	}
	return open
}

type TableStats struct {
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
	Inactive  int `json:"inactive"`
	Total     int `json:"total"`
}

type OrderStatus string

const (
	OrderOpen   OrderStatus = "open"
	OrderClosed OrderStatus = "closed"
)

type OrderItem struct {
	ID          int   `json:"id"`
	FoodID      int   `json:"food_id"`
	Food        *Food `json:"food,omitempty"`
	Quantity    int   `json:"quantity"`
	PriceAtTime Money `json:"price_at_time"`
	Subtotal    Money `json:"subtotal"`
}

// LineTotal is quantity x price_at_time; the server subtotal is not trusted.
func (i OrderItem) LineTotal() Money {
	return i.PriceAtTime * Money(i.Quantity)
}

type Cashier struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	ID         int         `json:"id"`
	TableID    int         `json:"table_id"`
	Table      *Table      `json:"table,omitempty"`
	UserID     int         `json:"user_id"`
	Cashier    *Cashier    `json:"cashier,omitempty"`
	Items      []OrderItem `json:"order_items"`
	TotalPrice Money       `json:"total_price"`
	Status     OrderStatus `json:"status"`
	CreatedAt  *time.Time  `json:"created_at,omitempty"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
}

func (o Order) IsOpen() bool {
	return o.Status == OrderOpen
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the explicit operator context handed to every screen and call.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
}

type FoodQuery struct {
	Category string
	Page     int
	PerPage  int
}

type OrderQuery struct {
	Status  string
	Page    int
	PerPage int
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentQRIS   PaymentMethod = "qris"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentDebit, PaymentCredit:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Tunai"
	case PaymentQRIS:
		return "QRIS"
	case PaymentDebit:
		return "Debit Card"
	case PaymentCredit:
		return "Credit Card"
	}
	return string(m)
}

// Payment is captured at checkout. It never leaves the terminal.
type Payment struct {
	Amount Money         `json:"payment_amount"`
	Method PaymentMethod `json:"payment_method"`
	Change Money         `json:"change"`
}
