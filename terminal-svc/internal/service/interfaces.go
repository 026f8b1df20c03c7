package service

import (
	"context"
	"errors"
	"time"

	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/domain"
)

var (
	ErrForbidden            = errors.New("action not allowed for this role")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrConfirmationRequired = errors.New("removing an ordered item needs confirmation")
	ErrOrderClosed          = errors.New("order is already closed")
	ErrOrderNotClosed       = errors.New("order is still open")
	ErrNoOpenOrder          = errors.New("table has no open order")
	ErrScreenNotFound       = errors.New("screen not found")
	ErrSubmissionInFlight   = errors.New("a submission for this screen is already in progress")
	ErrSessionNotFound      = errors.New("session not found")
	ErrTableOccupied        = errors.New("occupied table status cannot be changed")
	ErrTableStatusUnchanged = errors.New("table already has this status")
)

type FoodAPI interface {
	ListFoods(ctx context.Context, token string, q domain.FoodQuery) (*domain.Page[domain.Food], error)
	GetFood(ctx context.Context, token string, id int) (*domain.Food, error)
	CreateFood(ctx context.Context, token string, req domain.CreateFoodRequest) (*domain.Food, error)
	UpdateFood(ctx context.Context, token string, id int, req domain.UpdateFoodRequest) (*domain.Food, error)
	DeleteFood(ctx context.Context, token string, id int) error
	ListCategories(ctx context.Context, token string) ([]string, error)
}

type TableAPI interface {
	ListTables(ctx context.Context, token string) ([]domain.Table, error)
	GetTable(ctx context.Context, token string, id int) (*domain.Table, error)
	UpdateTableStatus(ctx context.Context, token string, id int, req domain.UpdateTableStatusRequest) (*domain.Table, error)
}

type OrderAPI interface {
	ListOrders(ctx context.Context, token string, q domain.OrderQuery) (*domain.Page[domain.Order], error)
	GetOrder(ctx context.Context, token string, id int) (*domain.Order, error)
	CreateOrder(ctx context.Context, token string, req domain.CreateOrderRequest) (*domain.Order, error)
	AddItems(ctx context.Context, token string, orderID int, req domain.AddItemsRequest) (*domain.Order, error)
	RemoveItem(ctx context.Context, token string, orderID, itemID int) (*domain.Order, error)
	CloseOrder(ctx context.Context, token string, orderID int) (*domain.Order, error)
}

type AuthAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
}

// ListCache backs cached list reads. Refresh-on-write goes through Invalidate.
type ListCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, resource string) error
}

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type EventPublisher interface {
	PublishKitchenEvent(ctx context.Context, event domain.KitchenEvent) error
}

type ReceiptJournal interface {
	SaveReceipt(ctx context.Context, entry domain.ReceiptEntry) error
	GetReceipt(ctx context.Context, orderID int) (*domain.ReceiptEntry, error)
}

var (
	_ FoodAPI  = (*apiclient.Client)(nil)
	_ TableAPI = (*apiclient.Client)(nil)
	_ OrderAPI = (*apiclient.Client)(nil)
	_ AuthAPI  = (*apiclient.Client)(nil)
)

func allow(session *domain.Session, want domain.Capability) error {
	if session == nil || !domain.PermissionsFor(session.User.Role).Has(want) {
		return ErrForbidden
	}
	return nil
}
