package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restopos/terminal-svc/internal/cart"
	"restopos/terminal-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Refresher interface {
	Refresh(ctx context.Context, resources ...string)
}

type OpenScreenRequest struct {
	TableID int `json:"table_id"`
	OrderID int `json:"order_id"`
}

type ScreenView struct {
	ID       string        `json:"id"`
	TableID  int           `json:"table_id"`
	OrderID  int           `json:"order_id,omitempty"`
	Table    *domain.Table `json:"table,omitempty"`
	Order    *domain.Order `json:"order,omitempty"`
	Cart     CartView      `json:"cart"`
	Summary  Summary       `json:"summary"`
	CanClose bool          `json:"can_close"`
}

type SubmitResult struct {
	Order    *domain.Order `json:"order"`
	Navigate string        `json:"navigate,omitempty"`
	Message  string        `json:"message"`
}

type ItemRemoval struct {
	Order   *domain.Order `json:"order"`
	Message string        `json:"message"`
}

type OrderServiceInterface interface {
	OpenScreen(ctx context.Context, session *domain.Session, req OpenScreenRequest) (*ScreenView, error)
	View(ctx context.Context, session *domain.Session, screenID string) (*ScreenView, error)
	CloseScreen(session *domain.Session, screenID string) error
	DropSession(sessionID string)
	AddToCart(ctx context.Context, session *domain.Session, screenID string, foodID int) (*CartView, error)
	RemoveFromCart(session *domain.Session, screenID string, foodID int, all bool) (*CartView, error)
	Submit(ctx context.Context, session *domain.Session, screenID string) (*SubmitResult, error)
	RemoveExistingItem(ctx context.Context, session *domain.Session, screenID string, itemID int, confirmed bool) (*ItemRemoval, error)
}

// OrderService drives the ordering screens: carts, send-to-kitchen and
// removal of items already on an order.
type OrderService struct {
	orders  OrderAPI
	tables  TableAPI
	foods   FoodAPI
	refresh Refresher
	events  EventPublisher
	screens *screenRegistry
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewOrderService evicts screens left untouched for longer than screenIdle.
func NewOrderService(orders OrderAPI, tables TableAPI, foods FoodAPI, refresh Refresher, events EventPublisher, screenIdle time.Duration, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		orders:  orders,
		tables:  tables,
		foods:   foods,
		refresh: refresh,
		events:  events,
		screens: newScreenRegistry(screenIdle),
		log:     log,
		now:     time.Now,
	}
}

func (s *OrderService) OpenScreen(ctx context.Context, session *domain.Session, req OpenScreenRequest) (*ScreenView, error) {
	tableID := req.TableID
	switch {
	case req.OrderID > 0:
		if err := allow(session, domain.CapViewOrders); err != nil {
			return nil, err
		}
		order, err := s.orders.GetOrder(ctx, session.Token, req.OrderID)
		if err != nil {
			return nil, notFound(NoticeOrderNotFound, err)
		}
		tableID = order.TableID
	case req.TableID > 0:
		if err := allow(session, domain.CapViewTables); err != nil {
			return nil, err
		}
		if _, err := s.tables.GetTable(ctx, session.Token, req.TableID); err != nil {
			return nil, notFound(NoticeTableNotFound, err)
		}
	default:
		return nil, domain.ValidationErrors{"table_id": "Meja atau pesanan wajib dipilih"}
	}

	screen, evicted := s.screens.open(session.ID, tableID, req.OrderID)
	if evicted > 0 {
		s.log.WithField("screens", evicted).Info("Evicted idle screens")
	}
	s.log.WithFields(logrus.Fields{
		"screen_id": screen.ID,
		"table_id":  tableID,
		"order_id":  req.OrderID,
	}).Debug("Screen opened")
	return s.View(ctx, session, screen.ID)
}

// View re-reads the table or order and reconciles it with the screen's cart.
func (s *OrderService) View(ctx context.Context, session *domain.Session, screenID string) (*ScreenView, error) {
	tableID, orderID, err := s.target(session, screenID)
	if err != nil {
		return nil, err
	}

	view := &ScreenView{ID: screenID, TableID: tableID, OrderID: orderID}
	if orderID > 0 {
		order, err := s.orders.GetOrder(ctx, session.Token, orderID)
		if err != nil {
			return nil, notFound(NoticeOrderNotFound, err)
		}
		view.Order = order
		view.Table = order.Table
	} else {
		table, err := s.tables.GetTable(ctx, session.Token, tableID)
		if err != nil {
			return nil, notFound(NoticeTableNotFound, err)
		}
		view.Table = table
		view.Order = s.activeOrder(table)
	}

	err = s.screens.with(session.ID, screenID, func(sc *Screen) error {
		view.Cart = sc.cartView()
		return nil
	})
	if err != nil {
		return nil, err
	}

	var existing []domain.OrderItem
	if view.Order != nil {
		existing = view.Order.Items
		view.CanClose = view.Order.IsOpen() && allow(session, domain.CapCloseOrder) == nil
	}
	view.Summary = Reconcile(existing, view.Cart.Lines)
	return view, nil
}

func (s *OrderService) CloseScreen(session *domain.Session, screenID string) error {
	return s.screens.close(session.ID, screenID)
}

// DropSession discards every screen, and so every unsent cart, of a session.
func (s *OrderService) DropSession(sessionID string) {
	if n := s.screens.dropSession(sessionID); n > 0 {
		s.log.WithField("screens", n).Debug("Discarded screens of ended session")
	}
}

// AddToCart puts one more of the food on the screen's cart. The name and
// price always come from the backend's record, never from the caller.
func (s *OrderService) AddToCart(ctx context.Context, session *domain.Session, screenID string, foodID int) (*CartView, error) {
	if allow(session, domain.CapAddItems) != nil && allow(session, domain.CapCreateOrder) != nil {
		return nil, ErrForbidden
	}
	if foodID <= 0 {
		return nil, domain.ValidationErrors{"food_id": "Makanan wajib dipilih"}
	}
	if _, _, err := s.target(session, screenID); err != nil {
		return nil, err
	}
	food, err := s.foods.GetFood(ctx, session.Token, foodID)
	if err != nil {
		return nil, notFound(NoticeFoodNotFound, err)
	}

	var view CartView
	err = s.screens.with(session.ID, screenID, func(sc *Screen) error {
		sc.cart.Add(*food)
		view = sc.cartView()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *OrderService) RemoveFromCart(session *domain.Session, screenID string, foodID int, all bool) (*CartView, error) {
	var view CartView
	err := s.screens.with(session.ID, screenID, func(sc *Screen) error {
		if all {
			sc.cart.RemoveAll(foodID)
		} else {
			sc.cart.Remove(foodID)
		}
		view = sc.cartView()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Submit sends the cart to the kitchen: add-items on the open order, or
// create-order with the table and the items in one request. Only on success
// are the sent quantities taken off the cart; lines added meanwhile stay.
func (s *OrderService) Submit(ctx context.Context, session *domain.Session, screenID string) (*SubmitResult, error) {
	var (
		tableID, orderID int
		lines            []cart.Line
		items            []domain.ItemPayload
	)
	err := s.screens.with(session.ID, screenID, func(sc *Screen) error {
		if sc.cart.IsEmpty() {
			return ErrEmptyCart
		}
		if sc.submitting {
			return ErrSubmissionInFlight
		}
		sc.submitting = true
		tableID, orderID = sc.TableID, sc.OrderID
		lines, items = sc.cart.Lines(), sc.cart.ToPayload()
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer s.screens.with(session.ID, screenID, func(sc *Screen) error {
		sc.submitting = false
		return nil
	})

	logger := s.log.WithFields(logrus.Fields{"screen_id": screenID, "table_id": tableID})

	result, err := s.send(ctx, session, tableID, orderID, items)
	if err != nil {
		logger.WithError(err).Error("Failed to send order")
		return nil, err
	}

	_ = s.screens.with(session.ID, screenID, func(sc *Screen) error {
		sc.cart.Subtract(lines)
		if result.Navigate != "" {
			sc.OrderID = result.Order.ID
		}
		return nil
	})
	s.refresh.Refresh(ctx, ResourceOrders, ResourceTables)

	event := domain.KitchenEvent{
		Type:      domain.EventItemsSent,
		OrderID:   result.Order.ID,
		TableID:   tableID,
		Items:     tickets(lines),
		Operator:  session.User.Name,
		Timestamp: s.now().UTC(),
	}
	if err := s.events.PublishKitchenEvent(ctx, event); err != nil {
		logger.WithError(err).Warn("Failed to publish kitchen ticket")
	}

	logger.WithField("order_id", result.Order.ID).Info("Order sent to kitchen")
	return result, nil
}

func (s *OrderService) send(ctx context.Context, session *domain.Session, tableID, orderID int, items []domain.ItemPayload) (*SubmitResult, error) {
	active, err := s.openOrder(ctx, session, tableID, orderID)
	if err != nil {
		return nil, err
	}

	if active != nil {
		if err := allow(session, domain.CapAddItems); err != nil {
			return nil, err
		}
		updated, err := s.orders.AddItems(ctx, session.Token, active.ID, domain.AddItemsRequest{Items: items})
		if err != nil {
			return nil, failed(NoticeOrderSendFailed, err)
		}
		if updated == nil {
			updated = active
		}
		return &SubmitResult{Order: updated, Message: NoticeOrderSent}, nil
	}

	if err := allow(session, domain.CapCreateOrder); err != nil {
		return nil, err
	}
	created, err := s.orders.CreateOrder(ctx, session.Token, domain.CreateOrderRequest{TableID: tableID, Items: items})
	if err != nil {
		return nil, failed(NoticeOrderSendFailed, err)
	}
	if created == nil {
		return nil, failed(NoticeOrderSendFailed, errors.New("backend returned no order"))
	}
	return &SubmitResult{
		Order:    created,
		Navigate: fmt.Sprintf("/orders/%d", created.ID),
		Message:  NoticeOrderSent,
	}, nil
}

// RemoveExistingItem deletes an already ordered item. Without confirmed no
// request is made at all.
func (s *OrderService) RemoveExistingItem(ctx context.Context, session *domain.Session, screenID string, itemID int, confirmed bool) (*ItemRemoval, error) {
	if err := allow(session, domain.CapRemoveItems); err != nil {
		return nil, err
	}
	tableID, orderID, err := s.target(session, screenID)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrConfirmationRequired
	}

	active, err := s.openOrder(ctx, session, tableID, orderID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoOpenOrder
	}

	updated, err := s.orders.RemoveItem(ctx, session.Token, active.ID, itemID)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"order_id": active.ID, "item_id": itemID}).Error("Failed to remove order item")
		return nil, failed(NoticeItemRemoveFail, err)
	}
	s.refresh.Refresh(ctx, ResourceOrders, ResourceTables)
	return &ItemRemoval{Order: updated, Message: NoticeItemRemoved}, nil
}

func (s *OrderService) target(session *domain.Session, screenID string) (tableID, orderID int, err error) {
	err = s.screens.with(session.ID, screenID, func(sc *Screen) error {
		tableID, orderID = sc.TableID, sc.OrderID
		return nil
	})
	return tableID, orderID, err
}

// openOrder finds the order new items go to. An order-scoped screen must
// still be open; a table screen uses the table's open order, if any.
func (s *OrderService) openOrder(ctx context.Context, session *domain.Session, tableID, orderID int) (*domain.Order, error) {
	if orderID > 0 {
		order, err := s.orders.GetOrder(ctx, session.Token, orderID)
		if err != nil {
			return nil, notFound(NoticeOrderNotFound, err)
		}
		if !order.IsOpen() {
			return nil, ErrOrderClosed
		}
		return order, nil
	}

	table, err := s.tables.GetTable(ctx, session.Token, tableID)
	if err != nil {
		return nil, notFound(NoticeTableNotFound, err)
	}
	return s.activeOrder(table), nil
}

func (s *OrderService) activeOrder(table *domain.Table) *domain.Order {
	open := table.OpenOrders()
	if len(open) == 0 {
		return nil
	}
	if len(open) > 1 {
		s.log.WithFields(logrus.Fields{"table_id": table.ID, "open_orders": len(open)}).Warn("Table has several open orders, using the first")
	}
	return &open[0]
}

func tickets(lines []cart.Line) []domain.TicketItem {
	items := make([]domain.TicketItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.TicketItem{FoodID: l.Food.ID, Name: l.Food.Name, Quantity: l.Quantity})
	}
	return items
}

var _ OrderServiceInterface = (*OrderService)(nil)
