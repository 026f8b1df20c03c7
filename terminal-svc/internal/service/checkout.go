package service

import (
	"context"
	"strings"
	"time"

	"restopos/terminal-svc/internal/domain"
	"restopos/terminal-svc/internal/receipt"

	"github.com/sirupsen/logrus"
)

const (
	fieldPaymentAmount = "paymentAmount"
	fieldPaymentMethod = "paymentMethod"
)

// PaymentForm is the operator's raw checkout input.
type PaymentForm struct {
	Amount string               `json:"payment_amount"`
	Method domain.PaymentMethod `json:"payment_method"`
}

type Suggestion struct {
	Label  string       `json:"label"`
	Amount domain.Money `json:"amount"`
}

var roundAmounts = []domain.Money{50000, 100000, 200000}

// Quote is the live state of the checkout dialog.
type Quote struct {
	OrderID     int                     `json:"order_id"`
	Total       domain.Money            `json:"total"`
	Amount      domain.Money            `json:"payment_amount"`
	Change      domain.Money            `json:"change"`
	Suggestions []Suggestion            `json:"suggestions"`
	Methods     []MethodOption          `json:"methods"`
	Errors      domain.ValidationErrors `json:"errors,omitempty"`
	Valid       bool                    `json:"valid"`
}

type MethodOption struct {
	Value domain.PaymentMethod `json:"value"`
	Label string               `json:"label"`
}

type CloseResult struct {
	Order   domain.Order     `json:"order"`
	Payment domain.Payment   `json:"payment"`
	Receipt receipt.Document `json:"receipt"`
	Message string           `json:"message"`
}

type CheckoutServiceInterface interface {
	Quote(ctx context.Context, session *domain.Session, orderID int, form PaymentForm) (*Quote, error)
	Close(ctx context.Context, session *domain.Session, orderID int, form PaymentForm) (*CloseResult, error)
	Receipt(ctx context.Context, session *domain.Session, orderID int) (*receipt.Document, error)
}

// CheckoutService closes orders against a validated payment and produces
// their receipts.
type CheckoutService struct {
	orders  OrderAPI
	journal ReceiptJournal
	events  EventPublisher
	refresh Refresher
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewCheckoutService(orders OrderAPI, journal ReceiptJournal, events EventPublisher, refresh Refresher, log logrus.FieldLogger) *CheckoutService {
	return &CheckoutService{
		orders:  orders,
		journal: journal,
		events:  events,
		refresh: refresh,
		log:     log,
		now:     time.Now,
	}
}

// ValidatePayment checks the form against total. The returned payment is
// only meaningful when there are no errors.
func ValidatePayment(total domain.Money, form PaymentForm) (domain.Payment, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	payment := domain.Payment{Method: form.Method}

	raw := strings.TrimSpace(form.Amount)
	if raw == "" {
		errs[fieldPaymentAmount] = "Jumlah pembayaran wajib diisi"
	} else if amount, err := domain.ParseMoney(raw); err != nil || amount < 0 {
		errs[fieldPaymentAmount] = "Jumlah pembayaran tidak valid"
	} else {
		payment.Amount = amount
		payment.Change = Change(amount, total)
		if amount < total {
			errs[fieldPaymentAmount] = "Pembayaran kurang dari total tagihan"
		}
	}

	switch {
	case form.Method == "":
		errs[fieldPaymentMethod] = "Metode pembayaran wajib dipilih"
	case !form.Method.Valid():
		errs[fieldPaymentMethod] = "Metode pembayaran tidak valid"
	}

	return payment, errs
}

// Change is never negative.
func Change(amount, total domain.Money) domain.Money {
	if amount <= total {
		return 0
	}
	return amount - total
}

// Suggestions offers the exact amount first, then round amounts that cover
// the total.
func Suggestions(total domain.Money) []Suggestion {
	out := []Suggestion{{Label: "Uang Pas", Amount: total}}
	for _, amount := range roundAmounts {
		if amount >= total {
			out = append(out, Suggestion{Label: receipt.Number(amount), Amount: amount})
		}
	}
	return out
}

func Methods() []MethodOption {
	methods := []domain.PaymentMethod{domain.PaymentCash, domain.PaymentQRIS, domain.PaymentDebit, domain.PaymentCredit}
	out := make([]MethodOption, 0, len(methods))
	for _, m := range methods {
		out = append(out, MethodOption{Value: m, Label: m.Label()})
	}
	return out
}

func quote(order *domain.Order, form PaymentForm) *Quote {
	payment, errs := ValidatePayment(order.TotalPrice, form)
	q := &Quote{
		OrderID:     order.ID,
		Total:       order.TotalPrice,
		Amount:      payment.Amount,
		Change:      payment.Change,
		Suggestions: Suggestions(order.TotalPrice),
		Methods:     Methods(),
		Valid:       len(errs) == 0,
	}
	if len(errs) > 0 {
		q.Errors = errs
	}
	return q
}

func (s *CheckoutService) Quote(ctx context.Context, session *domain.Session, orderID int, form PaymentForm) (*Quote, error) {
	if err := allow(session, domain.CapCloseOrder); err != nil {
		return nil, err
	}
	order, err := s.openOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}
	return quote(order, form), nil
}

// Close validates the payment against the backend's total and closes the
// order. Invalid payments never reach the backend. The payment itself stays
// in the local journal; the close endpoint takes no body.
func (s *CheckoutService) Close(ctx context.Context, session *domain.Session, orderID int, form PaymentForm) (*CloseResult, error) {
	if err := allow(session, domain.CapCloseOrder); err != nil {
		return nil, err
	}
	order, err := s.openOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	payment, errs := ValidatePayment(order.TotalPrice, form)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	logger := s.log.WithFields(logrus.Fields{"order_id": orderID, "table_id": order.TableID})

	closed, err := s.orders.CloseOrder(ctx, session.Token, orderID)
	if err != nil {
		logger.WithError(err).Error("Failed to close order")
		return nil, failed(NoticeOrderCloseFail, err)
	}
	final := *order
	if closed != nil {
		final = *closed
		if final.Table == nil {
			final.Table = order.Table
		}
		if len(final.Items) == 0 {
			final.Items = order.Items
		}
	}
	final.Status = domain.OrderClosed

	result := &CloseResult{
		Order:   final,
		Payment: payment,
		Receipt: receipt.Build(final, &session.User, &payment),
		Message: NoticeOrderClosed,
	}

	entry := domain.ReceiptEntry{
		OrderID:     final.ID,
		Payment:     payment,
		Order:       final,
		CashierName: session.User.Name,
		PrintedAt:   s.now().UTC(),
	}
	if err := s.journal.SaveReceipt(ctx, entry); err != nil {
		logger.WithError(err).Warn("Failed to record payment")
	}

	event := domain.KitchenEvent{
		Type:      domain.EventOrderClosed,
		OrderID:   final.ID,
		TableID:   final.TableID,
		Total:     final.TotalPrice,
		Method:    payment.Method,
		Operator:  session.User.Name,
		Timestamp: s.now().UTC(),
	}
	if err := s.events.PublishKitchenEvent(ctx, event); err != nil {
		logger.WithError(err).Warn("Failed to publish order closed event")
	}

	s.refresh.Refresh(ctx, ResourceTables, ResourceOrders)
	logger.WithField("method", payment.Method).Info("Order closed")
	return result, nil
}

// Receipt rebuilds the receipt of a closed order, with the payment block and
// the closing cashier when this terminal recorded them.
func (s *CheckoutService) Receipt(ctx context.Context, session *domain.Session, orderID int) (*receipt.Document, error) {
	if err := allow(session, domain.CapPrintReceipt); err != nil {
		return nil, err
	}
	order, err := s.orders.GetOrder(ctx, session.Token, orderID)
	if err != nil {
		return nil, notFound(NoticeOrderNotFound, err)
	}
	if order.IsOpen() {
		return nil, ErrOrderNotClosed
	}

	var payment *domain.Payment
	cashier := &session.User
	entry, err := s.journal.GetReceipt(ctx, orderID)
	switch {
	case err != nil:
		s.log.WithError(err).WithField("order_id", orderID).Warn("Failed to load recorded payment")
	case entry != nil:
		payment = &entry.Payment
		if entry.CashierName != "" {
			cashier = &domain.User{Name: entry.CashierName}
		}
	}

	doc := receipt.Build(*order, cashier, payment)
	return &doc, nil
}

func (s *CheckoutService) openOrder(ctx context.Context, session *domain.Session, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, session.Token, orderID)
	if err != nil {
		return nil, notFound(NoticeOrderNotFound, err)
	}
	if !order.IsOpen() {
		return nil, ErrOrderClosed
	}
	return order, nil
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)

