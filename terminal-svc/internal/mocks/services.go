package mocks

import (
	"context"

	"restopos/terminal-svc/internal/domain"
	"restopos/terminal-svc/internal/receipt"
	"restopos/terminal-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

// AuthService is a testify mock of service.AuthServiceInterface.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Session
	if rf, ok := ret.Get(0).(func(context.Context, domain.LoginRequest) *domain.Session); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.LoginRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Session
	if rf, ok := ret.Get(0).(func(context.Context, domain.RegisterRequest) *domain.Session); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.RegisterRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AuthService) Logout(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, sessionID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 *domain.Session
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Session); ok {
		r0 = rf(ctx, sessionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// CatalogService is a testify mock of service.CatalogServiceInterface.
type CatalogService struct {
	mock.Mock
}

func (_m *CatalogService) ListFoods(ctx context.Context, session *domain.Session, q domain.FoodQuery, search string) (*domain.Page[domain.Food], error) {
	ret := _m.Called(ctx, session, q, search)

	var r0 *domain.Page[domain.Food]
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, domain.FoodQuery, string) *domain.Page[domain.Food]); ok {
		r0 = rf(ctx, session, q, search)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Food])
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, domain.FoodQuery, string) error); ok {
		r1 = rf(ctx, session, q, search)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) ListCategories(ctx context.Context, session *domain.Session) ([]string, error) {
	ret := _m.Called(ctx, session)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session) []string); ok {
		r0 = rf(ctx, session)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session) error); ok {
		r1 = rf(ctx, session)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) CreateFood(ctx context.Context, session *domain.Session, req domain.CreateFoodRequest) (*domain.Food, error) {
	ret := _m.Called(ctx, session, req)

	var r0 *domain.Food
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, domain.CreateFoodRequest) *domain.Food); ok {
		r0 = rf(ctx, session, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, domain.CreateFoodRequest) error); ok {
		r1 = rf(ctx, session, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) UpdateFood(ctx context.Context, session *domain.Session, id int, req domain.UpdateFoodRequest) (*domain.Food, error) {
	ret := _m.Called(ctx, session, id, req)

	var r0 *domain.Food
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int, domain.UpdateFoodRequest) *domain.Food); ok {
		r0 = rf(ctx, session, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int, domain.UpdateFoodRequest) error); ok {
		r1 = rf(ctx, session, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) DeleteFood(ctx context.Context, session *domain.Session, id int) error {
	ret := _m.Called(ctx, session, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int) error); ok {
		r0 = rf(ctx, session, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *CatalogService) ListTables(ctx context.Context, session *domain.Session, search string) (*service.TableList, error) {
	ret := _m.Called(ctx, session, search)

	var r0 *service.TableList
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, string) *service.TableList); ok {
		r0 = rf(ctx, session, search)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.TableList)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, string) error); ok {
		r1 = rf(ctx, session, search)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) GetTable(ctx context.Context, session *domain.Session, id int) (*domain.Table, error) {
	ret := _m.Called(ctx, session, id)

	var r0 *domain.Table
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int) *domain.Table); ok {
		r0 = rf(ctx, session, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int) error); ok {
		r1 = rf(ctx, session, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) UpdateTableStatus(ctx context.Context, session *domain.Session, id int, req domain.UpdateTableStatusRequest) (*domain.Table, error) {
	ret := _m.Called(ctx, session, id, req)

	var r0 *domain.Table
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int, domain.UpdateTableStatusRequest) *domain.Table); ok {
		r0 = rf(ctx, session, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int, domain.UpdateTableStatusRequest) error); ok {
		r1 = rf(ctx, session, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) ListOrders(ctx context.Context, session *domain.Session, q domain.OrderQuery) (*domain.Page[domain.Order], error) {
	ret := _m.Called(ctx, session, q)

	var r0 *domain.Page[domain.Order]
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, domain.OrderQuery) *domain.Page[domain.Order]); ok {
		r0 = rf(ctx, session, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Order])
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, domain.OrderQuery) error); ok {
		r1 = rf(ctx, session, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) GetOrder(ctx context.Context, session *domain.Session, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, session, id)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int) *domain.Order); ok {
		r0 = rf(ctx, session, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int) error); ok {
		r1 = rf(ctx, session, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CatalogService) Refresh(ctx context.Context, resources ...string) {
	_ca := []interface{}{ctx}
	for _, v := range resources {
		_ca = append(_ca, v)
	}
	_m.Called(_ca...)
}

func NewCatalogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogService {
	m := &CatalogService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OrderService is a testify mock of service.OrderServiceInterface.
type OrderService struct {
	mock.Mock
}

func (_m *OrderService) OpenScreen(ctx context.Context, session *domain.Session, req service.OpenScreenRequest) (*service.ScreenView, error) {
	ret := _m.Called(ctx, session, req)

	var r0 *service.ScreenView
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, service.OpenScreenRequest) *service.ScreenView); ok {
		r0 = rf(ctx, session, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.ScreenView)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, service.OpenScreenRequest) error); ok {
		r1 = rf(ctx, session, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderService) View(ctx context.Context, session *domain.Session, screenID string) (*service.ScreenView, error) {
	ret := _m.Called(ctx, session, screenID)

	var r0 *service.ScreenView
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, string) *service.ScreenView); ok {
		r0 = rf(ctx, session, screenID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.ScreenView)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, string) error); ok {
		r1 = rf(ctx, session, screenID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderService) CloseScreen(session *domain.Session, screenID string) error {
	ret := _m.Called(session, screenID)

	var r0 error
	if rf, ok := ret.Get(0).(func(*domain.Session, string) error); ok {
		r0 = rf(session, screenID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *OrderService) DropSession(sessionID string) {
	_m.Called(sessionID)
}

func (_m *OrderService) AddToCart(ctx context.Context, session *domain.Session, screenID string, foodID int) (*service.CartView, error) {
	ret := _m.Called(ctx, session, screenID, foodID)

	var r0 *service.CartView
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, string, int) *service.CartView); ok {
		r0 = rf(ctx, session, screenID, foodID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CartView)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, string, int) error); ok {
		r1 = rf(ctx, session, screenID, foodID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderService) RemoveFromCart(session *domain.Session, screenID string, foodID int, all bool) (*service.CartView, error) {
	ret := _m.Called(session, screenID, foodID, all)

	var r0 *service.CartView
	if rf, ok := ret.Get(0).(func(*domain.Session, string, int, bool) *service.CartView); ok {
		r0 = rf(session, screenID, foodID, all)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CartView)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*domain.Session, string, int, bool) error); ok {
		r1 = rf(session, screenID, foodID, all)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderService) Submit(ctx context.Context, session *domain.Session, screenID string) (*service.SubmitResult, error) {
	ret := _m.Called(ctx, session, screenID)

	var r0 *service.SubmitResult
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, string) *service.SubmitResult); ok {
		r0 = rf(ctx, session, screenID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SubmitResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, string) error); ok {
		r1 = rf(ctx, session, screenID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderService) RemoveExistingItem(ctx context.Context, session *domain.Session, screenID string, itemID int, confirmed bool) (*service.ItemRemoval, error) {
	ret := _m.Called(ctx, session, screenID, itemID, confirmed)

	var r0 *service.ItemRemoval
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, string, int, bool) *service.ItemRemoval); ok {
		r0 = rf(ctx, session, screenID, itemID, confirmed)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.ItemRemoval)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, string, int, bool) error); ok {
		r1 = rf(ctx, session, screenID, itemID, confirmed)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// CheckoutService is a testify mock of service.CheckoutServiceInterface.
type CheckoutService struct {
	mock.Mock
}

func (_m *CheckoutService) Quote(ctx context.Context, session *domain.Session, orderID int, form service.PaymentForm) (*service.Quote, error) {
	ret := _m.Called(ctx, session, orderID, form)

	var r0 *service.Quote
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int, service.PaymentForm) *service.Quote); ok {
		r0 = rf(ctx, session, orderID, form)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Quote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int, service.PaymentForm) error); ok {
		r1 = rf(ctx, session, orderID, form)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CheckoutService) Close(ctx context.Context, session *domain.Session, orderID int, form service.PaymentForm) (*service.CloseResult, error) {
	ret := _m.Called(ctx, session, orderID, form)

	var r0 *service.CloseResult
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int, service.PaymentForm) *service.CloseResult); ok {
		r0 = rf(ctx, session, orderID, form)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CloseResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int, service.PaymentForm) error); ok {
		r1 = rf(ctx, session, orderID, form)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *CheckoutService) Receipt(ctx context.Context, session *domain.Session, orderID int) (*receipt.Document, error) {
	ret := _m.Called(ctx, session, orderID)

	var r0 *receipt.Document
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Session, int) *receipt.Document); ok {
		r0 = rf(ctx, session, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*receipt.Document)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Session, int) error); ok {
		r1 = rf(ctx, session, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewCheckoutService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutService {
	m := &CheckoutService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
