package mocks

import (
	"context"

	"restopos/terminal-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// FoodAPI is a testify mock of service.FoodAPI.
type FoodAPI struct {
	mock.Mock
}

func (_m *FoodAPI) ListFoods(ctx context.Context, token string, q domain.FoodQuery) (*domain.Page[domain.Food], error) {
	ret := _m.Called(ctx, token, q)

	var r0 *domain.Page[domain.Food]
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.FoodQuery) *domain.Page[domain.Food]); ok {
		r0 = rf(ctx, token, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Food])
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.FoodQuery) error); ok {
		r1 = rf(ctx, token, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *FoodAPI) CreateFood(ctx context.Context, token string, req domain.CreateFoodRequest) (*domain.Food, error) {
	ret := _m.Called(ctx, token, req)

	var r0 *domain.Food
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.CreateFoodRequest) *domain.Food); ok {
		r0 = rf(ctx, token, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.CreateFoodRequest) error); ok {
		r1 = rf(ctx, token, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *FoodAPI) UpdateFood(ctx context.Context, token string, id int, req domain.UpdateFoodRequest) (*domain.Food, error) {
	ret := _m.Called(ctx, token, id, req)

	var r0 *domain.Food
	if rf, ok := ret.Get(0).(func(context.Context, string, int, domain.UpdateFoodRequest) *domain.Food); ok {
		r0 = rf(ctx, token, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int, domain.UpdateFoodRequest) error); ok {
		r1 = rf(ctx, token, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *FoodAPI) GetFood(ctx context.Context, token string, id int) (*domain.Food, error) {
	ret := _m.Called(ctx, token, id)

	var r0 *domain.Food
	if rf, ok := ret.Get(0).(func(context.Context, string, int) *domain.Food); ok {
		r0 = rf(ctx, token, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Food)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, token, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *FoodAPI) DeleteFood(ctx context.Context, token string, id int) error {
	ret := _m.Called(ctx, token, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) error); ok {
		r0 = rf(ctx, token, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *FoodAPI) ListCategories(ctx context.Context, token string) ([]string, error) {
	ret := _m.Called(ctx, token)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, string) []string); ok {
		r0 = rf(ctx, token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewFoodAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *FoodAPI {
	m := &FoodAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// TableAPI is a testify mock of service.TableAPI.
type TableAPI struct {
	mock.Mock
}

func (_m *TableAPI) ListTables(ctx context.Context, token string) ([]domain.Table, error) {
	ret := _m.Called(ctx, token)

	var r0 []domain.Table
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Table); ok {
		r0 = rf(ctx, token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *TableAPI) GetTable(ctx context.Context, token string, id int) (*domain.Table, error) {
	ret := _m.Called(ctx, token, id)

	var r0 *domain.Table
	if rf, ok := ret.Get(0).(func(context.Context, string, int) *domain.Table); ok {
		r0 = rf(ctx, token, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, token, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *TableAPI) UpdateTableStatus(ctx context.Context, token string, id int, req domain.UpdateTableStatusRequest) (*domain.Table, error) {
	ret := _m.Called(ctx, token, id, req)

	var r0 *domain.Table
	if rf, ok := ret.Get(0).(func(context.Context, string, int, domain.UpdateTableStatusRequest) *domain.Table); ok {
		r0 = rf(ctx, token, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int, domain.UpdateTableStatusRequest) error); ok {
		r1 = rf(ctx, token, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewTableAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *TableAPI {
	m := &TableAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OrderAPI is a testify mock of service.OrderAPI.
type OrderAPI struct {
	mock.Mock
}

func (_m *OrderAPI) ListOrders(ctx context.Context, token string, q domain.OrderQuery) (*domain.Page[domain.Order], error) {
	ret := _m.Called(ctx, token, q)

	var r0 *domain.Page[domain.Order]
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.OrderQuery) *domain.Page[domain.Order]); ok {
		r0 = rf(ctx, token, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Order])
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.OrderQuery) error); ok {
		r1 = rf(ctx, token, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderAPI) GetOrder(ctx context.Context, token string, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, token, id)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, int) *domain.Order); ok {
		r0 = rf(ctx, token, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, token, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderAPI) CreateOrder(ctx context.Context, token string, req domain.CreateOrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, token, req)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.CreateOrderRequest) *domain.Order); ok {
		r0 = rf(ctx, token, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.CreateOrderRequest) error); ok {
		r1 = rf(ctx, token, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderAPI) AddItems(ctx context.Context, token string, orderID int, req domain.AddItemsRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, token, orderID, req)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, int, domain.AddItemsRequest) *domain.Order); ok {
		r0 = rf(ctx, token, orderID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int, domain.AddItemsRequest) error); ok {
		r1 = rf(ctx, token, orderID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderAPI) RemoveItem(ctx context.Context, token string, orderID int, itemID int) (*domain.Order, error) {
	ret := _m.Called(ctx, token, orderID, itemID)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, int, int) *domain.Order); ok {
		r0 = rf(ctx, token, orderID, itemID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int, int) error); ok {
		r1 = rf(ctx, token, orderID, itemID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderAPI) CloseOrder(ctx context.Context, token string, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, token, orderID)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, int) *domain.Order); ok {
		r0 = rf(ctx, token, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, token, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewOrderAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderAPI {
	m := &OrderAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// AuthAPI is a testify mock of service.AuthAPI.
type AuthAPI struct {
	mock.Mock
}

func (_m *AuthAPI) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.AuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, domain.LoginRequest) *domain.AuthResponse); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.AuthResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.LoginRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AuthAPI) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.AuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, domain.RegisterRequest) *domain.AuthResponse); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.AuthResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.RegisterRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewAuthAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthAPI {
	m := &AuthAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
