package mocks

import (
	"context"
	"time"

	"restopos/terminal-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ListCache is a testify mock of service.ListCache.
type ListCache struct {
	mock.Mock
}

func (_m *ListCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	ret := _m.Called(ctx, key, dst)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, any) bool); ok {
		r0 = rf(ctx, key, dst)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, any) error); ok {
		r1 = rf(ctx, key, dst)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *ListCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, any, time.Duration) error); ok {
		r0 = rf(ctx, key, value, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *ListCache) Invalidate(ctx context.Context, resource string) error {
	ret := _m.Called(ctx, resource)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, resource)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func NewListCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ListCache {
	m := &ListCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// SessionStore is a testify mock of service.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (_m *SessionStore) Save(ctx context.Context, session domain.Session) error {
	ret := _m.Called(ctx, session)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Session) error); ok {
		r0 = rf(ctx, session)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Session
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Session); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *SessionStore) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EventPublisher is a testify mock of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) PublishKitchenEvent(ctx context.Context, event domain.KitchenEvent) error {
	ret := _m.Called(ctx, event)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.KitchenEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ReceiptJournal is a testify mock of service.ReceiptJournal.
type ReceiptJournal struct {
	mock.Mock
}

func (_m *ReceiptJournal) SaveReceipt(ctx context.Context, entry domain.ReceiptEntry) error {
	ret := _m.Called(ctx, entry)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ReceiptEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *ReceiptJournal) GetReceipt(ctx context.Context, orderID int) (*domain.ReceiptEntry, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.ReceiptEntry
	if rf, ok := ret.Get(0).(func(context.Context, int) *domain.ReceiptEntry); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.ReceiptEntry)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewReceiptJournal(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReceiptJournal {
	m := &ReceiptJournal{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
