package mocks

import (
	"context"

	"restopos/kitchen-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

// StoreInterface is a testify mock of service.StoreInterface.
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) PushTicket(ctx context.Context, msg domain.TicketMessage) error {
	ret := _m.Called(ctx, msg)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.TicketMessage) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *StoreInterface) ClearTable(ctx context.Context, tableID int) error {
	ret := _m.Called(ctx, tableID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int) error); ok {
		r0 = rf(ctx, tableID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MessageReader is a testify mock of service.MessageReader.
type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)

	var r0 kafka.Message
	if rf, ok := ret.Get(0).(func(context.Context) kafka.Message); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(kafka.Message)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewMessageReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// BoardInterface is a testify mock of service.BoardInterface.
type BoardInterface struct {
	mock.Mock
}

func (_m *BoardInterface) Queue(ctx context.Context, tableID int) ([]domain.TicketMessage, error) {
	ret := _m.Called(ctx, tableID)

	var r0 []domain.TicketMessage
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.TicketMessage); ok {
		r0 = rf(ctx, tableID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.TicketMessage)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, tableID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *BoardInterface) Pending(ctx context.Context) ([]domain.PendingTable, error) {
	ret := _m.Called(ctx)

	var r0 []domain.PendingTable
	if rf, ok := ret.Get(0).(func(context.Context) []domain.PendingTable); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PendingTable)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func NewBoardInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *BoardInterface {
	m := &BoardInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
