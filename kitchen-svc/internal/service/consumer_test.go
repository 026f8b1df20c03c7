package service_test

import (
	"context"
	"errors"
	"testing"

	"restopos/kitchen-svc/internal/domain"
	"restopos/kitchen-svc/internal/mocks"
	"restopos/kitchen-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newConsumer(t *testing.T) (*service.Consumer, *mocks.StoreInterface, *test.Hook) {
	logger, hook := test.NewNullLogger()
	store := mocks.NewStoreInterface(t)
	return service.NewConsumer(nil, store, logger), store, hook
}

func TestConsumer_Process(t *testing.T) {
	sent := domain.TicketMessage{
		Type:    domain.TypeItemsSent,
		OrderID: 41,
		TableID: 3,
		Items:   []domain.TicketItem{{FoodID: 1, Name: "Soto Ayam", Quantity: 2}},
	}
	closed := domain.TicketMessage{Type: domain.TypeOrderClosed, OrderID: 41, TableID: 3}

	tests := []struct {
		name           string
		inputMessage   domain.TicketMessage
		setupMockStore func(*mocks.StoreInterface)
		wantLevel      logrus.Level
	}{
		{
			name:         "items sent",
			inputMessage: sent,
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("PushTicket", mock.Anything, sent).Return(nil).Once()
			},
			wantLevel: logrus.InfoLevel,
		},
		{
			name:         "push error",
			inputMessage: sent,
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("PushTicket", mock.Anything, sent).Return(errors.New("redis down")).Once()
			},
			wantLevel: logrus.ErrorLevel,
		},
		{
			name:         "order closed",
			inputMessage: closed,
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("ClearTable", mock.Anything, 3).Return(nil).Once()
			},
			wantLevel: logrus.InfoLevel,
		},
		{
			name:           "empty ticket",
			inputMessage:   domain.TicketMessage{Type: domain.TypeItemsSent, TableID: 3},
			setupMockStore: func(m *mocks.StoreInterface) {},
			wantLevel:      logrus.WarnLevel,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			consumer, store, hook := newConsumer(t)
			testCase.setupMockStore(store)

			consumer.Process(context.Background(), testCase.inputMessage)

			if assert.NotNil(t, hook.LastEntry()) {
				assert.Equal(t, testCase.wantLevel, hook.LastEntry().Level)
			}
		})
	}
}

func TestConsumer_HandleSkipsBadMessages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{broken`},
		{name: "no table", raw: `{"type":"items_sent","order_id":1,"items":[{"food_id":1,"quantity":1}]}`},
		{name: "unknown type", raw: `{"type":"new_review","table_id":2}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			consumer, store, _ := newConsumer(t)

			consumer.Handle(context.Background(), []byte(testCase.raw))

			store.AssertNotCalled(t, "PushTicket", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "ClearTable", mock.Anything, mock.Anything)
		})
	}
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)
	consumer := service.NewConsumer(reader, store, logger)
	ctx, cancel := context.WithCancel(context.Background())

	reader.On("ReadMessage", ctx).
		Return(kafka.Message{Value: []byte(`{"type":"order_closed","order_id":9,"table_id":4}`)}, nil).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{}, errors.New("temporary")).Once()
	reader.On("ReadMessage", ctx).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	store.On("ClearTable", ctx, 4).Return(nil).Once()

	consumer.Start(ctx)
}
