package service

import (
	"context"

	"restopos/kitchen-svc/internal/domain"
	"restopos/kitchen-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	PushTicket(ctx context.Context, msg domain.TicketMessage) error
	ClearTable(ctx context.Context, tableID int) error
}

// BoardInterface is the read side the kitchen display polls.
type BoardInterface interface {
	Queue(ctx context.Context, tableID int) ([]domain.TicketMessage, error)
	Pending(ctx context.Context) ([]domain.PendingTable, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg domain.TicketMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
var _ BoardInterface = (*storage.Store)(nil)
var _ MessageReader = (*kafka.Reader)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
