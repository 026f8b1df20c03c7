package service

import (
	"context"
	"encoding/json"

	"restopos/kitchen-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    logrus.FieldLogger
}

func NewConsumer(reader MessageReader, store StoreInterface, log logrus.FieldLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

// Start reads until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("Starting Kitchen Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Log.Info("Kitchen Service consumer stopped")
				return
			}
			c.Log.WithError(err).Error("Error reading message")
			continue
		}
		c.Handle(ctx, message.Value)
	}
}

// Handle decodes one raw message. Malformed payloads are skipped.
func (c *Consumer) Handle(ctx context.Context, raw []byte) {
	var msg domain.TicketMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.Log.WithError(err).Warn("Skipping malformed kitchen message")
		return
	}
	if msg.TableID <= 0 {
		c.Log.WithField("type", msg.Type).Warn("Skipping kitchen message without table")
		return
	}
	c.Process(ctx, msg)
}

func (c *Consumer) Process(ctx context.Context, msg domain.TicketMessage) {
	log := c.Log.WithFields(logrus.Fields{
		"type":     msg.Type,
		"order_id": msg.OrderID,
		"table_id": msg.TableID,
	})

	switch msg.Type {
	case domain.TypeItemsSent:
		if len(msg.Items) == 0 {
			log.Warn("Skipping empty ticket")
			return
		}
		if err := c.Store.PushTicket(ctx, msg); err != nil {
			log.WithError(err).Error("Error queueing ticket")
			return
		}
		log.Infof("Queued %d portions", msg.Quantity())
	case domain.TypeOrderClosed:
		if err := c.Store.ClearTable(ctx, msg.TableID); err != nil {
			log.WithError(err).Error("Error clearing table queue")
			return
		}
		log.Info("Cleared table queue")
	default:
		log.Debug("Ignoring message")
	}
}
