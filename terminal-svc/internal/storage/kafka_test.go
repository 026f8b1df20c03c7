package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"restopos/terminal-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func TestKafkaPublisher_KeysByTable(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer)
	event := domain.KitchenEvent{
		Type:      domain.EventItemsSent,
		OrderID:   31,
		TableID:   4,
		Items:     []domain.TicketItem{{FoodID: 1, Name: "Nasi Goreng", Quantity: 2}},
		Operator:  "Sari",
		Timestamp: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishKitchenEvent(context.Background(), event))

	require.Len(t, writer.msgs, 1)
	assert.Equal(t, "4", string(writer.msgs[0].Key))
	var decoded domain.KitchenEvent
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	writer := &recordingWriter{err: assert.AnError}

	err := NewKafkaPublisher(writer).PublishKitchenEvent(context.Background(), domain.KitchenEvent{TableID: 1})

	assert.ErrorIs(t, err, assert.AnError)
}
