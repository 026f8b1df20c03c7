package storage_test

import (
	"context"
	"testing"

	"restopos/kitchen-svc/internal/domain"
	"restopos/kitchen-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.Store, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), rdb
}

func ticket(tableID int, qty ...int) domain.TicketMessage {
	msg := domain.TicketMessage{Type: domain.TypeItemsSent, OrderID: 10, TableID: tableID}
	for i, q := range qty {
		msg.Items = append(msg.Items, domain.TicketItem{FoodID: i + 1, Name: "Menu", Quantity: q})
	}
	return msg
}

func TestStore_PushTicket(t *testing.T) {
	store, rdb := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.PushTicket(ctx, ticket(3, 2, 1)))
	require.NoError(t, store.PushTicket(ctx, ticket(3, 4)))
	require.NoError(t, store.PushTicket(ctx, ticket(5, 1)))

	queue, err := store.Queue(ctx, 3)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Len(t, queue[0].Items, 2)
	assert.Equal(t, 4, queue[1].Items[0].Quantity)

	score, err := rdb.ZScore(ctx, storage.PendingKey, "3").Result()
	require.NoError(t, err)
	assert.Equal(t, float64(7), score)
}

func TestStore_ClearTable(t *testing.T) {
	store, rdb := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.PushTicket(ctx, ticket(3, 2)))
	require.NoError(t, store.PushTicket(ctx, ticket(5, 1)))

	require.NoError(t, store.ClearTable(ctx, 3))

	queue, err := store.Queue(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, queue)

	members, err := rdb.ZRange(ctx, storage.PendingKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, members)
}

func TestStore_ClearUnknownTable(t *testing.T) {
	store, _ := newStore(t)

	assert.NoError(t, store.ClearTable(context.Background(), 42))
}

func TestStore_Pending(t *testing.T) {
	store, rdb := newStore(t)
	ctx := context.Background()

	pending, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, store.PushTicket(ctx, ticket(3, 2)))
	require.NoError(t, store.PushTicket(ctx, ticket(5, 4, 1)))
	require.NoError(t, store.PushTicket(ctx, ticket(3, 1)))
	require.NoError(t, rdb.ZAdd(ctx, storage.PendingKey, redis.Z{Score: 9, Member: "teras"}).Err())

	pending, err = store.Pending(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.PendingTable{{TableID: 5, Portions: 5}, {TableID: 3, Portions: 3}}, pending)
}
