package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"restopos/kitchen-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const PendingKey = "kitchen:pending"

func QueueKey(tableID int) string {
	return fmt.Sprintf("kitchen:table:%d", tableID)
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// PushTicket appends the ticket to the table queue and bumps the table's
// pending portion count.
func (s *Store) PushTicket(ctx context.Context, msg domain.TicketMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode ticket: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, QueueKey(msg.TableID), payload)
	pipe.ZIncrBy(ctx, PendingKey, float64(msg.Quantity()), strconv.Itoa(msg.TableID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push ticket for table %d: %w", msg.TableID, err)
	}
	return nil
}

func (s *Store) ClearTable(ctx context.Context, tableID int) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, QueueKey(tableID))
	pipe.ZRem(ctx, PendingKey, strconv.Itoa(tableID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear table %d: %w", tableID, err)
	}
	return nil
}

// Queue returns the tickets waiting for a table, oldest first.
func (s *Store) Queue(ctx context.Context, tableID int) ([]domain.TicketMessage, error) {
	raw, err := s.rdb.LRange(ctx, QueueKey(tableID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	tickets := make([]domain.TicketMessage, 0, len(raw))
	for _, entry := range raw {
		var msg domain.TicketMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		tickets = append(tickets, msg)
	}
	return tickets, nil
}

// Pending lists tables with waiting portions, busiest first.
func (s *Store) Pending(ctx context.Context) ([]domain.PendingTable, error) {
	rows, err := s.rdb.ZRevRangeWithScores(ctx, PendingKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	pending := make([]domain.PendingTable, 0, len(rows))
	for _, row := range rows {
		member, _ := row.Member.(string)
		tableID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		pending = append(pending, domain.PendingTable{TableID: tableID, Portions: int(row.Score)})
	}
	return pending, nil
}
