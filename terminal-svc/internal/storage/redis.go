package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restopos/terminal-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix   = "restopos:cache:"
	sessionPrefix = "restopos:session:"
)

// RedisCache stores list responses as JSON. Keys look like
// "<resource>:u=<user>:t=<token hash>" with an optional ":<query>" suffix.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.Client.Get(ctx, cachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cached %s: %w", key, err)
	}
	return c.Client.Set(ctx, cachePrefix+key, payload, ttl).Err()
}

// Invalidate drops every scoped page of the resource.
func (c *RedisCache) Invalidate(ctx context.Context, resource string) error {
	keys := []string{cachePrefix + resource}
	iter := c.Client.Scan(ctx, 0, cachePrefix+resource+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Client.Del(ctx, keys...).Err()
}

type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionPrefix+session.ID, payload, s.TTL).Err()
}

// Get returns nil without error for unknown or expired sessions.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.Client.Get(ctx, sessionPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, sessionPrefix+id).Err()
}
