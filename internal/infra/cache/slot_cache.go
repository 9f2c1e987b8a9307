package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss       = errs.New("slot cache miss")
	errCacheRead       = errs.New("failed to read slot cache")
	errCacheWrite      = errs.New("failed to write slot cache")
	errCacheInvalidate = errs.New("failed to invalidate slot cache")
)

// SlotCache keeps generated slot lists hot for the read-heavy
// availability endpoint. Entries are short-lived; every booking commit
// and calendar sync invalidates the consultant's keys, so the TTL is
// only a backstop.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, cfg config.RedisConfig) *SlotCache {
	return &SlotCache{client: client, ttl: cfg.SlotTTL}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func slotKey(consultantID uuid.UUID, serviceType string, from, to time.Time) string {
	return fmt.Sprintf("slots:%s:%s:%d:%d", consultantID, serviceType, from.Unix(), to.Unix())
}

func consultantPattern(consultantID uuid.UUID) string {
	return fmt.Sprintf("slots:%s:*", consultantID)
}

func (c *SlotCache) Get(ctx context.Context, consultantID uuid.UUID, serviceType string, from, to time.Time, dest any) error {
	raw, err := c.client.Get(ctx, slotKey(consultantID, serviceType, from, to)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return errs.Mark(err, errCacheRead)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return errs.Mark(err, errCacheRead)
	}
	return nil
}

func (c *SlotCache) Set(ctx context.Context, consultantID uuid.UUID, serviceType string, from, to time.Time, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Mark(err, errCacheWrite)
	}
	if err := c.client.Set(ctx, slotKey(consultantID, serviceType, from, to), raw, c.ttl).Err(); err != nil {
		return errs.Mark(err, errCacheWrite)
	}
	return nil
}

// InvalidateConsultant drops every cached slot window for the
// consultant. SCAN keeps this non-blocking on larger keyspaces.
func (c *SlotCache) InvalidateConsultant(ctx context.Context, consultantID uuid.UUID) error {
	iter := c.client.Scan(ctx, 0, consultantPattern(consultantID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Mark(err, errCacheInvalidate)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Mark(err, errCacheInvalidate)
	}
	return nil
}
