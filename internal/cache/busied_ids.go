package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const busiedIDsKey = "users:busied-ids"

// BusiedIDs caches the taken-user-id list. The set only changes on
// registration and identifier reassignment, both of which invalidate
// it, so a short TTL is enough.
type BusiedIDs struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBusiedIDs(client *redis.Client, ttl time.Duration) *BusiedIDs {
	return &BusiedIDs{client: client, ttl: ttl}
}

func (b *BusiedIDs) Get(ctx context.Context) ([]string, bool, error) {
	if b == nil || b.client == nil {
		return nil, false, nil
	}

	raw, err := b.client.Get(ctx, busiedIDsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return ids, true, nil
}

func (b *BusiedIDs) Set(ctx context.Context, ids []string) error {
	if b == nil || b.client == nil {
		return nil
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := b.client.Set(ctx, busiedIDsKey, raw, b.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (b *BusiedIDs) Invalidate(ctx context.Context) error {
	if b == nil || b.client == nil {
		return nil
	}
	if err := b.client.Del(ctx, busiedIDsKey).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}
