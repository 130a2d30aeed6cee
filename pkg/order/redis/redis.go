// Package redis keeps session ledgers in Redis with a sliding expiry.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"orderboard/pkg/order"
)

const keyPrefix = "ledger:"

// Repository stores ledgers as JSON under ledger:<session>.
type Repository struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// New creates a Redis repository. Every Get and Put resets the key's TTL.
func New(client goredis.UniversalClient, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Get loads the session's ledger and resets the key's TTL.
func (r *Repository) Get(ctx context.Context, session string) (order.Ledger, error) {
	var cmd *goredis.StringCmd
	if r.ttl > 0 {
		cmd = r.client.GetEx(ctx, keyPrefix+session, r.ttl)
	} else {
		cmd = r.client.Get(ctx, keyPrefix+session)
	}
	b, err := cmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, order.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var l order.Ledger
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	return l, nil
}

// Put replaces the session's ledger.
func (r *Repository) Put(ctx context.Context, session string, l order.Ledger) error {
	if l == nil {
		l = order.Ledger{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+session, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the session's ledger.
func (r *Repository) Delete(ctx context.Context, session string) error {
	n, err := r.client.Del(ctx, keyPrefix+session).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return order.ErrSessionNotFound
	}
	return nil
}
