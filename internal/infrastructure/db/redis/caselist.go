package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caseflow/case-api/internal/core/domain"
)

const (
	caseListKey = "cache:cases:all"
	caseListTTL = 30 * time.Second
)

// CaseListCache caches the serialized public case listing in Redis.
// Entries expire after caseListTTL and are invalidated on every mutation.
type CaseListCache struct {
	client *redis.Client
}

// NewCaseListCache creates a CaseListCache wrapping the given Redis client.
func NewCaseListCache(client *redis.Client) *CaseListCache {
	return &CaseListCache{client: client}
}

// Get returns the cached listing and whether the cache held a fresh entry.
func (c *CaseListCache) Get(ctx context.Context) ([]domain.Case, bool, error) {
	raw, err := c.client.Get(ctx, caseListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("case list cache get: %w", err)
	}

	var cases []domain.Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, false, fmt.Errorf("case list cache decode: %w", err)
	}
	return cases, true, nil
}

// Set stores the listing (expires after caseListTTL).
func (c *CaseListCache) Set(ctx context.Context, cases []domain.Case) error {
	raw, err := json.Marshal(cases)
	if err != nil {
		return fmt.Errorf("case list cache encode: %w", err)
	}
	return c.client.Set(ctx, caseListKey, raw, caseListTTL).Err()
}

// Invalidate drops the cached listing.
func (c *CaseListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, caseListKey).Err()
}
