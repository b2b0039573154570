package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clipforge/clip-shortener/internal/core/ports"
)

const resultTTL = time.Hour

// ResultCache stores processing results keyed by submitter and source URL so
// a repeated submission of the same URL replays the first result instead of
// generating and persisting a new one.
// Key format: shortener:result:<user_id>:<fnv64a(url)>
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a ResultCache wrapping the given Redis client.
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

// Get returns the cached result for this user and URL, or nil on a miss.
func (rc *ResultCache) Get(ctx context.Context, userID int64, url string) (*ports.ProcessResult, error) {
	raw, err := rc.client.Get(ctx, rc.key(userID, url)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("result cache get: %w", err)
	}

	var result ports.ProcessResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("result cache decode: %w", err)
	}
	return &result, nil
}

// Set records the result for this user and URL (expires after resultTTL).
func (rc *ResultCache) Set(ctx context.Context, userID int64, url string, result *ports.ProcessResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("result cache encode: %w", err)
	}
	return rc.client.Set(ctx, rc.key(userID, url), raw, resultTTL).Err()
}

func (rc *ResultCache) key(userID int64, url string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(url))
	return fmt.Sprintf("shortener:result:%d:%x", userID, h.Sum64())
}
