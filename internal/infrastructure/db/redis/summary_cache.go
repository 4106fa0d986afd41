package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/devpath/tutorial-platform/internal/api/metrics"
	"github.com/devpath/tutorial-platform/internal/core/domain"
)

const defaultSummaryTTL = 5 * time.Minute

// SummaryCache caches derived progress summaries in Redis.
// Key format: progress:summary:<user_id>
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a SummaryCache. A non-positive ttl falls back to
// the default.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &SummaryCache{client: client, ttl: ttl}
}

func (c *SummaryCache) Get(ctx context.Context, userID uuid.UUID) (*domain.ProgressSummary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("summary cache get: %w", err)
	}

	var summary domain.ProgressSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// Corrupt entry: treat as a miss so it gets overwritten.
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
	return &summary, true, nil
}

func (c *SummaryCache) Set(ctx context.Context, userID uuid.UUID, summary *domain.ProgressSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, c.ttl).Err()
}

func (c *SummaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *SummaryCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("progress:summary:%s", userID)
}
