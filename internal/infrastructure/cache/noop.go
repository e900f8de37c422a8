package cache

import (
	"context"
	"time"

	"booktrade-backend/pkg/cache"
)

// NoopCache is the fallback used when Redis is unavailable.
// Every read is a miss and every write succeeds silently, so the
// service keeps running straight against the database.
type NoopCache struct{}

func NewNoopCache() cache.Cache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (n *NoopCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func (n *NoopCache) Ping(ctx context.Context) error {
	return nil
}
