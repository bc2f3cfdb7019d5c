package services

import (
	"context"
	"time"

	"marketplace/internal/infra/cache"
	rabbit "marketplace/internal/infra/rabbitmq"

	log "github.com/sirupsen/logrus"
)

// publish sends an event and only logs on failure; events never fail the
// action that produced them.
func publish(ctx context.Context, pub rabbit.PublisherInterface, pattern string, evt any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, pattern, evt); err != nil {
		log.WithError(err).WithField("pattern", pattern).Warn("failed to publish event")
	}
}

// readThrough serves key from c when present and fills it from load
// otherwise. Cache failures degrade to a direct load.
func readThrough[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var out T
	if c != nil {
		hit, err := c.Get(ctx, key, &out)
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("cache read failed")
		} else if hit {
			return out, nil
		}
	}

	out, err := load()
	if err != nil {
		return out, err
	}

	if c != nil {
		if err := c.Set(ctx, key, out, ttl); err != nil {
			log.WithError(err).WithField("key", key).Warn("cache write failed")
		}
	}
	return out, nil
}

func invalidate(ctx context.Context, c cache.Cache, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		log.WithError(err).WithField("keys", keys).Warn("cache invalidation failed")
	}
}

// cacheSlot is embedded by services that read through or invalidate the cache.
type cacheSlot struct {
	cache    cache.Cache
	cacheTTL time.Duration
}

// SetCache enables read-through caching of public listings.
func (s *cacheSlot) SetCache(c cache.Cache, ttl time.Duration) {
	s.cache = c
	s.cacheTTL = ttl
}
