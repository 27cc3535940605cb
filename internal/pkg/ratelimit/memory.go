package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter gives every key its own token bucket. Buckets idle for
// longer than the eviction TTL are dropped by go-cache's janitor.
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewKeyedRateLimiter allows rps requests per second with bursts of burst per key.
func NewKeyedRateLimiter(rps float64, burst int, idleTTL time.Duration) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: cache.New(idleTTL, idleTTL*2),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (krl *KeyedRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return krl.getLimiter(key).Allow(), nil
}

func (krl *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	if v, ok := krl.limiters.Get(key); ok {
		limiter := v.(*rate.Limiter)
		// touch so an active key is never evicted
		krl.limiters.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(krl.limit, krl.burst)
	krl.limiters.SetDefault(key, limiter)
	return limiter
}

// Len reports how many keys currently hold a bucket.
func (krl *KeyedRateLimiter) Len() int {
	return krl.limiters.ItemCount()
}
