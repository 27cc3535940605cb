// Package ratelimit throttles requests per key (client IP for the login and
// registration endpoints).
package ratelimit

import "context"

// Limiter decides whether one more request for key is allowed right now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
