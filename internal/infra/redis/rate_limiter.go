package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter is a fixed-window counter used to slow down brute-force
// guessing of access codes. It is advisory: a redis failure fails open at
// the call site, never the redemption itself.
type RateLimiter struct {
	client Client
}

func NewRateLimiter(client Client) *RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key)
	if err != nil {
		return false, err
	}

	if count == 1 {
		err = r.client.Expire(ctx, key, window)
		if err != nil {
			return false, err
		}
	}

	if count > int64(limit) {
		return false, nil
	}

	return true, nil
}

// RedeemAttemptKey scopes the limiter per client (user id or remote addr).
func RedeemAttemptKey(client string) string {
	return fmt.Sprintf("rate_limit:redeem:%s", client)
}
