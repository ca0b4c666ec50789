// internal/pkg/session/rate_limiter.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Login rate limit per client IP, on top of the account-level lockout.
const (
	loginAttemptLimit  = int64(5)
	loginAttemptWindow = 15 * time.Minute
)

type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt counts one attempt for ip and reports whether it is
// still allowed within the window.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip string) (bool, error) {
	key := fmt.Sprintf("ratelimit:login:%s", ip)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, loginAttemptWindow)
	}

	return count <= loginAttemptLimit, nil
}

// ResetLoginAttempts clears the counter so successful logins don't count
// against the window.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip string) error {
	key := fmt.Sprintf("ratelimit:login:%s", ip)
	return r.client.Del(ctx, key).Err()
}
