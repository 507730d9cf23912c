package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type visitor struct {
	count    int
	lastSeen time.Time
}

// RateLimiter enforces a fixed window per client IP. When a Redis client is
// supplied the window is shared across instances; otherwise it falls back to
// an in-process map.
type RateLimiter struct {
	name     string
	mu       sync.Mutex
	rdb      *redis.Client
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

func NewRateLimiter(name string, limit int, window time.Duration, rdb *redis.Client) *RateLimiter {
	rl := &RateLimiter{
		name:     name,
		rdb:      rdb,
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	if rdb == nil {
		// Cleanup goroutine for the in-memory path
		go func() {
			for {
				time.Sleep(window)
				rl.mu.Lock()
				for ip, v := range rl.visitors {
					if time.Since(v.lastSeen) > window {
						delete(rl.visitors, ip)
					}
				}
				rl.mu.Unlock()
			}
		}()
	}

	return rl
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr

		if rl.allow(r.Context(), ip) {
			next.ServeHTTP(w, r)
			return
		}

		writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", r)
	})
}

func (rl *RateLimiter) allow(ctx context.Context, ip string) bool {
	if rl.rdb != nil {
		return rl.allowRedis(ctx, ip)
	}
	return rl.allowMemory(ip)
}

func (rl *RateLimiter) allowRedis(ctx context.Context, ip string) bool {
	key := fmt.Sprintf("ratelimit:%s:%s", rl.name, ip)

	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		// Redis trouble must not take the endpoint down with it.
		log.Printf("ratelimit: redis error, allowing request: %v", err)
		return true
	}
	if count == 1 {
		rl.rdb.Expire(ctx, key, rl.window)
	}
	return count <= int64(rl.limit)
}

func (rl *RateLimiter) allowMemory(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists || time.Since(v.lastSeen) > rl.window {
		rl.visitors[ip] = &visitor{count: 1, lastSeen: time.Now()}
		return true
	}

	v.count++
	v.lastSeen = time.Now()
	return v.count <= rl.limit
}
