package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig describes one protected endpoint. Name scopes the counters
// so different endpoints never share a budget.
type RateLimitConfig struct {
	Name string
	// Requests allowed inside one window
	Limit int
	// Window length. The counter TTL is refreshed on every hit, so the
	// window slides with activity rather than expiring from the first hit.
	Window time.Duration
	// How long a client stays blocked after exhausting the window
	BlockDuration time.Duration
}

// ContactRateLimit is the budget for the public contact form.
func ContactRateLimit() RateLimitConfig {
	return RateLimitConfig{
		Name:          "contact",
		Limit:         3,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
	}
}

// RegistrationRateLimit is the budget shared shape for temp-save and the
// register endpoints.
func RegistrationRateLimit(name string) RateLimitConfig {
	return RateLimitConfig{
		Name:          name,
		Limit:         5,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
	}
}

// rateLimitScript runs the whole decision atomically so concurrent requests
// cannot interleave between the read and the write.
//
// KEYS[1] = blocked flag, KEYS[2] = counter
// ARGV[1] = limit, ARGV[2] = window seconds, ARGV[3] = block seconds
// Returns 1 when the request may proceed, 0 when it is rejected.
const rateLimitScript = `
if redis.call('EXISTS', KEYS[1]) == 1 then
    return 0
end
local count = tonumber(redis.call('GET', KEYS[2]) or '0')
if count >= tonumber(ARGV[1]) then
    redis.call('SET', KEYS[1], '1', 'EX', ARGV[3])
    redis.call('DEL', KEYS[2])
    return 0
end
redis.call('INCR', KEYS[2])
redis.call('EXPIRE', KEYS[2], ARGV[2])
return 1
`

// memoryLimitEntry mirrors the redis state for one (endpoint, client) pair.
type memoryLimitEntry struct {
	mu           sync.Mutex
	count        int
	windowEnds   time.Time
	blockedUntil time.Time
}

var (
	memoryLimits     sync.Map
	limitCleanupOnce sync.Once
)

func startLimitCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			memoryLimits.Range(func(key, value interface{}) bool {
				entry := value.(*memoryLimitEntry)
				entry.mu.Lock()
				stale := now.After(entry.windowEnds) && now.After(entry.blockedUntil)
				entry.mu.Unlock()
				if stale {
					memoryLimits.Delete(key)
				}
				return true
			})
		}
	}()
}

// ClientIdentity resolves the client address the limiter keys on: the first
// entry of X-Forwarded-For when present, otherwise the peer address.
func ClientIdentity(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// RateLimit enforces the configured budget per (endpoint, client) pair.
// Exceeding the budget blocks the client for BlockDuration; further attempts
// during the block are rejected without touching the counter. Uses redis when
// available and an in-process store otherwise.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	limitCleanupOnce.Do(startLimitCleanup)

	return func(c *gin.Context) {
		client := ClientIdentity(c)
		blockedKey := fmt.Sprintf("ratelimit:blocked:%s:%s", config.Name, client)
		counterKey := fmt.Sprintf("ratelimit:count:%s:%s", config.Name, client)

		var allowed bool
		redisClient := redis.Client()
		if redisClient != nil {
			var err error
			allowed, err = checkRedis(c.Request.Context(), redisClient, blockedKey, counterKey, config)
			if err != nil {
				if logger.Log != nil {
					logger.Log.Warn("rate limit redis check failed, using in-memory fallback", "error", err)
				}
				allowed = checkMemory(blockedKey, config)
			}
		} else {
			allowed = checkMemory(blockedKey, config)
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(config.BlockDuration.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func checkRedis(ctx context.Context, client *goredis.Client, blockedKey, counterKey string, config RateLimitConfig) (bool, error) {
	result, err := client.Eval(ctx, rateLimitScript,
		[]string{blockedKey, counterKey},
		config.Limit,
		int(config.Window.Seconds()),
		int(config.BlockDuration.Seconds()),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit eval: %w", err)
	}
	return result == 1, nil
}

func checkMemory(key string, config RateLimitConfig) bool {
	entryI, _ := memoryLimits.LoadOrStore(key, &memoryLimitEntry{})
	entry := entryI.(*memoryLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.Before(entry.blockedUntil) {
		return false
	}
	if now.After(entry.windowEnds) {
		entry.count = 0
	}
	if entry.count >= config.Limit {
		entry.blockedUntil = now.Add(config.BlockDuration)
		entry.count = 0
		return false
	}
	entry.count++
	// Each hit pushes the window end out again
	entry.windowEnds = now.Add(config.Window)
	return true
}
