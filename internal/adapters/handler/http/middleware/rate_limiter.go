package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// fixedWindow increments the counter and starts its window atomically. It
// returns the count and the remaining window in milliseconds.
var fixedWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RateLimiterMiddleware allows limit requests per client IP in each window.
// Redis failures let the request through.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit:" + c.ClientIP()

		res, err := fixedWindow.Run(c.Request.Context(), rdb, []string{key}, window.Milliseconds()).Int64Slice()
		if err != nil || len(res) != 2 {
			log.Warn("Rate limiter skipped", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		count := res[0]
		ttl := time.Duration(res[1]) * time.Millisecond
		if ttl < 0 {
			ttl = window
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(limit)-count), 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(ttl.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"retry_in_s": int(ttl.Round(time.Second).Seconds()),
			})
			return
		}

		c.Next()
	}
}
