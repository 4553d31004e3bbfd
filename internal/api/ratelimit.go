package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/middleware"
)

const (
	rateLimitPerMinute = 20
	rateLimitWindow    = time.Minute
)

// RateLimiter enforces a fixed window of rateLimitPerMinute requests per
// caller. When Redis is down the request is allowed: availability of the
// read path wins over limit enforcement.
func RateLimiter(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetCallerID(c)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:notifications:%d", userID)
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[API] Rate limiter unavailable, allowing request: user_id=%d error=%v", userID, err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if count > rateLimitPerMinute {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
