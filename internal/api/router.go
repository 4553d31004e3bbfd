package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/middleware"
)

// NewRouter creates and configures the Gin router for the notification read
// API. rdb may be nil, which disables rate limiting.
func NewRouter(h *NotificationHandler, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CorrelationID())
	r.Use(cors.Default())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := r.Group("/", middleware.RequireCaller())
	if rdb != nil {
		authed.Use(RateLimiter(rdb))
	}
	authed.GET("/notifications", h.ListNotifications)

	return r
}
