package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated caller's user id, injected by the
// edge gateway after token validation. The notification services trust it
// and never re-derive identity themselves.
const UserIDHeader = "X-User-ID"

const callerIDKey = "caller_id"

// RequireCaller rejects requests that arrive without a gateway-propagated
// caller identity, and parses it into the Gin context for handlers.
func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + UserIDHeader + " header"})
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + UserIDHeader + " header"})
			return
		}

		c.Set(callerIDKey, id)
		c.Next()
	}
}

// GetCallerID retrieves the caller's user id set by RequireCaller.
func GetCallerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(callerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
