package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/middleware"
	"github.com/rupal-draft/Tripezzy-Backend-sub000/pkg/models"
)

// NotificationReader is the read surface of the notification store.
type NotificationReader interface {
	FindByUserID(ctx context.Context, userID int64) ([]models.Notification, error)
}

// NotificationHandler serves a caller's notifications. Caller identity is
// whatever the gateway put in X-User-ID; it is never re-derived here.
type NotificationHandler struct {
	Store NotificationReader
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store NotificationReader) *NotificationHandler {
	return &NotificationHandler{Store: store}
}

// ListNotifications returns every notification persisted for the caller,
// oldest first (ordering is implementation-defined, do not rely on it).
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	correlationID := middleware.GetCorrelationID(c)

	userID, ok := middleware.GetCallerID(c)
	if !ok {
		// RequireCaller guards this route; reaching here without a caller
		// means the route was wired without it.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller identity missing"})
		return
	}

	notifications, err := h.Store.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[API] Error fetching notifications: user_id=%d correlation_id=%s error=%v",
			userID, correlationID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}
