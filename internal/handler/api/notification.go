package api

import (
	"net/http"

	resdto "swipemarket/internal/handler/dto/response"
	"swipemarket/internal/handler/middleware"
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(
	notificationCommands commands.NotificationCommands,
	notificationQueries queries.NotificationQueries,
) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// GetBadge always answers 200; a failed count degrades to zero because the
// badge is cosmetic.
func (h *NotificationHandler) GetBadge(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	unread := h.notificationQueries.UnreadBadge(c.Request.Context(), userID)
	c.JSON(http.StatusOK, &resdto.BadgeResponse{Unread: unread})
}

// MarkNotified raises the caller's unread flag when an out-of-band event
// arrives for an order. Missing and cancelled orders are a no-op.
func (h *NotificationHandler) MarkNotified(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.notificationCommands.MarkNotified(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
