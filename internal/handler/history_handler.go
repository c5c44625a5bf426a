package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/middleware"
	"github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// HistoryReader is the read side of the history repository
type HistoryReader interface {
	FindByUserID(ctx context.Context, userID string) ([]*domain.NotificationHistoryEntry, error)
	CountByStatus(ctx context.Context, userID string) (map[domain.DeliveryStatus]int64, error)
}

// HistoryHandler handles HTTP requests for notification history
type HistoryHandler struct {
	store HistoryReader
	log   *logger.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store HistoryReader, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		store: store,
		log:   log,
	}
}

// GetHistory returns the user's notification history, newest first, with
// sent/failed counts over the retained entries
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	entries, err := h.store.FindByUserID(ctx, userID)
	if err != nil {
		h.log.Error("Failed to get history", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get history", err))
		return
	}

	counts, err := h.store.CountByStatus(ctx, userID)
	if err != nil {
		h.log.Error("Failed to count history", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get history", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  entries,
		"count": len(entries),
		"stats": gin.H{
			"sent":   counts[domain.DeliverySent],
			"failed": counts[domain.DeliveryFailed],
		},
	})
}
