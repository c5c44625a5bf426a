package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/middleware"
	"github.com/soberpath/go-notification-service/internal/service"
	"github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// NotifyHandler handles on-demand notification sends
type NotifyHandler struct {
	notifier   *service.Notifier
	gate       *service.Gate
	dispatcher *service.Dispatcher
	history    service.HistoryStore
	log        *logger.Logger
}

// NewNotifyHandler creates a new notify handler
func NewNotifyHandler(notifier *service.Notifier, gate *service.Gate, dispatcher *service.Dispatcher, history service.HistoryStore, log *logger.Logger) *NotifyHandler {
	return &NotifyHandler{
		notifier:   notifier,
		gate:       gate,
		dispatcher: dispatcher,
		history:    history,
		log:        log,
	}
}

// SendTest runs one notification for the given trigger type through the full
// pipeline, quiet hours and channel enables included
func (h *NotifyHandler) SendTest(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.TestNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	entry, sent, err := h.notifier.Notify(c.Request.Context(), userID, req.TriggerType)
	if err != nil {
		h.log.Error("Failed to send test notification", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to send notification", err))
		return
	}
	if !sent {
		c.JSON(http.StatusOK, gin.H{
			"message":    "Notification suppressed by preferences",
			"suppressed": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification sent",
		"data":    entry,
	})
}

// Retry re-dispatches a previously failed notification with its original
// content. The retry produces a fresh history entry with its own outcome.
func (h *NotifyHandler) Retry(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("ID is required", nil))
		return
	}

	ctx := c.Request.Context()
	entry, err := h.history.FindByID(ctx, userID, id)
	if err != nil {
		h.log.Error("Failed to load history entry", "error", err, "id", id, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to load notification", err))
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, errors.NewNotFoundError("Notification not found", nil))
		return
	}
	if entry.Status != domain.DeliveryFailed {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Only failed notifications can be retried", nil))
		return
	}

	if !h.gate.IsAllowed(ctx, userID) {
		c.JSON(http.StatusOK, gin.H{
			"message":    "Notification suppressed by preferences",
			"suppressed": true,
		})
		return
	}

	retried, err := h.dispatcher.Dispatch(ctx, userID, entry.Title, entry.Message)
	if err != nil {
		h.log.Error("Failed to retry notification", "error", err, "id", id, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to retry notification", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification retried",
		"data":    retried,
	})
}
