package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/middleware"
	"github.com/soberpath/go-notification-service/internal/service"
	"github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// PreferencesHandler handles HTTP requests for notification preferences
type PreferencesHandler struct {
	store service.PreferencesStore
	log   *logger.Logger
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store service.PreferencesStore, log *logger.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		store: store,
		log:   log,
	}
}

// GetPreferences returns the user's preferences, defaults when never set
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID := middleware.GetUserID(c)

	prefs, err := h.store.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get preferences", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get preferences", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": prefs,
	})
}

// UpdatePreferences replaces the user's preferences
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	if err := validateQuietHours(req.QuietHoursStart, req.QuietHoursEnd); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid quiet hours", err))
		return
	}

	prefs := &domain.NotificationPreferences{
		UserID:          userID,
		PushEnabled:     req.PushEnabled,
		EmailEnabled:    req.EmailEnabled,
		SMSEnabled:      req.SMSEnabled,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		QuietHoursStart: req.QuietHoursStart,
		QuietHoursEnd:   req.QuietHoursEnd,
	}

	if err := h.store.Upsert(c.Request.Context(), prefs); err != nil {
		h.log.Error("Failed to update preferences", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to update preferences", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated",
		"data":    prefs,
	})
}

// validateQuietHours checks that any provided bound parses as 24-hour HH:MM
func validateQuietHours(bounds ...string) error {
	for _, b := range bounds {
		if b == "" {
			continue
		}
		if _, err := time.Parse("15:04", b); err != nil {
			return fmt.Errorf("%q is not a valid HH:MM time", b)
		}
	}
	return nil
}
