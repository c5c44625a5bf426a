package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soberpath/go-notification-service/internal/middleware"
	"github.com/soberpath/go-notification-service/internal/service"
	"github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// ScheduleHandler handles HTTP requests for notification schedules
type ScheduleHandler struct {
	store service.ScheduleStore
	log   *logger.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(store service.ScheduleStore, log *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		store: store,
		log:   log,
	}
}

// GetSchedules returns the user's current schedule set
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	userID := middleware.GetUserID(c)

	schedules, err := h.store.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get schedules", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get schedules", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  schedules,
		"count": len(schedules),
	})
}
