package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/middleware"
	"github.com/soberpath/go-notification-service/internal/service"
	"github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// ProfileHandler handles HTTP requests for addiction profiles
type ProfileHandler struct {
	service *service.ProfileService
	log     *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service *service.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// SaveProfile replaces the user's profile and returns the regenerated
// schedule set
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	profile := req.Profile(userID)
	schedules, err := h.service.SaveProfile(c.Request.Context(), profile)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			c.JSON(http.StatusBadRequest, appErr)
			return
		}
		var parseErr *domain.ParseError
		if stderrors.As(err, &parseErr) {
			c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError("Unparseable peak time window", parseErr))
			return
		}
		h.log.Error("Failed to save profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to save profile", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile saved",
		"data": gin.H{
			"profile":   profile,
			"schedules": schedules,
		},
	})
}

// GetProfile returns the user's current profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get profile", err))
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, errors.NewNotFoundError("Profile not found", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": profile,
	})
}
