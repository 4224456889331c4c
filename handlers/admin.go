package handlers

import (
	"net/http"

	"tourbook/services/activity"
	"tourbook/services/booking"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler backs the dashboard's aggregate views.
type AdminHandler struct {
	bookingSvc  booking.BookingService
	activitySvc activity.ActivityService
	logger      *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(bookingSvc booking.BookingService, activitySvc activity.ActivityService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{bookingSvc: bookingSvc, activitySvc: activitySvc, logger: logger}
}

// StatsHandler returns headline counts for the dashboard index.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	totalBookings, err := h.bookingSvc.CountBookings()
	if err != nil {
		h.logger.Error("failed to count bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch statistics", "")
		return
	}

	totalActivities, err := h.activitySvc.CountActivities()
	if err != nil {
		h.logger.Error("failed to count activities", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch statistics", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings":   totalBookings,
		"totalActivities": totalActivities,
	})
}
