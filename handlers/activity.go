package handlers

import (
	"errors"
	"net/http"

	activityRepo "tourbook/database/repository/activity"
	"tourbook/models"
	"tourbook/services/activity"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler exposes the catalogue endpoints: public listing plus the
// admin activity/package management API.
type ActivityHandler struct {
	service activity.ActivityService
	logger  *zap.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(service activity.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{service: service, logger: logger}
}

// ListActivitiesHandler returns the full catalogue.
func (h *ActivityHandler) ListActivitiesHandler(c *gin.Context) {
	activities, err := h.service.ListActivities()
	if err != nil {
		h.logger.Error("failed to list activities", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch activities", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetActivityHandler returns one activity with its packages.
func (h *ActivityHandler) GetActivityHandler(c *gin.Context) {
	id := c.Param("id")
	found, err := h.service.GetActivity(id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "activity not found", id)
			return
		}
		h.logger.Error("failed to fetch activity", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch activity", "")
		return
	}
	c.JSON(http.StatusOK, found)
}

// CreateActivityHandler creates an activity with its initial packages.
func (h *ActivityHandler) CreateActivityHandler(c *gin.Context) {
	var input struct {
		Name          string           `json:"name" binding:"required"`
		Description   string           `json:"description" binding:"required"`
		OperatingDays []string         `json:"operatingDays" binding:"required"`
		Duration      string           `json:"duration"`
		Location      string           `json:"location"`
		Packages      []models.Package `json:"packages"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.service.CreateActivity(models.Activity{
		Name:          input.Name,
		Description:   input.Description,
		OperatingDays: input.OperatingDays,
		Duration:      input.Duration,
		Location:      input.Location,
	}, input.Packages)
	if err != nil {
		h.logger.Error("failed to create activity", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create activity", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "activity created", "activity": created})
}

// UpdateActivityHandler modifies an activity.
func (h *ActivityHandler) UpdateActivityHandler(c *gin.Context) {
	var input models.Activity
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")

	if err := h.service.UpdateActivity(input); err != nil {
		if errors.Is(err, activityRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "activity not found", input.ID)
			return
		}
		h.logger.Error("failed to update activity", zap.String("id", input.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update activity", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity updated"})
}

// DeleteActivityHandler removes an activity and its packages.
func (h *ActivityHandler) DeleteActivityHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteActivity(id); err != nil {
		if errors.Is(err, activityRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "activity not found", id)
			return
		}
		h.logger.Error("failed to delete activity", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete activity", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

// CreatePackageHandler adds a package to an activity.
func (h *ActivityHandler) CreatePackageHandler(c *gin.Context) {
	var input models.Package
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.service.CreatePackage(input)
	if err != nil {
		h.logger.Error("failed to create package", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create package", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "package created", "package": created})
}

// UpdatePackageHandler modifies a package.
func (h *ActivityHandler) UpdatePackageHandler(c *gin.Context) {
	var input models.Package
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.ID = c.Param("id")

	if err := h.service.UpdatePackage(input); err != nil {
		if errors.Is(err, activityRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "package not found", input.ID)
			return
		}
		h.logger.Error("failed to update package", zap.String("id", input.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update package", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package updated"})
}

// DeletePackageHandler removes a package.
func (h *ActivityHandler) DeletePackageHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeletePackage(id); err != nil {
		if errors.Is(err, activityRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "package not found", id)
			return
		}
		h.logger.Error("failed to delete package", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete package", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
