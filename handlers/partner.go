package handlers

import (
	"net/http"

	notificationRepo "buildlanka/database/repository/notification"
	partnerRepo "buildlanka/database/repository/partner"
	"buildlanka/models"
	"buildlanka/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler serves submitted partner records for review.
type PartnerHandler struct {
	Partners      partnerRepo.PartnerRepository
	Notifications notificationRepo.NotificationRepository
}

// NewPartnerHandler creates a PartnerHandler.
func NewPartnerHandler(partners partnerRepo.PartnerRepository, notifications notificationRepo.NotificationRepository) *PartnerHandler {
	return &PartnerHandler{Partners: partners, Notifications: notifications}
}

// ListByStatusHandler handles GET /api/partners?status=pending.
func (h *PartnerHandler) ListByStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	status := c.DefaultQuery("status", models.PartnerStatusPending)

	partners, err := h.Partners.ListByStatus(status)
	if err != nil {
		logger.Error("Failed to list partners", zap.String("status", status), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list partners", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetPartnerHandler handles GET /api/partners/:id.
func (h *PartnerHandler) GetPartnerHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	partner, err := h.Partners.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch partner", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load partner", "")
		return
	}
	if partner == nil {
		utils.JSONError(c, http.StatusNotFound, "Partner not found", id)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// UpdateStatusHandler handles PATCH /api/partners/:id/status.
func (h *PartnerHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status update", err.Error())
		return
	}

	if err := h.Partners.UpdateStatus(id, body.Status); err != nil {
		logger.Error("Failed to update partner status", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update partner status", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": body.Status})
}

// NotificationsHandler handles GET /api/partners/:id/notifications.
func (h *PartnerHandler) NotificationsHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	notifications, err := h.Notifications.ListByPartner(id)
	if err != nil {
		logger.Error("Failed to list notifications", zap.String("partnerId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load notifications", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
