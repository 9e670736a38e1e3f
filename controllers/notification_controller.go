// controllers/notification_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"guest-portal/middleware"
	"guest-portal/services"
	"guest-portal/utils"

	"github.com/gin-gonic/gin"
)

type markReadPayload struct {
	Read *bool `json:"read"`
}

type NotificationController struct {
	NotificationSvc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationSvc: svc}
}

func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	notifications, err := ctrl.NotificationSvc.ListByUser(user.ID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead flips the read flag; omitting "read" marks as read.
func (ctrl *NotificationController) MarkNotificationRead(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload markReadPayload
	_ = c.ShouldBindJSON(&payload)
	read := true
	if payload.Read != nil {
		read = *payload.Read
	}

	notification, err := ctrl.NotificationSvc.MarkRead(id, user.ID, read)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification})
}
