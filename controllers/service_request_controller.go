// controllers/service_request_controller.go
package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"guest-portal/middleware"
	"guest-portal/models"
	"guest-portal/services"
	"guest-portal/utils"

	"github.com/gin-gonic/gin"
)

type CreateServiceRequestPayload struct {
	ServiceType string `json:"service_type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
}

type UpdateServiceRequestPayload struct {
	Status string `json:"status" binding:"required"`
}

type ServiceRequestController struct {
	RequestSvc *services.ServiceRequestService
}

func NewServiceRequestController(svc *services.ServiceRequestService) *ServiceRequestController {
	return &ServiceRequestController{RequestSvc: svc}
}

func (ctrl *ServiceRequestController) CreateServiceRequest(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}

	var payload CreateServiceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "service_type and description are required", "details": err.Error()}})
		return
	}

	req, err := ctrl.RequestSvc.Create(user.ID, payload.ServiceType, payload.Description, payload.Priority)
	if err != nil && !errors.Is(err, services.ErrNotifyFailed) {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"message": "Service request created successfully", "request": req}
	if err != nil {
		resp["warning"] = "request created but notification could not be delivered"
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *ServiceRequestController) GetServiceRequests(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	requests, total, err := ctrl.RequestSvc.ListByGuest(user.ID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if limit < 1 {
		limit = 3
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":   requests,
		"total":      total,
		"page":       page,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

// UpdateServiceRequest only supports cancellation from the guest portal.
func (ctrl *ServiceRequestController) UpdateServiceRequest(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload UpdateServiceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "status is required"}})
		return
	}
	if payload.Status != models.ServiceRequestStatusCancelled {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus", "Only cancellation is currently supported")
		return
	}

	req, err := ctrl.RequestSvc.Cancel(id, user.ID)
	if err != nil && !errors.Is(err, services.ErrNotifyFailed) {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"message": "Service request cancelled successfully", "request": req}
	if err != nil {
		resp["warning"] = "request cancelled but notification could not be delivered"
	}
	c.JSON(http.StatusOK, resp)
}
