// services/service_request_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"guest-portal/models"

	"gorm.io/gorm"
)

// ServiceRequestService tracks guest service requests. Guests may only move a
// request from pending to cancelled; in-progress/completed are staff-side.
type ServiceRequestService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewServiceRequestService(db *gorm.DB, notifier *NotificationService) *ServiceRequestService {
	return &ServiceRequestService{DB: db, Notifier: notifier}
}

// Create records a new pending request and notifies the guest.
func (s *ServiceRequestService) Create(guestID uint, reqType, description, priority string) (*models.ServiceRequest, error) {
	reqType = strings.TrimSpace(reqType)
	description = strings.TrimSpace(description)
	if reqType == "" || description == "" {
		return nil, ErrValidation
	}
	if priority == "" {
		priority = models.ServiceRequestPriorityMedium
	}
	if !models.IsValidServiceRequestPriority(priority) {
		return nil, ErrInvalidPriority
	}

	req := &models.ServiceRequest{
		GuestID:     guestID,
		Type:        reqType,
		Description: description,
		Priority:    priority,
		Status:      models.ServiceRequestStatusPending,
	}
	if err := s.DB.Create(req).Error; err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	if err := s.Notifier.NotifyRequestEvent(guestID, EventRequestCreated, req.Type, req.Priority); err != nil {
		return req, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return req, nil
}

// Cancel moves one of the guest's requests from pending to cancelled. The
// status change is a guarded UPDATE so a request picked up by staff in the
// meantime is not silently cancelled afterwards.
func (s *ServiceRequestService) Cancel(id, guestID uint) (*models.ServiceRequest, error) {
	var req models.ServiceRequest

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id = ?", guestID).First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != models.ServiceRequestStatusPending {
			return ErrInvalidTransition
		}

		res := tx.Model(&models.ServiceRequest{}).
			Where("id = ? AND status = ?", req.ID, models.ServiceRequestStatusPending).
			Update("status", models.ServiceRequestStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		req.Status = models.ServiceRequestStatusCancelled
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.Notifier.NotifyRequestEvent(guestID, EventRequestCancelled, req.Type, req.Priority); err != nil {
		return &req, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return &req, nil
}

// ListByGuest returns one page of the guest's requests, newest first.
func (s *ServiceRequestService) ListByGuest(guestID uint, page, limit int) ([]models.ServiceRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 3
	}

	var total int64
	if err := s.DB.Model(&models.ServiceRequest{}).Where("guest_id = ?", guestID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	var list []models.ServiceRequest
	if err := s.DB.
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve service requests: %w", err)
	}
	return list, total, nil
}
