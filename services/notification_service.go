package services

import (
	"errors"
	"fmt"

	"guest-portal/models"

	"gorm.io/gorm"
)

// Lifecycle event kinds the emitter knows templates for.
const (
	EventBookingCreated    = "booking_created"
	EventBookingModified   = "booking_modified"
	EventBookingCancelled  = "booking_cancelled"
	EventBookingCheckedIn  = "booking_checked_in"
	EventBookingCheckedOut = "booking_checked_out"
	EventRequestCreated    = "request_created"
	EventRequestCancelled  = "request_cancelled"
	EventLoyaltyAwarded    = "loyalty_awarded"
)

// NotificationService creates and reads user-visible notification records.
// Lifecycle services call it after their transactions commit; a failure here
// must never undo a completed transition.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) Create(userID uint, ntype, title, message string) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
	}
	if err := s.DB.Create(n).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

// NotifyBookingEvent emits exactly one BOOKING notification for a lifecycle
// event, with a deterministic template per event kind.
func (s *NotificationService) NotifyBookingEvent(userID uint, event, hotelName string) error {
	var title, message string
	switch event {
	case EventBookingCreated:
		title = "Booking Confirmed"
		message = fmt.Sprintf("Your reservation at %s has been confirmed. We look forward to welcoming you.", hotelName)
	case EventBookingModified:
		title = "Booking Updated"
		message = fmt.Sprintf("Your reservation at %s has been successfully updated.", hotelName)
	case EventBookingCancelled:
		title = "Booking Cancelled"
		message = fmt.Sprintf("Your reservation at %s has been cancelled as requested.", hotelName)
	case EventBookingCheckedIn:
		title = "Check-in Successful"
		message = fmt.Sprintf("Welcome to %s! Your check-in is complete. Enjoy your stay.", hotelName)
	case EventBookingCheckedOut:
		title = "Check-out Complete"
		message = fmt.Sprintf("Thank you for staying at %s. We hope you had a wonderful time! Your final invoice is ready for download.", hotelName)
	default:
		return fmt.Errorf("unknown booking event %q", event)
	}
	_, err := s.Create(userID, models.NotificationTypeBooking, title, message)
	return err
}

// NotifyRequestEvent emits a SERVICE notification for a service-request event.
func (s *NotificationService) NotifyRequestEvent(userID uint, event, requestType, priority string) error {
	var title, message string
	switch event {
	case EventRequestCreated:
		urgency := "shortly"
		if priority == models.ServiceRequestPriorityHigh {
			urgency = "immediately"
		}
		title = "Service Request Received"
		message = fmt.Sprintf("We've received your request for %s. Our staff will handle it %s.", requestType, urgency)
	case EventRequestCancelled:
		title = "Request Cancelled"
		message = fmt.Sprintf("Your request for %s has been successfully cancelled.", requestType)
	default:
		return fmt.Errorf("unknown request event %q", event)
	}
	_, err := s.Create(userID, models.NotificationTypeService, title, message)
	return err
}

// NotifyLoyaltyAwarded emits a LOYALTY notification for points earned on
// check-out.
func (s *NotificationService) NotifyLoyaltyAwarded(userID uint, points int) error {
	title := "Loyalty Points Earned"
	message := fmt.Sprintf("You have earned %d loyalty points from your recent stay. Thank you for choosing us.", points)
	_, err := s.Create(userID, models.NotificationTypeLoyalty, title, message)
	return err
}

// ListByUser returns the newest notifications for a user, capped at limit.
func (s *NotificationService) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 10
	}
	var list []models.Notification
	if err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead flips the read flag on one of the caller's notifications.
func (s *NotificationService) MarkRead(id, userID uint, read bool) (*models.Notification, error) {
	var n models.Notification
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to load notification: %w", err)
	}
	if err := s.DB.Model(&n).Update("read", read).Error; err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	n.Read = read
	return &n, nil
}
