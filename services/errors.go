package services

import "errors"

// Sentinel errors shared by the service layer. Controllers map these onto
// HTTP statuses; anything else is treated as a persistence failure and
// surfaced as a generic 500 without leaking internals.
var (
	ErrBookingNotFound      = errors.New("booking_not_found")
	ErrRequestNotFound      = errors.New("request_not_found")
	ErrNotificationNotFound = errors.New("notification_not_found")
	ErrUserNotFound         = errors.New("user_not_found")
	ErrRoomNotFound         = errors.New("room_not_found")
	ErrHotelNotFound        = errors.New("hotel_not_found")

	ErrValidation        = errors.New("validation_failed")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidStayDates  = errors.New("invalid_stay_dates")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInvalidPriority   = errors.New("invalid_priority")

	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_or_expired_token")

	// ErrNotifyFailed wraps a failed notification insert after the lifecycle
	// transaction already committed. The operation itself succeeded; callers
	// should surface this as a warning, not a failure.
	ErrNotifyFailed = errors.New("notification_failed")
)
