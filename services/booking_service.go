// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"guest-portal/models"
	"guest-portal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService owns the booking lifecycle: creation, modification and the
// status transitions with their pricing/refund/loyalty arithmetic.
//
// Each transition runs in a single transaction. The status change itself is a
// guarded UPDATE (WHERE id = ? AND status = <expected>): when two requests
// race on the same booking, only one matches and the other gets an
// invalid-transition error, so refunds and points can never be applied twice.
type BookingService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewBookingService(db *gorm.DB, notifier *NotificationService) *BookingService {
	return &BookingService{DB: db, Notifier: notifier}
}

type CreateBookingInput struct {
	UserID      uint
	HotelID     uint
	RoomID      uint
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	TotalAmount float64
}

// StatusChange reports the outcome of a lifecycle transition.
type StatusChange struct {
	Booking      *models.Booking
	Refund       float64
	PointsEarned int
}

// CreateBooking validates the stay and records a new confirmed booking.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, ErrInvalidStayDates
	}
	if in.TotalAmount < 0 {
		return nil, ErrInvalidAmount
	}
	if in.Guests < 1 {
		in.Guests = 1
	}

	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
	}
	if room.HotelID != in.HotelID {
		return nil, ErrRoomNotFound
	}

	booking := models.Booking{
		ReferenceCode: uuid.NewString(),
		UserID:        in.UserID,
		HotelID:       in.HotelID,
		RoomID:        in.RoomID,
		CheckInDate:   in.CheckIn,
		CheckOutDate:  in.CheckOut,
		Guests:        in.Guests,
		TotalAmount:   Round2(in.TotalAmount),
		Status:        models.BookingStatusConfirmed,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.DB.Preload("Hotel").Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}

	if err := s.Notifier.NotifyBookingEvent(booking.UserID, EventBookingCreated, booking.Hotel.Name); err != nil {
		return &booking, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return &booking, nil
}

// UpdateStatus applies one lifecycle transition at time now:
//
//	confirmed  -> checked-in   no pricing change
//	confirmed  -> cancelled    full refund >=24h before check-in,
//	                           one-night penalty inside 24h
//	checked-in -> checked-out  prorated on early departure; awards
//	                           floor(final/10) loyalty points
//
// Any other requested status or current state is rejected without mutation.
func (s *BookingService) UpdateStatus(bookingID, userID uint, newStatus string, now time.Time) (*StatusChange, error) {
	switch newStatus {
	case models.BookingStatusCancelled, models.BookingStatusCheckedIn, models.BookingStatusCheckedOut:
	default:
		return nil, ErrInvalidStatus
	}

	var booking models.Booking
	change := &StatusChange{}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		var fromStatus string
		updates := map[string]interface{}{"status": newStatus}

		switch newStatus {
		case models.BookingStatusCancelled:
			fromStatus = models.BookingStatusConfirmed
			newTotal, refund := CancellationQuote(booking.TotalAmount, booking.CheckInDate, booking.CheckOutDate, now)
			updates["total_amount"] = newTotal
			updates["cancelled_at"] = now
			booking.TotalAmount = newTotal
			change.Refund = refund

		case models.BookingStatusCheckedIn:
			fromStatus = models.BookingStatusConfirmed
			updates["checked_in_at"] = now

		case models.BookingStatusCheckedOut:
			fromStatus = models.BookingStatusCheckedIn
			newTotal, refund := CheckoutQuote(booking.TotalAmount, booking.CheckInDate, booking.CheckOutDate, now)
			updates["total_amount"] = newTotal
			updates["checked_out_at"] = now
			booking.TotalAmount = newTotal
			change.Refund = refund
			change.PointsEarned = LoyaltyPointsForSpend(newTotal)
		}

		if booking.Status != fromStatus {
			return ErrInvalidTransition
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, fromStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race: someone else already moved the booking on
			return ErrInvalidTransition
		}

		if change.PointsEarned > 0 {
			if err := tx.Model(&models.User{}).
				Where("id = ?", booking.UserID).
				UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", change.PointsEarned)).Error; err != nil {
				return fmt.Errorf("failed to award loyalty points: %w", err)
			}
		}

		booking.Status = newStatus
		switch newStatus {
		case models.BookingStatusCancelled:
			booking.CancelledAt = utils.PtrTime(now)
		case models.BookingStatusCheckedIn:
			booking.CheckedInAt = utils.PtrTime(now)
		case models.BookingStatusCheckedOut:
			booking.CheckedOutAt = utils.PtrTime(now)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Hotel").Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	change.Booking = &booking

	// Notifications are emitted after the commit: a failed insert here must
	// not undo a completed transition, it only becomes a response warning.
	var event string
	switch newStatus {
	case models.BookingStatusCancelled:
		event = EventBookingCancelled
	case models.BookingStatusCheckedIn:
		event = EventBookingCheckedIn
	case models.BookingStatusCheckedOut:
		event = EventBookingCheckedOut
	}
	if err := s.Notifier.NotifyBookingEvent(booking.UserID, event, booking.Hotel.Name); err != nil {
		return change, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	if change.PointsEarned > 0 {
		if err := s.Notifier.NotifyLoyaltyAwarded(booking.UserID, change.PointsEarned); err != nil {
			return change, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
		}
	}
	return change, nil
}

// Modify reschedules a confirmed booking. The total is repriced at the
// nightly rate implied by the current total and current stay length.
func (s *BookingService) Modify(bookingID, userID uint, newCheckIn, newCheckOut time.Time, guests int) (*models.Booking, error) {
	if !newCheckOut.After(newCheckIn) {
		return nil, ErrInvalidStayDates
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusConfirmed {
			return ErrInvalidTransition
		}

		newTotal := ModifiedTotal(booking.TotalAmount, booking.CheckInDate, booking.CheckOutDate, newCheckIn, newCheckOut)
		updates := map[string]interface{}{
			"check_in_date":  newCheckIn,
			"check_out_date": newCheckOut,
			"total_amount":   newTotal,
		}
		if guests > 0 {
			updates["guests"] = guests
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingStatusConfirmed).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Hotel").Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}

	if err := s.Notifier.NotifyBookingEvent(booking.UserID, EventBookingModified, booking.Hotel.Name); err != nil {
		return &booking, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return &booking, nil
}

// ListByUser returns one page of the caller's bookings, newest first, plus
// the total count.
func (s *BookingService) ListByUser(userID uint, page, limit int) ([]models.Booking, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}

	var total int64
	if err := s.DB.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var list []models.Booking
	if err := s.DB.
		Preload("Hotel").
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, total, nil
}

// GetByID loads one of the caller's bookings with its hotel and room.
func (s *BookingService) GetByID(bookingID, userID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.
		Preload("Hotel").
		Preload("Room").
		Where("user_id = ?", userID).
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}
