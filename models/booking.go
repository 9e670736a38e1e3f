package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. A booking starts out Confirmed; Cancelled and CheckedOut
// are terminal. Cancellation is a status change, bookings are never hard-deleted.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`

	UserID  uint `gorm:"index;column:user_id" json:"userId"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	Guests      int     `gorm:"column:guests;default:1" json:"guests"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	Status      string  `gorm:"column:status;size:32;default:confirmed" json:"status"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// IsValidBookingStatus reports whether s is one of the known booking statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}
