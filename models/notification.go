package models

import (
	"time"
)

// Notification categories.
const (
	NotificationTypeBooking = "BOOKING"
	NotificationTypeService = "SERVICE"
	NotificationTypeLoyalty = "LOYALTY"
)

// Notification is an append-only record created as a side effect of lifecycle
// events. Only the Read flag is ever mutated after creation.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"index;column:user_id" json:"userId"`

	Type    string `gorm:"column:type;size:16" json:"type"`
	Title   string `gorm:"column:title;size:191" json:"title"`
	Message string `gorm:"column:message;type:text" json:"message"`
	Read    bool   `gorm:"column:read;default:false" json:"read"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
