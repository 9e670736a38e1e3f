package models

import (
	"time"
)

// Session holds an opaque bearer token resolving to the authenticated guest.
// Lifecycle operations always receive the resolved user explicitly instead of
// relying on ambient state.
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	UserID    uint      `gorm:"index;column:user_id" json:"userId"`
	Token     string    `gorm:"column:token;size:128;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expiresAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
