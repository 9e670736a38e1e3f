package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"column:email;size:191;uniqueIndex" json:"email"`
	Name     string `gorm:"column:name;size:191" json:"name"`
	Password string `gorm:"column:password;size:191" json:"-"`

	Phone    string `gorm:"column:phone;size:64" json:"phone,omitempty"`
	Address  string `gorm:"column:address;size:255" json:"address,omitempty"`
	Avatar   string `gorm:"column:avatar;size:255" json:"avatar,omitempty"`
	Language string `gorm:"column:language;size:32;default:English" json:"language,omitempty"`
	Currency string `gorm:"column:currency;size:8;default:USD" json:"currency,omitempty"`

	// Free-form guest preferences (room temperature, pillow type, ...) as JSON.
	Preferences datatypes.JSON `gorm:"column:preferences" json:"preferences,omitempty"`

	// 1 point per $10 of completed-stay spend. Never negative.
	LoyaltyPoints int `gorm:"column:loyalty_points;default:0" json:"loyaltyPoints"`
}
