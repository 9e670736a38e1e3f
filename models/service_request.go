package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ServiceRequestStatusPending    = "pending"
	ServiceRequestStatusInProgress = "in-progress"
	ServiceRequestStatusCompleted  = "completed"
	ServiceRequestStatusCancelled  = "cancelled"
)

const (
	ServiceRequestPriorityLow    = "low"
	ServiceRequestPriorityMedium = "medium"
	ServiceRequestPriorityHigh   = "high"
)

// ServiceRequest is a guest-submitted request (room service, housekeeping, ...).
// Guests can only move it pending -> cancelled; the other statuses are set by
// staff-side tooling.
type ServiceRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`

	Type        string `gorm:"column:type;size:64" json:"type"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Priority    string `gorm:"column:priority;size:16;default:medium" json:"priority"`
	Status      string `gorm:"column:status;size:32;default:pending" json:"status"`

	Guest User `gorm:"foreignKey:GuestID" json:"-"`
}

// IsValidServiceRequestPriority reports whether p is a known priority level.
func IsValidServiceRequestPriority(p string) bool {
	switch p {
	case ServiceRequestPriorityLow, ServiceRequestPriorityMedium, ServiceRequestPriorityHigh:
		return true
	}
	return false
}
