package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelID uint `gorm:"index;column:hotel_id" json:"hotelId"`

	Type          string  `gorm:"column:type;size:191" json:"type"`
	Capacity      int     `gorm:"column:capacity;default:2" json:"capacity"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	Floor         int     `gorm:"column:floor" json:"floor"`
	Status        string  `gorm:"column:status;size:32;default:available" json:"status"`
	Image         string  `gorm:"column:image;size:512" json:"image,omitempty"`

	// Amenity names as a JSON array, e.g. ["Sea View","King Bed"].
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
