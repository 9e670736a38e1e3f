package models

import (
	"time"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string  `gorm:"column:name;size:191" json:"name"`
	Location string  `gorm:"column:location;size:191" json:"location"`
	Rating   float64 `gorm:"column:rating" json:"rating"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
