// services/hotel_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"guest-portal/models"

	"gorm.io/gorm"
)

// HotelService serves the room-search side of the portal.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// List returns hotels with their rooms preloaded. location filters by
// substring match; guests > 0 keeps only rooms with enough capacity.
func (s *HotelService) List(location string, guests int) ([]models.Hotel, error) {
	q := s.DB.Model(&models.Hotel{})

	location = strings.TrimSpace(location)
	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	if guests > 0 {
		q = q.Preload("Rooms", "capacity >= ?", guests)
	} else {
		q = q.Preload("Rooms")
	}

	var hotels []models.Hotel
	if err := q.Order("rating DESC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	for i := range hotels {
		if hotels[i].Rooms == nil {
			hotels[i].Rooms = []models.Room{}
		}
	}
	return hotels, nil
}

// GetByID loads one hotel with its rooms.
func (s *HotelService) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.Preload("Rooms").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to retrieve hotel: %w", err)
	}
	return &hotel, nil
}
