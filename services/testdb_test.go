package services

import (
	"fmt"
	"testing"

	"guest-portal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated with the full schema.
// The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.ServiceRequest{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// seedStay inserts a hotel, a room and a guest and returns them.
func seedStay(t *testing.T, db *gorm.DB) (models.Hotel, models.Room, models.User) {
	t.Helper()

	hotel := models.Hotel{Name: "The Royale Majestic", Location: "Dubai, UAE", Rating: 5.0}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("failed to seed hotel: %v", err)
	}

	room := models.Room{
		HotelID:       hotel.ID,
		Type:          "Luxury Ocean Suite",
		Capacity:      2,
		PricePerNight: 150,
		Status:        models.RoomStatusAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}

	user := models.User{Email: "guest@example.com", Name: "John Doe", LoyaltyPoints: 100}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return hotel, room, user
}

func countNotifications(t *testing.T, db *gorm.DB, userID uint, ntype string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", userID, ntype).
		Count(&n).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	return n
}
