package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"guest-portal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "guest_portal")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.ServiceRequest{},
		&models.Notification{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase inserts demo data on an empty database: one hotel, two rooms
// and a test guest account.
func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)

	if hotelCount == 0 {
		hotel := models.Hotel{
			Name:     "The Royale Majestic",
			Location: "Dubai, UAE",
			Rating:   5.0,
		}
		if err := DB.Create(&hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel: %v", err)
		} else {
			suiteAmenities, _ := json.Marshal([]string{"Sea View", "King Bed", "Mini Bar", "Jacuzzi", "Free Wi-Fi"})
			deluxeAmenities, _ := json.Marshal([]string{"Garden View", "Queen Bed", "Work Desk", "Coffee Maker"})

			rooms := []models.Room{
				{
					HotelID:       hotel.ID,
					Type:          "Luxury Ocean Suite",
					Capacity:      2,
					PricePerNight: 450,
					Floor:         12,
					Status:        models.RoomStatusAvailable,
					Amenities:     suiteAmenities,
				},
				{
					HotelID:       hotel.ID,
					Type:          "Deluxe Garden Room",
					Capacity:      2,
					PricePerNight: 280,
					Floor:         4,
					Status:        models.RoomStatusAvailable,
					Amenities:     deluxeAmenities,
				},
			}
			if err := DB.Create(&rooms).Error; err != nil {
				log.Printf("warning: failed to seed rooms: %v", err)
			} else {
				log.Println("Hotel and rooms seeded")
			}
		}
	}

	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash test guest password: %v", err)
			return
		}
		guest := models.User{
			Email:         "guest@example.com",
			Name:          "John Doe",
			Password:      string(hash),
			LoyaltyPoints: 1250,
			Language:      "English",
			Currency:      "USD",
			Phone:         "+971 50 123 4567",
			Address:       "Sky Tower 1, Dubai Marina",
		}
		if err := DB.Create(&guest).Error; err != nil {
			log.Printf("warning: failed to seed test guest: %v", err)
		} else {
			log.Println("Test guest seeded")
		}
	}
}
