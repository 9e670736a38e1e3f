package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guest-portal/controllers"
	"guest-portal/models"
	"guest-portal/routes"
	"guest-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	hotel  models.Hotel
	room   models.Room
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.ServiceRequest{},
		&models.Notification{},
	))

	hotel := models.Hotel{Name: "The Royale Majestic", Location: "Dubai, UAE", Rating: 5.0}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{HotelID: hotel.ID, Type: "Luxury Ocean Suite", Capacity: 2, PricePerNight: 150}
	require.NoError(t, db.Create(&room).Error)

	userSvc := services.NewUserService(db)
	hotelSvc := services.NewHotelService(db)
	notificationSvc := services.NewNotificationService(db)
	bookingSvc := services.NewBookingService(db, notificationSvc)
	requestSvc := services.NewServiceRequestService(db, notificationSvc)

	router := routes.SetupRouter(
		controllers.NewAuthController(userSvc),
		controllers.NewUserController(userSvc),
		controllers.NewHotelController(hotelSvc),
		controllers.NewBookingController(bookingSvc),
		controllers.NewServiceRequestController(requestSvc),
		controllers.NewNotificationController(notificationSvc),
		userSvc,
	)

	return &testEnv{router: router, db: db, hotel: hotel, room: room}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	w, _ := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"name":     "John Doe",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func stayDate(daysFromNow int) string {
	return time.Now().UTC().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w, resp := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", resp["status"])
}

func TestBookingsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/api/bookings", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/bookings", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHotelSearchIsPublic(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels?location=dubai&guests=2", nil)
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var hotels []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	require.Len(t, hotels, 1)
	require.Equal(t, "The Royale Majestic", hotels[0]["name"])
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "guest@example.com")

	// create: 5 nights at $150
	w, resp := env.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"hotel_id":     env.hotel.ID,
		"room_id":      env.room.ID,
		"check_in":     stayDate(10),
		"check_out":    stayDate(15),
		"guests":       2,
		"total_amount": 750,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	booking := resp["booking"].(map[string]any)
	bookingID := uint(booking["id"].(float64))
	require.Equal(t, "confirmed", booking["status"])

	// list is scoped to the caller
	w, resp = env.do(t, http.MethodGet, "/api/bookings?page=1&limit=5", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, resp["total"])

	// cancel well ahead of check-in: full refund
	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", bookingID), token, gin.H{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Booking cancelled successfully", resp["message"])
	require.EqualValues(t, 750, resp["refund"])

	// cancelling again is a conflict
	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", bookingID), token, gin.H{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	errObj := resp["error"].(map[string]any)
	require.Equal(t, "error.invalidTransition", errObj["code"])

	// the cancellation left a notification behind
	w, resp = env.do(t, http.MethodGet, "/api/notifications?limit=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notifications := resp["notifications"].([]any)
	require.NotEmpty(t, notifications)
}

func TestModifyBookingOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "guest@example.com")

	w, resp := env.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"hotel_id":     env.hotel.ID,
		"room_id":      env.room.ID,
		"check_in":     stayDate(10),
		"check_out":    stayDate(15),
		"total_amount": 750,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := uint(resp["booking"].(map[string]any)["id"].(float64))

	// shrink to 3 nights: repriced at the implied $150/night
	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", bookingID), token, gin.H{
		"check_in":  stayDate(20),
		"check_out": stayDate(23),
		"guests":    2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 450, resp["booking"].(map[string]any)["totalAmount"])

	// invalid date order is rejected before any mutation
	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", bookingID), token, gin.H{
		"check_in":  stayDate(23),
		"check_out": stayDate(20),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "error.invalidStayDates", resp["error"].(map[string]any)["code"])
}

func TestServiceRequestFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "guest@example.com")

	w, resp := env.do(t, http.MethodPost, "/api/service-requests", token, gin.H{
		"service_type": "room-service",
		"description":  "Late night dinner",
		"priority":     "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reqID := uint(resp["request"].(map[string]any)["id"].(float64))

	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/service-requests/%d", reqID), token, gin.H{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cancelled", resp["request"].(map[string]any)["status"])

	// only cancellation is allowed from the portal
	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/service-requests/%d", reqID), token, gin.H{
		"status": "completed",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "error.invalidStatus", resp["error"].(map[string]any)["code"])
}

func TestProfileScopedToSelf(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "guest@example.com")

	var me models.User
	require.NoError(t, env.db.Where("email = ?", "guest@example.com").First(&me).Error)

	w, resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", me.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "guest@example.com", resp["user"].(map[string]any)["email"])

	w, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", me.ID+1), token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w, resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/users/%d", me.ID), token, gin.H{
		"name":  "John D.",
		"phone": "+971 50 123 4567",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "John D.", resp["user"].(map[string]any)["name"])
}
