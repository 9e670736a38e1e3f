package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"guest-portal/services"
	"guest-portal/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

// respondServiceError maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a persistence failure: logged with context,
// surfaced as a generic 500 without internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "Booking not found")
	case errors.Is(err, services.ErrRequestNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.requestNotFound", "Service request not found")
	case errors.Is(err, services.ErrNotificationNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notificationNotFound", "Notification not found")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.userNotFound", "User not found")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusBadRequest, "error.roomNotFound", "Room not found for this hotel")
	case errors.Is(err, services.ErrHotelNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", "Hotel not found")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "error.invalidTransition", "This status change is not allowed from the current state")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus", "Only cancellation, check-in and check-out are supported for status updates")
	case errors.Is(err, services.ErrInvalidStayDates):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidStayDates", "Check-out must be after check-in")
	case errors.Is(err, services.ErrInvalidAmount):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidAmount", "Total amount must not be negative")
	case errors.Is(err, services.ErrInvalidPriority):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPriority", "Priority must be low, medium or high")
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "Missing or malformed fields")
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "error.emailTaken", "An account with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "Invalid credentials")
	case errors.Is(err, services.ErrInvalidToken):
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidOrExpiredToken", "Session is invalid or has expired")
	case isForeignKeyError(err):
		utils.JSONError(c, http.StatusBadRequest, "error.foreignKey", "Referenced record does not exist")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Internal server error")
	}
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}
