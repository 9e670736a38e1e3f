// controllers/booking_controller.go
package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"guest-portal/middleware"
	"guest-portal/services"
	"guest-portal/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	HotelID     uint    `json:"hotel_id" binding:"required"`
	RoomID      uint    `json:"room_id" binding:"required"`
	CheckIn     string  `json:"check_in" binding:"required"`
	CheckOut    string  `json:"check_out" binding:"required"`
	Guests      int     `json:"guests"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
}

// UpdateBookingRequest drives PATCH /bookings/:id. A status triggers a
// lifecycle transition; check_in/check_out/guests without a status modify the
// reservation.
type UpdateBookingRequest struct {
	Status   string `json:"status"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// parseStayDate accepts "2006-01-02" or RFC3339.
func parseStayDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}

	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Missing required fields", "details": err.Error()}})
		return
	}

	checkIn, err := parseStayDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseStayDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_out must be YYYY-MM-DD")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		UserID:      user.ID,
		HotelID:     payload.HotelID,
		RoomID:      payload.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      payload.Guests,
		TotalAmount: payload.TotalAmount,
	})
	if err != nil && !errors.Is(err, services.ErrNotifyFailed) {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"message": "Booking created successfully", "booking": booking}
	if err != nil {
		resp["warning"] = "booking created but notification could not be delivered"
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	bookings, total, err := ctrl.BookingSvc.ListByUser(user.ID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if limit < 1 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":   bookings,
		"total":      total,
		"page":       page,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBooking handles both lifecycle transitions (status present) and
// date/guest modifications (status absent).
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()}})
		return
	}

	if payload.Status != "" {
		change, err := ctrl.BookingSvc.UpdateStatus(id, user.ID, payload.Status, time.Now().UTC())
		if err != nil && !errors.Is(err, services.ErrNotifyFailed) {
			respondServiceError(c, err)
			return
		}

		resp := gin.H{
			"message": "Booking updated successfully",
			"booking": change.Booking,
			"refund":  change.Refund,
		}
		if payload.Status == "cancelled" {
			resp["message"] = "Booking cancelled successfully"
		}
		if change.PointsEarned > 0 {
			resp["pointsEarned"] = change.PointsEarned
		}
		if err != nil {
			resp["warning"] = "booking updated but notification could not be delivered"
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	if payload.CheckIn == "" || payload.CheckOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Either a status or both check_in and check_out are required")
		return
	}
	checkIn, err := parseStayDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseStayDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "check_out must be YYYY-MM-DD")
		return
	}

	booking, err := ctrl.BookingSvc.Modify(id, user.ID, checkIn, checkOut, payload.Guests)
	if err != nil && !errors.Is(err, services.ErrNotifyFailed) {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"message": "Booking updated successfully", "booking": booking}
	if err != nil {
		resp["warning"] = "booking updated but notification could not be delivered"
	}
	c.JSON(http.StatusOK, resp)
}
