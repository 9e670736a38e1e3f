// controllers/hotel_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"guest-portal/services"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

// GetHotels lists hotels with rooms for the search page. Optional filters:
// ?location=dubai&guests=2
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	guests, _ := strconv.Atoi(c.DefaultQuery("guests", "0"))

	hotels, err := ctrl.HotelSvc.List(c.Query("location"), guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	hotel, err := ctrl.HotelSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}
