package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdo-isfi/Hotel-Reservation-System/models"
	"github.com/abdo-isfi/Hotel-Reservation-System/services"
	"github.com/abdo-isfi/Hotel-Reservation-System/utils"
)

type BookingController struct {
	Service *services.HotelService
}

func NewBookingController(service *services.HotelService) *BookingController {
	return &BookingController{Service: service}
}

type createBookingRequest struct {
	UserID   int    `json:"userId"`
	RoomID   int    `json:"roomId"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// CreateBooking (POST /api/bookings) runs the booking pipeline. Each failure
// kind maps to its own status code; anything unrecognized is a defect and
// surfaces as a 500.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkIn, err := time.Parse(models.DateLayout, req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a YYYY-MM-DD date.")
		return
	}
	checkOut, err := time.Parse(models.DateLayout, req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a YYYY-MM-DD date.")
		return
	}

	booking, err := bc.Service.BookRoom(req.UserID, req.RoomID, checkIn, checkOut)
	if err != nil {
		log.Printf("⚠️ Booking rejected: %v", err)
		utils.JSONError(c, bookingErrorStatus(err), err.Error())
		return
	}

	log.Printf("✅ Booking confirmed for User %d in Room %d. Cost: %d",
		booking.UserID, booking.RoomID, booking.TotalPrice)
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings (GET /api/bookings) lists the ledger newest-first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.Service.BookingsNewestFirst())
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoomUnavailable):
		return http.StatusConflict
	case errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	}
	return http.StatusInternalServerError
}
