package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdo-isfi/Hotel-Reservation-System/models"
	"github.com/abdo-isfi/Hotel-Reservation-System/services"
	"github.com/abdo-isfi/Hotel-Reservation-System/utils"
)

type RoomController struct {
	Service *services.HotelService
}

func NewRoomController(service *services.HotelService) *RoomController {
	return &RoomController{Service: service}
}

type upsertRoomRequest struct {
	Type          models.RoomType `json:"type" binding:"required"`
	PricePerNight int             `json:"pricePerNight"`
}

// UpsertRoom (PUT /api/rooms/:id) creates the room or replaces its type and
// nightly price. Existing bookings keep their snapshot.
func (rc *RoomController) UpsertRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Room id must be an integer.")
		return
	}

	var req upsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !req.Type.Valid() {
		utils.JSONError(c, http.StatusBadRequest,
			fmt.Sprintf("Unknown room type '%s'.", req.Type))
		return
	}

	rc.Service.SetRoom(id, req.Type, req.PricePerNight)
	room, _ := rc.Service.FindRoom(id)
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRooms (GET /api/rooms) lists rooms in insertion order.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.Rooms())
}
