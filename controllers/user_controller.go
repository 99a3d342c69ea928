package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdo-isfi/Hotel-Reservation-System/services"
	"github.com/abdo-isfi/Hotel-Reservation-System/utils"
)

type UserController struct {
	Service *services.HotelService
}

func NewUserController(service *services.HotelService) *UserController {
	return &UserController{Service: service}
}

type upsertUserRequest struct {
	Balance int `json:"balance"`
}

// UpsertUser (PUT /api/users/:id) creates the user or overwrites the balance
// unconditionally. The creation date is kept from the first upsert.
func (uc *UserController) UpsertUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "User id must be an integer.")
		return
	}

	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	uc.Service.SetUser(id, req.Balance)
	user, _ := uc.Service.FindUser(id)
	utils.JSONSuccess(c, http.StatusOK, user)
}

// GetUsers (GET /api/users) lists users newest-first (reverse insertion order).
func (uc *UserController) GetUsers(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, uc.Service.UsersNewestFirst())
}
