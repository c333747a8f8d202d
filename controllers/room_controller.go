package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"langham-hms/services"
	"langham-hms/utils"
)

// RoomController exposes the room registry read-only over HTTP.
type RoomController struct {
	Hotel *services.HotelService
}

func NewRoomController(hotel *services.HotelService) *RoomController {
	return &RoomController{Hotel: hotel}
}

// ----------------------------------------------------
// GET /api/rooms
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Hotel.ListRooms())
}

// ----------------------------------------------------
// GET /api/rooms/available
// ----------------------------------------------------

func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Hotel.ListAvailable())
}

// ----------------------------------------------------
// GET /api/rooms/:number
// ----------------------------------------------------

func (rc *RoomController) GetRoom(c *gin.Context) {
	room, err := rc.Hotel.FindRoom(strings.TrimSpace(c.Param("number")))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
