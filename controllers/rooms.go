package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhtri-dev/loto-backend/config"
	"github.com/minhtri-dev/loto-backend/services"
	"gorm.io/gorm"
)

// CreateRoom creates a new room and returns its join code together
// with the host token the creator needs for calling numbers.
func CreateRoom(c *gin.Context) {
	room, err := services.CreateRoom(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":       room.Code,
		"status":     room.Status,
		"host_token": room.HostToken,
	})
}

// GetRoom returns public room info by join code.
func GetRoom(c *gin.Context) {
	room, err := services.FindRoomByCode(config.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// JoinRoom registers a player in the room and issues their ticket.
func JoinRoom(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := services.FindRoomByCode(config.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	player, ticket, err := services.JoinRoom(config.DB, room, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Room already finished"})
		case errors.Is(err, services.ErrTicketIssueExhausted):
			c.JSON(http.StatusConflict, gin.H{"error": "Could not issue a unique ticket"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join room"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"player_token": player.Token,
		"player_id":    player.ID,
		"ticket":       ticket,
	})
}

// CallNumber records the host announcing a number.
func CallNumber(c *gin.Context) {
	var req struct {
		HostToken string `json:"host_token" binding:"required"`
		Number    int    `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := services.FindRoomByCode(config.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	called, err := services.CallNumber(config.DB, room, req.HostToken, req.Number)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotHost):
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid host token"})
		case errors.Is(err, services.ErrNumberOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Number must be between 1 and 90"})
		case errors.Is(err, services.ErrNumberAlreadyCalled):
			c.JSON(http.StatusConflict, gin.H{"error": "Number already called"})
		case errors.Is(err, services.ErrRoomClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Room already finished"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to call number"})
		}
		return
	}

	c.JSON(http.StatusCreated, called)
}

// ListCalledNumbers returns the room's call history in order.
func ListCalledNumbers(c *gin.Context) {
	room, err := services.FindRoomByCode(config.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	calls, err := services.CalledNumbers(config.DB, room.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch called numbers"})
		return
	}

	c.JSON(http.StatusOK, calls)
}

// FinishRoom ends the game; host only.
func FinishRoom(c *gin.Context) {
	var req struct {
		HostToken string `json:"host_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := services.FindRoomByCode(config.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := services.FinishRoom(config.DB, room, req.HostToken); err != nil {
		if errors.Is(err, services.ErrNotHost) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid host token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finish room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": room.Status})
}
