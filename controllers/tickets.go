package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhtri-dev/loto-backend/config"
	"github.com/minhtri-dev/loto-backend/loto"
	"github.com/minhtri-dev/loto-backend/models"
	"github.com/minhtri-dev/loto-backend/services"
	"gorm.io/gorm"
)

// findPlayerTicket resolves a player token inside a room to the
// player's ticket.
func findPlayerTicket(c *gin.Context) (*models.Room, *models.Ticket, bool) {
	room, err := services.FindRoomByCode(config.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, nil, false
	}

	var player models.Player
	if err := config.DB.Where("room_id = ? AND token = ?", room.ID, c.Param("token")).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, nil, false
	}

	var ticket models.Ticket
	if err := config.DB.Where("room_id = ? AND player_id = ?", room.ID, player.ID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, nil, false
	}

	return room, &ticket, true
}

// GetTicket returns the grid issued to a player.
func GetTicket(c *gin.Context) {
	_, ticket, ok := findPlayerTicket(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// CheckTicket evaluates the player's ticket against the numbers called
// so far and reports line wins and full house.
func CheckTicket(c *gin.Context) {
	room, ticket, ok := findPlayerTicket(c)
	if !ok {
		return
	}

	grid, err := services.TicketGrid(ticket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored ticket is corrupt"})
		return
	}

	called, err := services.CalledSet(config.DB, room.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch called numbers"})
		return
	}

	c.JSON(http.StatusOK, loto.CheckWin(grid, called))
}
