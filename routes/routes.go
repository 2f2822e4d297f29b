package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/minhtri-dev/loto-backend/controllers"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// Room routes
	// ----------------------
	api.POST("/rooms", controllers.CreateRoom)               // Create room (host)
	api.GET("/rooms/:code", controllers.GetRoom)             // Room info by join code
	api.POST("/rooms/:code/join", controllers.JoinRoom)      // Join room, get a ticket
	api.POST("/rooms/:code/finish", controllers.FinishRoom)  // End the game (host)

	// ----------------------
	// Number calling
	// ----------------------
	api.POST("/rooms/:code/calls", controllers.CallNumber)       // Call a number (host)
	api.GET("/rooms/:code/calls", controllers.ListCalledNumbers) // Call history in order

	// ----------------------
	// Ticket routes
	// ----------------------
	api.GET("/rooms/:code/tickets/:token", controllers.GetTicket)         // Player's ticket
	api.GET("/rooms/:code/tickets/:token/check", controllers.CheckTicket) // Line / full house check
}
