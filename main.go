package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minhtri-dev/loto-backend/config"
	"github.com/minhtri-dev/loto-backend/routes"
	"github.com/minhtri-dev/loto-backend/utils/logger"
)

// initEnv loads .env file and validates required vars
func initEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found, reading environment variables")
	}

	if os.Getenv("DATABASE_URL") == "" {
		logger.Errorf("DATABASE_URL is required in .env or environment")
		os.Exit(1)
	}
}

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	allowedOrigin := os.Getenv("FRONTEND_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	defer logger.Sync()

	initEnv()
	config.SetupDatabase()

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	logger.Infof("[Init] Loto backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Errorf("[FATAL] Failed to start server: %v", err)
		os.Exit(1)
	}
}
