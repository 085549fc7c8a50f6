package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/handlers"
	"restaurant-ordering-api/mailer"
	"restaurant-ordering-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Reservation notification outbox
	outbox := mailer.NewOutbox(mailer.NewSMTPSender(config.LoadSMTP()))
	outbox.Start()
	defer outbox.Close()
	handlers.Notifications = outbox

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering API",
			"version": "1.0.0",
		})
	})

	// Dish images
	r.Static("/uploads", config.UploadDir())

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
