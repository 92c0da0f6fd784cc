package main

import (
	"log"
	"net/http"
	"os"

	"foodly-api/config"
	"foodly-api/handlers"
	"foodly-api/routes"
	"foodly-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database and wire handlers
	config.InitDB()
	handlers.Init(config.DB)

	// Make sure the singleton profile and settings rows exist before the
	// first request touches them.
	if _, err := services.NewProfiles(config.DB).Get(); err != nil {
		log.Fatal("Failed to initialize restaurant profile:", err)
	}
	if _, err := services.NewSettings(config.DB).Get(); err != nil {
		log.Fatal("Failed to initialize settings:", err)
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the admin dashboard
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Foodly Restaurant Admin API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Foodly Restaurant Admin API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"customer", "staff", "admin"},
		})
	})

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
