package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"resto_pos_backend/internal/database"
	"resto_pos_backend/internal/router"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env before anything reads the environment
	utils.LoadEnv()

	// Initialize Logger
	utils.InitLogger()

	// JWT signing secret
	utils.InitJWT(utils.Getenv("JWT_SECRET", "dev-only-insecure-secret"))

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "resto_pos_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "resto_pos_password")
	dbName := utils.Getenv("DB_NAME", "resto_pos_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	// Initialize Database
	if err := database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath); err != nil {
		utils.LogError(err, "Failed to initialize database")
		log.Fatalf("Failed to initialize database: %v", err)
	}
	dbConn := database.GetDB()

	if err := database.SeedCatalog(dbConn); err != nil {
		utils.LogError(err, "Failed to seed menu categories")
		log.Fatalf("Failed to seed menu categories: %v", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup all application routes
	router.Setup(engine, dbConn)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
