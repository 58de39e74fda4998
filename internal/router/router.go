package router

import (
	"database/sql"

	"resto_pos_backend/internal/handlers"
	"resto_pos_backend/internal/middleware"
	"resto_pos_backend/internal/repositories"
	"resto_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers together and registers
// all API routes on the engine.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize Services
	authService := services.NewAuthService(userRepo, db)
	catalogService := services.NewCatalogService(catalogRepo, db)
	statsService := services.NewStatsService(statsRepo, db)
	orderService := services.NewOrderService(orderRepo, statsService, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupOrderRoutes(authenticated, orderHandler)
		SetupCategoryRoutes(authenticated, catalogHandler)
		SetupProductRoutes(authenticated, catalogHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
	}
}
