package router

import (
	"resto_pos_backend/internal/handlers"
	"resto_pos_backend/internal/middleware"
	"resto_pos_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupOrderRoutes sets up the order routes. Orders are immutable once
// placed, so only creation and reads are exposed.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	orderRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
	}
}

// SetupCategoryRoutes sets up the menu category routes. Reads are open to
// staff, writes are admin only.
func SetupCategoryRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	categoryRoutes := authenticatedGroup.Group("/categories")
	categoryRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		categoryRoutes.GET("", catalogHandler.GetCategories)
		categoryRoutes.GET("/:id", catalogHandler.GetCategoryByID)

		adminRoutes := categoryRoutes.Group("")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("", catalogHandler.CreateCategory)
			adminRoutes.PUT("/:id", catalogHandler.UpdateCategory)
			adminRoutes.DELETE("/:id", catalogHandler.DeleteCategory)
		}
	}
}

// SetupProductRoutes sets up the product routes. Reads are open to staff,
// writes are admin only.
func SetupProductRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	productRoutes := authenticatedGroup.Group("/products")
	productRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		productRoutes.GET("", catalogHandler.GetProducts)
		productRoutes.GET("/:id", catalogHandler.GetProductByID)

		adminRoutes := productRoutes.Group("")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("", catalogHandler.CreateProduct)
			adminRoutes.PUT("/:id", catalogHandler.UpdateProduct)
			adminRoutes.DELETE("/:id", catalogHandler.DeleteProduct)
		}
	}
}

// SetupDashboardRoutes sets up the dashboard statistics routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		dashboardRoutes.GET("/stats", dashboardHandler.GetDashboardStats)
	}
}
