package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quickmart/loyalty-backend/internal/config"
	"github.com/quickmart/loyalty-backend/internal/handlers"
	"github.com/quickmart/loyalty-backend/internal/middleware"
)

// HandlerDependencies groups the handlers needed by the router
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	CheckoutHandler *handlers.CheckoutHandler
	CustomerHandler *handlers.CustomerHandler
	CatalogHandler  *handlers.CatalogHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.CustomerLogin)
			auth.POST("/admin/register", deps.AuthHandler.AdminRegister)
			auth.POST("/admin/login", deps.AuthHandler.AdminLogin)
		}

		// Storefront catalog is browsable without a token
		public.GET("/products", deps.CatalogHandler.GetAllProducts)
		public.GET("/products/:id", deps.CatalogHandler.GetProductByID)
		public.GET("/categories", deps.CatalogHandler.GetAllCategories)
	}

	// Customer routes (require a token)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/checkout", deps.CheckoutHandler.Checkout)

		customers := protected.Group("/customers")
		{
			customers.GET("/me", deps.CustomerHandler.GetMe)
			customers.GET("/me/transactions", deps.CustomerHandler.GetMyTransactions)
		}
	}

	// Admin provisioning routes
	admin := router.Group("/api/v1")
	admin.Use(middleware.JWTAuthMiddleware(cfg), middleware.RequireRole("admin"))
	{
		admin.POST("/products", deps.CatalogHandler.CreateProduct)
		admin.POST("/categories", deps.CatalogHandler.CreateCategory)
		admin.POST("/categories/:id/rules", deps.CatalogHandler.AddEarningRule)
		admin.POST("/customers", deps.CustomerHandler.CreateCustomer)
	}

	return router
}
