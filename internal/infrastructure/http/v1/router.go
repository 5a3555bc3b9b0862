// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"minipos/internal/domain/analytics"
	"minipos/internal/domain/auth"
	"minipos/internal/domain/catalogs/client"
	"minipos/internal/domain/catalogs/point"
	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/documents/receipt"
	"minipos/internal/domain/printing"
	"minipos/internal/domain/scanner"
	"minipos/internal/infrastructure/http/v1/handlers"
	"minipos/internal/infrastructure/http/v1/middleware"
	"minipos/internal/infrastructure/storage/postgres"
	"minipos/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Domain services
	AuthService      *auth.Service
	ProductService   *product.Service
	ClientService    *client.Service
	PointService     *point.Service
	ReceiptService   *receipt.Service
	AnalyticsService *analytics.Service
	ScannerService   *scanner.Service
	PrintingService  *printing.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	api := router.Group("/api/v1")
	{
		// Auth
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", middleware.Auth(cfg.JWTValidator), authHandler.Me)

		// Protected endpoints
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		manageRoles := middleware.RequireRole(
			string(auth.RoleAdmin),
			string(auth.RoleOwner),
		)

		// Catalogs
		catalog := protected.Group("/catalog")
		{
			productHandler := handlers.NewProductHandler(base, cfg.ProductService, cfg.ScannerService)
			products := catalog.Group("/products")
			products.GET("", productHandler.List)
			products.GET("/categories", productHandler.Categories)
			products.GET("/barcode/:code", productHandler.FindByBarcode)
			products.GET("/:id", productHandler.Get)
			products.POST("", manageRoles, productHandler.Create)
			products.POST("/scanned", productHandler.AddScanned)
			products.PUT("/:id", manageRoles, productHandler.Update)
			products.DELETE("/:id", manageRoles, productHandler.Delete)

			clientHandler := handlers.NewClientHandler(base, cfg.ClientService)
			clients := catalog.Group("/clients")
			clients.GET("", clientHandler.List)
			clients.GET("/:id", clientHandler.Get)
			clients.POST("", clientHandler.Create)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", manageRoles, clientHandler.Delete)

			pointHandler := handlers.NewPointHandler(base, cfg.PointService)
			points := catalog.Group("/points")
			points.GET("", pointHandler.List)
			points.GET("/:id", pointHandler.Get)
			points.POST("", middleware.RequireRole(string(auth.RoleAdmin)), pointHandler.Create)
			points.PUT("/:id", middleware.RequireRole(string(auth.RoleAdmin)), pointHandler.Update)
			points.DELETE("/:id", middleware.RequireRole(string(auth.RoleAdmin)), pointHandler.Delete)
		}

		// Receipts
		receiptHandler := handlers.NewReceiptHandler(base, cfg.ReceiptService, cfg.PrintingService)
		receipts := protected.Group("/receipts")
		{
			receipts.GET("", receiptHandler.List)
			receipts.GET("/:id", receiptHandler.Get)
			receipts.GET("/:id/ticket", receiptHandler.Ticket)
			receipts.POST("", receiptHandler.Create)
			receipts.POST("/:id/cancel", manageRoles, receiptHandler.Cancel)
			receipts.POST("/:id/print", receiptHandler.Print)
		}

		// Analytics
		analyticsHandler := handlers.NewAnalyticsHandler(base, cfg.AnalyticsService)
		protected.GET("/analytics/sales", manageRoles, analyticsHandler.Sales)
	}

	return router
}
