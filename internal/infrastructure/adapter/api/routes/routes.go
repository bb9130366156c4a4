package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/example/marketplace/internal/domain/entity"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/usecase"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authService usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	adminHandler *handler.AdminHandler,
	logger coreport.Logger,
) {
	authenticated := middleware.Authenticate(authService, logger)

	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authenticated, authHandler.Me)
	}

	router.GET("/products", productHandler.List)
	router.GET("/products/:id", productHandler.Get)
	router.GET("/categories", productHandler.ListCategories)

	// Provider webhook authenticates by signature, not by bearer token
	router.POST("/payments/webhook", paymentHandler.Webhook)

	// Order routes; visibility is scoped per role inside the use case
	orders := router.Group("/orders", authenticated)
	{
		orders.POST("", middleware.RequireRoles(entity.RoleBuyer), orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id/status", middleware.RequireRoles(entity.RoleSeller, entity.RoleSuperuser), orderHandler.UpdateStatus)
		orders.POST("/:id/payment-proof", middleware.RequireRoles(entity.RoleBuyer), orderHandler.SubmitPaymentProof)
	}

	// Payment checkout routes
	payments := router.Group("/payments", authenticated)
	{
		payments.POST("", middleware.RequireRoles(entity.RoleBuyer), paymentHandler.Create)
		payments.GET("/:id", paymentHandler.Status)
	}

	// Superuser routes
	admin := router.Group("/admin", authenticated, middleware.RequireRoles(entity.RoleSuperuser))
	{
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.GET("/sellers", adminHandler.ListSellers)
		admin.POST("/sellers", adminHandler.CreateSeller)
		admin.PUT("/sellers/:id", adminHandler.UpdateSeller)
		admin.DELETE("/sellers/:id", adminHandler.DeactivateSeller)
		admin.PATCH("/sellers/:id/earnings", adminHandler.AdjustEarnings)

		admin.POST("/earnings/assign", adminHandler.AssignSale)
		admin.GET("/analytics", adminHandler.Analytics)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
