// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cofipos/config"
	"cofipos/internal/delivery/http/middleware"
	"cofipos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	ReceiptHandler  *handler.ReceiptHandler
	EventHandler    *handler.EventHandler
	HistoryHandler  *handler.HistoryHandler
	InsightsHandler *handler.InsightsHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(p.AuthMiddleware.Authenticate)
	api.Use(p.AuthMiddleware.RequireVerifiedEmail)

	// Catalog routes
	products := api.Group("/products")
	{
		products.GET("", p.CatalogHandler.ListProducts)
		products.POST("", p.CatalogHandler.CreateProduct)
		products.GET("/low-stock", p.CatalogHandler.ListLowStock)
		products.GET("/stream", p.CatalogHandler.StreamCatalog)
		products.GET("/:id", p.CatalogHandler.GetProduct)
		products.PUT("/:id", p.CatalogHandler.UpdateProduct)
		products.DELETE("/:id", p.CatalogHandler.DeleteProduct)
		products.PATCH("/:id/stock", p.CatalogHandler.UpdateStock)
		products.POST("/:id/image", p.CatalogHandler.UploadImage)
	}

	// Cart session routes
	carts := api.Group("/carts")
	{
		carts.POST("", p.CartHandler.StartSession)
		carts.GET("/:sessionId", p.CartHandler.GetCart)
		carts.DELETE("/:sessionId", p.CartHandler.EndSession)
		carts.POST("/:sessionId/items", p.CartHandler.AddItem)
		carts.PATCH("/:sessionId/items/:productId", p.CartHandler.UpdateQuantity)
		carts.DELETE("/:sessionId/items", p.CartHandler.Clear)
	}

	// Order lifecycle, queue and history routes
	orders := api.Group("/orders")
	{
		orders.POST("", p.OrderHandler.Checkout)
		orders.GET("/queue", p.HistoryHandler.ActiveQueue)
		orders.GET("/queue/stream", p.HistoryHandler.StreamQueue)
		orders.GET("/history", p.HistoryHandler.History)
		orders.POST("/:id/complete", p.OrderHandler.Complete)
		orders.PATCH("/:id/archive", p.OrderHandler.SetArchived)
		orders.GET("/:id/receipt", p.ReceiptHandler.OrderQR)
	}

	// Event cup pool routes
	event := api.Group("/event")
	{
		event.PUT("", p.EventHandler.Configure)
		event.GET("", p.EventHandler.Get)
		event.GET("/remaining", p.EventHandler.PreviewRemaining)
		event.GET("/stream", p.EventHandler.Stream)
	}

	// Analytics routes
	api.GET("/analytics/profit", p.HistoryHandler.ProfitAnalytics)
	api.GET("/analytics/insights", p.InsightsHandler.BusinessInsights)

	// Test routes, enabled per environment
	if p.Config.TestRoutes != nil && p.Config.TestRoutes.Enabled {
		test := e.Group("/test")
		{
			test.GET("/public", p.TestHandler.TestPublicEndpoint)
			test.GET("/auth", p.TestHandler.TestAuthMiddleware, p.AuthMiddleware.Authenticate)
		}
	}
}
