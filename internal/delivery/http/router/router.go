// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"showroom/internal/delivery/http/middleware"
	"showroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	ChatHandler         *handler.ChatHandler
	VerificationHandler *handler.VerificationHandler
	QuoteHandler        *handler.QuoteHandler
	AdminHandler        *handler.AdminHandler
	AdminMiddleware     *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	chatHandler         *handler.ChatHandler
	verificationHandler *handler.VerificationHandler
	quoteHandler        *handler.QuoteHandler
	adminHandler        *handler.AdminHandler
	adminMiddleware     *middleware.AdminMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		chatHandler:         params.ChatHandler,
		verificationHandler: params.VerificationHandler,
		quoteHandler:        params.QuoteHandler,
		adminHandler:        params.AdminHandler,
		adminMiddleware:     params.AdminMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Catalog and visualizer routes
	api.GET("/products", r.catalogHandler.Products)
	visualizerGroup := api.Group("/visualizer")
	{
		visualizerGroup.GET("/options", r.catalogHandler.VisualizerOptions)
		visualizerGroup.POST("/render", r.catalogHandler.RenderVisual)
	}

	// Sales chat and quote capture
	api.POST("/chat", r.chatHandler.SendMessage)
	api.POST("/quote", r.quoteHandler.SubmitQuote)

	// Magic-link verification lives under the chat surface
	chatGroup := api.Group("/chat")
	{
		chatGroup.POST("/request-magic-link", r.verificationHandler.RequestMagicLink)
		chatGroup.GET("/verify", r.verificationHandler.Verify)
		chatGroup.GET("/verified-email", r.verificationHandler.VerifiedEmail)
		chatGroup.POST("/link", r.verificationHandler.LinkSession)
		chatGroup.GET("/sessions", r.verificationHandler.ListSessions)
	}

	// Admin routes; everything except login requires a dashboard token
	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", r.adminHandler.Login)
	protected := adminGroup.Group("")
	protected.Use(r.adminMiddleware.Authenticate)
	{
		protected.GET("/leads", r.adminHandler.ListLeads)
		protected.GET("/leads/:id", r.adminHandler.GetLead)
		protected.GET("/chat-sessions", r.adminHandler.ListChatSessions)
		protected.GET("/chat/:sessionId", r.adminHandler.GetTranscript)
	}
}
