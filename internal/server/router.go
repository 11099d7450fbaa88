package server

import (
	"spicegate/internal/health"
	"spicegate/internal/session"
	"spicegate/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the routes are served by
type Dependencies struct {
	Auctions      handler.AuctionServiceInterface
	Participants  handler.ParticipantServiceInterface
	Dashboard     handler.DashboardServiceInterface
	LiveDashboard handler.LiveDashboardInterface
	Health        *health.Handler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", deps.Health.Liveness)
	router.GET("/readyz", deps.Health.Readiness)

	auctionHandler := handler.NewAuctionHandler(deps.Auctions)
	participantsHandler := handler.NewParticipantsHandler(deps.Participants)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard, deps.LiveDashboard)

	admin := RequireRole(session.Admin)

	auctions := router.Group("/auctions", SessionMiddleware)
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.POST("", admin, auctionHandler.CreateAuctionHandler)
		auctions.PUT("/:id", admin, auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:id", admin, auctionHandler.DeleteAuctionHandler)
		auctions.POST("/:id/end", admin, auctionHandler.EndAuctionHandler)
		auctions.POST("/:id/intervene", admin, auctionHandler.InterveneAuctionHandler)
		auctions.POST("/:id/restart", admin, auctionHandler.RestartAuctionHandler)
		auctions.GET("/:id/participants", RequireRole(session.Admin, session.Farmer), participantsHandler.GetParticipantsHandler)
	}

	dash := router.Group("/dashboard", SessionMiddleware, admin)
	{
		dash.GET("", dashboardHandler.GetDashboardHandler)
		dash.GET("/live", dashboardHandler.GetLiveDashboardHandler)
	}

	return router
}
