package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/palettelab/retint/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. State-changing operations
// require an authenticated actor identity; reads are public. Administrative
// guards live in the services, not here, so an authenticated non-admin gets
// a 403 rather than a 401.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Photo reads (public)
		v1.GET("/photos", handler.ListPhotos)
		v1.GET("/photos/:id", handler.GetPhoto)
		v1.GET("/photos/:id/adjustments", handler.GetAdjustments)

		// Workflow transitions (requires authentication)
		v1.POST("/photos", middleware.Auth(authCfg), handler.SubmitPhoto)
		v1.POST("/photos/:id/colorization", middleware.Auth(authCfg), handler.SubmitColorization)
		v1.POST("/photos/:id/adjustments", middleware.Auth(authCfg), handler.AdjustPhoto)
		v1.POST("/photos/:id/mint", middleware.Auth(authCfg), handler.MintPhoto)

		// Processor registry
		v1.GET("/processors/:identity", handler.GetProcessor)
		v1.POST("/processors", middleware.Auth(authCfg), handler.RegisterProcessor)

		// Administrative processor controls (requires authentication;
		// the registry enforces the administrative capability)
		v1.PATCH("/processors/:identity/status", middleware.Auth(authCfg), handler.SetProcessorStatus)
		v1.PATCH("/processors/:identity/reputation", middleware.Auth(authCfg), handler.SetProcessorReputation)

		// Fee schedule
		v1.GET("/fees", handler.GetFees)
		v1.PUT("/fees", middleware.Auth(authCfg), handler.SetFees)

		// Treasury (requires authentication; withdraw is administrative)
		v1.GET("/treasury", middleware.Auth(authCfg), handler.GetTreasury)
		v1.GET("/treasury/entries", middleware.Auth(authCfg), handler.GetLedgerEntries)
		v1.POST("/treasury/withdraw", middleware.Auth(authCfg), handler.WithdrawTreasury)
	}
}
