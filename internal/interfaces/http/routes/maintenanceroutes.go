package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "maintdesk/internal/interfaces/http/handlers/ticket"
	"maintdesk/internal/interfaces/http/middleware"
)

type MaintenanceRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupMaintenanceRoutes wires the maintenance ticket endpoints. Listing
// and detail are open; writes require an authenticated caller, and delete
// is additionally gated by the per-call admin role check inside its use
// case.
func SetupMaintenanceRoutes(engine *gin.Engine, config *MaintenanceRouteConfig) {
	maintenance := engine.Group("/api/maintenance")
	{
		maintenance.GET("", config.TicketHandler.ListTickets)
		maintenance.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CreateTicket)

		// Specific action endpoints are registered before the plain /:id
		// routes to avoid route conflicts.
		maintenance.POST("/:id/attachment",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.UploadAttachment)
		maintenance.GET("/:id/attachment/download",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.DownloadAttachment)
		maintenance.POST("/:id/complete",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CompleteTicket)

		maintenance.GET("/:id", config.TicketHandler.GetTicket)
		maintenance.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.DeleteTicket)
	}
}
