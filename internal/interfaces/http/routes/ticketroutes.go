package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.POST("/:id/attachments",
			config.TicketHandler.AddAttachment)
		tickets.GET("/:id/attachments/:attachment_id",
			config.TicketHandler.DownloadAttachment)
		tickets.GET("/:id/events",
			config.TicketHandler.ListEvents)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
	}
}
