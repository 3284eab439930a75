package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
)

// ClientRouteConfig holds dependencies for client routes.
type ClientRouteConfig struct {
	ClientHandler *handlers.ClientHandler
}

// SetupClientRoutes configures client routes.
func SetupClientRoutes(api *gin.RouterGroup, cfg *ClientRouteConfig) {
	clients := api.Group("/clients")
	{
		clients.GET("", cfg.ClientHandler.ListClients)
		clients.POST("", cfg.ClientHandler.CreateClient)
		clients.GET("/export.csv", cfg.ClientHandler.ExportClients)

		clients.GET("/:sid", cfg.ClientHandler.GetClient)
		clients.PUT("/:sid", cfg.ClientHandler.UpdateClient)
		clients.DELETE("/:sid", cfg.ClientHandler.DeleteClient)

		clients.POST("/:sid/renew", cfg.ClientHandler.RenewClient)
		clients.POST("/:sid/payment", cfg.ClientHandler.RecordPayment)
		clients.GET("/:sid/payments", cfg.ClientHandler.ListPayments)
	}
}
