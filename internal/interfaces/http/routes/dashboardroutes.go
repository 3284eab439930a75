package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
)

// DashboardRouteConfig holds dependencies for dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
}

// SetupDashboardRoutes configures dashboard routes.
func SetupDashboardRoutes(api *gin.RouterGroup, cfg *DashboardRouteConfig) {
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", cfg.DashboardHandler.GetStats)
		dashboard.GET("/notifications", cfg.DashboardHandler.GetNotifications)
		dashboard.GET("/report.csv", cfg.DashboardHandler.ExportReport)
	}
}
