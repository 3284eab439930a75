package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gymdesk/internal/interfaces/http/middleware"
	"gymdesk/internal/interfaces/http/routes"
	"gymdesk/internal/shared/utils"
)

// setupRoutes installs the middleware chain and every route.
func (c *Container) setupRoutes() {
	engine := c.engine

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log.Named("http")))
	engine.Use(middleware.Recovery(c.log.Named("http")))
	engine.Use(middleware.Metrics(c.metrics))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	engine.GET("/health", c.healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	routes.SetupClientRoutes(api, &routes.ClientRouteConfig{
		ClientHandler: c.hdlrs.clientHandler,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: c.hdlrs.dashboardHandler,
	})
}

func (c *Container) healthCheck(ctx *gin.Context) {
	status := gin.H{"status": "ok", "database": "ok", "redis": "disabled"}
	code := http.StatusOK

	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}
	if c.redis != nil {
		status["redis"] = "ok"
		if err := c.redis.Ping(ctx.Request.Context()).Err(); err != nil {
			status["redis"] = "unreachable"
		}
	}

	if code != http.StatusOK {
		ctx.JSON(code, utils.APIResponse{Success: false, Data: status})
		return
	}
	utils.SuccessResponse(ctx, code, "", status)
}
