package http

import (
	"gymdesk/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	clientHandler    *handlers.ClientHandler
	dashboardHandler *handlers.DashboardHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs
	c.hdlrs = &allHandlers{
		clientHandler: handlers.NewClientHandler(
			ucs.createClientUC,
			ucs.updateClientUC,
			ucs.deleteClientUC,
			ucs.getClientUC,
			ucs.listClientsUC,
			ucs.renewClientUC,
			ucs.recordPaymentUC,
			ucs.listPaymentsUC,
			ucs.exportClientsUC,
			c.clock,
			c.log.Named("http.client"),
		),
		dashboardHandler: handlers.NewDashboardHandler(
			ucs.getDashboardStatsUC,
			ucs.getNotificationsUC,
			ucs.exportReportUC,
			c.clock,
			c.log.Named("http.dashboard"),
		),
	}
}
