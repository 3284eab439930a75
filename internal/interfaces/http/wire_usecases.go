package http

import (
	"gymdesk/internal/application/client/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	createClientUC  *usecases.CreateClientUseCase
	updateClientUC  *usecases.UpdateClientUseCase
	deleteClientUC  *usecases.DeleteClientUseCase
	getClientUC     *usecases.GetClientUseCase
	listClientsUC   *usecases.ListClientsUseCase
	renewClientUC   *usecases.RenewClientUseCase
	recordPaymentUC *usecases.RecordPaymentUseCase
	listPaymentsUC  *usecases.ListPaymentsUseCase
	exportClientsUC *usecases.ExportClientsCSVUseCase

	getDashboardStatsUC *usecases.GetDashboardStatsUseCase
	getNotificationsUC  *usecases.GetNotificationsUseCase
	exportReportUC      *usecases.ExportReportCSVUseCase

	sendRemindersUC *usecases.SendExpiryRemindersUseCase
}

func (c *Container) initUseCases() {
	repos := c.repos
	log := c.log
	membership := c.cfg.Membership

	c.ucs = &allUseCases{
		createClientUC:  usecases.NewCreateClientUseCase(repos.clientRepo, c.statsCache, c.renderer, c.clock, log),
		updateClientUC:  usecases.NewUpdateClientUseCase(repos.clientRepo, c.statsCache, c.renderer, c.clock, log),
		deleteClientUC:  usecases.NewDeleteClientUseCase(repos.clientRepo, c.statsCache, log),
		getClientUC:     usecases.NewGetClientUseCase(repos.clientRepo, c.renderer, c.clock, log),
		listClientsUC:   usecases.NewListClientsUseCase(repos.clientRepo, c.renderer, c.clock, log),
		renewClientUC:   usecases.NewRenewClientUseCase(repos.clientRepo, repos.paymentRepo, c.txManager, c.statsCache, c.metrics, c.renderer, c.clock, log),
		recordPaymentUC: usecases.NewRecordPaymentUseCase(repos.clientRepo, repos.paymentRepo, c.clock, log),
		listPaymentsUC:  usecases.NewListPaymentsUseCase(repos.clientRepo, repos.paymentRepo, log),
		exportClientsUC: usecases.NewExportClientsCSVUseCase(repos.clientRepo, c.clock, log),

		getDashboardStatsUC: usecases.NewGetDashboardStatsUseCase(repos.clientRepo, c.statsCache, membership.SeriesMonths, c.clock, log),
		getNotificationsUC:  usecases.NewGetNotificationsUseCase(repos.clientRepo, membership.ExpiringWindowDays, c.clock, log),
		exportReportUC:      usecases.NewExportReportCSVUseCase(repos.clientRepo, membership.SeriesMonths, membership.CurrencySymbol, c.clock, log),
	}
}
