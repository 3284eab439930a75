package usecases

import (
	"context"
	"io"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type ExportClientsCSVUseCase struct {
	clientRepo client.Repository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewExportClientsCSVUseCase(clientRepo client.Repository, clock biztime.Clock, logger logger.Interface) *ExportClientsCSVUseCase {
	return &ExportClientsCSVUseCase{
		clientRepo: clientRepo,
		clock:      clock,
		logger:     logger,
	}
}

// Execute writes every client with status derived at export time.
func (uc *ExportClientsCSVUseCase) Execute(ctx context.Context, w io.Writer) error {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients for export", "error", err)
		return errors.NewInternalError("failed to export clients")
	}

	if err := membership.WriteClientsCSV(w, clients, uc.clock.Now()); err != nil {
		uc.logger.Errorw("failed to write clients csv", "error", err)
		return errors.NewInternalError("failed to export clients")
	}

	uc.logger.Infow("clients exported", "count", len(clients))
	return nil
}

type ExportReportCSVUseCase struct {
	clientRepo     client.Repository
	seriesMonths   int
	currencySymbol string
	clock          biztime.Clock
	logger         logger.Interface
}

func NewExportReportCSVUseCase(
	clientRepo client.Repository,
	seriesMonths int,
	currencySymbol string,
	clock biztime.Clock,
	logger logger.Interface,
) *ExportReportCSVUseCase {
	return &ExportReportCSVUseCase{
		clientRepo:     clientRepo,
		seriesMonths:   seriesMonths,
		currencySymbol: currencySymbol,
		clock:          clock,
		logger:         logger,
	}
}

// Execute writes the summary report: headline stats followed by client
// details.
func (uc *ExportReportCSVUseCase) Execute(ctx context.Context, w io.Writer) error {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients for report", "error", err)
		return errors.NewInternalError("failed to export report")
	}

	now := uc.clock.Now()
	stats := membership.ComputeStats(clients, now, membership.LastMonths(now, uc.seriesMonths))
	opts := membership.ReportOptions{
		GeneratedAt:    now,
		CurrencySymbol: uc.currencySymbol,
	}
	if err := membership.WriteReportCSV(w, stats, clients, now, opts); err != nil {
		uc.logger.Errorw("failed to write report csv", "error", err)
		return errors.NewInternalError("failed to export report")
	}
	return nil
}
