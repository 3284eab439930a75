package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type GetDashboardStatsUseCase struct {
	clientRepo   client.Repository
	statsCache   StatsCache
	seriesMonths int
	clock        biztime.Clock
	logger       logger.Interface
}

func NewGetDashboardStatsUseCase(
	clientRepo client.Repository,
	statsCache StatsCache,
	seriesMonths int,
	clock biztime.Clock,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		clientRepo:   clientRepo,
		statsCache:   statsCache,
		seriesMonths: seriesMonths,
		clock:        clock,
		logger:       logger,
	}
}

// Execute returns stats with monthly series covering the last seriesMonths
// months. Cache failures fall through to computing the stats. The cache
// generation is read before the clients so a mutation that lands in between
// keeps this result from being served.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := uc.clock.Now()
	dateKey := biztime.DateKey(now)

	var generation int64
	cacheable := false
	if uc.statsCache != nil {
		gen, err := uc.statsCache.Generation(ctx)
		if err != nil {
			uc.logger.Warnw("dashboard stats cache read failed", "error", err)
		} else {
			generation, cacheable = gen, true
			cached, err := uc.statsCache.Get(ctx, generation, dateKey, uc.seriesMonths)
			if err != nil {
				uc.logger.Warnw("dashboard stats cache read failed", "error", err)
			} else if cached != nil {
				uc.logger.Debugw("dashboard stats cache hit", "date", dateKey)
				out := dto.ToDashboardStatsDTO(*cached)
				return &out, nil
			}
		}
	}

	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients for stats", "error", err)
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}

	stats := membership.ComputeStats(clients, now, membership.LastMonths(now, uc.seriesMonths))

	if cacheable {
		if err := uc.statsCache.Set(ctx, generation, dateKey, uc.seriesMonths, &stats); err != nil {
			uc.logger.Warnw("dashboard stats cache write failed", "error", err)
		}
	}

	out := dto.ToDashboardStatsDTO(stats)
	return &out, nil
}
