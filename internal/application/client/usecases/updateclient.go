package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
	"gymdesk/internal/shared/utils"
)

type UpdateClientUseCase struct {
	clientRepo client.Repository
	statsCache StatsCache
	renderer   markdown.NotesRenderer
	clock      biztime.Clock
	logger     logger.Interface
}

func NewUpdateClientUseCase(
	clientRepo client.Repository,
	statsCache StatsCache,
	renderer markdown.NotesRenderer,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		statsCache: statsCache,
		renderer:   renderer,
		clock:      clock,
		logger:     logger,
	}
}

// Execute replaces the client's profile and membership. The end date is
// recomputed from the submitted start date and plan.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, sid string, req dto.ClientRequest) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing update client use case", "sid", sid)

	if err := utils.ValidateStruct(req); err != nil {
		uc.logger.Warnw("invalid update client request", "sid", sid, "error", err)
		return nil, err
	}

	profile, m, err := parseClientRequest(req)
	if err != nil {
		return nil, err
	}

	c, err := loadClient(ctx, uc.clientRepo, uc.logger, sid)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := c.Update(profile, m, now); err != nil {
		uc.logger.Warnw("rejected client update", "sid", sid, "error", err)
		return nil, toAppError(err)
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "sid", sid, "error", err)
		return nil, toAppError(err)
	}

	invalidateStats(ctx, uc.statsCache, uc.logger)

	uc.logger.Infow("client updated successfully", "sid", sid)

	out := clientView(c, now, uc.renderer, uc.logger)
	return &out, nil
}
