package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/id"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
	"gymdesk/internal/shared/utils"
)

type CreateClientUseCase struct {
	clientRepo client.Repository
	statsCache StatsCache
	renderer   markdown.NotesRenderer
	clock      biztime.Clock
	logger     logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.Repository,
	statsCache StatsCache,
	renderer markdown.NotesRenderer,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		statsCache: statsCache,
		renderer:   renderer,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, req dto.ClientRequest) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing create client use case", "email", req.Email, "plan_type", req.PlanType)

	if err := utils.ValidateStruct(req); err != nil {
		uc.logger.Warnw("invalid create client request", "error", err)
		return nil, err
	}

	profile, m, err := parseClientRequest(req)
	if err != nil {
		return nil, err
	}

	sid, err := id.NewClientID()
	if err != nil {
		uc.logger.Errorw("failed to generate client ID", "error", err)
		return nil, errors.NewInternalError("failed to generate client ID")
	}

	now := uc.clock.Now()
	c, err := client.NewClient(sid, profile, m, now)
	if err != nil {
		uc.logger.Warnw("rejected client", "error", err)
		return nil, toAppError(err)
	}

	if err := uc.clientRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, toAppError(err)
	}

	invalidateStats(ctx, uc.statsCache, uc.logger)

	uc.logger.Infow("client created successfully", "sid", c.SID(), "end_date", biztime.FormatDate(c.EndDate()))

	out := clientView(c, now, uc.renderer, uc.logger)
	return &out, nil
}
