package usecases

import (
	"context"
	stderrors "errors"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/shared/constants"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type DeleteClientUseCase struct {
	clientRepo client.Repository
	statsCache StatsCache
	logger     logger.Interface
}

func NewDeleteClientUseCase(clientRepo client.Repository, statsCache StatsCache, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, sid string) error {
	uc.logger.Infow("executing delete client use case", "sid", sid)

	c, err := loadClient(ctx, uc.clientRepo, uc.logger, sid)
	if err != nil {
		return err
	}

	if err := uc.clientRepo.Delete(ctx, c.ID()); err != nil {
		if stderrors.Is(err, client.ErrClientNotFound) {
			return errors.NewNotFoundError(constants.ErrMsgClientNotFound, sid)
		}
		uc.logger.Errorw("failed to delete client", "sid", sid, "error", err)
		return errors.NewInternalError("failed to delete client")
	}

	invalidateStats(ctx, uc.statsCache, uc.logger)

	uc.logger.Infow("client deleted successfully", "sid", sid)
	return nil
}
