package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	renderer   markdown.NotesRenderer
	clock      biztime.Clock
	logger     logger.Interface
}

func NewGetClientUseCase(
	clientRepo client.Repository,
	renderer markdown.NotesRenderer,
	clock biztime.Clock,
	logger logger.Interface,
) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		renderer:   renderer,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, sid string) (*dto.ClientDTO, error) {
	c, err := loadClient(ctx, uc.clientRepo, uc.logger, sid)
	if err != nil {
		return nil, err
	}
	out := clientView(c, uc.clock.Now(), uc.renderer, uc.logger)
	return &out, nil
}
