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

type GetNotificationsUseCase struct {
	clientRepo client.Repository
	windowDays int
	clock      biztime.Clock
	logger     logger.Interface
}

func NewGetNotificationsUseCase(
	clientRepo client.Repository,
	windowDays int,
	clock biztime.Clock,
	logger logger.Interface,
) *GetNotificationsUseCase {
	return &GetNotificationsUseCase{
		clientRepo: clientRepo,
		windowDays: windowDays,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *GetNotificationsUseCase) Execute(ctx context.Context) (*dto.NotificationFeedDTO, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients for notifications", "error", err)
		return nil, errors.NewInternalError("failed to generate notifications")
	}

	now := uc.clock.Now()
	feed := membership.GenerateNotifications(clients, now, uc.windowDays)
	out := dto.ToNotificationFeedDTO(feed, now)
	return &out, nil
}
