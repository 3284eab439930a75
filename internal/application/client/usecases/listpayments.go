package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

type ListPaymentsUseCase struct {
	clientRepo  client.Repository
	paymentRepo client.PaymentRepository
	logger      logger.Interface
}

func NewListPaymentsUseCase(
	clientRepo client.Repository,
	paymentRepo client.PaymentRepository,
	logger logger.Interface,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Execute returns the client's payments, newest first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, sid string) ([]dto.PaymentDTO, error) {
	c, err := loadClient(ctx, uc.clientRepo, uc.logger, sid)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.ListByClient(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list payments", "sid", sid, "error", err)
		return nil, errors.NewInternalError("failed to list payments")
	}
	return dto.ToPaymentDTOs(payments, c.SID()), nil
}
