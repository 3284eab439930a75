package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/id"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
	"gymdesk/internal/shared/utils"
)

type RenewClientUseCase struct {
	clientRepo  client.Repository
	paymentRepo client.PaymentRepository
	txManager   TransactionRunner
	statsCache  StatsCache
	metrics     RenewalRecorder
	renderer    markdown.NotesRenderer
	clock       biztime.Clock
	logger      logger.Interface
}

func NewRenewClientUseCase(
	clientRepo client.Repository,
	paymentRepo client.PaymentRepository,
	txManager TransactionRunner,
	statsCache StatsCache,
	metrics RenewalRecorder,
	renderer markdown.NotesRenderer,
	clock biztime.Clock,
	logger logger.Interface,
) *RenewClientUseCase {
	return &RenewClientUseCase{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		statsCache:  statsCache,
		metrics:     metrics,
		renderer:    renderer,
		clock:       clock,
		logger:      logger,
	}
}

// Execute starts a new membership period today and records the renewal
// payment. Client and payment are written in one transaction; on any error
// the stored client is unchanged.
func (uc *RenewClientUseCase) Execute(ctx context.Context, sid string, req dto.RenewClientRequest) (*dto.RenewalDTO, error) {
	uc.logger.Infow("executing renew client use case", "sid", sid, "plan_type", req.PlanType)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	plan, err := vo.ParsePlanType(req.PlanType)
	if err != nil {
		return nil, errors.NewValidationError("invalid plan_type", err.Error())
	}
	method, err := vo.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment_method", err.Error())
	}
	renewal := membership.RenewalRequest{
		PlanType:      plan,
		PlanAmount:    req.PlanAmount,
		PaymentMethod: method,
	}
	if err := renewal.Validate(); err != nil {
		return nil, toAppError(err)
	}

	current, err := loadClient(ctx, uc.clientRepo, uc.logger, sid)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	renewed, err := membership.Renew(current, renewal, now)
	if err != nil {
		uc.logger.Warnw("renewal rejected", "sid", sid, "error", err)
		return nil, toAppError(err)
	}

	paymentSID, err := id.NewPaymentID()
	if err != nil {
		uc.logger.Errorw("failed to generate payment ID", "error", err)
		return nil, errors.NewInternalError("failed to generate payment ID")
	}
	payment, err := client.NewPayment(paymentSID, client.PaymentParams{
		ClientID:    renewed.ID(),
		Kind:        client.PaymentKindRenewal,
		PlanType:    renewed.PlanType(),
		Amount:      renewed.PlanAmount(),
		Method:      method,
		PeriodStart: renewed.StartDate(),
		PeriodEnd:   renewed.EndDate(),
		PaidAt:      now,
		Metadata: map[string]interface{}{
			"previous_plan":     current.PlanType().String(),
			"previous_end_date": biztime.FormatDate(current.EndDate()),
		},
	})
	if err != nil {
		return nil, toAppError(err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.clientRepo.Update(txCtx, renewed); err != nil {
			return err
		}
		return uc.paymentRepo.Create(txCtx, payment)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist renewal", "sid", sid, "error", err)
		return nil, errors.NewInternalError("failed to renew membership")
	}

	invalidateStats(ctx, uc.statsCache, uc.logger)
	if uc.metrics != nil {
		uc.metrics.RecordRenewal(renewed.PlanType().String())
	}

	uc.logger.Infow("membership renewed",
		"sid", sid,
		"plan_type", renewed.PlanType(),
		"start_date", biztime.FormatDate(renewed.StartDate()),
		"end_date", biztime.FormatDate(renewed.EndDate()),
		"payment_sid", payment.SID(),
	)

	return &dto.RenewalDTO{
		Client:  clientView(renewed, now, uc.renderer, uc.logger),
		Payment: dto.ToPaymentDTO(payment, renewed.SID()),
	}, nil
}
