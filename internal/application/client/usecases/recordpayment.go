package usecases

import (
	"context"
	"strings"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/id"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type RecordPaymentUseCase struct {
	clientRepo  client.Repository
	paymentRepo client.PaymentRepository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewRecordPaymentUseCase(
	clientRepo client.Repository,
	paymentRepo client.PaymentRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Execute records money received outside a renewal. The membership period
// is not touched.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, sid string, req dto.RecordPaymentRequest) (*dto.PaymentDTO, error) {
	uc.logger.Infow("executing record payment use case", "sid", sid)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	method, err := vo.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, errors.NewValidationError("invalid payment_method", err.Error())
	}

	c, err := loadClient(ctx, uc.clientRepo, uc.logger, sid)
	if err != nil {
		return nil, err
	}

	plan := c.PlanType()
	if strings.TrimSpace(req.PlanType) != "" {
		if plan, err = vo.ParsePlanType(req.PlanType); err != nil {
			return nil, errors.NewValidationError("invalid plan_type", err.Error())
		}
	}

	paidAt := uc.clock.Now()
	if req.PaidOn != "" {
		if paidAt, err = biztime.ParseDate(req.PaidOn); err != nil {
			return nil, errors.NewValidationError("invalid paid_on", err.Error())
		}
	}

	var metadata map[string]interface{}
	if note := strings.TrimSpace(req.Note); note != "" {
		metadata = map[string]interface{}{"note": note}
	}

	paymentSID, err := id.NewPaymentID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate payment ID")
	}
	payment, err := client.NewPayment(paymentSID, client.PaymentParams{
		ClientID: c.ID(),
		Kind:     client.PaymentKindManual,
		PlanType: plan,
		Amount:   req.Amount,
		Method:   method,
		PaidAt:   paidAt,
		Metadata: metadata,
	})
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		uc.logger.Errorw("failed to record payment", "sid", sid, "error", err)
		return nil, errors.NewInternalError("failed to record payment")
	}

	uc.logger.Infow("payment recorded", "sid", sid, "payment_sid", payment.SID(), "amount", payment.Amount().String())

	out := dto.ToPaymentDTO(payment, c.SID())
	return &out, nil
}
