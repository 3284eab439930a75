package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/mapper"
)

type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*client.Payment, error)
	ToModel(entity *client.Payment) (*models.PaymentModel, error)
	ToEntities(models []*models.PaymentModel) ([]*client.Payment, error)
}

type paymentMapper struct{}

func NewPaymentMapper() PaymentMapper {
	return &paymentMapper{}
}

func (m *paymentMapper) ToEntity(model *models.PaymentModel) (*client.Payment, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return client.ReconstructPayment(model.ID, model.SID, client.PaymentParams{
		ClientID:    model.ClientID,
		Kind:        client.PaymentKind(model.Kind),
		PlanType:    vo.PlanType(model.PlanType),
		Amount:      model.Amount,
		Method:      vo.PaymentMethod(model.Method),
		PeriodStart: fromDatePtr(model.PeriodStart),
		PeriodEnd:   fromDatePtr(model.PeriodEnd),
		PaidAt:      model.PaidAt,
		Metadata:    metadata,
	}), nil
}

func (m *paymentMapper) ToModel(entity *client.Payment) (*models.PaymentModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(entity.Metadata()) > 0 {
		raw, err := json.Marshal(entity.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}

	return &models.PaymentModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		ClientID:    entity.ClientID(),
		Kind:        string(entity.Kind()),
		PlanType:    entity.PlanType().String(),
		Amount:      entity.Amount(),
		Method:      entity.Method().String(),
		PeriodStart: toDatePtr(entity.PeriodStart()),
		PeriodEnd:   toDatePtr(entity.PeriodEnd()),
		PaidAt:      entity.PaidAt(),
		Metadata:    metadata,
	}, nil
}

func (m *paymentMapper) ToEntities(list []*models.PaymentModel) ([]*client.Payment, error) {
	return mapper.MapSlicePtrWithID(list, m.ToEntity, func(model *models.PaymentModel) uint { return model.ID })
}
