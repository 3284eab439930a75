package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/infrastructure/persistence/mappers"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/db"
	"gymdesk/internal/shared/logger"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(db *gorm.DB, logger logger.Interface) client.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, entity *client.Payment) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map payment entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment", "client_id", model.ClientID, "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}
	entity.SetID(model.ID)

	r.logger.Infow("payment recorded", "id", model.ID, "client_id", model.ClientID, "kind", model.Kind)
	return nil
}

func (r *PaymentRepositoryImpl) ListByClient(ctx context.Context, clientID uint) ([]*client.Payment, error) {
	var list []*models.PaymentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("paid_at DESC, id DESC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list payments", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, fmt.Errorf("failed to map payments: %w", err)
	}
	if entities == nil {
		entities = []*client.Payment{}
	}
	return entities, nil
}
