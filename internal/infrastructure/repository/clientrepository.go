package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/infrastructure/persistence/mappers"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/db"
	"gymdesk/internal/shared/logger"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepositoryImpl{
		db:     db,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, entity *client.Client) error {
	model := r.mapper.ToModel(entity)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client in database", "sid", model.SID, "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client ID: %w", err)
	}

	r.logger.Infow("client created successfully", "id", model.ID, "sid", model.SID)
	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *ClientRepositoryImpl) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

func (r *ClientRepositoryImpl) getOne(ctx context.Context, query string, arg interface{}) (*client.Client, error) {
	var model models.ClientModel

	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get client", "key", arg, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map client model to entity", "key", arg, "error", err)
		return nil, fmt.Errorf("failed to map client: %w", err)
	}
	return entity, nil
}

func (r *ClientRepositoryImpl) List(ctx context.Context) ([]*client.Client, error) {
	var list []*models.ClientModel

	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		r.logger.Errorw("failed to map client models to entities", "error", err)
		return nil, fmt.Errorf("failed to map clients: %w", err)
	}
	if entities == nil {
		entities = []*client.Client{}
	}
	return entities, nil
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, entity *client.Client) error {
	model := r.mapper.ToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"full_name":   model.FullName,
			"email":       model.Email,
			"phone":       model.Phone,
			"age":         model.Age,
			"gender":      model.Gender,
			"address":     model.Address,
			"notes":       model.Notes,
			"plan_type":   model.PlanType,
			"plan_amount": model.PlanAmount,
			"start_date":  model.StartDate,
			"end_date":    model.EndDate,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update client", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	// RowsAffected may be 0 when nothing changed, so it is not checked here.
	r.logger.Infow("client updated successfully", "id", model.ID)
	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ClientModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete client", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}

	r.logger.Infow("client deleted successfully", "id", id)
	return nil
}
