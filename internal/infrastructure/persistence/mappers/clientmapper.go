package mappers

import (
	"fmt"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/mapper"
)

type ClientMapper interface {
	ToEntity(model *models.ClientModel) (*client.Client, error)
	ToModel(entity *client.Client) *models.ClientModel
	ToEntities(models []*models.ClientModel) ([]*client.Client, error)
}

type clientMapper struct{}

func NewClientMapper() ClientMapper {
	return &clientMapper{}
}

func (m *clientMapper) ToEntity(model *models.ClientModel) (*client.Client, error) {
	if model == nil {
		return nil, nil
	}

	plan, err := vo.ParsePlanType(model.PlanType)
	if err != nil {
		return nil, err
	}
	gender, err := vo.ParseGender(model.Gender)
	if err != nil {
		return nil, err
	}

	entity, err := client.ReconstructClient(
		model.ID,
		model.SID,
		client.Profile{
			FullName: model.FullName,
			Email:    model.Email,
			Phone:    model.Phone,
			Age:      model.Age,
			Gender:   gender,
			Address:  model.Address,
			Notes:    model.Notes,
		},
		client.Membership{
			PlanType:   plan,
			PlanAmount: model.PlanAmount,
			StartDate:  fromDate(model.StartDate),
			EndDate:    fromDate(model.EndDate),
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct client: %w", err)
	}
	return entity, nil
}

func (m *clientMapper) ToModel(entity *client.Client) *models.ClientModel {
	if entity == nil {
		return nil
	}
	p := entity.Profile()
	ms := entity.Membership()

	return &models.ClientModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		Age:        p.Age,
		Gender:     p.Gender.String(),
		Address:    p.Address,
		Notes:      p.Notes,
		PlanType:   ms.PlanType.String(),
		PlanAmount: ms.PlanAmount,
		StartDate:  toDate(ms.StartDate),
		EndDate:    toDate(ms.EndDate),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *clientMapper) ToEntities(list []*models.ClientModel) ([]*client.Client, error) {
	return mapper.MapSlicePtrWithID(list, m.ToEntity, func(model *models.ClientModel) uint { return model.ID })
}
