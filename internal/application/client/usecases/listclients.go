package usecases

import (
	"context"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
)

type ListClientsUseCase struct {
	clientRepo client.Repository
	renderer   markdown.NotesRenderer
	clock      biztime.Clock
	logger     logger.Interface
}

func NewListClientsUseCase(
	clientRepo client.Repository,
	renderer markdown.NotesRenderer,
	clock biztime.Clock,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		renderer:   renderer,
		clock:      clock,
		logger:     logger,
	}
}

// Execute filters the whole collection. Facet counts always describe the
// unfiltered collection. Unknown status or plan values match everything.
func (uc *ListClientsUseCase) Execute(ctx context.Context, query dto.ListClientsQuery) (*dto.ClientListDTO, error) {
	status, ok := membership.ParseStatusFilter(query.Status)
	if !ok {
		uc.logger.Warnw("unknown status filter, showing all", "status", query.Status)
	}
	plan, ok := membership.ParsePlanFilter(query.Plan)
	if !ok {
		uc.logger.Warnw("unknown plan filter, showing all", "plan", query.Plan)
	}

	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}

	result := membership.Filter(clients, membership.FilterCriteria{
		Search: query.Search,
		Status: status,
		Plan:   plan,
	}, uc.clock.Now())

	items := make([]dto.ClientDTO, 0, len(result.Matches))
	for _, s := range result.Matches {
		items = append(items, snapshotView(s, uc.renderer, uc.logger))
	}

	uc.logger.Debugw("clients listed", "matches", len(items), "total", result.Counts.All)

	return &dto.ClientListDTO{
		Clients: items,
		Counts:  dto.ToFacetCountsDTO(result.Counts),
		Total:   len(items),
	}, nil
}
