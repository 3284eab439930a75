package handlers

import (
	"context"
	"io"

	"gymdesk/internal/application/client/dto"
)

// Use case interfaces for ClientHandler

type createClientUseCase interface {
	Execute(ctx context.Context, req dto.ClientRequest) (*dto.ClientDTO, error)
}

type updateClientUseCase interface {
	Execute(ctx context.Context, sid string, req dto.ClientRequest) (*dto.ClientDTO, error)
}

type deleteClientUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type getClientUseCase interface {
	Execute(ctx context.Context, sid string) (*dto.ClientDTO, error)
}

type listClientsUseCase interface {
	Execute(ctx context.Context, query dto.ListClientsQuery) (*dto.ClientListDTO, error)
}

type renewClientUseCase interface {
	Execute(ctx context.Context, sid string, req dto.RenewClientRequest) (*dto.RenewalDTO, error)
}

type recordPaymentUseCase interface {
	Execute(ctx context.Context, sid string, req dto.RecordPaymentRequest) (*dto.PaymentDTO, error)
}

type listPaymentsUseCase interface {
	Execute(ctx context.Context, sid string) ([]dto.PaymentDTO, error)
}

// csvExportUseCase covers both the client list and the report export.
type csvExportUseCase interface {
	Execute(ctx context.Context, w io.Writer) error
}

// Use case interfaces for DashboardHandler

type getDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type getNotificationsUseCase interface {
	Execute(ctx context.Context) (*dto.NotificationFeedDTO, error)
}
