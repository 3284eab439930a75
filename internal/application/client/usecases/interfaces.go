package usecases

import (
	"context"
	"io"
	"time"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/membership"
)

type CreateClientExecutor interface {
	Execute(ctx context.Context, req dto.ClientRequest) (*dto.ClientDTO, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, sid string, req dto.ClientRequest) (*dto.ClientDTO, error)
}

type DeleteClientExecutor interface {
	Execute(ctx context.Context, sid string) error
}

type GetClientExecutor interface {
	Execute(ctx context.Context, sid string) (*dto.ClientDTO, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query dto.ListClientsQuery) (*dto.ClientListDTO, error)
}

type RenewClientExecutor interface {
	Execute(ctx context.Context, sid string, req dto.RenewClientRequest) (*dto.RenewalDTO, error)
}

type RecordPaymentExecutor interface {
	Execute(ctx context.Context, sid string, req dto.RecordPaymentRequest) (*dto.PaymentDTO, error)
}

type ListPaymentsExecutor interface {
	Execute(ctx context.Context, sid string) ([]dto.PaymentDTO, error)
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type GetNotificationsExecutor interface {
	Execute(ctx context.Context) (*dto.NotificationFeedDTO, error)
}

type ExportClientsCSVExecutor interface {
	Execute(ctx context.Context, w io.Writer) error
}

type ExportReportCSVExecutor interface {
	Execute(ctx context.Context, w io.Writer) error
}

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsCache is satisfied by cache.RedisDashboardStatsCache. Use cases accept
// nil when Redis is not configured.
type StatsCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, generation int64, dateKey string, months int) (*membership.DashboardStats, error)
	Set(ctx context.Context, generation int64, dateKey string, months int, stats *membership.DashboardStats) error
	Invalidate(ctx context.Context) error
}

type RenewalRecorder interface {
	RecordRenewal(planType string)
}

type ReminderRecorder interface {
	RecordRemindersSent(n int)
}

// ReminderSender delivers one expiry reminder to a member.
type ReminderSender interface {
	SendExpiryReminder(to string, n membership.Notification) error
}

// ReminderGuard keeps reminders from repeating within a cooldown.
type ReminderGuard interface {
	TryAcquire(ctx context.Context, clientSID, endDate string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, clientSID, endDate string) error
	RemainingCooldown(ctx context.Context, clientSID, endDate string) (time.Duration, error)
}
