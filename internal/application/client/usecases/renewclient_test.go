package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
)

func TestRenewClientUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *mockClientRepository, payments *mockPaymentRepository, tx *mockTxRunner, cache *mockStatsCache, rec *mockRecorder) *RenewClientUseCase {
		return NewRenewClientUseCase(repo, payments, tx, cache, rec, nil, testClock(), logger.NewNop())
	}

	t.Run("expired client starts a new period today", func(t *testing.T) {
		stored := newStoredClient(t, 5, "cl_ren", "Dev Patel", vo.PlanTypeMonthly, -10)
		var persisted *client.Client
		var payment *client.Payment
		repo := &mockClientRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*client.Client, error) { return stored, nil },
			UpdateFunc: func(ctx context.Context, c *client.Client) error {
				persisted = c
				return nil
			},
		}
		payments := &mockPaymentRepository{
			CreateFunc: func(ctx context.Context, p *client.Payment) error {
				payment = p
				return nil
			},
		}
		tx, cache, rec := &mockTxRunner{}, &mockStatsCache{}, &mockRecorder{}

		out, err := newUseCase(repo, payments, tx, cache, rec).Execute(context.Background(), "cl_ren", dto.RenewClientRequest{
			PlanType:      "Quarterly",
			PlanAmount:    decimal.RequireFromString("3000"),
			PaymentMethod: "upi",
		})
		require.NoError(t, err)

		assert.Equal(t, "2024-03-15", out.Client.StartDate)
		assert.Equal(t, "2024-06-15", out.Client.EndDate)
		assert.Equal(t, "Active", out.Client.Status)
		assert.Equal(t, "Quarterly", out.Client.PlanType)
		assert.Equal(t, "3000.00", out.Client.PlanAmount)

		require.NotNil(t, persisted)
		require.NotNil(t, payment)
		assert.Equal(t, uint(5), payment.ClientID())
		assert.Equal(t, client.PaymentKindRenewal, payment.Kind())
		assert.Equal(t, vo.PaymentMethodUPI, payment.Method())
		assert.Equal(t, "renewal", out.Payment.Kind)
		require.NotNil(t, out.Payment.PeriodEnd)
		assert.Equal(t, "2024-06-15", *out.Payment.PeriodEnd)
		assert.Equal(t, "Monthly", payment.Metadata()["previous_plan"])

		assert.Equal(t, 1, tx.calls)
		assert.Equal(t, 1, cache.invalidateCalls)
		assert.Equal(t, []string{"Quarterly"}, rec.renewals)

		assert.Equal(t, vo.PlanTypeMonthly, stored.PlanType(), "loaded client is not mutated")
	})

	t.Run("invalid requests never touch storage", func(t *testing.T) {
		tests := []struct {
			name string
			req  dto.RenewClientRequest
		}{
			{"negative amount", dto.RenewClientRequest{PlanType: "Monthly", PlanAmount: decimal.NewFromInt(-5), PaymentMethod: "Cash"}},
			{"unknown plan", dto.RenewClientRequest{PlanType: "Weekly", PlanAmount: decimal.NewFromInt(5), PaymentMethod: "Cash"}},
			{"unknown method", dto.RenewClientRequest{PlanType: "Monthly", PlanAmount: decimal.NewFromInt(5), PaymentMethod: "Cheque"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &mockClientRepository{
					GetBySIDFunc: func(ctx context.Context, sid string) (*client.Client, error) {
						t.Fatal("client must not be loaded")
						return nil, nil
					},
				}
				tx := &mockTxRunner{}
				_, err := newUseCase(repo, &mockPaymentRepository{}, tx, nil, nil).Execute(context.Background(), "cl_x", tt.req)
				assert.True(t, apperrors.IsValidationError(err), "got %v", err)
				assert.Zero(t, tx.calls)
			})
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := newUseCase(&mockClientRepository{}, &mockPaymentRepository{}, &mockTxRunner{}, nil, nil).
			Execute(context.Background(), "cl_missing", dto.RenewClientRequest{
				PlanType: "Monthly", PlanAmount: decimal.NewFromInt(1000), PaymentMethod: "Cash",
			})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("payment failure rolls back and skips side effects", func(t *testing.T) {
		stored := newStoredClient(t, 5, "cl_ren", "Dev Patel", vo.PlanTypeMonthly, 2)
		repo := &mockClientRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*client.Client, error) { return stored, nil },
		}
		payments := &mockPaymentRepository{
			CreateFunc: func(ctx context.Context, p *client.Payment) error { return errors.New("disk full") },
		}
		cache, rec := &mockStatsCache{}, &mockRecorder{}

		_, err := newUseCase(repo, payments, &mockTxRunner{}, cache, rec).Execute(context.Background(), "cl_ren", dto.RenewClientRequest{
			PlanType: "Yearly", PlanAmount: decimal.NewFromInt(12000), PaymentMethod: "Card",
		})
		require.Error(t, err)
		assert.Zero(t, cache.invalidateCalls)
		assert.Empty(t, rec.renewals)
	})
}

func TestRecordPaymentUseCase_Execute(t *testing.T) {
	stored := newStoredClient(t, 6, "cl_pay", "Esha Iyer", vo.PlanTypeQuarterly, 20)
	repo := &mockClientRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*client.Client, error) { return stored, nil },
	}

	t.Run("defaults plan and date", func(t *testing.T) {
		var saved *client.Payment
		payments := &mockPaymentRepository{
			CreateFunc: func(ctx context.Context, p *client.Payment) error {
				saved = p
				return nil
			},
		}
		uc := NewRecordPaymentUseCase(repo, payments, testClock(), logger.NewNop())

		out, err := uc.Execute(context.Background(), "cl_pay", dto.RecordPaymentRequest{
			Amount:        decimal.RequireFromString("499.5"),
			PaymentMethod: "bank_transfer",
			Note:          "locker fee",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "499.50", out.Amount)
		assert.Equal(t, "Bank Transfer", out.Method)
		assert.Equal(t, "Quarterly", out.PlanType)
		assert.Equal(t, "payment", out.Kind)
		assert.Nil(t, out.PeriodStart)
		assert.Equal(t, "locker fee", out.Metadata["note"])
		assert.True(t, saved.PaidAt().Equal(testNow()))
	})

	t.Run("explicit paid_on", func(t *testing.T) {
		uc := NewRecordPaymentUseCase(repo, &mockPaymentRepository{}, testClock(), logger.NewNop())
		out, err := uc.Execute(context.Background(), "cl_pay", dto.RecordPaymentRequest{
			Amount: decimal.NewFromInt(100), PaymentMethod: "Cash", PaidOn: "2024-03-10", PlanType: "monthly",
		})
		require.NoError(t, err)
		assert.Equal(t, "Monthly", out.PlanType)
		assert.Equal(t, "2024-03-10", out.PaidAt.Format("2006-01-02"))
	})

	t.Run("rejects bad method", func(t *testing.T) {
		uc := NewRecordPaymentUseCase(repo, &mockPaymentRepository{}, testClock(), logger.NewNop())
		_, err := uc.Execute(context.Background(), "cl_pay", dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1), PaymentMethod: "IOU"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestListPaymentsUseCase_Execute(t *testing.T) {
	stored := newStoredClient(t, 6, "cl_pay", "Esha Iyer", vo.PlanTypeQuarterly, 20)
	p, err := client.NewPayment("pay_1", client.PaymentParams{
		ClientID: 6, Kind: client.PaymentKindManual, PlanType: vo.PlanTypeQuarterly,
		Amount: decimal.NewFromInt(250), Method: vo.PaymentMethodCash, PaidAt: testNow(),
	})
	require.NoError(t, err)

	repo := &mockClientRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*client.Client, error) { return stored, nil },
	}
	payments := &mockPaymentRepository{
		ListByClientFunc: func(ctx context.Context, clientID uint) ([]*client.Payment, error) {
			assert.Equal(t, uint(6), clientID)
			return []*client.Payment{p}, nil
		},
	}

	out, err := NewListPaymentsUseCase(repo, payments, logger.NewNop()).Execute(context.Background(), "cl_pay")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pay_1", out[0].ID)
	assert.Equal(t, "cl_pay", out[0].ClientID)
	assert.Equal(t, "250.00", out[0].Amount)
}
