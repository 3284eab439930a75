package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/infrastructure/persistence/models"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/db"
	"gymdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.ClientModel{}, &models.PaymentModel{}))
	return gdb
}

func newTestClient(t *testing.T, sid, name string) *client.Client {
	t.Helper()
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, biztime.Location())
	c, err := client.NewClient(sid, client.Profile{
		FullName: name,
		Email:    sid + "@example.com",
		Phone:    "9876543210",
		Age:      31,
		Gender:   vo.GenderMale,
		Notes:    "**morning** batch",
	}, client.Membership{
		PlanType:   vo.PlanTypeMonthly,
		PlanAmount: decimal.RequireFromString("1499.50"),
		StartDate:  start,
		EndDate:    start.AddDate(0, 1, 0),
	}, start)
	require.NoError(t, err)
	return c
}

func TestClientRepository_CreateAndGet(t *testing.T) {
	repo := NewClientRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	c := newTestClient(t, "cl_one", "Ravi Kumar")
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID())

	t.Run("by id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, c.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ravi Kumar", found.FullName())
		assert.True(t, decimal.RequireFromString("1499.50").Equal(found.PlanAmount()))
		assert.Equal(t, "2024-03-01", biztime.FormatDate(found.StartDate()))
		assert.Equal(t, "2024-04-01", biztime.FormatDate(found.EndDate()))
	})

	t.Run("by sid", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, "cl_one")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c.ID(), found.ID())
	})

	t.Run("missing returns nil, nil", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, "cl_missing")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate sid fails", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, newTestClient(t, "cl_one", "Someone")))
	})
}

func TestClientRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewClientRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, sid := range []string{"cl_c", "cl_a", "cl_b"} {
		require.NoError(t, repo.Create(ctx, newTestClient(t, sid, sid)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "cl_c", list[0].SID())
	assert.Equal(t, "cl_a", list[1].SID())
	assert.Equal(t, "cl_b", list[2].SID())
}

func TestClientRepository_UpdateAndDelete(t *testing.T) {
	repo := NewClientRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	c := newTestClient(t, "cl_upd", "Old Name")
	require.NoError(t, repo.Create(ctx, c))

	p := c.Profile()
	p.FullName = "New Name"
	m := c.Membership()
	m.PlanType = vo.PlanTypeYearly
	m.EndDate = m.StartDate.AddDate(1, 0, 0)
	require.NoError(t, c.Update(p, m, time.Now()))
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "New Name", found.FullName())
	assert.Equal(t, vo.PlanTypeYearly, found.PlanType())
	assert.Equal(t, "2025-03-01", biztime.FormatDate(found.EndDate()))

	require.NoError(t, repo.Delete(ctx, c.ID()))
	gone, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID()), client.ErrClientNotFound)
}

func TestPaymentRepository_TransactionRollback(t *testing.T) {
	gdb := setupTestDB(t)
	clients := NewClientRepository(gdb, logger.NewNop())
	payments := NewPaymentRepository(gdb, logger.NewNop())
	txm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	c := newTestClient(t, "cl_tx", "Tx Member")
	require.NoError(t, clients.Create(ctx, c))

	newPayment := func(sid string) *client.Payment {
		p, err := client.NewPayment(sid, client.PaymentParams{
			ClientID: c.ID(),
			Kind:     client.PaymentKindManual,
			PlanType: vo.PlanTypeMonthly,
			Amount:   decimal.NewFromInt(500),
			Method:   vo.PaymentMethodUPI,
			PaidAt:   time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		return p
	}

	boom := errors.New("boom")
	err := txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, payments.Create(txCtx, newPayment("pay_rollback")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := payments.ListByClient(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return payments.Create(txCtx, newPayment("pay_commit"))
	}))

	list, err = payments.ListByClient(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pay_commit", list[0].SID())
	assert.Equal(t, vo.PaymentMethodUPI, list[0].Method())
}
