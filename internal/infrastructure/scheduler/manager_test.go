package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/shared/logger"
)

func TestSchedulerManager_RunsReminderJobImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	var calls atomic.Int32
	job := BatchJobFunc(func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 2, nil
	})

	require.NoError(t, m.RegisterReminderJob(job, time.Hour))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "expiry-reminders", m.Jobs()[0].Name())

	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	assert.Equal(t, int32(1), calls.Load(), "hourly job runs once within the test window")
}

func TestSchedulerManager_JobErrorDoesNotStopScheduler(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	var calls atomic.Int32
	job := BatchJobFunc(func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("smtp down")
	})

	require.NoError(t, m.RegisterReminderJob(job, 50*time.Millisecond))
	m.Start()
	defer m.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerManager_StopIsIdempotent(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	assert.NoError(t, m.Stop())
	m.Start()
	m.Start()
	assert.NoError(t, m.Stop())
	assert.NoError(t, m.Stop())
}
