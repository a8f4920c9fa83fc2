package jobs_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUnpaidOrderExpirer struct {
	mock.Mock
}

func (m *MockUnpaidOrderExpirer) Handle(ctx context.Context, cmd commands.ExpireUnpaidOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func newJob(t *testing.T, handler jobs.UnpaidOrderExpirer, cfg jobs.ExpiryConfig) (*jobs.UnpaidOrderExpiryJob, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	job, err := jobs.NewUnpaidOrderExpiryJob(handler, cfg, jobs.NewMetrics(reg), nil)
	require.NoError(t, err)
	return job, reg
}

func TestNewUnpaidOrderExpiryJob_InvalidSchedule(t *testing.T) {
	_, err := jobs.NewUnpaidOrderExpiryJob(new(MockUnpaidOrderExpirer), jobs.ExpiryConfig{Schedule: "every minute"}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "every minute")
}

func TestUnpaidOrderExpiryJob_Run(t *testing.T) {
	t.Run("uses ttl and batch size", func(t *testing.T) {
		handler := new(MockUnpaidOrderExpirer)
		ttl := 45 * time.Minute
		before := time.Now()

		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpireUnpaidOrdersCommand) bool {
			return cmd.BatchSize() == 10 &&
				cmd.Now().Sub(cmd.Cutoff()) == ttl &&
				!cmd.Now().Before(before)
		})).Return(3, nil).Once()

		job, reg := newJob(t, handler, jobs.ExpiryConfig{TTL: ttl, BatchSize: 10})

		n, err := job.Run(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		handler.AssertExpectations(t)
		assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP ootdverse_jobs_expired_orders_total Unpaid orders cancelled by the expiry job.
# TYPE ootdverse_jobs_expired_orders_total counter
ootdverse_jobs_expired_orders_total 3
`), "ootdverse_jobs_expired_orders_total"))
	})

	t.Run("drains full batches", func(t *testing.T) {
		handler := new(MockUnpaidOrderExpirer)
		handler.On("Handle", mock.Anything, mock.Anything).Return(2, nil).Twice()
		handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).Once()

		job, _ := newJob(t, handler, jobs.ExpiryConfig{BatchSize: 2})

		n, err := job.Run(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 5, n)
		handler.AssertNumberOfCalls(t, "Handle", 3)
	})

	t.Run("nothing to expire", func(t *testing.T) {
		handler := new(MockUnpaidOrderExpirer)
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()

		job, reg := newJob(t, handler, jobs.ExpiryConfig{})

		n, err := job.Run(t.Context())

		require.NoError(t, err)
		assert.Zero(t, n)
		handler.AssertExpectations(t)
		assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP ootdverse_jobs_runs_total Scheduled job runs by job and result.
# TYPE ootdverse_jobs_runs_total counter
ootdverse_jobs_runs_total{job="unpaid_order_expiry",result="ok"} 1
`), "ootdverse_jobs_runs_total"))
	})

	t.Run("keeps count of committed batches on error", func(t *testing.T) {
		handler := new(MockUnpaidOrderExpirer)
		handler.On("Handle", mock.Anything, mock.Anything).Return(2, nil).Once()
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("connection reset")).Once()

		job, reg := newJob(t, handler, jobs.ExpiryConfig{BatchSize: 2})

		n, err := job.Run(t.Context())

		require.EqualError(t, err, "connection reset")
		assert.Equal(t, 2, n)
		assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP ootdverse_jobs_runs_total Scheduled job runs by job and result.
# TYPE ootdverse_jobs_runs_total counter
ootdverse_jobs_runs_total{job="unpaid_order_expiry",result="error"} 1
`), "ootdverse_jobs_runs_total"))
	})

	t.Run("without metrics", func(t *testing.T) {
		handler := new(MockUnpaidOrderExpirer)
		handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).Once()

		job, err := jobs.NewUnpaidOrderExpiryJob(handler, jobs.ExpiryConfig{}, nil, nil)
		require.NoError(t, err)

		n, err := job.Run(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestJobManager_StartStop(t *testing.T) {
	handler := new(MockUnpaidOrderExpirer)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	job, _ := newJob(t, handler, jobs.ExpiryConfig{Schedule: "@every 1h"})
	manager := jobs.NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
