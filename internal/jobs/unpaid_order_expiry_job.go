package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ootdverse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	unpaidOrderExpiryJobName = "unpaid_order_expiry"

	DefaultExpirySchedule  = "@every 1m"
	DefaultUnpaidOrderTTL  = 30 * time.Minute
	DefaultExpiryBatchSize = 100

	// maxBatchesPerRun bounds one run so a large backlog cannot hold the
	// scheduler forever. The rest is picked up by the next tick.
	maxBatchesPerRun = 50
)

// UnpaidOrderExpirer cancels one batch of stale unpaid orders.
type UnpaidOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireUnpaidOrdersCommand) (int, error)
}

// ExpiryConfig controls how often unpaid orders are checked and how long a
// buyer has to pay. Zero fields take the package defaults.
type ExpiryConfig struct {
	Schedule  string
	TTL       time.Duration
	BatchSize int
}

func (c ExpiryConfig) withDefaults() ExpiryConfig {
	if c.Schedule == "" {
		c.Schedule = DefaultExpirySchedule
	}
	if c.TTL <= 0 {
		c.TTL = DefaultUnpaidOrderTTL
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultExpiryBatchSize
	}
	return c
}

// UnpaidOrderExpiryJob cancels orders whose payment never arrived.
type UnpaidOrderExpiryJob struct {
	handler UnpaidOrderExpirer
	cfg     ExpiryConfig
	cron    *cron.Cron
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewUnpaidOrderExpiryJob validates the schedule up front so a typo fails at
// startup instead of silently never running.
func NewUnpaidOrderExpiryJob(
	handler UnpaidOrderExpirer,
	cfg ExpiryConfig,
	metrics *Metrics,
	logger *slog.Logger,
) (*UnpaidOrderExpiryJob, error) {
	cfg = cfg.withDefaults()
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid expiry schedule %q: %w", cfg.Schedule, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger = logger.With("component", "unpaid_order_expiry_job")
	return &UnpaidOrderExpiryJob{
		handler: handler,
		cfg:     cfg,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Start schedules the job.
func (j *UnpaidOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Unpaid order expiry job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unpaid order expiry job started",
		"schedule", j.cfg.Schedule,
		"ttl", j.cfg.TTL.String())
	return nil
}

// Stop stops scheduling new runs and waits for a running one to finish.
func (j *UnpaidOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Unpaid order expiry job stopped")
}

// Run cancels every order that has been waiting for payment longer than the
// TTL, batch by batch, and returns how many were cancelled. Orders cancelled
// in batches committed before an error stay cancelled.
func (j *UnpaidOrderExpiryJob) Run(ctx context.Context) (int, error) {
	total, err := j.run(ctx)
	j.metrics.ordersExpired(total)
	j.metrics.runFinished(unpaidOrderExpiryJobName, err)

	if total > 0 {
		j.logger.InfoContext(ctx, "Cancelled unpaid orders", "count", total)
	}
	return total, err
}

func (j *UnpaidOrderExpiryJob) run(ctx context.Context) (int, error) {
	// A single cutoff keeps orders placed during the run out of it.
	now := j.now()

	total := 0
	for range maxBatchesPerRun {
		cmd, err := commands.NewExpireUnpaidOrdersCommand(now, j.cfg.TTL, j.cfg.BatchSize)
		if err != nil {
			return total, err
		}

		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			return total, err
		}
		total += n

		if n < j.cfg.BatchSize {
			return total, nil
		}
	}
	return total, nil
}
