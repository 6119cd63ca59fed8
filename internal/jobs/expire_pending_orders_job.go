package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpireSchedule runs the expiry sweep every five minutes.
const DefaultExpireSchedule = "0 */5 * * * *"

// ExpirePendingOrdersHandler cancels pending orders older than a command's TTL.
type ExpirePendingOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// ExpirePendingOrdersJob cancels PENDING orders that outlived their TTL.
type ExpirePendingOrdersJob struct {
	handler  ExpirePendingOrdersHandler
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExpirePendingOrdersJob uses a cron schedule with a seconds field.
func NewExpirePendingOrdersJob(
	handler ExpirePendingOrdersHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *ExpirePendingOrdersJob {
	if schedule == "" {
		schedule = DefaultExpireSchedule
	}
	return &ExpirePendingOrdersJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "expire_pending_orders_job"),
	}
}

// Name identifies the job in logs.
func (j *ExpirePendingOrdersJob) Name() string {
	return "expire pending orders"
}

// Start schedules the expiry sweep on the job's cron spec and returns
// without waiting for the first run.
func (j *ExpirePendingOrdersJob) Start() error {
	if _, err := commands.NewExpirePendingOrdersCommand(j.ttl); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Expire pending orders job started", "schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one sweep. Start calls it on every tick.
func (j *ExpirePendingOrdersJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Expire pending orders job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Expire pending orders job failed", "expired", expired, "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired pending orders", "expired", expired)
	}
}

// Stop waits for a running sweep to finish.
func (j *ExpirePendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Expire pending orders job stopped")
}
