package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob periodically runs the slot completion sweep.
// Each tick observes the current wall clock in the configured timezone and
// auto-completes every delivery whose slot cutover has passed.
type FulfillmentJob struct {
	handler  commands.CompleteSlotDeliveriesCommandHandler
	cron     *cron.Cron
	location *time.Location
	tick     time.Duration
	logger   *slog.Logger
}

// NewFulfillmentJob creates a job that sweeps overdue deliveries every tick.
// The location decides which calendar date a tick belongs to, so it must be
// the timezone the cutovers were configured for.
func NewFulfillmentJob(
	handler commands.CompleteSlotDeliveriesCommandHandler,
	location *time.Location,
	tick time.Duration,
	logger *slog.Logger,
) *FulfillmentJob {
	return &FulfillmentJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		location: location,
		tick:     tick,
		logger:   logger.With("component", "fulfillment_job"),
	}
}

// Start schedules the sweep to run every tick.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", int(j.tick.Seconds())), func() {
		ctx := context.Background()

		cmd, err := commands.NewCompleteSlotDeliveriesCommand(time.Now().In(j.location))
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment sweep could not be built", "error", err)
			return
		}

		results, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment sweep failed", "error", err)
			return
		}

		for _, result := range results {
			if result.Completed == 0 && result.Failed == 0 {
				continue
			}

			j.logger.InfoContext(ctx, "Fulfillment sweep closed deliveries",
				"slot", result.Slot.String(),
				"latest_date", result.LatestDate.Format(time.DateOnly),
				"completed", result.Completed,
				"failed", result.Failed,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started", "tick", j.tick.String())
	return nil
}

// Stop stops the fulfillment job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}
