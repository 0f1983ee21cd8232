package scheduler

import (
	"context"
	"log/slog"

	"foodlink/config"
	"foodlink/internal/usecase"

	"go.uber.org/fx"
)

const (
	JobReassignmentSweep        = "reassignment-sweep"
	JobExpirySweep              = "expiry-sweep"
	JobReliabilityRecalculation = "reliability-recalculation"
)

// JobsParams holds the use cases driven by the scheduler
type JobsParams struct {
	fx.In

	Scheduler      *Scheduler
	Config         *config.Config
	Logger         *slog.Logger
	ReassignmentUC usecase.ReassignmentUsecase
	ReliabilityUC  usecase.ReliabilityUsecase
}

// RegisterJobs registers the stale-acceptance and expiry sweeps and the reliability recalculation.
func RegisterJobs(params JobsParams) error {
	reassignment := params.Config.Reassignment
	if err := params.Scheduler.Register(Job{
		Name:     JobReassignmentSweep,
		Interval: reassignment.Interval,
		Timeout:  reassignment.PassTimeout,
		Run: func(ctx context.Context) error {
			_, err := params.ReassignmentUC.RunReassignmentSweep(ctx)

			return err
		},
	}); err != nil {
		return err
	}

	if err := params.Scheduler.Register(Job{
		Name:     JobExpirySweep,
		Interval: reassignment.Interval,
		Timeout:  reassignment.PassTimeout,
		Run: func(ctx context.Context) error {
			_, err := params.ReassignmentUC.RunExpirySweep(ctx)

			return err
		},
	}); err != nil {
		return err
	}

	reliability := params.Config.Reliability

	return params.Scheduler.Register(Job{
		Name:     JobReliabilityRecalculation,
		Interval: reliability.Interval,
		Timeout:  reliability.Timeout,
		Run: func(ctx context.Context) error {
			updated, err := params.ReliabilityUC.RecalculateReliability(ctx, nil)
			if err != nil {
				return err
			}

			params.Logger.Info("Reliability scores recalculated", slog.Int("updated", updated))

			return nil
		},
	})
}
