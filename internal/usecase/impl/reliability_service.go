package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/errors"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type reliabilityService struct {
	orgRepo       repository.OrganizationRepository
	pickupLogRepo repository.PickupLogRepository
	config        *config.ReliabilityConfig
	clock         clockwork.Clock
	logger        *slog.Logger
}

// ReliabilityServiceParams holds dependencies for ReliabilityService, injected by Fx.
type ReliabilityServiceParams struct {
	fx.In

	OrgRepo       repository.OrganizationRepository
	PickupLogRepo repository.PickupLogRepository
	Config        *config.Config
	Clock         clockwork.Clock
	Logger        *slog.Logger
}

// NewReliabilityService creates a new reliability service instance
func NewReliabilityService(params ReliabilityServiceParams) usecase.ReliabilityUsecase {
	return &reliabilityService{
		orgRepo:       params.OrgRepo,
		pickupLogRepo: params.PickupLogRepo,
		config:        params.Config.Reliability,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

// Recalculate rescores a single organization
func (s *reliabilityService) Recalculate(ctx context.Context, organizationID uuid.UUID) (*int, error) {
	now := s.clock.Now()

	stats, err := s.pickupLogRepo.AggregateStats(ctx, []uuid.UUID{organizationID}, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pickup stats")
	}

	return s.apply(ctx, organizationID, stats[organizationID])
}

// RecalculateReliability rescores one organization or every active one
func (s *reliabilityService) RecalculateReliability(ctx context.Context, organizationID *uuid.UUID) (int, error) {
	if organizationID != nil {
		if _, err := s.Recalculate(ctx, *organizationID); err != nil {
			return 0, err
		}

		return 1, nil
	}

	ids, err := s.orgRepo.ListActiveOrganizationIDs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list active organizations")
	}

	var updated atomic.Int64

	for batch := range slices.Chunk(ids, max(1, s.config.BatchSize)) {
		if err := ctx.Err(); err != nil {
			return int(updated.Load()), errors.Wrap(err, "reliability recalculation interrupted")
		}

		stats, err := s.pickupLogRepo.AggregateStats(ctx, batch, s.clock.Now())
		if err != nil {
			s.logger.Error("Failed to aggregate pickup stats for batch",
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)

			continue
		}

		var g errgroup.Group
		g.SetLimit(max(1, s.config.Workers))

		for _, id := range batch {
			g.Go(func() error {
				if _, err := s.apply(ctx, id, stats[id]); err != nil {
					s.logger.Warn("Failed to recalculate reliability",
						slog.String("organization_id", id.String()),
						slog.Any("error", err),
					)

					return nil
				}
				updated.Add(1)

				return nil
			})
		}

		_ = g.Wait()
	}

	s.logger.Info("Reliability recalculation finished",
		slog.Int("organizations", len(ids)),
		slog.Int64("updated", updated.Load()),
	)

	return int(updated.Load()), nil
}

// apply persists the score derived from stats; organizations without history go back to the default.
func (s *reliabilityService) apply(ctx context.Context, organizationID uuid.UUID, stats *entity.OrganizationStats) (*int, error) {
	score, ok := ReliabilityScore(stats, s.clock.Now())
	if !ok {
		if err := s.setReliability(ctx, organizationID, entity.DefaultReliabilityScore); err != nil {
			return nil, err
		}

		return nil, nil
	}

	if err := s.setReliability(ctx, organizationID, score); err != nil {
		return nil, err
	}

	return &score, nil
}

func (s *reliabilityService) setReliability(ctx context.Context, organizationID uuid.UUID, score int) error {
	if err := s.orgRepo.SetReliability(ctx, organizationID, score); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return errors.Wrap(domainerrors.ErrOrganizationNotFound, "organization not found")
		}

		return errors.Wrap(err, "failed to set reliability score")
	}

	return nil
}
