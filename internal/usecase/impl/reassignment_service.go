package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodlink/config"
	"foodlink/internal/domain/constants"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/lifecycle"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"
	"foodlink/internal/errors"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type reassignmentService struct {
	txManager    repository.TransactionManager
	donationRepo repository.DonationRepository
	orgRepo      repository.OrganizationRepository
	matching     usecase.MatchingUsecase
	dispatcher   service.NotificationDispatcher
	config       *config.ReassignmentConfig
	clock        clockwork.Clock
	logger       *slog.Logger
}

// ReassignmentServiceParams holds dependencies for ReassignmentService, injected by Fx.
type ReassignmentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonationRepo repository.DonationRepository
	OrgRepo      repository.OrganizationRepository
	Matching     usecase.MatchingUsecase
	Dispatcher   service.NotificationDispatcher
	Config       *config.Config
	Clock        clockwork.Clock
	Logger       *slog.Logger
}

// NewReassignmentService creates a new reassignment service instance
func NewReassignmentService(params ReassignmentServiceParams) usecase.ReassignmentUsecase {
	return &reassignmentService{
		txManager:    params.TxManager,
		donationRepo: params.DonationRepo,
		orgRepo:      params.OrgRepo,
		matching:     params.Matching,
		dispatcher:   params.Dispatcher,
		config:       params.Config.Reassignment,
		clock:        params.Clock,
		logger:       params.Logger.With(slog.String("component", "reassignment_sweep")),
	}
}

// timedOut is an organization that lost a donation in the current pass.
type timedOut struct {
	organizationID uuid.UUID
	donation       *entity.Donation
}

// RunReassignmentSweep releases every acceptance older than the stale window
func (s *reassignmentService) RunReassignmentSweep(ctx context.Context) (*usecase.SweepResult, error) {
	if s.config.PassTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.PassTimeout)
		defer cancel()
	}

	now := s.clock.Now()
	cutoff := now.Add(-s.config.StaleWindow)

	stale, err := s.donationRepo.FindStaleAccepted(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stale donations")
	}

	result := &usecase.SweepResult{}
	penalties := make(map[uuid.UUID]int)
	var (
		reopened []*entity.Donation
		notices  []timedOut
	)

	for i, donation := range stale {
		if ctx.Err() != nil {
			s.logger.Warn("Sweep pass timed out, leaving donations for the next pass",
				slog.Int("remaining", len(stale)-i),
			)

			break
		}

		updated, err := s.release(ctx, donation, cutoff, now)
		if err != nil {
			if errors.Is(err, repository.ErrDonationStateConflict) {
				// Picked up or released elsewhere since the query; nothing to do.
				s.logger.Debug("Donation moved before it could be released",
					slog.String("donation_id", donation.ID.String()),
				)

				continue
			}

			result.Failed++
			s.logger.Error("Failed to release stale donation",
				slog.String("donation_id", donation.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		if donation.AcceptedBy != nil {
			penalties[*donation.AcceptedBy] += s.config.Penalty
			notices = append(notices, timedOut{organizationID: *donation.AcceptedBy, donation: updated})
		}

		switch updated.Status {
		case entity.DonationStatusExpired:
			result.Expired++
		case entity.DonationStatusAvailable:
			result.Reassigned++
			reopened = append(reopened, updated)
		}
	}

	// Committed state must still be followed up when the pass itself ran out of time.
	followUpCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	s.applyPenalties(followUpCtx, penalties)

	for _, notice := range notices {
		payload := donationPayload(notice.donation)
		payload["status"] = string(notice.donation.Status)
		s.dispatcher.Notify(followUpCtx, notice.organizationID, constants.EventDonationAssignmentTimedOut, payload)
	}

	for _, donation := range reopened {
		offerToTopCandidate(followUpCtx, s.matching, s.dispatcher, s.logger, donation)
	}

	s.logger.Info("Reassignment sweep finished",
		slog.Int("stale", len(stale)),
		slog.Int("reassigned", result.Reassigned),
		slog.Int("expired", result.Expired),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// release moves one stale donation back to available, or to expired once it ran out of attempts
// or nobody could still pick it up, together with its pickup log and reassign history.
func (s *reassignmentService) release(ctx context.Context, donation *entity.Donation, cutoff, now time.Time) (*entity.Donation, error) {
	target := entity.DonationStatusAvailable
	if donation.ReassignCount+1 >= s.config.MaxAttempts || donation.PickupWindowClosed(now) {
		target = entity.DonationStatusExpired
	}

	var result *entity.Donation
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		updated, err := factory.NewDonationRepository().TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From:               entity.DonationStatusAccepted,
			To:                 target,
			ExpectedAcceptedBy: donation.AcceptedBy,
			AcceptedBefore:     &cutoff,
			ClearAcceptance:    target == entity.DonationStatusAvailable,
			IncrementReassign:  true,
		})
		if err != nil {
			return err
		}

		if donation.AcceptedBy != nil {
			organizationID := *donation.AcceptedBy
			reason := fmt.Sprintf("not picked up within %s of acceptance", s.config.StaleWindow)

			err := factory.NewPickupLogRepository().MarkFailed(ctx, donation.ID, organizationID, reason)
			if err != nil && !errors.Is(err, repository.ErrPickupLogNotFound) {
				return errors.Wrap(err, "failed to mark pickup log failed")
			}

			entry := entity.ReassignEntry{
				OrganizationID: organizationID,
				AcceptedAt:     donation.AcceptedAt,
				ExpiredAt:      now,
				Reason:         reason,
			}
			if err := factory.NewDonationRepository().AppendReassignEntry(ctx, donation.ID, entry); err != nil {
				return errors.Wrap(err, "failed to append reassign entry")
			}
			updated.ReassignHistory = append(updated.ReassignHistory, entry)
		}

		result = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RunExpirySweep closes available donations whose pickup deadline has passed
func (s *reassignmentService) RunExpirySweep(ctx context.Context) (*usecase.SweepResult, error) {
	if s.config.PassTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.PassTimeout)
		defer cancel()
	}

	now := s.clock.Now()

	overdue, err := s.donationRepo.FindOverdueAvailable(ctx, now, s.config.BatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find overdue donations")
	}

	result := &usecase.SweepResult{}
	for _, donation := range overdue {
		if ctx.Err() != nil {
			break
		}

		_, err := s.donationRepo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From:                 entity.DonationStatusAvailable,
			To:                   entity.DonationStatusExpired,
			PickupDeadlineBefore: &now,
		})
		if errors.Is(err, repository.ErrDonationStateConflict) {
			// Accepted, cancelled or given a later deadline since the query.
			continue
		}
		if err != nil {
			result.Failed++
			s.logger.Error("Failed to expire overdue donation",
				slog.String("donation_id", donation.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		result.Expired++
	}

	if len(overdue) > 0 {
		s.logger.Info("Expiry sweep finished",
			slog.Int("overdue", len(overdue)),
			slog.Int("expired", result.Expired),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

// applyPenalties issues one clamped decrement per organization.
func (s *reassignmentService) applyPenalties(ctx context.Context, penalties map[uuid.UUID]int) {
	for organizationID, penalty := range penalties {
		if penalty == 0 {
			continue
		}

		organization, err := s.orgRepo.AdjustReliability(ctx, organizationID, -penalty)
		if err != nil {
			s.logger.Error("Failed to apply reliability penalty",
				slog.String("organization_id", organizationID.String()),
				slog.Int("penalty", penalty),
				slog.Any("error", err),
			)

			continue
		}

		s.logger.Info("Reliability penalty applied",
			slog.String("organization_id", organizationID.String()),
			slog.Int("penalty", penalty),
			slog.Int("reliability_score", organization.ReliabilityScore),
		)
	}
}
