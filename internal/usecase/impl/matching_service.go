package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/errors"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

type matchingService struct {
	donationRepo  repository.DonationRepository
	orgRepo       repository.OrganizationRepository
	pickupLogRepo repository.PickupLogRepository
	model         *ScoringModel
	config        *config.MatchingConfig
	location      *time.Location
	clock         clockwork.Clock
	logger        *slog.Logger
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	DonationRepo  repository.DonationRepository
	OrgRepo       repository.OrganizationRepository
	PickupLogRepo repository.PickupLogRepository
	Config        *config.Config
	Clock         clockwork.Clock
	Logger        *slog.Logger
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(params MatchingServiceParams) (usecase.MatchingUsecase, error) {
	cfg := params.Config.Matching

	model, err := NewScoringModel(cfg.Weights)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scoring model")
	}

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid matching time zone %q", cfg.TimeZone)
	}

	return &matchingService{
		donationRepo:  params.DonationRepo,
		orgRepo:       params.OrgRepo,
		pickupLogRepo: params.PickupLogRepo,
		model:         model,
		config:        cfg,
		location:      location,
		clock:         params.Clock,
		logger:        params.Logger,
	}, nil
}

// RankCandidates ranks the organizations able to take a donation
func (s *matchingService) RankCandidates(ctx context.Context, donationID uuid.UUID) ([]*entity.Candidate, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonationNotFound, "donation not found")
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	return s.RankDonation(ctx, donation)
}

// RankDonation ranks a loaded donation with one geo query and one aggregate query.
func (s *matchingService) RankDonation(ctx context.Context, donation *entity.Donation) ([]*entity.Candidate, error) {
	now := s.clock.Now()
	if donation.Status != entity.DonationStatusAvailable || donation.PickupWindowClosed(now) {
		return []*entity.Candidate{}, nil
	}

	organizations, err := s.orgRepo.FindOrganizationsNear(ctx, donation.Location, s.config.RadiusKm, repository.OrganizationFilter{
		ActiveOnly:   true,
		VerifiedOnly: true,
		Limit:        s.config.MaxCandidates,
		ExcludeIDs:   donation.FailedOrganizationIDs(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby organizations")
	}
	if len(organizations) == 0 {
		return []*entity.Candidate{}, nil
	}

	local := now.In(s.location)

	ids := make([]uuid.UUID, 0, len(organizations))
	for _, org := range organizations {
		ids = append(ids, org.ID)
	}

	stats, err := s.pickupLogRepo.AggregateStats(ctx, ids, startOfDay(local))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pickup stats")
	}

	timeOfDay := timeOfDayScore(local)
	candidates := make([]*entity.Candidate, 0, len(organizations))

	for _, org := range organizations {
		if !org.CanAccept() || donation.HasFailed(org.ID) {
			continue
		}

		orgStats := stats[org.ID]
		if orgStats != nil && orgStats.AcceptedSince >= s.config.DailyPickupCap {
			s.logger.Debug("Organization at daily pickup cap",
				slog.String("organization_id", org.ID.String()),
				slog.Int("accepted_today", orgStats.AcceptedSince),
			)

			continue
		}
		if !orgStats.HasHistory() {
			orgStats = nil
		}

		distanceKm := geo.DistanceHaversine(donation.Location, org.Location) / 1000

		score, breakdown := s.model.Score(&FactorInput{
			Donation:     donation,
			Organization: org,
			Stats:        orgStats,
			DistanceKm:   distanceKm,
			RadiusKm:     s.config.RadiusKm,
			Now:          now,
			TimeOfDay:    timeOfDay,
		})

		candidates = append(candidates, &entity.Candidate{
			OrganizationID:   org.ID,
			OrganizationName: org.Name,
			DistanceKm:       distanceKm,
			Score:            score,
			Breakdown:        breakdown,
		})
	}

	slices.SortStableFunc(candidates, func(a, b *entity.Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return candidates, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
