package impl

import (
	"context"
	"log/slog"
	"strings"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/lifecycle"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"
	"foodlink/internal/errors"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type donationService struct {
	txManager     repository.TransactionManager
	donationRepo  repository.DonationRepository
	matching      usecase.MatchingUsecase
	dispatcher    service.NotificationDispatcher
	handoffTokens service.HandoffTokenService
	qrcodeService service.QRCodeService
	handoff       *config.HandoffConfig
	clock         clockwork.Clock
	logger        *slog.Logger
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DonationRepo  repository.DonationRepository
	Matching      usecase.MatchingUsecase
	Dispatcher    service.NotificationDispatcher
	HandoffTokens service.HandoffTokenService
	QRCodeService service.QRCodeService
	Config        *config.Config
	Clock         clockwork.Clock
	Logger        *slog.Logger
}

// NewDonationService creates a new donation service instance
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		txManager:     params.TxManager,
		donationRepo:  params.DonationRepo,
		matching:      params.Matching,
		dispatcher:    params.Dispatcher,
		handoffTokens: params.HandoffTokens,
		qrcodeService: params.QRCodeService,
		handoff:       params.Config.Handoff,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

// CreateDonation validates and stores a new donation, then offers it to the best candidate
func (s *donationService) CreateDonation(ctx context.Context, input *usecase.CreateDonationInput) (*entity.Donation, error) {
	if input == nil || input.DonorID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("donor id is required")
	}
	if err := validateDetails(&input.DonationDetails); err != nil {
		return nil, err
	}

	if err := lifecycle.ValidateExpiry(
		s.clock.Now(), input.PreparedAt, input.ExpiryTime, input.PickupDeadline, input.Category,
	); err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		DonorID: input.DonorID,
		Status:  entity.DonationStatusAvailable,
	}
	applyDetails(donation, &input.DonationDetails)

	if err := s.donationRepo.CreateDonation(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to create donation")
	}

	s.logger.Info("Donation created",
		slog.String("donation_id", donation.ID.String()),
		slog.String("category", string(donation.Category)),
	)

	offerToTopCandidate(ctx, s.matching, s.dispatcher, s.logger, donation)

	return donation, nil
}

// UpdateDonation rewrites the details of a donation the donor still holds open
func (s *donationService) UpdateDonation(ctx context.Context, donorID, donationID uuid.UUID, input *usecase.DonationDetails) (*entity.Donation, error) {
	if err := validateDetails(input); err != nil {
		return nil, err
	}

	donation, err := s.findDonation(ctx, s.donationRepo, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID != donorID {
		return nil, domainerrors.ErrNotDonationOwner
	}

	if donation.Status != entity.DonationStatusAvailable {
		return nil, errNotEditable(donation.Status)
	}

	if err := lifecycle.ValidateExpiry(
		s.clock.Now(), input.PreparedAt, input.ExpiryTime, input.PickupDeadline, input.Category,
	); err != nil {
		return nil, err
	}

	applyDetails(donation, input)

	if err := s.donationRepo.UpdateDonationDetails(ctx, donation); err != nil {
		if errors.Is(err, repository.ErrDonationStateConflict) {
			return nil, domainerrors.ErrInvalidTransition.WithDetails("donation is no longer available for editing")
		}

		return nil, errors.Wrap(err, "failed to update donation")
	}

	return donation, nil
}

// GetDonation returns a donation with its reassign history
func (s *donationService) GetDonation(ctx context.Context, donationID uuid.UUID) (*entity.Donation, error) {
	return s.findDonation(ctx, s.donationRepo, donationID)
}

// ApplyTransition performs a client-requested status change
func (s *donationService) ApplyTransition(ctx context.Context, donationID uuid.UUID, input *usecase.TransitionInput) (*entity.Donation, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("transition input is required")
	}

	var (
		result *entity.Donation
		err    error
	)

	switch input.Target {
	case entity.DonationStatusAccepted:
		result, err = s.accept(ctx, donationID, input)
	case entity.DonationStatusPickedUp:
		result, err = s.pickUp(ctx, donationID, input)
	case entity.DonationStatusDelivered:
		result, err = s.deliver(ctx, donationID, input)
	case entity.DonationStatusCancelled:
		result, err = s.cancel(ctx, donationID, input)
	default:
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"status " + string(input.Target) + " cannot be requested directly",
		)
	}

	if err != nil {
		return nil, err
	}

	s.logger.Info("Donation transitioned",
		slog.String("donation_id", donationID.String()),
		slog.String("status", string(result.Status)),
	)

	return result, nil
}

func (s *donationService) accept(ctx context.Context, donationID uuid.UUID, input *usecase.TransitionInput) (*entity.Donation, error) {
	if input.OrganizationID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("organization id is required")
	}
	organizationID := *input.OrganizationID

	var result *entity.Donation
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		donationRepo := factory.NewDonationRepository()

		donation, err := s.findDonation(ctx, donationRepo, donationID)
		if err != nil {
			return err
		}

		if err := lifecycle.Transition(donation.Status, entity.DonationStatusAccepted); err != nil {
			return err
		}

		organization, err := factory.NewOrganizationRepository().FindOrganizationByID(ctx, organizationID)
		if err != nil {
			if errors.Is(err, repository.ErrOrganizationNotFound) {
				return errors.Wrap(domainerrors.ErrOrganizationNotFound, "organization not found")
			}

			return errors.Wrap(err, "failed to find organization")
		}

		if !organization.CanAccept() {
			return domainerrors.ErrOrganizationIneligible.WithDetails("organization is inactive or unverified")
		}
		if donation.HasFailed(organizationID) {
			return domainerrors.ErrOrganizationIneligible.WithDetails("organization already timed out on this donation")
		}

		now := s.clock.Now()
		if donation.PickupWindowClosed(now) {
			return domainerrors.ErrPickupWindowClosed
		}

		updated, err := donationRepo.TransitionStatus(ctx, donationID, entity.DonationTransition{
			From:       entity.DonationStatusAvailable,
			To:         entity.DonationStatusAccepted,
			AcceptedBy: &organizationID,
			AcceptedAt: &now,
		})
		if err != nil {
			return s.transitionFailed(ctx, donationRepo, donationID, entity.DonationStatusAccepted, err)
		}

		if err := factory.NewPickupLogRepository().CreateLog(ctx, &entity.PickupLog{
			DonationID:     donationID,
			OrganizationID: organizationID,
			DonorID:        donation.DonorID,
			AcceptedAt:     now,
			Status:         entity.PickupStatusInProgress,
			Quantity:       donation.Quantity,
		}); err != nil {
			return errors.Wrap(err, "failed to create pickup log")
		}

		result = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *donationService) pickUp(ctx context.Context, donationID uuid.UUID, input *usecase.TransitionInput) (*entity.Donation, error) {
	if input.OrganizationID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("organization id is required")
	}
	organizationID := *input.OrganizationID

	var result *entity.Donation
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		donationRepo := factory.NewDonationRepository()

		donation, err := s.findDonation(ctx, donationRepo, donationID)
		if err != nil {
			return err
		}

		if err := lifecycle.Transition(donation.Status, entity.DonationStatusPickedUp); err != nil {
			return err
		}
		if !donation.IsAcceptedBy(organizationID) {
			return domainerrors.ErrNotAssignedOrganization
		}
		if err := s.checkHandoff(donationID, organizationID, input.HandoffToken); err != nil {
			return err
		}

		now := s.clock.Now()
		updated, err := donationRepo.TransitionStatus(ctx, donationID, entity.DonationTransition{
			From:               entity.DonationStatusAccepted,
			To:                 entity.DonationStatusPickedUp,
			ExpectedAcceptedBy: &organizationID,
			PickedUpAt:         &now,
		})
		if err != nil {
			return s.transitionFailed(ctx, donationRepo, donationID, entity.DonationStatusPickedUp, err)
		}

		if err := factory.NewPickupLogRepository().MarkPickedUp(ctx, donationID, organizationID, now); err != nil {
			return errors.Wrap(err, "failed to mark pickup log picked up")
		}

		result = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *donationService) deliver(ctx context.Context, donationID uuid.UUID, input *usecase.TransitionInput) (*entity.Donation, error) {
	if input.OrganizationID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("organization id is required")
	}
	if input.BeneficiaryCount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("beneficiary count must not be negative")
	}
	organizationID := *input.OrganizationID

	var result *entity.Donation
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		donationRepo := factory.NewDonationRepository()

		donation, err := s.findDonation(ctx, donationRepo, donationID)
		if err != nil {
			return err
		}

		if err := lifecycle.Transition(donation.Status, entity.DonationStatusDelivered); err != nil {
			return err
		}
		if !donation.IsAcceptedBy(organizationID) {
			return domainerrors.ErrNotAssignedOrganization
		}

		now := s.clock.Now()
		updated, err := donationRepo.TransitionStatus(ctx, donationID, entity.DonationTransition{
			From:               entity.DonationStatusPickedUp,
			To:                 entity.DonationStatusDelivered,
			ExpectedAcceptedBy: &organizationID,
			DeliveredAt:        &now,
		})
		if err != nil {
			return s.transitionFailed(ctx, donationRepo, donationID, entity.DonationStatusDelivered, err)
		}

		if err := factory.NewPickupLogRepository().MarkDelivered(ctx, donationID, organizationID, now, input.BeneficiaryCount); err != nil {
			return errors.Wrap(err, "failed to mark pickup log delivered")
		}

		result = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *donationService) cancel(ctx context.Context, donationID uuid.UUID, input *usecase.TransitionInput) (*entity.Donation, error) {
	if input.DonorID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("donor id is required")
	}

	donation, err := s.findDonation(ctx, s.donationRepo, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID != *input.DonorID {
		return nil, domainerrors.ErrNotDonationOwner
	}
	if err := lifecycle.Transition(donation.Status, entity.DonationStatusCancelled); err != nil {
		return nil, err
	}

	updated, err := s.donationRepo.TransitionStatus(ctx, donationID, entity.DonationTransition{
		From: donation.Status,
		To:   entity.DonationStatusCancelled,
	})
	if err != nil {
		return nil, s.transitionFailed(ctx, s.donationRepo, donationID, entity.DonationStatusCancelled, err)
	}

	return updated, nil
}

// GetHandoffCode issues the QR code the donor shows to the accepting organization
func (s *donationService) GetHandoffCode(ctx context.Context, donorID, donationID uuid.UUID) (*usecase.HandoffCode, error) {
	donation, err := s.findDonation(ctx, s.donationRepo, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID != donorID {
		return nil, domainerrors.ErrNotDonationOwner
	}
	if donation.Status != entity.DonationStatusAccepted || donation.AcceptedBy == nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("handoff code is only available while the donation is accepted")
	}

	token, expiresAt, err := s.handoffTokens.Issue(donation.ID, *donation.AcceptedBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue handoff token")
	}

	png, err := s.qrcodeService.GenerateHandoffQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate handoff QR code")
	}

	return &usecase.HandoffCode{
		Token:     token,
		ExpiresAt: expiresAt,
		PNG:       png,
	}, nil
}

// checkHandoff accepts a raw token or the scanned QR payload.
func (s *donationService) checkHandoff(donationID, organizationID uuid.UUID, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		if s.handoff.Required {
			return domainerrors.ErrInvalidHandoffToken.WithDetails("handoff code is required")
		}

		return nil
	}

	token := code
	if strings.HasPrefix(code, "{") {
		parsed, err := s.qrcodeService.ParseHandoffQR(code)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidHandoffToken, err.Error())
		}
		token = parsed
	}

	claims, err := s.handoffTokens.Verify(token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidHandoffToken, err.Error())
	}

	if claims.DonationID != donationID || claims.OrganizationID != organizationID {
		return domainerrors.ErrInvalidHandoffToken.WithDetails("handoff code belongs to another pickup")
	}

	return nil
}

func (s *donationService) findDonation(ctx context.Context, repo repository.DonationRepository, donationID uuid.UUID) (*entity.Donation, error) {
	donation, err := repo.FindDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonationNotFound, "donation not found")
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	return donation, nil
}

// transitionFailed reports a lost conditional update as an invalid transition from the
// status the winner left behind.
func (s *donationService) transitionFailed(
	ctx context.Context,
	repo repository.DonationRepository,
	donationID uuid.UUID,
	target entity.DonationStatus,
	err error,
) error {
	switch {
	case errors.Is(err, repository.ErrDonationNotFound):
		return errors.Wrap(domainerrors.ErrDonationNotFound, "donation not found")
	case errors.Is(err, repository.ErrDonationStateConflict):
		current, findErr := repo.FindDonationByID(ctx, donationID)
		if findErr != nil {
			return domainerrors.ErrInvalidTransition.WithDetails("donation changed concurrently")
		}

		return domainerrors.NewInvalidTransitionError(string(current.Status), string(target))
	default:
		return errors.Wrap(err, "failed to transition donation")
	}
}

func errNotEditable(status entity.DonationStatus) error {
	return domainerrors.ErrInvalidTransition.WithDetails("donation can only be edited while available, current status " + string(status))
}

func validateDetails(details *usecase.DonationDetails) error {
	switch {
	case details == nil:
		return domainerrors.ErrValidationFailed.WithDetails("donation details are required")
	case strings.TrimSpace(details.Title) == "":
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	case details.Quantity <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	case details.Latitude < -90 || details.Latitude > 90:
		return domainerrors.ErrValidationFailed.WithDetails("latitude out of range")
	case details.Longitude < -180 || details.Longitude > 180:
		return domainerrors.ErrValidationFailed.WithDetails("longitude out of range")
	}

	return nil
}

func applyDetails(donation *entity.Donation, details *usecase.DonationDetails) {
	donation.Title = strings.TrimSpace(details.Title)
	donation.Description = details.Description
	donation.Category = details.Category
	donation.Quantity = details.Quantity
	donation.Unit = details.Unit
	donation.PreparedAt = details.PreparedAt.UTC()
	donation.ExpiryTime = details.ExpiryTime.UTC()
	donation.PickupDeadline = details.PickupDeadline.UTC()
	donation.Location = orb.Point{details.Longitude, details.Latitude}
	donation.Address = details.Address
}
