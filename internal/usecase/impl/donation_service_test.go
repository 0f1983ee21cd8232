package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"foodlink/config"
	"foodlink/internal/domain/constants"
	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/domain/service"
	"foodlink/internal/errors"
	mockRepo "foodlink/internal/mocks/repository"
	mockService "foodlink/internal/mocks/service"
	mockUsecase "foodlink/internal/mocks/usecase"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// donationServiceFixtures holds all test dependencies for donation service tests.
type donationServiceFixtures struct {
	service       usecase.DonationUsecase
	txManager     *mockRepo.MockTransactionManager
	donationRepo  *mockRepo.MockDonationRepository
	orgRepo       *mockRepo.MockOrganizationRepository
	pickupLogRepo *mockRepo.MockPickupLogRepository
	matching      *mockUsecase.MockMatchingUsecase
	dispatcher    *mockService.MockNotificationDispatcher
	handoffTokens *mockService.MockHandoffTokenService
	qrcodeService *mockService.MockQRCodeService
	config        *config.Config
}

func createTestDonationService(t *testing.T) donationServiceFixtures {
	fx := donationServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		donationRepo:  mockRepo.NewMockDonationRepository(t),
		orgRepo:       mockRepo.NewMockOrganizationRepository(t),
		pickupLogRepo: mockRepo.NewMockPickupLogRepository(t),
		matching:      mockUsecase.NewMockMatchingUsecase(t),
		dispatcher:    mockService.NewMockNotificationDispatcher(t),
		handoffTokens: mockService.NewMockHandoffTokenService(t),
		qrcodeService: mockService.NewMockQRCodeService(t),
		config:        newTestConfig(),
	}

	fx.service = NewDonationService(DonationServiceParams{
		TxManager:     fx.txManager,
		DonationRepo:  fx.donationRepo,
		Matching:      fx.matching,
		Dispatcher:    fx.dispatcher,
		HandoffTokens: fx.handoffTokens,
		QRCodeService: fx.qrcodeService,
		Config:        fx.config,
		Clock:         clockwork.NewFakeClockAt(baseTime),
		Logger:        newDiscardLogger(),
	})

	return fx
}

// expectTransaction runs the transactional callback against the fixture's repositories.
func (fx donationServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDonationRepository().Return(fx.donationRepo).Maybe()
	factory.EXPECT().NewOrganizationRepository().Return(fx.orgRepo).Maybe()
	factory.EXPECT().NewPickupLogRepository().Return(fx.pickupLogRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

var testOrgID = uuid.MustParse("0195c0de-0000-7000-8000-000000000001")

func validDetails() usecase.DonationDetails {
	return usecase.DonationDetails{
		Title:          "Vegetable curry",
		Category:       entity.FoodCategoryCookedMeal,
		Quantity:       12,
		Unit:           "portions",
		PreparedAt:     baseTime.Add(-time.Hour),
		ExpiryTime:     baseTime.Add(4 * time.Hour),
		PickupDeadline: baseTime.Add(3 * time.Hour),
		Latitude:       25.0330,
		Longitude:      121.5654,
	}
}

func storedDonation(status entity.DonationStatus) *entity.Donation {
	details := validDetails()

	return &entity.Donation{
		ID:             uuid.New(),
		DonorID:        uuid.New(),
		Title:          details.Title,
		Category:       details.Category,
		Quantity:       details.Quantity,
		PreparedAt:     details.PreparedAt,
		ExpiryTime:     details.ExpiryTime,
		PickupDeadline: details.PickupDeadline,
		Location:       orb.Point{details.Longitude, details.Latitude},
		Status:         status,
	}
}

func acceptedBy(d *entity.Donation, organizationID uuid.UUID) *entity.Donation {
	at := baseTime.Add(-10 * time.Minute)
	d.Status = entity.DonationStatusAccepted
	d.AcceptedBy = &organizationID
	d.AcceptedAt = &at

	return d
}

func assertAppError(t *testing.T, err error, target *domainerrors.BaseError) domainerrors.AppError {
	t.Helper()

	require.ErrorIs(t, err, target)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, target.HTTPCode(), appErr.HTTPCode())

	return appErr
}

func TestDonationService_CreateDonation_ExpiryTooSoon(t *testing.T) {
	fx := createTestDonationService(t)

	details := validDetails()
	details.ExpiryTime = baseTime.Add(20 * time.Minute)
	details.PickupDeadline = baseTime.Add(10 * time.Minute)

	_, err := fx.service.CreateDonation(context.Background(), &usecase.CreateDonationInput{
		DonorID:         uuid.New(),
		DonationDetails: details,
	})

	var violation *domainerrors.ShelfLifeViolationError
	require.True(t, errors.As(err, &violation))
	assert.Contains(t, violation.Reason(), "at least 30 minutes")
	assert.Equal(t, http.StatusUnprocessableEntity, violation.HTTPCode())
}

func TestDonationService_CreateDonation_OffersToTopCandidate(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donorID := uuid.New()
	top := &entity.Candidate{OrganizationID: uuid.New(), Score: 77.3, DistanceKm: 2}

	fx.donationRepo.EXPECT().
		CreateDonation(ctx, mock.AnythingOfType("*entity.Donation")).
		Run(func(_ context.Context, d *entity.Donation) {
			d.ID = uuid.New()
		}).
		Return(nil)
	fx.matching.EXPECT().
		RankDonation(ctx, mock.AnythingOfType("*entity.Donation")).
		Return([]*entity.Candidate{top}, nil)
	fx.dispatcher.EXPECT().
		Notify(ctx, top.OrganizationID, constants.EventDonationOffered, mock.MatchedBy(func(p map[string]string) bool {
			return p["category"] == "cooked_meal" && p["score"] == "77.3"
		})).
		Return()

	donation, err := fx.service.CreateDonation(ctx, &usecase.CreateDonationInput{
		DonorID:         donorID,
		DonationDetails: validDetails(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, donation.ID)
	assert.Equal(t, donorID, donation.DonorID)
	assert.Equal(t, entity.DonationStatusAvailable, donation.Status)
	assert.Equal(t, orb.Point{121.5654, 25.0330}, donation.Location)
}

func TestDonationService_CreateDonation_RankingFailureStillCreates(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()

	fx.donationRepo.EXPECT().CreateDonation(ctx, mock.AnythingOfType("*entity.Donation")).Return(nil)
	fx.matching.EXPECT().
		RankDonation(ctx, mock.AnythingOfType("*entity.Donation")).
		Return(nil, errors.New("postgis unavailable"))

	donation, err := fx.service.CreateDonation(ctx, &usecase.CreateDonationInput{
		DonorID:         uuid.New(),
		DonationDetails: validDetails(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusAvailable, donation.Status)
}

func TestDonationService_CreateDonation_InvalidInput(t *testing.T) {
	fx := createTestDonationService(t)

	details := validDetails()
	details.Quantity = 0

	_, err := fx.service.CreateDonation(context.Background(), &usecase.CreateDonationInput{
		DonorID:         uuid.New(),
		DonationDetails: details,
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateDonation(context.Background(), &usecase.CreateDonationInput{DonationDetails: validDetails()})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestDonationService_UpdateDonation(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donation := storedDonation(entity.DonationStatusAvailable)

	details := validDetails()
	details.Title = "Vegetable curry and rice"
	details.Quantity = 20

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().
		UpdateDonationDetails(ctx, mock.MatchedBy(func(d *entity.Donation) bool {
			return d.ID == donation.ID && d.Quantity == 20 && d.Title == "Vegetable curry and rice"
		})).
		Return(nil)

	updated, err := fx.service.UpdateDonation(ctx, donation.DonorID, donation.ID, &details)
	require.NoError(t, err)
	assert.Equal(t, 20.0, updated.Quantity)
}

func TestDonationService_UpdateDonation_Rejections(t *testing.T) {
	t.Run("not the donor", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		donation := storedDonation(entity.DonationStatusAvailable)
		details := validDetails()

		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

		_, err := fx.service.UpdateDonation(ctx, uuid.New(), donation.ID, &details)
		assertAppError(t, err, domainerrors.ErrNotDonationOwner)
	})

	t.Run("already accepted", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), uuid.New())
		details := validDetails()

		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

		_, err := fx.service.UpdateDonation(ctx, donation.DonorID, donation.ID, &details)
		assertAppError(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("accepted while editing", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		donation := storedDonation(entity.DonationStatusAvailable)
		details := validDetails()

		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
		fx.donationRepo.EXPECT().
			UpdateDonationDetails(ctx, mock.AnythingOfType("*entity.Donation")).
			Return(repository.ErrDonationStateConflict)

		_, err := fx.service.UpdateDonation(ctx, donation.DonorID, donation.ID, &details)
		assertAppError(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestDonationService_GetDonation_NotFound(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.donationRepo.EXPECT().FindDonationByID(ctx, id).Return(nil, repository.ErrDonationNotFound)

	_, err := fx.service.GetDonation(ctx, id)
	assertAppError(t, err, domainerrors.ErrDonationNotFound)
}

func TestDonationService_Accept(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donation := storedDonation(entity.DonationStatusAvailable)
	org := &entity.Organization{ID: uuid.New(), IsActive: true, IsVerified: true}
	accepted := acceptedBy(storedDonation(entity.DonationStatusAvailable), org.ID)
	accepted.ID = donation.ID

	fx.expectTransaction(t)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil).Once()
	fx.orgRepo.EXPECT().FindOrganizationByID(ctx, org.ID).Return(org, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donation.ID, mock.MatchedBy(func(tr entity.DonationTransition) bool {
			return tr.From == entity.DonationStatusAvailable &&
				tr.To == entity.DonationStatusAccepted &&
				*tr.AcceptedBy == org.ID &&
				tr.AcceptedAt.Equal(baseTime)
		})).
		Return(accepted, nil)
	fx.pickupLogRepo.EXPECT().
		CreateLog(ctx, mock.MatchedBy(func(log *entity.PickupLog) bool {
			return log.DonationID == donation.ID &&
				log.OrganizationID == org.ID &&
				log.DonorID == donation.DonorID &&
				log.Status == entity.PickupStatusInProgress &&
				log.Quantity == donation.Quantity
		})).
		Return(nil)

	result, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:         entity.DonationStatusAccepted,
		OrganizationID: &org.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusAccepted, result.Status)
	assert.True(t, result.IsAcceptedBy(org.ID))
}

func TestDonationService_Accept_LostRace(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donation := storedDonation(entity.DonationStatusAvailable)
	org := &entity.Organization{ID: uuid.New(), IsActive: true, IsVerified: true}
	winner := acceptedBy(storedDonation(entity.DonationStatusAvailable), uuid.New())

	fx.expectTransaction(t)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil).Once()
	fx.orgRepo.EXPECT().FindOrganizationByID(ctx, org.ID).Return(org, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donation.ID, mock.AnythingOfType("entity.DonationTransition")).
		Return(nil, repository.ErrDonationStateConflict)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(winner, nil).Once()

	_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:         entity.DonationStatusAccepted,
		OrganizationID: &org.ID,
	})
	appErr := assertAppError(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, "cannot move donation from accepted to accepted", appErr.Details())
}

func TestDonationService_Accept_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		donation func() *entity.Donation
		org      func(id uuid.UUID) *entity.Organization
		want     *domainerrors.BaseError
	}{
		{
			name:     "already accepted",
			donation: func() *entity.Donation { return acceptedBy(storedDonation(entity.DonationStatusAvailable), uuid.New()) },
			want:     domainerrors.ErrInvalidTransition,
		},
		{
			name:     "unverified organization",
			donation: func() *entity.Donation { return storedDonation(entity.DonationStatusAvailable) },
			org: func(id uuid.UUID) *entity.Organization {
				return &entity.Organization{ID: id, IsActive: true}
			},
			want: domainerrors.ErrOrganizationIneligible,
		},
		{
			name: "organization timed out before",
			donation: func() *entity.Donation {
				d := storedDonation(entity.DonationStatusAvailable)
				d.ReassignHistory = []entity.ReassignEntry{{OrganizationID: testOrgID, ExpiredAt: baseTime}}

				return d
			},
			org: func(id uuid.UUID) *entity.Organization {
				return &entity.Organization{ID: id, IsActive: true, IsVerified: true}
			},
			want: domainerrors.ErrOrganizationIneligible,
		},
		{
			name: "pickup deadline passed",
			donation: func() *entity.Donation {
				d := storedDonation(entity.DonationStatusAvailable)
				d.PickupDeadline = baseTime.Add(-time.Minute)

				return d
			},
			org: func(id uuid.UUID) *entity.Organization {
				return &entity.Organization{ID: id, IsActive: true, IsVerified: true}
			},
			want: domainerrors.ErrPickupWindowClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDonationService(t)
			ctx := context.Background()
			donation := tt.donation()
			orgID := testOrgID

			fx.expectTransaction(t)
			fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
			if tt.org != nil {
				fx.orgRepo.EXPECT().FindOrganizationByID(ctx, orgID).Return(tt.org(orgID), nil)
			}

			_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
				Target:         entity.DonationStatusAccepted,
				OrganizationID: &orgID,
			})
			assertAppError(t, err, tt.want)
		})
	}
}

func TestDonationService_PickUp(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	orgID := uuid.New()
	donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)
	pickedUp := *donation
	pickedUp.Status = entity.DonationStatusPickedUp

	fx.expectTransaction(t)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.handoffTokens.EXPECT().
		Verify("signed-token").
		Return(&service.HandoffClaims{DonationID: donation.ID, OrganizationID: orgID}, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donation.ID, mock.MatchedBy(func(tr entity.DonationTransition) bool {
			return tr.From == entity.DonationStatusAccepted &&
				tr.To == entity.DonationStatusPickedUp &&
				*tr.ExpectedAcceptedBy == orgID &&
				tr.PickedUpAt.Equal(baseTime)
		})).
		Return(&pickedUp, nil)
	fx.pickupLogRepo.EXPECT().MarkPickedUp(ctx, donation.ID, orgID, baseTime).Return(nil)

	result, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:         entity.DonationStatusPickedUp,
		OrganizationID: &orgID,
		HandoffToken:   "signed-token",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusPickedUp, result.Status)
}

func TestDonationService_PickUp_ScannedQRPayload(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	orgID := uuid.New()
	donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)
	scanned := `{"token":"signed-token","type":"handoff"}`

	fx.expectTransaction(t)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.qrcodeService.EXPECT().ParseHandoffQR(scanned).Return("signed-token", nil)
	fx.handoffTokens.EXPECT().
		Verify("signed-token").
		Return(&service.HandoffClaims{DonationID: donation.ID, OrganizationID: uuid.New()}, nil)

	_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:         entity.DonationStatusPickedUp,
		OrganizationID: &orgID,
		HandoffToken:   scanned,
	})
	assertAppError(t, err, domainerrors.ErrInvalidHandoffToken)
}

func TestDonationService_PickUp_Rejections(t *testing.T) {
	t.Run("another organization", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), uuid.New())
		other := uuid.New()

		fx.expectTransaction(t)
		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

		_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
			Target:         entity.DonationStatusPickedUp,
			OrganizationID: &other,
		})
		assertAppError(t, err, domainerrors.ErrNotAssignedOrganization)
	})

	t.Run("handoff code required", func(t *testing.T) {
		fx := createTestDonationService(t)
		fx.config.Handoff.Required = true
		ctx := context.Background()
		orgID := uuid.New()
		donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)

		fx.expectTransaction(t)
		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

		_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
			Target:         entity.DonationStatusPickedUp,
			OrganizationID: &orgID,
		})
		assertAppError(t, err, domainerrors.ErrInvalidHandoffToken)
	})

	t.Run("expired handoff token", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		orgID := uuid.New()
		donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)

		fx.expectTransaction(t)
		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
		fx.handoffTokens.EXPECT().Verify("stale").Return(nil, errors.New("token is expired"))

		_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
			Target:         entity.DonationStatusPickedUp,
			OrganizationID: &orgID,
			HandoffToken:   "stale",
		})
		assertAppError(t, err, domainerrors.ErrInvalidHandoffToken)
	})
}

func TestDonationService_Deliver(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	orgID := uuid.New()
	donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)
	donation.Status = entity.DonationStatusPickedUp
	delivered := *donation
	delivered.Status = entity.DonationStatusDelivered

	fx.expectTransaction(t)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donation.ID, mock.MatchedBy(func(tr entity.DonationTransition) bool {
			return tr.From == entity.DonationStatusPickedUp &&
				tr.To == entity.DonationStatusDelivered &&
				*tr.ExpectedAcceptedBy == orgID
		})).
		Return(&delivered, nil)
	fx.pickupLogRepo.EXPECT().MarkDelivered(ctx, donation.ID, orgID, baseTime, 35).Return(nil)

	result, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:           entity.DonationStatusDelivered,
		OrganizationID:   &orgID,
		BeneficiaryCount: 35,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusDelivered, result.Status)
}

func TestDonationService_Deliver_BeforePickup(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	orgID := uuid.New()
	donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)

	fx.expectTransaction(t)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:         entity.DonationStatusDelivered,
		OrganizationID: &orgID,
	})
	assertAppError(t, err, domainerrors.ErrInvalidTransition)
}

func TestDonationService_Cancel(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donation := storedDonation(entity.DonationStatusAvailable)
	cancelled := *donation
	cancelled.Status = entity.DonationStatusCancelled

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().
		TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From: entity.DonationStatusAvailable,
			To:   entity.DonationStatusCancelled,
		}).
		Return(&cancelled, nil)

	result, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
		Target:  entity.DonationStatusCancelled,
		DonorID: &donation.DonorID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusCancelled, result.Status)
}

func TestDonationService_Cancel_Rejections(t *testing.T) {
	t.Run("not the donor", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		donation := storedDonation(entity.DonationStatusAvailable)
		stranger := uuid.New()

		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

		_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
			Target:  entity.DonationStatusCancelled,
			DonorID: &stranger,
		})
		assertAppError(t, err, domainerrors.ErrNotDonationOwner)
	})

	t.Run("already picked up", func(t *testing.T) {
		fx := createTestDonationService(t)
		ctx := context.Background()
		donation := storedDonation(entity.DonationStatusPickedUp)

		fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

		_, err := fx.service.ApplyTransition(ctx, donation.ID, &usecase.TransitionInput{
			Target:  entity.DonationStatusCancelled,
			DonorID: &donation.DonorID,
		})
		assertAppError(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestDonationService_ApplyTransition_SweeperOnlyTargets(t *testing.T) {
	for _, target := range []entity.DonationStatus{entity.DonationStatusExpired, entity.DonationStatusAvailable, "teleported"} {
		fx := createTestDonationService(t)
		orgID := uuid.New()

		_, err := fx.service.ApplyTransition(context.Background(), uuid.New(), &usecase.TransitionInput{
			Target:         target,
			OrganizationID: &orgID,
		})
		assertAppError(t, err, domainerrors.ErrInvalidTransition)
	}
}

func TestDonationService_GetHandoffCode(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	orgID := uuid.New()
	donation := acceptedBy(storedDonation(entity.DonationStatusAvailable), orgID)
	expiresAt := baseTime.Add(2 * time.Hour)

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.handoffTokens.EXPECT().Issue(donation.ID, orgID).Return("signed-token", expiresAt, nil)
	fx.qrcodeService.EXPECT().GenerateHandoffQR("signed-token").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	code, err := fx.service.GetHandoffCode(ctx, donation.DonorID, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", code.Token)
	assert.Equal(t, expiresAt, code.ExpiresAt)
	assert.NotEmpty(t, code.PNG)
}

func TestDonationService_GetHandoffCode_NotAccepted(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	donation := storedDonation(entity.DonationStatusAvailable)

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.GetHandoffCode(ctx, donation.DonorID, donation.ID)
	assertAppError(t, err, domainerrors.ErrInvalidTransition)
}
