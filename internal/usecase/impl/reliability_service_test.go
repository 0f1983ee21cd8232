package impl

import (
	"context"
	"testing"
	"time"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/errors"
	mockRepo "foodlink/internal/mocks/repository"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reliabilityServiceFixtures holds all test dependencies for reliability service tests.
type reliabilityServiceFixtures struct {
	service       usecase.ReliabilityUsecase
	orgRepo       *mockRepo.MockOrganizationRepository
	pickupLogRepo *mockRepo.MockPickupLogRepository
}

func createTestReliabilityService(t *testing.T) reliabilityServiceFixtures {
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	pickupLogRepo := mockRepo.NewMockPickupLogRepository(t)

	service := NewReliabilityService(ReliabilityServiceParams{
		OrgRepo:       orgRepo,
		PickupLogRepo: pickupLogRepo,
		Config:        newTestConfig(),
		Clock:         clockwork.NewFakeClockAt(baseTime),
		Logger:        newDiscardLogger(),
	})

	return reliabilityServiceFixtures{
		service:       service,
		orgRepo:       orgRepo,
		pickupLogRepo: pickupLogRepo,
	}
}

func historyStats(id uuid.UUID) *entity.OrganizationStats {
	return &entity.OrganizationStats{
		OrganizationID:  id,
		TotalAccepted:   10,
		TotalDelivered:  8,
		TotalFailed:     2,
		AvgResponseMins: ptr(20.0),
		LastActivityAt:  ptr(baseTime.Add(-48 * time.Hour)),
	}
}

func TestReliabilityService_Recalculate_NoHistoryResetsToDefault(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{id}, baseTime).
		Return(map[uuid.UUID]*entity.OrganizationStats{}, nil)
	fx.orgRepo.EXPECT().SetReliability(ctx, id, entity.DefaultReliabilityScore).Return(nil).Once()

	score, err := fx.service.Recalculate(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestReliabilityService_Recalculate_WithHistory(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{id}, baseTime).
		Return(map[uuid.UUID]*entity.OrganizationStats{id: historyStats(id)}, nil)
	fx.orgRepo.EXPECT().SetReliability(ctx, id, 78).Return(nil).Once()

	score, err := fx.service.Recalculate(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 78, *score)
}

func TestReliabilityService_Recalculate_OrganizationNotFound(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{id}, baseTime).
		Return(map[uuid.UUID]*entity.OrganizationStats{}, nil)
	fx.orgRepo.EXPECT().SetReliability(ctx, id, entity.DefaultReliabilityScore).Return(repository.ErrOrganizationNotFound)

	_, err := fx.service.Recalculate(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}

func TestReliabilityService_RecalculateReliability_SingleOrganization(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{id}, baseTime).
		Return(map[uuid.UUID]*entity.OrganizationStats{id: historyStats(id)}, nil)
	fx.orgRepo.EXPECT().SetReliability(ctx, id, 78).Return(nil)

	updated, err := fx.service.RecalculateReliability(ctx, &id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestReliabilityService_RecalculateReliability_AllIsolatesFailures(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	fx.orgRepo.EXPECT().ListActiveOrganizationIDs(ctx).Return([]uuid.UUID{a, b, c}, nil)

	// Batch size 2 splits the organizations into two aggregate queries.
	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{a, b}, baseTime).
		Return(map[uuid.UUID]*entity.OrganizationStats{a: historyStats(a)}, nil).
		Once()
	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{c}, baseTime).
		Return(map[uuid.UUID]*entity.OrganizationStats{}, nil).
		Once()

	fx.orgRepo.EXPECT().SetReliability(ctx, a, 78).Return(nil).Once()
	fx.orgRepo.EXPECT().SetReliability(ctx, b, entity.DefaultReliabilityScore).Return(errors.New("deadlock detected")).Once()
	fx.orgRepo.EXPECT().SetReliability(ctx, c, entity.DefaultReliabilityScore).Return(nil).Once()

	updated, err := fx.service.RecalculateReliability(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func TestReliabilityService_RecalculateReliability_SkipsFailedBatch(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	fx.orgRepo.EXPECT().ListActiveOrganizationIDs(ctx).Return([]uuid.UUID{a, b, c}, nil)
	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{a, b}, mock.Anything).
		Return(nil, errors.New("statement timeout")).
		Once()
	fx.pickupLogRepo.EXPECT().
		AggregateStats(ctx, []uuid.UUID{c}, mock.Anything).
		Return(map[uuid.UUID]*entity.OrganizationStats{c: historyStats(c)}, nil).
		Once()
	fx.orgRepo.EXPECT().SetReliability(ctx, c, 78).Return(nil).Once()

	updated, err := fx.service.RecalculateReliability(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestReliabilityService_RecalculateReliability_ListFails(t *testing.T) {
	fx := createTestReliabilityService(t)
	ctx := context.Background()

	fx.orgRepo.EXPECT().ListActiveOrganizationIDs(ctx).Return(nil, errors.New("connection refused"))

	_, err := fx.service.RecalculateReliability(ctx, nil)
	require.Error(t, err)
}
