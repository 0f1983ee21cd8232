package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/repository"
	"foodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to file::memory: opens a fresh database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.DonationModel{},
		&model.DonationReassignmentModel{},
		&model.PickupLogModel{},
	))

	return db
}

// baseTime is whole-second UTC so stored timestamps compare lexically in sqlite.
var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedAcceptedDonation(t *testing.T, repo repository.DonationRepository, orgID uuid.UUID, acceptedAt time.Time) *entity.Donation {
	t.Helper()

	donation := &entity.Donation{
		DonorID:        uuid.New(),
		Title:          "Vegetable curry",
		Category:       entity.FoodCategoryCookedMeal,
		Quantity:       20,
		Unit:           "portions",
		PreparedAt:     baseTime.Add(-time.Hour),
		ExpiryTime:     baseTime.Add(4 * time.Hour),
		PickupDeadline: baseTime.Add(3 * time.Hour),
		Location:       orb.Point{121.5654, 25.0330},
		Status:         entity.DonationStatusAccepted,
		AcceptedBy:     &orgID,
		AcceptedAt:     &acceptedAt,
	}
	require.NoError(t, repo.CreateDonation(context.Background(), donation))

	return donation
}

func TestDonationRepository_TransitionStatus_OnlyOneConcurrentWinner(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	orgID := uuid.New()
	donation := seedAcceptedDonation(t, repo, orgID, baseTime.Add(-25*time.Minute))

	cutoff := baseTime.Add(-20 * time.Minute)
	pickedUpAt := baseTime
	attempts := []entity.DonationTransition{
		{
			From:              entity.DonationStatusAccepted,
			To:                entity.DonationStatusAvailable,
			AcceptedBefore:    &cutoff,
			ClearAcceptance:   true,
			IncrementReassign: true,
		},
		{
			From:               entity.DonationStatusAccepted,
			To:                 entity.DonationStatusPickedUp,
			ExpectedAcceptedBy: &orgID,
			PickedUpAt:         &pickedUpAt,
		},
		{
			From:              entity.DonationStatusAccepted,
			To:                entity.DonationStatusExpired,
			AcceptedBefore:    &cutoff,
			IncrementReassign: true,
		},
	}

	var (
		wg        sync.WaitGroup
		winners   atomic.Int32
		conflicts atomic.Int32
	)
	for _, attempt := range attempts {
		wg.Add(1)
		go func(transition entity.DonationTransition) {
			defer wg.Done()
			_, err := repo.TransitionStatus(ctx, donation.ID, transition)
			switch {
			case err == nil:
				winners.Add(1)
			case errors.Is(err, repository.ErrDonationStateConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(attempt)
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.Equal(t, int32(2), conflicts.Load())
}

func TestDonationRepository_TransitionStatus_ReassignClearsAcceptance(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	orgID := uuid.New()
	donation := seedAcceptedDonation(t, repo, orgID, baseTime.Add(-25*time.Minute))

	cutoff := baseTime.Add(-20 * time.Minute)
	updated, err := repo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
		From:              entity.DonationStatusAccepted,
		To:                entity.DonationStatusAvailable,
		AcceptedBefore:    &cutoff,
		ClearAcceptance:   true,
		IncrementReassign: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusAvailable, updated.Status)
	assert.Nil(t, updated.AcceptedBy)
	assert.Nil(t, updated.AcceptedAt)
	assert.Equal(t, 1, updated.ReassignCount)

	// Replaying the same move finds nothing left to change.
	_, err = repo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
		From:              entity.DonationStatusAccepted,
		To:                entity.DonationStatusAvailable,
		AcceptedBefore:    &cutoff,
		ClearAcceptance:   true,
		IncrementReassign: true,
	})
	assert.ErrorIs(t, err, repository.ErrDonationStateConflict)

	reloaded, err := repo.FindDonationByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.ReassignCount)
}

func TestDonationRepository_TransitionStatus_Guards(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	orgID := uuid.New()
	donation := seedAcceptedDonation(t, repo, orgID, baseTime.Add(-5*time.Minute))

	t.Run("acceptance newer than cutoff", func(t *testing.T) {
		cutoff := baseTime.Add(-20 * time.Minute)
		_, err := repo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From:           entity.DonationStatusAccepted,
			To:             entity.DonationStatusExpired,
			AcceptedBefore: &cutoff,
		})
		assert.ErrorIs(t, err, repository.ErrDonationStateConflict)
	})

	t.Run("different accepting organization", func(t *testing.T) {
		other := uuid.New()
		_, err := repo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From:               entity.DonationStatusAccepted,
			To:                 entity.DonationStatusPickedUp,
			ExpectedAcceptedBy: &other,
		})
		assert.ErrorIs(t, err, repository.ErrDonationStateConflict)
	})

	t.Run("unknown donation", func(t *testing.T) {
		_, err := repo.TransitionStatus(ctx, uuid.New(), entity.DonationTransition{
			From: entity.DonationStatusAvailable,
			To:   entity.DonationStatusCancelled,
		})
		assert.ErrorIs(t, err, repository.ErrDonationNotFound)
	})

	t.Run("matching organization", func(t *testing.T) {
		pickedUpAt := baseTime
		updated, err := repo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From:               entity.DonationStatusAccepted,
			To:                 entity.DonationStatusPickedUp,
			ExpectedAcceptedBy: &orgID,
			PickedUpAt:         &pickedUpAt,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.DonationStatusPickedUp, updated.Status)
		require.NotNil(t, updated.PickedUpAt)
		assert.True(t, updated.PickedUpAt.Equal(pickedUpAt))
	})
}

func TestDonationRepository_ReassignHistoryAndStaleLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	staleOrg := uuid.New()
	stale := seedAcceptedDonation(t, repo, staleOrg, baseTime.Add(-30*time.Minute))
	seedAcceptedDonation(t, repo, uuid.New(), baseTime.Add(-10*time.Minute))

	found, err := repo.FindStaleAccepted(ctx, baseTime.Add(-20*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, stale.ID, found[0].ID)

	acceptedAt := baseTime.Add(-30 * time.Minute)
	require.NoError(t, repo.AppendReassignEntry(ctx, stale.ID, entity.ReassignEntry{
		OrganizationID: staleOrg,
		AcceptedAt:     &acceptedAt,
		ExpiredAt:      baseTime,
		Reason:         "pickup not started within 20m0s",
	}))

	reloaded, err := repo.FindDonationByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.ReassignHistory, 1)
	assert.Equal(t, staleOrg, reloaded.ReassignHistory[0].OrganizationID)
	assert.True(t, reloaded.HasFailed(staleOrg))
}

func TestDonationRepository_UpdateDonationDetails_RequiresAvailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	donation := seedAcceptedDonation(t, repo, uuid.New(), baseTime.Add(-time.Minute))
	donation.Title = "Edited"

	err := repo.UpdateDonationDetails(ctx, donation)
	assert.ErrorIs(t, err, repository.ErrDonationStateConflict)

	reloaded, err := repo.FindDonationByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vegetable curry", reloaded.Title)

	missing := *donation
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.UpdateDonationDetails(ctx, &missing), repository.ErrDonationNotFound)
}

func seedAvailableDonation(t *testing.T, repo repository.DonationRepository, pickupDeadline time.Time) *entity.Donation {
	t.Helper()

	donation := &entity.Donation{
		DonorID:        uuid.New(),
		Title:          "Bread rolls",
		Category:       entity.FoodCategoryBakery,
		Quantity:       30,
		Unit:           "pieces",
		PreparedAt:     pickupDeadline.Add(-4 * time.Hour),
		ExpiryTime:     pickupDeadline.Add(time.Hour),
		PickupDeadline: pickupDeadline,
		Location:       orb.Point{121.5654, 25.0330},
		Status:         entity.DonationStatusAvailable,
	}
	require.NoError(t, repo.CreateDonation(context.Background(), donation))

	return donation
}

func TestDonationRepository_FindOverdueAvailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	older := seedAvailableDonation(t, repo, baseTime.Add(-3*time.Hour))
	newer := seedAvailableDonation(t, repo, baseTime.Add(-time.Hour))
	seedAvailableDonation(t, repo, baseTime.Add(time.Hour))
	seedAcceptedDonation(t, repo, uuid.New(), baseTime.Add(-4*time.Hour))

	found, err := repo.FindOverdueAvailable(ctx, baseTime, 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, older.ID, found[0].ID)
	assert.Equal(t, newer.ID, found[1].ID)

	limited, err := repo.FindOverdueAvailable(ctx, baseTime, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, older.ID, limited[0].ID)
}

func TestDonationRepository_TransitionStatus_PickupDeadlineGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	open := seedAvailableDonation(t, repo, baseTime.Add(time.Hour))
	overdue := seedAvailableDonation(t, repo, baseTime.Add(-time.Hour))
	now := baseTime

	expire := entity.DonationTransition{
		From:                 entity.DonationStatusAvailable,
		To:                   entity.DonationStatusExpired,
		PickupDeadlineBefore: &now,
	}

	_, err := repo.TransitionStatus(ctx, open.ID, expire)
	assert.ErrorIs(t, err, repository.ErrDonationStateConflict)

	updated, err := repo.TransitionStatus(ctx, overdue.ID, expire)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusExpired, updated.Status)

	_, err = repo.TransitionStatus(ctx, overdue.ID, expire)
	assert.ErrorIs(t, err, repository.ErrDonationStateConflict)

	reloaded, err := repo.FindDonationByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusAvailable, reloaded.Status)
}
