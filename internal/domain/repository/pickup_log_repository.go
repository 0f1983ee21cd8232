package repository

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/errors"

	"github.com/google/uuid"
)

// ErrPickupLogNotFound is returned when no open pickup log matches.
var ErrPickupLogNotFound = errors.New("pickup log not found")

// PickupLogRepository defines the interface for pickup history operations.
type PickupLogRepository interface {
	// AggregateStats computes per-organization history in one query. AcceptedSince counts
	// logs accepted at or after since. Organizations without logs are absent from the map.
	AggregateStats(ctx context.Context, organizationIDs []uuid.UUID, since time.Time) (map[uuid.UUID]*entity.OrganizationStats, error)

	// CreateLog persists a new in-progress pickup log.
	CreateLog(ctx context.Context, log *entity.PickupLog) error

	// MarkPickedUp moves the in-progress log of the pair to picked_up.
	MarkPickedUp(ctx context.Context, donationID, organizationID uuid.UUID, pickupTime time.Time) error

	// MarkDelivered moves the picked-up log of the pair to delivered.
	MarkDelivered(ctx context.Context, donationID, organizationID uuid.UUID, deliveryTime time.Time, beneficiaryCount int) error

	// MarkFailed moves the in-progress log of the pair to failed with a reason.
	MarkFailed(ctx context.Context, donationID, organizationID uuid.UUID, reason string) error
}
