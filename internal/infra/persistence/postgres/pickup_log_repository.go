package postgres

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pickupLogRepository implements the domain.PickupLogRepository interface.
type pickupLogRepository struct {
	db *gorm.DB
}

// NewPickupLogRepository is the constructor for pickupLogRepository.
func NewPickupLogRepository(db *gorm.DB) repository.PickupLogRepository {
	return &pickupLogRepository{db: db}
}

// organizationStatsRow is the scan target of the aggregate query.
type organizationStatsRow struct {
	OrganizationID  uuid.UUID
	TotalAccepted   int
	TotalDelivered  int
	TotalPickedUp   int
	TotalFailed     int
	AvgResponseMins *float64
	AvgQuantity     float64
	MaxQuantity     float64
	LastActivityAt  *time.Time
	AcceptedSince   int
}

// Quantity statistics only count pickups the organization actually collected.
const aggregateStatsQuery = `
	SELECT organization_id,
	       COUNT(*)                                     AS total_accepted,
	       COUNT(*) FILTER (WHERE status = 'delivered') AS total_delivered,
	       COUNT(*) FILTER (WHERE status = 'picked_up') AS total_picked_up,
	       COUNT(*) FILTER (WHERE status = 'failed')    AS total_failed,
	       AVG(EXTRACT(EPOCH FROM (pickup_time - accepted_at)) / 60.0)
	           FILTER (WHERE pickup_time IS NOT NULL)   AS avg_response_mins,
	       COALESCE(AVG(quantity) FILTER (WHERE status IN ('picked_up', 'delivered')), 0) AS avg_quantity,
	       COALESCE(MAX(quantity) FILTER (WHERE status IN ('picked_up', 'delivered')), 0) AS max_quantity,
	       MAX(GREATEST(accepted_at, pickup_time, delivery_time)) AS last_activity_at,
	       COUNT(*) FILTER (WHERE accepted_at >= ?)     AS accepted_since
	FROM pickup_logs
	WHERE organization_id IN ?
	GROUP BY organization_id
`

// AggregateStats computes per-organization pickup history in one query.
func (repo *pickupLogRepository) AggregateStats(
	ctx context.Context,
	organizationIDs []uuid.UUID,
	since time.Time,
) (map[uuid.UUID]*entity.OrganizationStats, error) {
	stats := make(map[uuid.UUID]*entity.OrganizationStats, len(organizationIDs))
	if len(organizationIDs) == 0 {
		return stats, nil
	}

	var rows []organizationStatsRow
	if err := repo.db.WithContext(ctx).
		Raw(aggregateStatsQuery, since, organizationIDs).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pickup statistics")
	}

	for _, row := range rows {
		stats[row.OrganizationID] = &entity.OrganizationStats{
			OrganizationID:  row.OrganizationID,
			TotalAccepted:   row.TotalAccepted,
			TotalDelivered:  row.TotalDelivered,
			TotalPickedUp:   row.TotalPickedUp,
			TotalFailed:     row.TotalFailed,
			AvgResponseMins: row.AvgResponseMins,
			AvgQuantity:     row.AvgQuantity,
			MaxQuantity:     row.MaxQuantity,
			LastActivityAt:  row.LastActivityAt,
			AcceptedSince:   row.AcceptedSince,
		}
	}

	return stats, nil
}

// CreateLog persists a new pickup log.
func (repo *pickupLogRepository) CreateLog(ctx context.Context, log *entity.PickupLog) error {
	if log.ID == uuid.Nil {
		log.ID = newID()
	}
	logM := fromPickupLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create pickup log")
	}

	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// MarkPickedUp moves the in-progress log of the pair to picked_up.
func (repo *pickupLogRepository) MarkPickedUp(ctx context.Context, donationID, organizationID uuid.UUID, pickupTime time.Time) error {
	return repo.advance(ctx, donationID, organizationID, entity.PickupStatusInProgress, map[string]any{
		"status":      string(entity.PickupStatusPickedUp),
		"pickup_time": pickupTime,
	})
}

// MarkDelivered moves the picked-up log of the pair to delivered.
func (repo *pickupLogRepository) MarkDelivered(
	ctx context.Context,
	donationID, organizationID uuid.UUID,
	deliveryTime time.Time,
	beneficiaryCount int,
) error {
	return repo.advance(ctx, donationID, organizationID, entity.PickupStatusPickedUp, map[string]any{
		"status":            string(entity.PickupStatusDelivered),
		"delivery_time":     deliveryTime,
		"beneficiary_count": beneficiaryCount,
	})
}

// MarkFailed moves the in-progress log of the pair to failed.
func (repo *pickupLogRepository) MarkFailed(ctx context.Context, donationID, organizationID uuid.UUID, reason string) error {
	return repo.advance(ctx, donationID, organizationID, entity.PickupStatusInProgress, map[string]any{
		"status":         string(entity.PickupStatusFailed),
		"failure_reason": reason,
	})
}

func (repo *pickupLogRepository) advance(
	ctx context.Context,
	donationID, organizationID uuid.UUID,
	from entity.PickupStatus,
	updates map[string]any,
) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PickupLogModel{}).
		Where("donation_id = ? AND organization_id = ? AND status = ?", donationID, organizationID, string(from)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pickup log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPickupLogNotFound
	}

	return nil
}

// --- Mapper Functions ---

// fromPickupLogDomain converts a domain PickupLog entity to a GORM PickupLogModel.
func fromPickupLogDomain(data *entity.PickupLog) *model.PickupLogModel {
	if data == nil {
		return nil
	}

	return &model.PickupLogModel{
		ID:               data.ID,
		DonationID:       data.DonationID,
		OrganizationID:   data.OrganizationID,
		DonorID:          data.DonorID,
		AcceptedAt:       data.AcceptedAt,
		PickupTime:       data.PickupTime,
		DeliveryTime:     data.DeliveryTime,
		Status:           string(data.Status),
		BeneficiaryCount: data.BeneficiaryCount,
		Quantity:         data.Quantity,
		FailureReason:    data.FailureReason,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
