package postgres

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the domain.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

// CreateDonation persists a new donation.
func (repo *donationRepository) CreateDonation(ctx context.Context, donation *entity.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = newID()
	}
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Omit("ReassignHistory").Create(donationM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing or invalid donation fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// FindDonationByID retrieves a donation together with its reassign history.
func (repo *donationRepository) FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel
	err := repo.db.WithContext(ctx).
		Preload("ReassignHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("expired_at ASC")
		}).
		Where("id = ?", id).
		First(&donationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// UpdateDonationDetails rewrites the editable fields while the donation is still available.
func (repo *donationRepository) UpdateDonationDetails(ctx context.Context, donation *entity.Donation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ?", donation.ID, string(entity.DonationStatusAvailable)).
		Updates(map[string]any{
			"title":           donation.Title,
			"description":     donation.Description,
			"category":        string(donation.Category),
			"quantity":        donation.Quantity,
			"unit":            donation.Unit,
			"prepared_at":     donation.PreparedAt,
			"expiry_time":     donation.ExpiryTime,
			"pickup_deadline": donation.PickupDeadline,
			"latitude":        donation.Latitude(),
			"longitude":       donation.Longitude(),
			"address":         donation.Address,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update donation")
	}

	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, donation.ID)
	}

	return nil
}

// TransitionStatus applies a status move as one conditional update.
func (repo *donationRepository) TransitionStatus(ctx context.Context, id uuid.UUID, transition entity.DonationTransition) (*entity.Donation, error) {
	updates := map[string]any{
		"status": string(transition.To),
	}
	if transition.AcceptedBy != nil {
		updates["accepted_by"] = *transition.AcceptedBy
	}
	if transition.AcceptedAt != nil {
		updates["accepted_at"] = *transition.AcceptedAt
	}
	if transition.ClearAcceptance {
		updates["accepted_by"] = nil
		updates["accepted_at"] = nil
	}
	if transition.PickedUpAt != nil {
		updates["picked_up_at"] = *transition.PickedUpAt
	}
	if transition.DeliveredAt != nil {
		updates["delivered_at"] = *transition.DeliveredAt
	}
	if transition.IncrementReassign {
		updates["reassign_count"] = gorm.Expr("reassign_count + 1")
	}

	query := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ?", id, string(transition.From))
	if transition.ExpectedAcceptedBy != nil {
		query = query.Where("accepted_by = ?", *transition.ExpectedAcceptedBy)
	}
	if transition.AcceptedBefore != nil {
		query = query.Where("accepted_at <= ?", *transition.AcceptedBefore)
	}
	if transition.PickupDeadlineBefore != nil {
		query = query.Where("pickup_deadline <= ?", *transition.PickupDeadlineBefore)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition donation")
	}

	if result.RowsAffected == 0 {
		return nil, repo.missOrConflict(ctx, id)
	}

	return repo.FindDonationByID(ctx, id)
}

// AppendReassignEntry records an organization that let the donation go stale.
func (repo *donationRepository) AppendReassignEntry(ctx context.Context, donationID uuid.UUID, entry entity.ReassignEntry) error {
	entryM := &model.DonationReassignmentModel{
		ID:             newID(),
		DonationID:     donationID,
		OrganizationID: entry.OrganizationID,
		AcceptedAt:     entry.AcceptedAt,
		ExpiredAt:      entry.ExpiredAt,
		Reason:         entry.Reason,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDonationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append reassign entry")
	}

	return nil
}

// FindOverdueAvailable lists available donations nobody can pick up any more.
func (repo *donationRepository) FindOverdueAvailable(ctx context.Context, now time.Time, limit int) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND pickup_deadline <= ?", string(entity.DonationStatusAvailable), now).
		Order("pickup_deadline ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue donations")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// FindStaleAccepted lists accepted donations whose acceptance is at or before cutoff.
func (repo *donationRepository) FindStaleAccepted(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	query := repo.db.WithContext(ctx).
		Preload("ReassignHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("expired_at ASC")
		}).
		Where("status = ? AND accepted_at <= ?", string(entity.DonationStatusAccepted), cutoff).
		Order("accepted_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale accepted donations")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// missOrConflict tells a missing donation apart from one whose guard no longer matches.
func (repo *donationRepository) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check donation existence")
	}

	if count == 0 {
		return repository.ErrDonationNotFound
	}

	return repository.ErrDonationStateConflict
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	history := make([]entity.ReassignEntry, 0, len(data.ReassignHistory))
	for _, entryM := range data.ReassignHistory {
		history = append(history, entity.ReassignEntry{
			OrganizationID: entryM.OrganizationID,
			AcceptedAt:     entryM.AcceptedAt,
			ExpiredAt:      entryM.ExpiredAt,
			Reason:         entryM.Reason,
		})
	}

	return &entity.Donation{
		ID:              data.ID,
		DonorID:         data.DonorID,
		Title:           data.Title,
		Description:     data.Description,
		Category:        entity.FoodCategory(data.Category),
		Quantity:        data.Quantity,
		Unit:            data.Unit,
		PreparedAt:      data.PreparedAt,
		ExpiryTime:      data.ExpiryTime,
		PickupDeadline:  data.PickupDeadline,
		Location:        orb.Point{data.Longitude, data.Latitude},
		Address:         data.Address,
		Status:          entity.DonationStatus(data.Status),
		AcceptedBy:      data.AcceptedBy,
		AcceptedAt:      data.AcceptedAt,
		PickedUpAt:      data.PickedUpAt,
		DeliveredAt:     data.DeliveredAt,
		ReassignCount:   data.ReassignCount,
		ReassignHistory: history,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDonationDomain converts a domain Donation entity to a GORM DonationModel.
// Reassign history is written through AppendReassignEntry only.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:             data.ID,
		DonorID:        data.DonorID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       string(data.Category),
		Quantity:       data.Quantity,
		Unit:           data.Unit,
		PreparedAt:     data.PreparedAt,
		ExpiryTime:     data.ExpiryTime,
		PickupDeadline: data.PickupDeadline,
		Latitude:       data.Latitude(),
		Longitude:      data.Longitude(),
		Address:        data.Address,
		Status:         string(data.Status),
		AcceptedBy:     data.AcceptedBy,
		AcceptedAt:     data.AcceptedAt,
		PickedUpAt:     data.PickedUpAt,
		DeliveredAt:    data.DeliveredAt,
		ReassignCount:  data.ReassignCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
