package postgres

import (
	"context"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// organizationRepository implements the domain.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// FindOrganizationsNear performs a PostGIS query for organizations around point, nearest first.
func (repo *organizationRepository) FindOrganizationsNear(
	ctx context.Context,
	point orb.Point,
	radiusKm float64,
	filter repository.OrganizationFilter,
) ([]*entity.Organization, error) {
	var organizationModels []*model.OrganizationModel

	// location is geography(Point, 4326), so the ST_DWithin radius is in meters.
	query := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("ST_DWithin(location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			point.Lon(), point.Lat(), radiusKm*1000)

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.VerifiedOnly {
		query = query.Where("is_verified = ?", true)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	query = query.Order(clause.OrderBy{Expression: clause.Expr{
		SQL:                "ST_Distance(location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)",
		Vars:               []any{point.Lon(), point.Lat()},
		WithoutParentheses: true,
	}})
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&organizationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find organizations within radius")
	}

	organizations := make([]*entity.Organization, 0, len(organizationModels))
	for _, organizationM := range organizationModels {
		organizations = append(organizations, toOrganizationDomain(organizationM))
	}

	return organizations, nil
}

// FindOrganizationByID retrieves an organization by its unique ID.
func (repo *organizationRepository) FindOrganizationByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var organizationM model.OrganizationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&organizationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by ID")
	}

	return toOrganizationDomain(&organizationM), nil
}

// AdjustReliability adds delta to the reliability score in one clamped update.
func (repo *organizationRepository) AdjustReliability(ctx context.Context, id uuid.UUID, delta int) (*entity.Organization, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("id = ?", id).
		Update("reliability_score", gorm.Expr(
			"CASE WHEN reliability_score + ? > ? THEN ? WHEN reliability_score + ? < ? THEN ? ELSE reliability_score + ? END",
			delta, entity.MaxReliabilityScore, entity.MaxReliabilityScore,
			delta, entity.MinReliabilityScore, entity.MinReliabilityScore,
			delta,
		))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust reliability score")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrOrganizationNotFound
	}

	return repo.FindOrganizationByID(ctx, id)
}

// SetReliability overwrites the reliability score, clamped to [0,100].
func (repo *organizationRepository) SetReliability(ctx context.Context, id uuid.UUID, score int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("id = ?", id).
		Update("reliability_score", entity.ClampReliability(score))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set reliability score")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

// ListActiveOrganizationIDs returns the IDs of all active organizations.
func (repo *organizationRepository) ListActiveOrganizationIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("is_active = ?", true).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active organizations")
	}

	return ids, nil
}

// FindDeviceTokens returns the active push tokens of an organization.
func (repo *organizationRepository) FindDeviceTokens(ctx context.Context, organizationID uuid.UUID) ([]string, error) {
	var tokens []string
	if err := repo.db.WithContext(ctx).
		Model(&model.OrganizationDeviceModel{}).
		Where("organization_id = ? AND is_active = ?", organizationID, true).
		Order("created_at DESC").
		Pluck("fcm_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find organization device tokens")
	}

	return tokens, nil
}

// DeactivateDeviceTokens marks the devices holding tokens inactive.
func (repo *organizationRepository) DeactivateDeviceTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrganizationDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate device tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toOrganizationDomain converts a GORM OrganizationModel to a domain Organization entity.
func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		ID:               data.ID,
		Name:             data.Name,
		IsActive:         data.IsActive,
		IsVerified:       data.IsVerified,
		Location:         orb.Point{data.Longitude, data.Latitude},
		ReliabilityScore: data.ReliabilityScore,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
