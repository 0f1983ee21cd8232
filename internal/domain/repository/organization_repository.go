package repository

import (
	"context"

	"foodlink/internal/domain/entity"
	"foodlink/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrOrganizationNotFound is returned when an organization is not found.
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationFilter narrows the geo query for candidate organizations.
type OrganizationFilter struct {
	ActiveOnly   bool
	VerifiedOnly bool
	Limit        int
	ExcludeIDs   []uuid.UUID
}

// OrganizationRepository reads organization profiles and maintains reliability scores.
type OrganizationRepository interface {
	// FindOrganizationsNear returns organizations within radiusKm of point, nearest first.
	FindOrganizationsNear(ctx context.Context, point orb.Point, radiusKm float64, filter OrganizationFilter) ([]*entity.Organization, error)

	// FindOrganizationByID retrieves an organization by its unique ID.
	FindOrganizationByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)

	// AdjustReliability adds delta to the reliability score in a single clamped update
	// and returns the updated organization.
	AdjustReliability(ctx context.Context, id uuid.UUID, delta int) (*entity.Organization, error)

	// SetReliability overwrites the reliability score.
	SetReliability(ctx context.Context, id uuid.UUID, score int) error

	// ListActiveOrganizationIDs returns the IDs of all active organizations.
	ListActiveOrganizationIDs(ctx context.Context) ([]uuid.UUID, error)

	// FindDeviceTokens returns the push tokens registered for an organization.
	FindDeviceTokens(ctx context.Context, organizationID uuid.UUID) ([]string, error)

	// DeactivateDeviceTokens stops pushes to tokens the messaging provider rejected.
	DeactivateDeviceTokens(ctx context.Context, tokens []string) error
}
