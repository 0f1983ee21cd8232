package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReliabilityUsecase recomputes organization reliability scores from pickup history
type ReliabilityUsecase interface {
	// Recalculate scores one organization. It returns nil after resetting the score to the
	// neutral default when the organization has no pickup history.
	Recalculate(ctx context.Context, organizationID uuid.UUID) (*int, error)

	// RecalculateReliability scores one organization, or every active organization when
	// organizationID is nil, and returns how many scores were written.
	RecalculateReliability(ctx context.Context, organizationID *uuid.UUID) (int, error)
}
