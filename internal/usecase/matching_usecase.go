package usecase

import (
	"context"

	"foodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchingUsecase ranks eligible organizations for a donation
type MatchingUsecase interface {
	// RankCandidates loads the donation and ranks it. The list is empty, not an error,
	// when the donation is not available or no organization qualifies.
	RankCandidates(ctx context.Context, donationID uuid.UUID) ([]*entity.Candidate, error)

	// RankDonation ranks an already loaded donation.
	RankDonation(ctx context.Context, donation *entity.Donation) ([]*entity.Candidate, error)
}
