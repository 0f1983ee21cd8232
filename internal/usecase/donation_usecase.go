package usecase

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// DonationDetails are the donor-editable fields of a donation
type DonationDetails struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Category       entity.FoodCategory `json:"category"`
	Quantity       float64             `json:"quantity"`
	Unit           string              `json:"unit"`
	PreparedAt     time.Time           `json:"prepared_at"`
	ExpiryTime     time.Time           `json:"expiry_time"`
	PickupDeadline time.Time           `json:"pickup_deadline"`
	Latitude       float64             `json:"latitude"`
	Longitude      float64             `json:"longitude"`
	Address        string              `json:"address"`
}

// CreateDonationInput represents the input for posting a new donation
type CreateDonationInput struct {
	DonorID uuid.UUID
	DonationDetails
}

// TransitionInput names the requested status and the actor requesting it.
// OrganizationID is required for accept, pickup and deliver; DonorID for cancel.
type TransitionInput struct {
	Target           entity.DonationStatus
	OrganizationID   *uuid.UUID
	DonorID          *uuid.UUID
	BeneficiaryCount int
	HandoffToken     string
}

// HandoffCode is the QR code a donor shows to the collecting organization
type HandoffCode struct {
	Token     string
	ExpiresAt time.Time
	PNG       []byte
}

// DonationUsecase defines the interface for donation lifecycle use cases
type DonationUsecase interface {
	CreateDonation(ctx context.Context, input *CreateDonationInput) (*entity.Donation, error)
	UpdateDonation(ctx context.Context, donorID, donationID uuid.UUID, input *DonationDetails) (*entity.Donation, error)
	GetDonation(ctx context.Context, donationID uuid.UUID) (*entity.Donation, error)

	// ApplyTransition moves the donation to input.Target on behalf of the actor.
	// Losing a race against another transition is reported as an invalid transition.
	ApplyTransition(ctx context.Context, donationID uuid.UUID, input *TransitionInput) (*entity.Donation, error)

	GetHandoffCode(ctx context.Context, donorID, donationID uuid.UUID) (*HandoffCode, error)
}
