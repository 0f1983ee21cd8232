// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for donation persistence.
var (
	// ErrDonationNotFound is returned when a donation is not found.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrDonationStateConflict is returned when a conditional update finds the donation
	// no longer in the expected state.
	ErrDonationStateConflict = errors.New("donation state changed concurrently")
)

// DonationRepository defines the interface for donation-related database operations.
type DonationRepository interface {
	// CreateDonation persists a new donation.
	CreateDonation(ctx context.Context, donation *entity.Donation) error

	// FindDonationByID retrieves a donation together with its reassign history.
	FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// UpdateDonationDetails rewrites the editable fields of a donation that is still available.
	// Returns ErrDonationStateConflict when the donation left the available status.
	UpdateDonationDetails(ctx context.Context, donation *entity.Donation) error

	// TransitionStatus applies a status move as one conditional update guarded by the
	// transition's expected pre-state. Returns ErrDonationNotFound when the donation does
	// not exist and ErrDonationStateConflict when the guard no longer matches.
	TransitionStatus(ctx context.Context, id uuid.UUID, transition entity.DonationTransition) (*entity.Donation, error)

	// AppendReassignEntry records an organization that let the donation go stale.
	AppendReassignEntry(ctx context.Context, donationID uuid.UUID, entry entity.ReassignEntry) error

	// FindOverdueAvailable lists available donations whose pickup deadline is at or before now,
	// earliest deadline first.
	FindOverdueAvailable(ctx context.Context, now time.Time, limit int) ([]*entity.Donation, error)

	// FindStaleAccepted lists accepted donations whose acceptance is at or before cutoff,
	// oldest first.
	FindStaleAccepted(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Donation, error)
}
