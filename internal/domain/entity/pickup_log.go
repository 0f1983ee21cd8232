package entity

import (
	"time"

	"github.com/google/uuid"
)

// PickupStatus is the state of one organization's engagement with one donation.
type PickupStatus string

const (
	PickupStatusInProgress PickupStatus = "in_progress"
	PickupStatusPickedUp   PickupStatus = "picked_up"
	PickupStatusDelivered  PickupStatus = "delivered"
	PickupStatusFailed     PickupStatus = "failed"
)

// PickupLog is created when an organization accepts a donation and is never deleted;
// it is the historical input of reliability scoring.
type PickupLog struct {
	ID               uuid.UUID    `json:"id"`
	DonationID       uuid.UUID    `json:"donation_id"`
	OrganizationID   uuid.UUID    `json:"organization_id"`
	DonorID          uuid.UUID    `json:"donor_id"`
	AcceptedAt       time.Time    `json:"accepted_at"`
	PickupTime       *time.Time   `json:"pickup_time,omitempty"`
	DeliveryTime     *time.Time   `json:"delivery_time,omitempty"`
	Status           PickupStatus `json:"status"`
	BeneficiaryCount int          `json:"beneficiary_count"`
	Quantity         float64      `json:"quantity"`
	FailureReason    string       `json:"failure_reason,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// OrganizationStats aggregates an organization's pickup history.
type OrganizationStats struct {
	OrganizationID  uuid.UUID
	TotalAccepted   int
	TotalDelivered  int
	TotalPickedUp   int // Logs currently in picked_up (collected, not yet delivered).
	TotalFailed     int
	AvgResponseMins *float64 // Mean accepted→pickup minutes; nil when nothing was picked up.
	AvgQuantity     float64
	MaxQuantity     float64
	LastActivityAt  *time.Time
	AcceptedSince   int // Pickups accepted since the window start passed to the aggregate query.
}

// HasHistory reports whether the organization ever accepted a donation.
func (s *OrganizationStats) HasHistory() bool {
	return s != nil && s.TotalAccepted > 0
}
