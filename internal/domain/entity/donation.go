// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DonationStatus is the lifecycle state of a donation.
type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusAccepted  DonationStatus = "accepted"
	DonationStatusPickedUp  DonationStatus = "picked_up"
	DonationStatusDelivered DonationStatus = "delivered"
	DonationStatusExpired   DonationStatus = "expired"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// DonationStatuses lists every valid status.
var DonationStatuses = []DonationStatus{
	DonationStatusAvailable,
	DonationStatusAccepted,
	DonationStatusPickedUp,
	DonationStatusDelivered,
	DonationStatusExpired,
	DonationStatusCancelled,
}

// IsValid reports whether s is one of the known statuses.
func (s DonationStatus) IsValid() bool {
	for _, status := range DonationStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transition can leave s.
func (s DonationStatus) IsTerminal() bool {
	return s == DonationStatusDelivered || s == DonationStatusExpired || s == DonationStatusCancelled
}

// Donation is a single perishable-food offer posted by a donor.
type Donation struct {
	ID          uuid.UUID    `json:"id"`
	DonorID     uuid.UUID    `json:"donor_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    FoodCategory `json:"category"`
	Quantity    float64      `json:"quantity"`
	Unit        string       `json:"unit"`

	PreparedAt     time.Time `json:"prepared_at"`
	ExpiryTime     time.Time `json:"expiry_time"`
	PickupDeadline time.Time `json:"pickup_deadline"` // Never later than ExpiryTime.

	Location orb.Point `json:"location"` // [longitude, latitude]
	Address  string    `json:"address"`

	Status      DonationStatus `json:"status"`
	AcceptedBy  *uuid.UUID     `json:"accepted_by,omitempty"`
	AcceptedAt  *time.Time     `json:"accepted_at,omitempty"`
	PickedUpAt  *time.Time     `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`

	ReassignCount   int             `json:"reassign_count"`
	ReassignHistory []ReassignEntry `json:"reassign_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReassignEntry records one organization that held a donation and let it go stale.
type ReassignEntry struct {
	OrganizationID uuid.UUID  `json:"organization_id"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	ExpiredAt      time.Time  `json:"expired_at"`
	Reason         string     `json:"reason"`
}

// Latitude returns the donation's latitude.
func (d *Donation) Latitude() float64 {
	return d.Location.Lat()
}

// Longitude returns the donation's longitude.
func (d *Donation) Longitude() float64 {
	return d.Location.Lon()
}

// FailedOrganizationIDs returns the organizations that previously timed out on this donation.
func (d *Donation) FailedOrganizationIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.ReassignHistory))
	seen := make(map[uuid.UUID]struct{}, len(d.ReassignHistory))
	for _, entry := range d.ReassignHistory {
		if _, ok := seen[entry.OrganizationID]; ok {
			continue
		}
		seen[entry.OrganizationID] = struct{}{}
		ids = append(ids, entry.OrganizationID)
	}

	return ids
}

// HasFailed reports whether organizationID appears in the reassign history.
func (d *Donation) HasFailed(organizationID uuid.UUID) bool {
	for _, entry := range d.ReassignHistory {
		if entry.OrganizationID == organizationID {
			return true
		}
	}

	return false
}

// PickupWindowClosed reports whether the pickup deadline has passed at now.
func (d *Donation) PickupWindowClosed(now time.Time) bool {
	return now.After(d.PickupDeadline)
}

// IsAcceptedBy reports whether the donation is currently held by organizationID.
func (d *Donation) IsAcceptedBy(organizationID uuid.UUID) bool {
	return d.AcceptedBy != nil && *d.AcceptedBy == organizationID
}

// DonationTransition describes the column changes applied together with a status move.
// Nil pointers leave the column untouched.
type DonationTransition struct {
	From DonationStatus
	To   DonationStatus

	// Guards evaluated in the same conditional update as From.
	ExpectedAcceptedBy   *uuid.UUID
	AcceptedBefore       *time.Time
	PickupDeadlineBefore *time.Time

	AcceptedBy        *uuid.UUID
	AcceptedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	ClearAcceptance   bool
	IncrementReassign bool
}
