package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel is the GORM-specific struct for the 'donations' table.
// The PostGIS 'location' column is generated from latitude/longitude by the database.
type DonationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	DonorID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	Category       string     `gorm:"type:varchar(50);not null"`
	Quantity       float64    `gorm:"type:decimal(10,2);not null"`
	Unit           string     `gorm:"type:varchar(50);not null"`
	PreparedAt     time.Time  `gorm:"not null"`
	ExpiryTime     time.Time  `gorm:"not null"`
	PickupDeadline time.Time  `gorm:"not null"`
	Latitude       float64    `gorm:"type:decimal(10,8);not null"`
	Longitude      float64    `gorm:"type:decimal(11,8);not null"`
	Address        string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;index:idx_donations_status_accepted_at"`
	AcceptedBy     *uuid.UUID `gorm:"type:uuid;index"`
	AcceptedAt     *time.Time `gorm:"index:idx_donations_status_accepted_at"`
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	ReassignCount  int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ReassignHistory []DonationReassignmentModel `gorm:"foreignKey:DonationID"`
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}

// DonationReassignmentModel is one entry of a donation's reassign history.
type DonationReassignmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	DonationID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null"`
	AcceptedAt     *time.Time
	ExpiredAt      time.Time `gorm:"not null"`
	Reason         string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationReassignmentModel) TableName() string {
	return "donation_reassignments"
}
