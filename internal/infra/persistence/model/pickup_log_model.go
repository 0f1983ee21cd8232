package model

import (
	"time"

	"github.com/google/uuid"
)

// PickupLogModel is the GORM-specific struct for the 'pickup_logs' table.
type PickupLogModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	DonationID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DonorID          uuid.UUID `gorm:"type:uuid;not null"`
	AcceptedAt       time.Time `gorm:"not null"`
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	Status           string  `gorm:"type:varchar(20);not null"`
	BeneficiaryCount int     `gorm:"not null;default:0"`
	Quantity         float64 `gorm:"type:decimal(10,2);not null;default:0"`
	FailureReason    string  `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PickupLogModel) TableName() string {
	return "pickup_logs"
}
