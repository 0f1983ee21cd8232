package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationModel is the GORM-specific struct for the 'organizations' table.
// Profile columns are owned by the identity service; this service writes only reliability_score.
type OrganizationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Name             string    `gorm:"type:varchar(255);not null"`
	IsActive         bool      `gorm:"not null;default:true"`
	IsVerified       bool      `gorm:"not null;default:false"`
	Latitude         float64   `gorm:"type:decimal(10,8);not null"`
	Longitude        float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOGRAPHY(POINT, 4326) column exists in database but is not mapped here.
	// It is kept in step with latitude/longitude by the identity service and only read through raw PostGIS clauses.
	ReliabilityScore int       `gorm:"not null;default:50"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// OrganizationDeviceModel is the GORM-specific struct for the 'organization_devices' table.
// It represents an organization member's device registered for push notifications.
type OrganizationDeviceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken       string    `gorm:"type:varchar(255);not null"`
	Platform       string    `gorm:"type:varchar(50);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationDeviceModel) TableName() string {
	return "organization_devices"
}
