package entity

import "github.com/google/uuid"

// Candidate is one ranked organization for a donation.
type Candidate struct {
	OrganizationID   uuid.UUID          `json:"organization_id"`
	OrganizationName string             `json:"organization_name"`
	DistanceKm       float64            `json:"distance_km"`
	Score            float64            `json:"score"`
	Breakdown        map[string]float64 `json:"factor_breakdown"`
}
