package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	// DefaultReliabilityScore is assigned to organizations without pickup history.
	DefaultReliabilityScore = 50
	MinReliabilityScore     = 0
	MaxReliabilityScore     = 100
)

// Organization is an NGO eligible to accept and deliver donations.
// Profile data is owned elsewhere; the matching core only reads flags and location
// and maintains ReliabilityScore.
type Organization struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	IsActive         bool      `json:"is_active"`
	IsVerified       bool      `json:"is_verified"`
	Location         orb.Point `json:"location"`
	ReliabilityScore int       `json:"reliability_score"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CanAccept reports whether the organization may take on donations at all.
func (o *Organization) CanAccept() bool {
	return o.IsActive && o.IsVerified
}

// ClampReliability bounds a score to [0,100].
func ClampReliability(score int) int {
	return max(MinReliabilityScore, min(MaxReliabilityScore, score))
}
