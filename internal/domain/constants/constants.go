// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Donation events delivered to organizations.
const (
	EventDonationOffered            = "donation.offered"
	EventDonationAssignmentTimedOut = "donation.assignment_timed_out"
)
