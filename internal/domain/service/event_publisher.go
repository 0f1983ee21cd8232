package service

import (
	"context"
	"time"
)

// DonationEvent is the message handed to the push worker for one organization.
type DonationEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	EventID        string            `json:"event_id"`
	Event          string            `json:"event"` // e.g. donation.offered
	OrganizationID string            `json:"organization_id"`
	DonationID     string            `json:"donation_id,omitempty"`
	Payload        map[string]string `json:"payload,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationEvent publishes a donation event for async delivery
	PublishDonationEvent(ctx context.Context, event *DonationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
