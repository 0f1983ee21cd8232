package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationDispatcher hands events to organizations without blocking the caller.
// A failed or dropped notification never affects committed donation state.
type NotificationDispatcher interface {
	Notify(ctx context.Context, organizationID uuid.UUID, event string, payload map[string]string)
}
