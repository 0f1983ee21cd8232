package service

import "context"

// NotificationService pushes messages to organization devices.
type NotificationService interface {
	// SendBatchNotification sends one message to every token in a single multicast.
	// Tokens the provider reports as unregistered come back in invalidTokens so the
	// caller can deactivate them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
