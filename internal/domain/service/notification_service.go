package service

import (
	"context"
)

// MaxBatchTokens is the largest token list a single multicast push accepts.
const MaxBatchTokens = 500

// PushMessage is the visible content and data payload of a push notification
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarizes one multicast push
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens rejected as invalid or unregistered.
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends the same message to up to MaxBatchTokens device tokens
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) (*BatchResult, error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token string, msg PushMessage) error
}
