package service

import (
	"context"
)

// DispatchItem is a single push to perform for a delivery intent.
type DispatchItem struct {
	UserID            string `json:"user_id"`
	NudgeID           string `json:"nudge_id"`
	Title             string `json:"title"`
	Message           string `json:"message"`
	NotificationToken string `json:"notification_token"`
}

// DispatchEvent carries the intents of one matching pass to the push worker
type DispatchEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	EventID       string         `json:"event_id"`
	PassTimestamp int64          `json:"pass_timestamp"`
	Items         []DispatchItem `json:"items"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes the intents of a matching pass for async delivery
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
