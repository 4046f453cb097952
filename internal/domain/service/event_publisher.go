package service

import (
	"context"
)

// UserRegisteredEvent is emitted once a new account has been persisted.
type UserRegisteredEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
}

// EventPublisher defines the interface for publishing account events to a message queue
type EventPublisher interface {
	// PublishUserRegistered publishes an event describing a new account
	PublishUserRegistered(ctx context.Context, event *UserRegisteredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
