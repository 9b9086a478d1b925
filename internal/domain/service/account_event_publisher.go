package service

import (
	"context"
	"time"
)

// AccountCreatedEvent is published after an account has been persisted.
// It never carries the password or its hash.
type AccountCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountEventPublisher defines the interface for publishing account events to a message queue
type AccountEventPublisher interface {
	// PublishAccountCreated publishes an event announcing a newly created account
	PublishAccountCreated(ctx context.Context, event *AccountCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
