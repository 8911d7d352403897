package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a pre-submission field check failure.
// These are resolved locally and never reach the remote store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RemoteCallError represents a network or server failure from the remote store.
// Mutations that fail this way are rolled back and never retried automatically.
type RemoteCallError struct {
	Operation string // e.g. "fetch scenarios", "update action item"
	Err       error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// SubscriptionError represents a change-notification channel failure.
// Non-fatal: logged, never surfaced to the user, never retried by this layer.
type SubscriptionError struct {
	Channel string
	Err     error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription on %s failed: %v", e.Channel, e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrScenarioNotFound      = &NotFoundError{Entity: "scenario"}
	ErrActionItemNotFound    = &NotFoundError{Entity: "action item"}
	ErrTimelineEventNotFound = &NotFoundError{Entity: "timeline event"}
)

// Request Errors
var (
	ErrInvalidFilterColumn = errors.New("filter column is not equality-filterable")
	ErrEmptySearchQuery    = errors.New("search query is empty")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRemoteCall checks if an error is a RemoteCallError
func IsRemoteCall(err error) bool {
	var remoteErr *RemoteCallError
	return errors.As(err, &remoteErr)
}

// IsSubscription checks if an error is a SubscriptionError
func IsSubscription(err error) bool {
	var subErr *SubscriptionError
	return errors.As(err, &subErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewRemoteCallError wraps a remote store failure
func NewRemoteCallError(operation string, err error) error {
	return &RemoteCallError{Operation: operation, Err: err}
}

// NewSubscriptionError wraps a change-notification channel failure
func NewSubscriptionError(channel string, err error) error {
	return &SubscriptionError{Channel: channel, Err: err}
}
