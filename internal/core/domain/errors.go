package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks input that must be rejected before pricing
	// or persistence.
	ErrInvalidRequest    = errors.New("invalid request")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	// ErrQuoteMismatch is returned when the price shown to the client is
	// no longer the price the engine computes at submission.
	ErrQuoteMismatch = errors.New("quoted price does not match current pricing")
)

// ValidationError describes a field-level validation failure. It matches
// ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}
