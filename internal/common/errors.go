// Package common defines shared constants and sentinel errors used across
// client and server layers of jobwizard. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrTestHooksDisabled = errors.New("test hooks are disabled")
	ErrNotConfigured     = errors.New("not configured")

	// Request validation errors.
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidFieldKey = errors.New("invalid field key")

	// Payment errors.
	ErrPaymentIntentNotFound = errors.New("payment intent not found")
	ErrPaymentNotFunded      = errors.New("payment not funded")

	// ErrStepInvalid rejects an action the draft's current step does not
	// allow when there is no outcome to report it through.
	ErrStepInvalid = errors.New("step invalid")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
