// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks input rejected before any request is sent.
	ErrValidation = errors.New("validation error")

	// ErrorNotFound is returned when an id is absent from local view state.
	ErrorNotFound = errors.New("not found")
)
