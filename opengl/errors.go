package opengl

import (
	"errors"
	"fmt"
)

// Package errors for opengl.
var (
	// ErrContextSwitchUnavailable is returned when the dispatch table
	// is missing the context binding entry points the guard needs.
	ErrContextSwitchUnavailable = errors.New("opengl: context binding entry points not resolved")

	// ErrMakeCurrentFailed is returned when the driver rejects binding
	// the supplied context.
	ErrMakeCurrentFailed = errors.New("opengl: wglMakeCurrent failed")
)

// DriverError reports an error flag the driver left pending during a
// guarded operation. The guard raises it only after the caller's
// context has been restored, so the failure never leaves the caller on
// the wrong context.
type DriverError struct {
	// Code is the raw driver error code from glGetError.
	Code Enum
}

// Error implements the error interface.
func (e *DriverError) Error() string {
	return fmt.Sprintf("opengl: pending driver error 0x%x", uint32(e.Code))
}
