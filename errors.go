package gfxbridge

import (
	"errors"
	"fmt"
)

// Package errors for gfxbridge.
var (
	// ErrTranslatorNotRegistered is returned when a requested format
	// translator has not been registered.
	ErrTranslatorNotRegistered = errors.New("gfxbridge: translator not registered")
)

// NativeCallError reports a native graphics or SDK call that returned a
// non-success status. It is fatal to the operation that issued the call:
// the translation layer performs no retries, because a failed native
// call indicates a programming or environment error rather than a
// transient condition.
//
// Backend packages construct it through their status-check helpers
// (e.g. vulkan.Check), which capture the originating call's textual
// form and source location.
type NativeCallError struct {
	// Call is the textual form of the native call, e.g. "vkCreateImage".
	Call string

	// Status is the raw native status code.
	Status int64

	// File and Line locate the call site that observed the failure.
	File string
	Line int
}

// Error implements the error interface.
func (e *NativeCallError) Error() string {
	return fmt.Sprintf("gfxbridge: %s failed with status %d (%s:%d)", e.Call, e.Status, e.File, e.Line)
}
