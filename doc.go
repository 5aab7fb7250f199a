// Package gfxbridge translates GPU pixel formats and resource identities
// between a device-agnostic runtime representation and concrete graphics
// backends (Direct3D/DXGI, Vulkan, OpenGL, WebGPU).
//
// # Overview
//
// A compositor that accepts rendered frames from applications running on
// different graphics APIs needs to agree with each of them on the exact
// bit layout and color-space classification of every shared image, and it
// needs to time GPU work the same way regardless of which API produced it.
// gfxbridge provides the primitives such a pipeline depends on:
//
//   - Format equivalence tables between the canonical runtime format and
//     each backend's native format system, including typeless and sRGB
//     classification (d3d, vulkan, opengl, webgpu subpackages).
//   - Dynamic dispatch tables for the interop-relevant subset of each
//     native API, populated from an injected loader so that optional
//     extensions degrade to unresolved slots instead of crashes.
//   - A uniform Timer contract covering both CPU clocks and GPU
//     timestamp queries, plus a context switch guard that scopes legacy
//     OpenGL calls to a borrowed context and restores the caller's
//     context before reporting any pending driver error.
//
// # Unknown is not an error
//
// Every mapping function is total: a format with no equivalent in the
// target system maps to that system's explicit unknown sentinel
// (FormatUnknown, d3d.FormatUnknown, types.TextureFormatUndefined, ...).
// Callers decide whether an unknown result is fatal. The same policy
// applies to region validation, which reports false rather than failing.
//
// # Concurrency
//
// The translation layer is synchronous and introduces no goroutines.
// Format tables and populated dispatch tables are immutable and safe for
// concurrent reads. Timers and context guards are single-owner; callers
// that share them must serialize access.
//
// # Architecture
//
// The root package holds the canonical surface: Format, Rect2D/ImageDesc
// validation, Timer, the translator registry, and shared error types.
// Each backend lives in its own subpackage and registers a
// FormatTranslator in init().
package gfxbridge

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
