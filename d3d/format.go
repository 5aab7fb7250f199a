// Package d3d translates between the canonical runtime formats and the
// DXGI format system shared by the Direct3D 11 and 12 backends.
//
// DXGI has no Go binding in this ecosystem, so the format identifiers
// are declared here with their native enum values. Only the subset the
// interop layer exchanges with applications is declared; everything
// else translates to FormatUnknown.
package d3d

import (
	"github.com/vrxkit/gfxbridge"
)

// Format is a DXGI_FORMAT value.
type Format uint32

// DXGI formats used by the interop layer, with their native values.
const (
	FormatUnknown Format = 0

	FormatR16G16B16A16Typeless Format = 9
	FormatR16G16B16A16Float    Format = 10

	FormatR32G8X24Typeless  Format = 19
	FormatD32FloatS8X24Uint Format = 20

	FormatR8G8B8A8Typeless  Format = 27
	FormatR8G8B8A8Unorm     Format = 28
	FormatR8G8B8A8UnormSRGB Format = 29

	FormatR32Typeless Format = 39
	FormatD32Float    Format = 40

	FormatR24G8Typeless  Format = 44
	FormatD24UnormS8Uint Format = 45

	FormatR16Typeless Format = 53
	FormatD16Unorm    Format = 55

	FormatB8G8R8A8Unorm     Format = 87
	FormatB8G8R8X8Unorm     Format = 88
	FormatB8G8R8A8Typeless  Format = 90
	FormatB8G8R8A8UnormSRGB Format = 91
	FormatB8G8R8X8Typeless  Format = 92
	FormatB8G8R8X8UnormSRGB Format = 93
)

// TypelessFormat returns the typeless counterpart of f, used to create
// a resource whose channel interpretation is bound later by a view.
// Formats without a typeless variant map to themselves.
//
// Depth formats collapse onto the color-typeless layout with the same
// bit pattern (e.g. D32Float and R32Float share R32Typeless), which is
// what allows a depth image to be aliased as a shader-readable resource.
func TypelessFormat(f Format) Format {
	switch f {
	case FormatR8G8B8A8UnormSRGB, FormatR8G8B8A8Unorm:
		return FormatR8G8B8A8Typeless
	case FormatB8G8R8A8UnormSRGB, FormatB8G8R8A8Unorm:
		return FormatB8G8R8A8Typeless
	case FormatB8G8R8X8UnormSRGB, FormatB8G8R8X8Unorm:
		return FormatB8G8R8X8Typeless
	case FormatR16G16B16A16Float:
		return FormatR16G16B16A16Typeless
	case FormatD32Float:
		return FormatR32Typeless
	case FormatD32FloatS8X24Uint:
		return FormatR32G8X24Typeless
	case FormatD24UnormS8Uint:
		return FormatR24G8Typeless
	case FormatD16Unorm:
		return FormatR16Typeless
	}
	return f
}

// IsSRGB reports whether f is an sRGB-classified format, meaning a view
// created on it must apply gamma correction.
func IsSRGB(f Format) bool {
	switch f {
	case FormatR8G8B8A8UnormSRGB, FormatB8G8R8A8UnormSRGB, FormatB8G8R8X8UnormSRGB:
		return true
	}
	return false
}

// ToCanonical returns the canonical equivalent of a DXGI format, or
// FormatUnknown when no equivalent exists. The mapping is lossless in
// both directions for every format it covers; typeless formats have no
// canonical identity and translate to unknown.
func ToCanonical(f Format) gfxbridge.Format {
	switch f {
	case FormatR8G8B8A8Unorm:
		return gfxbridge.FormatRGBA8Unorm
	case FormatR8G8B8A8UnormSRGB:
		return gfxbridge.FormatRGBA8UnormSRGB
	case FormatB8G8R8A8Unorm:
		return gfxbridge.FormatBGRA8Unorm
	case FormatB8G8R8A8UnormSRGB:
		return gfxbridge.FormatBGRA8UnormSRGB
	case FormatB8G8R8X8Unorm:
		return gfxbridge.FormatBGRX8Unorm
	case FormatB8G8R8X8UnormSRGB:
		return gfxbridge.FormatBGRX8UnormSRGB
	case FormatR16G16B16A16Float:
		return gfxbridge.FormatRGBA16Float
	case FormatD16Unorm:
		return gfxbridge.FormatD16Unorm
	case FormatD24UnormS8Uint:
		return gfxbridge.FormatD24UnormS8Uint
	case FormatD32Float:
		return gfxbridge.FormatD32Float
	case FormatD32FloatS8X24Uint:
		return gfxbridge.FormatD32FloatS8X24Uint
	default:
		return gfxbridge.FormatUnknown
	}
}

// FromCanonical returns the DXGI equivalent of a canonical format, or
// FormatUnknown when no equivalent exists.
func FromCanonical(f gfxbridge.Format) Format {
	switch f {
	case gfxbridge.FormatRGBA8Unorm:
		return FormatR8G8B8A8Unorm
	case gfxbridge.FormatRGBA8UnormSRGB:
		return FormatR8G8B8A8UnormSRGB
	case gfxbridge.FormatBGRA8Unorm:
		return FormatB8G8R8A8Unorm
	case gfxbridge.FormatBGRA8UnormSRGB:
		return FormatB8G8R8A8UnormSRGB
	case gfxbridge.FormatBGRX8Unorm:
		return FormatB8G8R8X8Unorm
	case gfxbridge.FormatBGRX8UnormSRGB:
		return FormatB8G8R8X8UnormSRGB
	case gfxbridge.FormatRGBA16Float:
		return FormatR16G16B16A16Float
	case gfxbridge.FormatD16Unorm:
		return FormatD16Unorm
	case gfxbridge.FormatD24UnormS8Uint:
		return FormatD24UnormS8Uint
	case gfxbridge.FormatD32Float:
		return FormatD32Float
	case gfxbridge.FormatD32FloatS8X24Uint:
		return FormatD32FloatS8X24Uint
	default:
		return FormatUnknown
	}
}
