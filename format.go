package gfxbridge

// Format identifies a pixel format in the canonical, backend-agnostic
// type system used on the runtime's public surface.
//
// Each Format maps to exactly one channel layout, bit depth, color-space
// flag, and depth/stencil flag. The per-backend subpackages translate
// between Format and the corresponding native identifier; translation is
// partial, and formats with no native equivalent map to the target
// system's unknown sentinel.
type Format uint32

// Canonical pixel formats.
const (
	// FormatUnknown is the explicit unknown sentinel. It is the zero
	// value so that an unset format never aliases a real one.
	FormatUnknown Format = iota

	// FormatRGBA8Unorm is 8-bit RGBA, normalized unsigned integer.
	FormatRGBA8Unorm

	// FormatRGBA8UnormSRGB is 8-bit RGBA, normalized unsigned integer
	// in sRGB color space.
	FormatRGBA8UnormSRGB

	// FormatBGRA8Unorm is 8-bit BGRA, normalized unsigned integer.
	FormatBGRA8Unorm

	// FormatBGRA8UnormSRGB is 8-bit BGRA, normalized unsigned integer
	// in sRGB color space.
	FormatBGRA8UnormSRGB

	// FormatBGRX8Unorm is 8-bit BGR with an ignored fourth channel,
	// normalized unsigned integer.
	FormatBGRX8Unorm

	// FormatBGRX8UnormSRGB is 8-bit BGR with an ignored fourth channel,
	// normalized unsigned integer in sRGB color space.
	FormatBGRX8UnormSRGB

	// FormatRGBA16Float is 16-bit RGBA, floating point.
	FormatRGBA16Float

	// FormatD16Unorm is 16-bit depth, normalized unsigned integer.
	FormatD16Unorm

	// FormatD24UnormS8Uint is 24-bit normalized depth with 8-bit stencil.
	FormatD24UnormS8Uint

	// FormatD32Float is 32-bit floating point depth.
	FormatD32Float

	// FormatD32FloatS8X24Uint is 32-bit floating point depth with 8-bit
	// stencil and 24 unused bits.
	FormatD32FloatS8X24Uint
)

// IsSRGB reports whether f carries the sRGB color-space classification,
// meaning a view created on it must apply gamma correction.
func (f Format) IsSRGB() bool {
	switch f {
	case FormatRGBA8UnormSRGB, FormatBGRA8UnormSRGB, FormatBGRX8UnormSRGB:
		return true
	}
	return false
}

// HasDepth reports whether f is a depth or combined depth-stencil format.
func (f Format) HasDepth() bool {
	switch f {
	case FormatD16Unorm, FormatD24UnormS8Uint, FormatD32Float, FormatD32FloatS8X24Uint:
		return true
	}
	return false
}

// HasStencil reports whether f carries a stencil aspect.
func (f Format) HasStencil() bool {
	switch f {
	case FormatD24UnormS8Uint, FormatD32FloatS8X24Uint:
		return true
	}
	return false
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatRGBA8UnormSRGB:
		return "RGBA8UnormSRGB"
	case FormatBGRA8Unorm:
		return "BGRA8Unorm"
	case FormatBGRA8UnormSRGB:
		return "BGRA8UnormSRGB"
	case FormatBGRX8Unorm:
		return "BGRX8Unorm"
	case FormatBGRX8UnormSRGB:
		return "BGRX8UnormSRGB"
	case FormatRGBA16Float:
		return "RGBA16Float"
	case FormatD16Unorm:
		return "D16Unorm"
	case FormatD24UnormS8Uint:
		return "D24UnormS8Uint"
	case FormatD32Float:
		return "D32Float"
	case FormatD32FloatS8X24Uint:
		return "D32FloatS8X24Uint"
	}
	return "Unknown"
}
