package opengl

import "github.com/vrxkit/gfxbridge"

// ToCanonical returns the canonical equivalent of a GL sized internal
// format, or FormatUnknown when no equivalent exists.
//
// GL internal formats have no BGRA or BGRX channel orderings, so those
// canonical formats are unreachable from this direction.
func ToCanonical(f Enum) gfxbridge.Format {
	switch f {
	case RGBA8:
		return gfxbridge.FormatRGBA8Unorm
	case SRGB8_ALPHA8:
		return gfxbridge.FormatRGBA8UnormSRGB
	case RGBA16F:
		return gfxbridge.FormatRGBA16Float
	case DEPTH_COMPONENT16:
		return gfxbridge.FormatD16Unorm
	case DEPTH24_STENCIL8:
		return gfxbridge.FormatD24UnormS8Uint
	case DEPTH_COMPONENT32F:
		return gfxbridge.FormatD32Float
	case DEPTH32F_STENCIL8:
		return gfxbridge.FormatD32FloatS8X24Uint
	default:
		return gfxbridge.FormatUnknown
	}
}

// BytesPerPixel returns the per-pixel byte size of an uncompressed,
// fixed-stride internal format. Block-compressed and unrecognized
// formats return 0, signaling that the size is not computable this way
// rather than an error.
func BytesPerPixel(f Enum) int {
	switch f {
	case DEPTH_COMPONENT16:
		return 2
	case RGBA8, SRGB8_ALPHA8, DEPTH24_STENCIL8, DEPTH_COMPONENT32F, R11F_G11F_B10F:
		return 4
	case RGBA16F, DEPTH32F_STENCIL8:
		return 8
	default:
		return 0
	}
}
