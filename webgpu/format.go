// Package webgpu translates between the canonical runtime formats and
// the WebGPU format system used by gogpu/wgpu, so a frame produced by a
// WebGPU-based renderer can enter the same interop pipeline as the
// native-API backends.
package webgpu

import (
	types "github.com/gogpu/gputypes"

	"github.com/vrxkit/gfxbridge"
)

// ToCanonical returns the canonical equivalent of a WebGPU texture
// format, or FormatUnknown when no equivalent exists.
//
// Depth24PlusStencil8 translates to the canonical D24UnormS8Uint even
// though an implementation may back it with a 32-bit depth buffer; the
// canonical system has no "at least 24 bits" format, so this is the
// closest combined equivalent and the pair is documented as lossy.
func ToCanonical(f types.TextureFormat) gfxbridge.Format {
	switch f {
	case types.TextureFormatRGBA8Unorm:
		return gfxbridge.FormatRGBA8Unorm
	case types.TextureFormatRGBA8UnormSrgb:
		return gfxbridge.FormatRGBA8UnormSRGB
	case types.TextureFormatBGRA8Unorm:
		return gfxbridge.FormatBGRA8Unorm
	case types.TextureFormatBGRA8UnormSrgb:
		return gfxbridge.FormatBGRA8UnormSRGB
	case types.TextureFormatRGBA16Float:
		return gfxbridge.FormatRGBA16Float
	case types.TextureFormatDepth16Unorm:
		return gfxbridge.FormatD16Unorm
	case types.TextureFormatDepth24PlusStencil8:
		return gfxbridge.FormatD24UnormS8Uint
	case types.TextureFormatDepth32Float:
		return gfxbridge.FormatD32Float
	case types.TextureFormatDepth32FloatStencil8:
		return gfxbridge.FormatD32FloatS8X24Uint
	default:
		return gfxbridge.FormatUnknown
	}
}

// FromCanonical returns the WebGPU equivalent of a canonical format, or
// TextureFormatUndefined when no equivalent exists. WebGPU has no BGRX
// layout, so the canonical BGRX formats translate to undefined.
func FromCanonical(f gfxbridge.Format) types.TextureFormat {
	switch f {
	case gfxbridge.FormatRGBA8Unorm:
		return types.TextureFormatRGBA8Unorm
	case gfxbridge.FormatRGBA8UnormSRGB:
		return types.TextureFormatRGBA8UnormSrgb
	case gfxbridge.FormatBGRA8Unorm:
		return types.TextureFormatBGRA8Unorm
	case gfxbridge.FormatBGRA8UnormSRGB:
		return types.TextureFormatBGRA8UnormSrgb
	case gfxbridge.FormatRGBA16Float:
		return types.TextureFormatRGBA16Float
	case gfxbridge.FormatD16Unorm:
		return types.TextureFormatDepth16Unorm
	case gfxbridge.FormatD24UnormS8Uint:
		return types.TextureFormatDepth24PlusStencil8
	case gfxbridge.FormatD32Float:
		return types.TextureFormatDepth32Float
	case gfxbridge.FormatD32FloatS8X24Uint:
		return types.TextureFormatDepth32FloatStencil8
	default:
		return types.TextureFormatUndefined
	}
}
