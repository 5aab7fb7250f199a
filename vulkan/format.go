package vulkan

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/vrxkit/gfxbridge"
)

// ToCanonical returns the canonical equivalent of a Vulkan format, or
// FormatUnknown when no equivalent exists.
//
// Vulkan has no BGRX layout, so the canonical BGRX formats are
// unreachable from this direction. The combined depth-stencil formats
// map losslessly; single-aspect depth formats that Vulkan spells
// differently from the canonical system (e.g. S8 alone) are not part of
// the interop surface and translate to unknown.
func ToCanonical(f vk.Format) gfxbridge.Format {
	switch f {
	case vk.FormatR8g8b8a8Unorm:
		return gfxbridge.FormatRGBA8Unorm
	case vk.FormatR8g8b8a8Srgb:
		return gfxbridge.FormatRGBA8UnormSRGB
	case vk.FormatB8g8r8a8Unorm:
		return gfxbridge.FormatBGRA8Unorm
	case vk.FormatB8g8r8a8Srgb:
		return gfxbridge.FormatBGRA8UnormSRGB
	case vk.FormatR16g16b16a16Sfloat:
		return gfxbridge.FormatRGBA16Float
	case vk.FormatD16Unorm:
		return gfxbridge.FormatD16Unorm
	case vk.FormatD24UnormS8Uint:
		return gfxbridge.FormatD24UnormS8Uint
	case vk.FormatD32Sfloat:
		return gfxbridge.FormatD32Float
	case vk.FormatD32SfloatS8Uint:
		return gfxbridge.FormatD32FloatS8X24Uint
	default:
		return gfxbridge.FormatUnknown
	}
}
