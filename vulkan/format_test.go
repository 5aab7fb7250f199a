package vulkan

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"

	"github.com/vrxkit/gfxbridge"
)

// TestToCanonical verifies the Vulkan-to-canonical format mapping and
// the unknown fallback for unmapped formats.
func TestToCanonical(t *testing.T) {
	tests := []struct {
		in   vk.Format
		want gfxbridge.Format
	}{
		{vk.FormatR8g8b8a8Unorm, gfxbridge.FormatRGBA8Unorm},
		{vk.FormatR8g8b8a8Srgb, gfxbridge.FormatRGBA8UnormSRGB},
		{vk.FormatB8g8r8a8Unorm, gfxbridge.FormatBGRA8Unorm},
		{vk.FormatB8g8r8a8Srgb, gfxbridge.FormatBGRA8UnormSRGB},
		{vk.FormatR16g16b16a16Sfloat, gfxbridge.FormatRGBA16Float},
		{vk.FormatD16Unorm, gfxbridge.FormatD16Unorm},
		{vk.FormatD24UnormS8Uint, gfxbridge.FormatD24UnormS8Uint},
		{vk.FormatD32Sfloat, gfxbridge.FormatD32Float},
		{vk.FormatD32SfloatS8Uint, gfxbridge.FormatD32FloatS8X24Uint},
		{vk.FormatUndefined, gfxbridge.FormatUnknown},
		{vk.FormatR5g6b5UnormPack16, gfxbridge.FormatUnknown},
		{vk.FormatS8Uint, gfxbridge.FormatUnknown},
	}
	for _, tt := range tests {
		if got := ToCanonical(tt.in); got != tt.want {
			t.Errorf("ToCanonical(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
