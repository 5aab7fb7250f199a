package vulkan

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/vrxkit/gfxbridge"
)

// translator adapts the typed format function to the registry's
// uint64-based FormatTranslator surface.
type translator struct{}

func (translator) Name() string { return "vulkan" }

func (translator) ToCanonical(native uint64) gfxbridge.Format {
	return ToCanonical(vk.Format(native))
}

func init() {
	gfxbridge.Register(translator{})
}
