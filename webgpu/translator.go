package webgpu

import (
	types "github.com/gogpu/gputypes"

	"github.com/vrxkit/gfxbridge"
)

// translator adapts the typed format functions to the registry's
// uint64-based FormatTranslator surface.
type translator struct{}

func (translator) Name() string { return "webgpu" }

func (translator) ToCanonical(native uint64) gfxbridge.Format {
	return ToCanonical(types.TextureFormat(native))
}

func (translator) FromCanonical(f gfxbridge.Format) uint64 {
	return uint64(FromCanonical(f))
}

var _ gfxbridge.ReverseTranslator = translator{}

func init() {
	gfxbridge.Register(translator{})
}
