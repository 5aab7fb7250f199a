package opengl

import "github.com/vrxkit/gfxbridge"

// translator adapts the typed format function to the registry's
// uint64-based FormatTranslator surface.
type translator struct{}

func (translator) Name() string { return "opengl" }

func (translator) ToCanonical(native uint64) gfxbridge.Format {
	return ToCanonical(Enum(native))
}

func init() {
	gfxbridge.Register(translator{})
}
