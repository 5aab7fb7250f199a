package gfxbridge

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Offset2D is an integer offset into an image.
type Offset2D struct {
	X int32
	Y int32
}

// Extent2D is an integer width/height pair.
type Extent2D struct {
	Width  int32
	Height int32
}

// Rect2D is an axis-aligned integer region of an image. Validity is
// always evaluated against an owning image's declared bounds via
// ImageDesc.ValidRegion; a Rect2D carries no validity of its own.
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

// String formats the rect the way frame submission logs expect it.
func (r Rect2D) String() string {
	return fmt.Sprintf("x:%d, y:%d w:%d h:%d", r.Offset.X, r.Offset.Y, r.Extent.Width, r.Extent.Height)
}

// ImageDesc describes a shared swapchain image. It mirrors the creation
// parameters the submission pipeline hands to whichever backend owns the
// image; the translation layer only reads it.
type ImageDesc struct {
	// Format is the canonical pixel format of the image.
	Format Format

	// Size is the image dimensions. DepthOrArrayLayers counts array
	// layers for layered swapchains.
	Size gputypes.Extent3D

	// MipLevelCount is the number of mip levels (1+).
	MipLevelCount uint32

	// SampleCount is the number of samples per pixel (1 for non-MSAA).
	SampleCount uint32

	// Usage specifies how the image will be used.
	Usage gputypes.TextureUsage
}

// ValidRegion reports whether r is a well-formed sub-region of the
// image: non-negative offset, positive extent, and offset+extent within
// the declared width and height. It fails closed and has no side
// effects; the bounds come from the descriptor on every call, so a
// caller whose descriptor changes between frames gets a fresh answer.
func (d *ImageDesc) ValidRegion(r Rect2D) bool {
	if r.Offset.X < 0 || r.Offset.Y < 0 || r.Extent.Width <= 0 || r.Extent.Height <= 0 {
		return false
	}
	// Sum in 64 bits so a hostile offset+extent cannot wrap.
	if int64(r.Offset.X)+int64(r.Extent.Width) > int64(d.Size.Width) ||
		int64(r.Offset.Y)+int64(r.Extent.Height) > int64(d.Size.Height) {
		return false
	}
	return true
}
