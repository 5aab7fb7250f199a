package d3d

import "github.com/vrxkit/gfxbridge"

// DebugNamer is implemented by native resource wrappers (D3D11 device
// children, D3D12 objects) that can attach a debug object name for
// capture tools. The windowing/device layer owns the wrappers; this
// package only annotates them.
type DebugNamer interface {
	SetDebugName(name string) error
}

// SetDebugName attaches a best-effort debug name to a native resource.
// It no-ops silently when the resource is nil or the name is empty and
// never fails the caller; an annotation error is logged at debug level
// and dropped.
func SetDebugName(r DebugNamer, name string) {
	if r == nil || name == "" {
		return
	}
	if err := r.SetDebugName(name); err != nil {
		gfxbridge.Logger().Debug("d3d: debug name not attached", "name", name, "error", err)
	}
}
