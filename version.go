package gfxbridge

import "fmt"

// RuntimeVersion is a runtime API version packed as
// major(16) | minor(16) | patch(32), matching the packing used on the
// runtime's wire surface.
type RuntimeVersion uint64

// MakeRuntimeVersion packs the three components into a RuntimeVersion.
func MakeRuntimeVersion(major, minor uint16, patch uint32) RuntimeVersion {
	return RuntimeVersion(uint64(major)<<48 | uint64(minor)<<32 | uint64(patch))
}

// Major returns the major component.
func (v RuntimeVersion) Major() uint16 { return uint16(v >> 48) }

// Minor returns the minor component.
func (v RuntimeVersion) Minor() uint16 { return uint16(v >> 32) }

// Patch returns the patch component.
func (v RuntimeVersion) Patch() uint32 { return uint32(v) }

// String formats the version as "major.minor.patch".
func (v RuntimeVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
