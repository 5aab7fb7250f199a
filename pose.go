package gfxbridge

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// poseEpsilon is the per-component tolerance used by ApproxEqual.
// Poses coming back from a tracking runtime accumulate float noise well
// below this bound, while a genuinely different pose exceeds it.
const poseEpsilon = 0.00001

// Vector3 is a three-component float vector.
type Vector3 f32.Vec3

// Vector2 is a two-component float vector.
type Vector2 f32.Vec2

// Quaternion is a rotation stored as (x, y, z, w).
type Quaternion f32.Vec4

// Pose is a rigid transform: a position and an orientation.
type Pose struct {
	Position    Vector3
	Orientation Quaternion
}

// FieldOfView holds the four half-angles of an asymmetric frustum,
// in radians.
type FieldOfView struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// String formats the vector for frame logs.
func (v Vector3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

// String formats the vector for frame logs.
func (v Vector2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v[0], v[1])
}

// String formats the pose for frame logs.
func (p Pose) String() string {
	return fmt.Sprintf("p: (%.3f, %.3f, %.3f), o:(%.3f, %.3f, %.3f, %.3f)",
		p.Position[0], p.Position[1], p.Position[2],
		p.Orientation[0], p.Orientation[1], p.Orientation[2], p.Orientation[3])
}

// String formats the field of view for frame logs.
func (f FieldOfView) String() string {
	return fmt.Sprintf("(l:%.3f, r:%.3f, u:%.3f, d:%.3f)",
		f.AngleLeft, f.AngleRight, f.AngleUp, f.AngleDown)
}

// ApproxEqual reports whether two poses are equal within the tracking
// noise tolerance, component by component.
func (p Pose) ApproxEqual(q Pose) bool {
	for i := range p.Position {
		if !approx(p.Position[i], q.Position[i]) {
			return false
		}
	}
	for i := range p.Orientation {
		if !approx(p.Orientation[i], q.Orientation[i]) {
			return false
		}
	}
	return true
}

func approx(a, b float32) bool {
	d := b - a
	if d < 0 {
		d = -d
	}
	return d < poseEpsilon
}

// SecondsToNanoseconds converts a runtime timestamp expressed in
// fractional seconds to integer nanosecond ticks.
func SecondsToNanoseconds(sec float64) int64 {
	return int64(sec * 1e9)
}

// NanosecondsToSeconds converts integer nanosecond ticks to fractional
// seconds.
func NanosecondsToSeconds(ticks int64) float64 {
	return float64(ticks) / 1e9
}
