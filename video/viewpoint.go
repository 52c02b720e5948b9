// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import "github.com/chewxy/math32"

// Field of view limits and default, in degrees.
const (
	FieldOfViewMin     float32 = 20
	FieldOfViewMax     float32 = 150
	FieldOfViewDefault float32 = 80
)

// Viewpoint is the viewing orientation for spherical content, in degrees.
type Viewpoint struct {
	Yaw   float32
	Pitch float32
	Roll  float32
	FOV   float32
}

// DefaultViewpoint looks straight ahead with the default field of view.
func DefaultViewpoint() Viewpoint {
	return Viewpoint{FOV: FieldOfViewDefault}
}

// Clip wraps the angles into (-360, 360) and clamps the field of view.
func (v Viewpoint) Clip() Viewpoint {
	v.Yaw = math32.Mod(v.Yaw, 360)
	v.Pitch = math32.Mod(v.Pitch, 360)
	v.Roll = math32.Mod(v.Roll, 360)
	v.FOV = math32.Max(FieldOfViewMin, math32.Min(v.FOV, FieldOfViewMax))
	return v
}

// Valid reports whether every angle is finite and the field of view is in
// [FieldOfViewMin, FieldOfViewMax].
func (v Viewpoint) Valid() bool {
	for _, f := range [...]float32{v.Yaw, v.Pitch, v.Roll, v.FOV} {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return v.FOV >= FieldOfViewMin && v.FOV <= FieldOfViewMax
}
