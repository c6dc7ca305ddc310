// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom2d

// Vector3 is a 3D vector, used for visual-only slots such as RotationAxis
// that have no meaning on a purely 2D shape.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// NewVector3 creates and returns a new Vector3 with the specified components.
func NewVector3(x, y, z float32) Vector3 {

	return Vector3{X: x, Y: y, Z: z}
}

// IsZAxis reports whether this vector is the canonical +Z unit axis
// (0, 0, 1), the axis about which a rotation is representable as a 2D
// planar matrix rotation.
func (v Vector3) IsZAxis() bool {

	return v.X == 0 && v.Y == 0 && v.Z == 1
}

// Equals returns whether this vector and other have identical components.
func (v Vector3) Equals(other Vector3) bool {

	return v == other
}

// Vector4 is a 4-component vector, used by PropertySet entries that mirror
// a Vector4 property (e.g. an un-decomposed quaternion carried through
// from the source document).
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Equals returns whether this vector and other have identical components.
func (v Vector4) Equals(other Vector4) bool {

	return v == other
}
