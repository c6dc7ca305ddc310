// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// TransformSlots is the slotted property set every visual and shape
// carries (section 3.2 of the design). Every field is optional; nil
// means "default": identity translation/rotation, unit scale, no
// explicit matrix.
//
// The effective transform of a node is evaluated in a fixed order:
// TransformMatrix, then Offset, then Rotation, then Scale, each taken
// around CenterPoint where applicable (section 3.4).
type TransformSlots struct {
	CenterPoint            *geom2d.Vector2
	Offset                 *geom2d.Vector2
	RotationAngleInDegrees *float32
	RotationAxis           *geom2d.Vector3 // visuals only; always nil on shapes
	Scale                  *geom2d.Vector2
	TransformMatrix        *geom2d.Matrix3x2
}

// Clone returns a deep copy of the transform slots (each pointer field
// copied to a freshly allocated value, so mutating the clone never
// affects the original).
func (t TransformSlots) Clone() TransformSlots {

	var out TransformSlots
	if t.CenterPoint != nil {
		v := *t.CenterPoint
		out.CenterPoint = &v
	}
	if t.Offset != nil {
		v := *t.Offset
		out.Offset = &v
	}
	if t.RotationAngleInDegrees != nil {
		v := *t.RotationAngleInDegrees
		out.RotationAngleInDegrees = &v
	}
	if t.RotationAxis != nil {
		v := *t.RotationAxis
		out.RotationAxis = &v
	}
	if t.Scale != nil {
		v := *t.Scale
		out.Scale = &v
	}
	if t.TransformMatrix != nil {
		v := *t.TransformMatrix
		out.TransformMatrix = &v
	}
	return out
}

// IsDefault reports whether every transform slot is unset.
func (t TransformSlots) IsDefault() bool {

	return t.CenterPoint == nil && t.Offset == nil && t.RotationAngleInDegrees == nil &&
		t.RotationAxis == nil && t.Scale == nil && t.TransformMatrix == nil
}

// Clear resets every transform slot to its default (unset) value.
func (t *TransformSlots) Clear() {

	*t = TransformSlots{}
}
