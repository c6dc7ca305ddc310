// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

// preMatrixSensitive is the set of properties a TransformMatrix folds
// in ahead of (section 3.4's evaluation order: TransformMatrix, then
// Offset, then Rotation, then Scale, each around CenterPoint) plus
// Clip, which likewise must not be reordered across a matrix.
var preMatrixSensitive = Bitset(0).
	With(PropOffset).
	With(PropRotation).
	With(PropScale).
	With(PropClip).
	With(PropCenterPoint)

var offsetOrClip = Bitset(0).With(PropOffset).With(PropClip)
var offsetRotationOrClip = Bitset(0).With(PropOffset).With(PropRotation).With(PropClip)

// Orthogonal reports whether a property set P (the outer/parent set,
// evaluated before C) and a property set C (the inner/child set,
// evaluated after P) commute (section 4.D.4): whether a rewrite may
// hoist P's properties across a node that still carries C without
// changing anything observable.
//
// It fails closed: if either set carries the Unknown bit, Orthogonal
// always returns false, since an unrecognized animated property cannot
// be proven safe to reorder.
func Orthogonal(P, C Bitset) bool {

	if P.HasUnknown() || C.HasUnknown() {
		return false
	}
	if P.Intersects(C) {
		return false
	}

	// A TransformMatrix folds in everything evaluated before it;
	// hoisting anything that contributes to that pre-matrix state above
	// a node that still has a TransformMatrix is unsafe.
	if C.Has(PropTransformMatrix) && P.Intersects(preMatrixSensitive) {
		return false
	}
	// Rotation precedes Offset and Clip in the evaluation order;
	// hoisting Rotation above a node that still applies either would
	// change the effective pivot.
	if P.Has(PropRotation) && C.Intersects(offsetOrClip) {
		return false
	}
	// Scale precedes Offset, Rotation, and Clip likewise.
	if P.Has(PropScale) && C.Intersects(offsetRotationOrClip) {
		return false
	}

	return true
}
