// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package propsimplify implements the Property Simplifier (section 4.C):
// a per-node pass that canonicalises transform-related properties into a
// single matrix when statically determinable, run once on every visual
// and shape each time the Rewrite Engine starts an iteration.
package propsimplify

import (
	"math"

	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
)

// Node runs the per-node simplification algorithm on n. Returns true if
// n's transform state was changed. Non-visual, non-shape nodes are
// left untouched and Node reports false.
//
//  1. If CenterPoint is set and neither Scale nor RotationAngleInDegrees
//     is set or animated, clear CenterPoint (and RotationAxis for 3D
//     visuals): the center point is only observable alongside a
//     rotation or scale.
//  2. If n has no animators at all, and n is either a 2D shape or a
//     visual whose rotation axis is absent or the Z axis, fold
//     Scale/Rotation/Offset/TransformMatrix (about CenterPoint) into a
//     single TransformMatrix and clear CenterPoint (or clear the matrix
//     too if the combined transform is the identity). A non-identity
//     TransformMatrix with no other slot to fold is left as it is.
//
// The Simplifier never folds into an animated property, and never folds
// a 3D rotation about a non-Z axis: that rotation is not representable
// as a planar matrix rotation in this IR.
func Node(n compgraph.Node) bool {

	if !compgraph.IsVisual(n) && !compgraph.IsShape(n) {
		return false
	}
	slots := compgraph.TransformSlotsOf(n)
	changed := false

	if clearInertCenterPoint(n, slots) {
		changed = true
	}
	if foldTransform(n, slots) {
		changed = true
	}
	return changed
}

func clearInertCenterPoint(n compgraph.Node, slots *compgraph.TransformSlots) bool {

	if slots.CenterPoint == nil {
		return false
	}
	scaleObservable := slots.Scale != nil || compgraph.IsAnimated(n, "Scale")
	rotationObservable := slots.RotationAngleInDegrees != nil || compgraph.IsAnimated(n, "RotationAngleInDegrees")
	if scaleObservable || rotationObservable {
		return false
	}
	slots.CenterPoint = nil
	slots.RotationAxis = nil
	return true
}

func foldTransform(n compgraph.Node, slots *compgraph.TransformSlots) bool {

	if len(compgraph.Animators(n)) != 0 {
		return false
	}
	if compgraph.IsVisual(n) {
		if slots.RotationAxis != nil && !slots.RotationAxis.IsZAxis() {
			return false
		}
	} else if !compgraph.IsShape(n) {
		return false
	}

	// Nothing to fold if every slot that contributes to the combined
	// matrix is already absent, or if a non-identity TransformMatrix is
	// the only one set (folding would write back the same matrix).
	if slots.Offset == nil && slots.RotationAngleInDegrees == nil && slots.Scale == nil &&
		(slots.TransformMatrix == nil || !slots.TransformMatrix.IsIdentity()) {
		return false
	}

	combined := combine(slots)
	slots.CenterPoint = nil
	slots.Offset = nil
	slots.RotationAngleInDegrees = nil
	slots.Scale = nil
	if combined.IsIdentity() {
		slots.TransformMatrix = nil
	} else {
		slots.TransformMatrix = &combined
	}
	return true
}

// combine computes Scale(scale, cp) . RotationZ(rot, cp) . Translate(offset) . transformMatrix
// (section 3.4's fixed evaluation order: TransformMatrix, then Offset,
// then Rotation, then Scale).
func combine(slots *compgraph.TransformSlots) geom2d.Matrix3x2 {

	result := geom2d.Identity()
	if slots.TransformMatrix != nil {
		result = *slots.TransformMatrix
	}

	if slots.Offset != nil {
		var translate geom2d.Matrix3x2
		translate.MakeTranslation(slots.Offset.X, slots.Offset.Y)
		result.MultiplyMatrices(translate, result)
	}

	var cx, cy float32
	if slots.CenterPoint != nil {
		cx, cy = slots.CenterPoint.X, slots.CenterPoint.Y
	}

	if slots.RotationAngleInDegrees != nil {
		var rotate geom2d.Matrix3x2
		rotate.MakeRotationZ(degToRad(*slots.RotationAngleInDegrees), cx, cy)
		result.MultiplyMatrices(rotate, result)
	}

	if slots.Scale != nil {
		var scale geom2d.Matrix3x2
		scale.MakeScale(slots.Scale.X, slots.Scale.Y, cx, cy)
		result.MultiplyMatrices(scale, result)
	}

	return result
}

func degToRad(deg float32) float32 {

	return float32(float64(deg) * math.Pi / 180)
}
