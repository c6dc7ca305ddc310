// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
)

// animatorsEqual implements rule R2's animator-by-animator equality
// (section 4.D.3): same property name, same animated owner (always
// self, by construction), same animation node type, and -- for
// keyframe animations -- by-reference identity of the animation object;
// for expression animations, equal expression strings and equal
// reference-parameter lists (expressionsEqual).
func animatorsEqual(a, b compgraph.Animator) bool {

	if a.PropertyName != b.PropertyName {
		return false
	}
	switch av := a.Animation.(type) {
	case *compgraph.ExpressionAnimation:
		bv, ok := b.Animation.(*compgraph.ExpressionAnimation)
		if !ok {
			return false
		}
		return expressionsEqual(av, bv)
	default:
		// Every other animation kind (the KeyFrameAnimation[T]
		// instantiations, and nil) is compared by reference identity:
		// two animators only coalesce if they share the literal
		// animation object.
		return a.Animation == b.Animation
	}
}

// animatorListsEqual reports whether two animator lists are equal as
// sets of (property, animation) bindings, order notwithstanding, per
// rule R2.
func animatorListsEqual(a, b []compgraph.Animator) bool {

	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for i, bv := range b {
			if used[i] {
				continue
			}
			if animatorsEqual(av, bv) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// expressionsEqual implements the conjunction (AND) semantics chosen
// for comparing two expression animations during coalescing (section
// 4.D.3 rule R2; SPEC_FULL part V.1): equal expression strings, and
// every reference parameter pairwise equal, where a parameter pair is
// equal if both point to the identical referenced node, or both are
// self-references (each points back to its own owning animation node).
//
// A disjunction (treating any matching parameter as sufficient) would
// let two expressions with different non-self references coalesce,
// silently merging nodes an expression evaluator would treat as
// distinct, so every parameter must satisfy one of the two equalities.
func expressionsEqual(a, b *compgraph.ExpressionAnimation) bool {

	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Expression != b.Expression {
		return false
	}
	if len(a.References) != len(b.References) {
		return false
	}
	for i := range a.References {
		ra, rb := a.References[i], b.References[i]
		if ra.Name != rb.Name {
			return false
		}
		if ra.Target == rb.Target {
			continue
		}
		aSelf := ra.Target == compgraph.Node(a)
		bSelf := rb.Target == compgraph.Node(b)
		if aSelf && bSelf {
			continue
		}
		return false
	}
	return true
}

// transformSlotsEqual reports whether two TransformSlots hold the same
// values in every field used by rule R2's "equivalent-modulo-children"
// test: CenterPoint, Offset, RotationAngleInDegrees, Scale, and
// TransformMatrix. RotationAxis is excluded: shapes never set it
// (ShapeBase is always 2D).
func transformSlotsEqual(a, b *compgraph.TransformSlots) bool {

	if !vec2PtrEqual(a.CenterPoint, b.CenterPoint) {
		return false
	}
	if !vec2PtrEqual(a.Offset, b.Offset) {
		return false
	}
	if !float32PtrEqual(a.RotationAngleInDegrees, b.RotationAngleInDegrees) {
		return false
	}
	if !vec2PtrEqual(a.Scale, b.Scale) {
		return false
	}
	switch {
	case a.TransformMatrix == nil && b.TransformMatrix == nil:
		return true
	case a.TransformMatrix == nil || b.TransformMatrix == nil:
		return false
	default:
		return a.TransformMatrix.Equals(*b.TransformMatrix)
	}
}

func vec2PtrEqual(a, b *geom2d.Vector2) bool {

	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return a.Equals(*b)
	}
}

func float32PtrEqual(a, b *float32) bool {

	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return *a == *b
	}
}
