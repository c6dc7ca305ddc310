// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
)

// snapshotNodes returns every node reachable from root, taken at the
// moment of the call. Each pass operates over one such snapshot
// (section 5's ordering guarantee): later rewrites in the same pass may
// have already pre-empted an earlier entry, which every rewrite here
// tolerates by re-checking its own preconditions against the live graph
// rather than trusting the snapshot's contents.
func snapshotNodes(root compgraph.Node) []compgraph.Node {

	var out []compgraph.Node
	compgraph.Walk(root, func(n compgraph.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// containerShapesEquivalentModuloChildren implements rule R2's sibling
// equivalence test: same transform slots, both with empty property
// sets, and animator-list equality (section 4.D.3).
func containerShapesEquivalentModuloChildren(a, b *compgraph.ContainerShape) bool {

	if !transformSlotsEqual(&a.TransformSlots, &b.TransformSlots) {
		return false
	}
	if len(a.Properties) != 0 || len(b.Properties) != 0 {
		return false
	}
	return animatorListsEqual(a.Animators, b.Animators)
}

// visibilityValue reports whether a Scale value is one of the two
// visibility-encoding values (section 4.D.3, R8): fully collapsed
// (0,0) or identity (1,1).
func visibilityValue(v geom2d.Vector2) bool {

	return (v.X == 0 && v.Y == 0) || (v.X == 1 && v.Y == 1)
}

// scaleEncodesVisibility reports whether n's Scale slot is used solely
// to encode visibility (rule R8, GLOSSARY "Visibility-encoded Scale"):
// its static value, or every keyframe value if animated, is one of
// {(0,0), (1,1)}, and every keyframe's easing is StepEasing.
func scaleEncodesVisibility(n compgraph.Node) bool {

	slots := compgraph.TransformSlotsOf(n)
	if slots.Scale == nil {
		return false
	}
	if !visibilityValue(*slots.Scale) {
		return false
	}
	if !compgraph.IsAnimated(n, "Scale") {
		return true
	}
	for _, a := range compgraph.Animators(n) {
		if a.PropertyName != "Scale" {
			continue
		}
		kf, ok := a.Animation.(*compgraph.KeyFrameAnimation[geom2d.Vector2])
		if !ok {
			return false
		}
		for _, k := range kf.Keyframes {
			if !compgraph.IsStepLike(k.Easing) {
				return false
			}
			if !visibilityValue(k.Value) {
				return false
			}
		}
	}
	return true
}

// moveAnimator relocates the first animator targeting prop from src to
// dst, controller included. Reports whether an animator was found and
// moved.
func moveAnimator(src, dst compgraph.Node, prop string) bool {

	animators := compgraph.Animators(src)
	for i, a := range animators {
		if a.PropertyName != prop {
			continue
		}
		compgraph.SetAnimators(src, append(animators[:i:i], animators[i+1:]...))
		compgraph.SetAnimators(dst, append(compgraph.Animators(dst), a))
		return true
	}
	return false
}
