// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// LinearEasing interpolates a keyframe segment linearly.
type LinearEasing struct {
	NodeBase
}

func (n *LinearEasing) NodeKind() Kind { return KindLinearEasing }

// CubicBezierEasing interpolates a keyframe segment along a cubic Bezier
// curve defined by two control points.
type CubicBezierEasing struct {
	NodeBase

	C1 geom2d.Vector2
	C2 geom2d.Vector2
}

func (n *CubicBezierEasing) NodeKind() Kind { return KindCubicBezierEasing }

// StepEasing snaps to the destination keyframe's value for the whole
// segment (no interpolation). This is the easing a visibility-encoded
// Scale animator must use exclusively (section 4.D.3, rule R8).
type StepEasing struct {
	NodeBase
}

func (n *StepEasing) NodeKind() Kind { return KindStepEasing }

// HoldEasing holds the origin keyframe's value for the whole segment.
type HoldEasing struct {
	NodeBase
}

func (n *HoldEasing) NodeKind() Kind { return KindHoldEasing }

// IsStepLike reports whether an easing node is StepEasing. Only Step
// easing participates in the visibility-encoding test (R8): Hold freezes
// the *previous* value through the segment, which does not guarantee the
// segment's own endpoints are the instantaneous value at any progress in
// between.
func IsStepLike(easing Node) bool {

	_, ok := easing.(*StepEasing)
	return ok
}
