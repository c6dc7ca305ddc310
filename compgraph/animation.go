// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// Animatable enumerates the value types a KeyFrameAnimation may carry
// (section 3.1: scalar, vector2, vector3, vector4, color, path, bool).
type Animatable interface {
	float32 | geom2d.Vector2 | geom2d.Vector3 | geom2d.Vector4 | geom2d.Color4 | bool | PathData
}

// Keyframe is one (progress, value) sample of a KeyFrameAnimation, paired
// with the easing that governs the segment leading into it.
type Keyframe[T Animatable] struct {
	Progress float32
	Value    T
	Easing   Node // LinearEasing, CubicBezierEasing, StepEasing, or HoldEasing
}

// KeyFrameAnimation is a time-sampled animation over a single value type.
// Keyframes are kept ordered by ascending Progress; TryAddKeyframe
// preserves that order with a single binary search rather than a
// pointer-walk (the ordering scheme spec.md's open questions call for;
// see SPEC_FULL.md part V.4).
type KeyFrameAnimation[T Animatable] struct {
	NodeBase

	Keyframes []Keyframe[T]
}

func (n *KeyFrameAnimation[T]) NodeKind() Kind { return KindKeyFrameAnimation }

// TryAddKeyframe inserts a keyframe in progress order. Returns false
// (and leaves the animation unchanged) if a keyframe already occupies
// that exact progress value.
func (n *KeyFrameAnimation[T]) TryAddKeyframe(kf Keyframe[T]) bool {

	lo, hi := 0, len(n.Keyframes)
	for lo < hi {
		mid := (lo + hi) / 2
		if n.Keyframes[mid].Progress < kf.Progress {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(n.Keyframes) && n.Keyframes[lo].Progress == kf.Progress {
		return false
	}
	n.Keyframes = append(n.Keyframes, Keyframe[T]{})
	copy(n.Keyframes[lo+1:], n.Keyframes[lo:])
	n.Keyframes[lo] = kf
	return true
}

// IsConstant reports whether this animation has at most one keyframe, or
// every keyframe shares an identical value, i.e. it never actually
// varies over time.
func (n *KeyFrameAnimation[T]) IsConstant(equal func(a, b T) bool) bool {

	if len(n.Keyframes) <= 1 {
		return true
	}
	first := n.Keyframes[0].Value
	for _, kf := range n.Keyframes[1:] {
		if !equal(first, kf.Value) {
			return false
		}
	}
	return true
}

// ExpressionReference is one named reference parameter captured by an
// ExpressionAnimation's expression string.
type ExpressionReference struct {
	Name   string
	Target Node // non-owning: never followed by the ownership walk
}

// ExpressionAnimation evaluates a textual expression against its
// reference parameters on every frame. References are non-owning edges;
// only the Graph Index's in-reference query follows them (section 4.B).
type ExpressionAnimation struct {
	NodeBase

	Expression string
	References []ExpressionReference
}

func (n *ExpressionAnimation) NodeKind() Kind { return KindExpressionAnimation }

// Animator binds one animated property name on an owning node to an
// animation node and an optional controller (section 3.3). A property is
// "animated" iff some Animator in the node's list names it.
type Animator struct {
	PropertyName string
	Animation    Node // *KeyFrameAnimation[T] or *ExpressionAnimation
	Controller   *AnimationController
}

// AnimationController drives a group of animators' shared progress
// (e.g. pause/resume, or a progress expression pushed down during rule
// R9). It may itself own animators, e.g. one driving its own progress
// property.
type AnimationController struct {
	NodeBase

	Paused    bool
	Animators []Animator
}

func (n *AnimationController) NodeKind() Kind { return KindAnimationController }
