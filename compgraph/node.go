// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compgraph is the Graph Model: typed, mutable composition-graph
// node variants with typed property slots, animator lists, and owned child
// lists.
//
// The deep class hierarchy of the system this graph is lowered from
// (CompositionObject -> Visual -> ContainerVisual -> ShapeVisual, and so
// on) is replaced here by a flat set of concrete node types, one per
// variant, each embedding the common state its category shares
// (transform slots, property set, animator list). A node's "kind" is
// recovered with a type switch, not a virtual dispatch table.
//
// This package never tracks parent/child ownership beyond the child
// slices a container-shaped node owns directly: answering "who is my
// parent" or "who references me" is the Graph Index's job
// (see package graphindex).
package compgraph

// Kind identifies the concrete variant of a Node without requiring a type
// assertion chain; it is primarily useful for diagnostics and for
// switch-heavy code that wants a cheap dispatch key.
type Kind int

const (
	KindContainerVisual Kind = iota
	KindShapeVisual
	KindSpriteVisual
	KindContainerShape
	KindSpriteShape
	KindPathGeometry
	KindEllipseGeometry
	KindRectangleGeometry
	KindRoundedRectangleGeometry
	KindColorBrush
	KindEffectBrush
	KindSurfaceBrush
	KindInsetClip
	KindGeometricClip
	KindLinearEasing
	KindCubicBezierEasing
	KindStepEasing
	KindHoldEasing
	KindExpressionAnimation
	KindKeyFrameAnimation
	KindPropertySet
	KindAnimationController
	KindVisualSurface
	KindViewBox
)

// String returns a short human-readable name for the kind, used in log
// messages and panics.
func (k Kind) String() string {

	switch k {
	case KindContainerVisual:
		return "ContainerVisual"
	case KindShapeVisual:
		return "ShapeVisual"
	case KindSpriteVisual:
		return "SpriteVisual"
	case KindContainerShape:
		return "ContainerShape"
	case KindSpriteShape:
		return "SpriteShape"
	case KindPathGeometry:
		return "PathGeometry"
	case KindEllipseGeometry:
		return "EllipseGeometry"
	case KindRectangleGeometry:
		return "RectangleGeometry"
	case KindRoundedRectangleGeometry:
		return "RoundedRectangleGeometry"
	case KindColorBrush:
		return "ColorBrush"
	case KindEffectBrush:
		return "EffectBrush"
	case KindSurfaceBrush:
		return "SurfaceBrush"
	case KindInsetClip:
		return "InsetClip"
	case KindGeometricClip:
		return "GeometricClip"
	case KindLinearEasing:
		return "LinearEasing"
	case KindCubicBezierEasing:
		return "CubicBezierEasing"
	case KindStepEasing:
		return "StepEasing"
	case KindHoldEasing:
		return "HoldEasing"
	case KindExpressionAnimation:
		return "ExpressionAnimation"
	case KindKeyFrameAnimation:
		return "KeyFrameAnimation"
	case KindPropertySet:
		return "PropertySet"
	case KindAnimationController:
		return "AnimationController"
	case KindVisualSurface:
		return "VisualSurface"
	case KindViewBox:
		return "ViewBox"
	default:
		return "Unknown"
	}
}

// Node is implemented by every composition-graph node variant. It is a
// closed (package-sealed) interface: only types defined in this package
// may implement it, which lets the rest of the optimizer treat Node as a
// tagged union and recover the concrete variant with a type switch.
type Node interface {
	// NodeKind returns the concrete variant tag for this node.
	NodeKind() Kind

	// Base returns the common descriptive state every node carries.
	Base() *NodeBase

	sealedNode()
}

// NodeBase holds the state every node variant carries regardless of kind:
// a best-effort diagnostic name and short/long descriptions propagated
// across rewrites (see PropagateDescription).
type NodeBase struct {
	Name             string
	ShortDescription string
	LongDescription  string
}

func (b *NodeBase) sealedNode() {}

// Base returns b itself. Every concrete node type embeds NodeBase by
// value and is only ever referenced through a pointer, so this method is
// promoted unchanged and satisfies the Node interface for each variant;
// only NodeKind needs a per-type override.
func (b *NodeBase) Base() *NodeBase { return b }
