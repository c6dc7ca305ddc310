// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// VisualBase holds the state common to every visual variant:
// ContainerVisual, ShapeVisual and SpriteVisual (section 3.1).
type VisualBase struct {
	NodeBase

	TransformSlots

	Size      *geom2d.Vector2
	Opacity   *float32 // nil means fully opaque (1.0)
	IsVisible *bool    // nil means visible
	Clip      Node     // InsetClip, GeometricClip, or nil
	BorderMode string  // e.g. "soft", "hard"; opaque passthrough, never inspected by rewrites

	Properties PropertySet
	Animators  []Animator

	// Children holds the visual tree's own child visuals. Every visual
	// variant carries this sequence (section 3.1); ShapeVisual and
	// SpriteVisual ordinarily leave it empty since their own content
	// lives in Shapes/Brush instead, but the slot exists uniformly so a
	// visual surface or future variant may still parent other visuals.
	Children []Node
}

// ContainerVisual is a visual whose sole content is its child visuals.
type ContainerVisual struct {
	VisualBase
}

func (n *ContainerVisual) NodeKind() Kind { return KindContainerVisual }

// ShapeVisual is a visual whose content is a shape tree.
type ShapeVisual struct {
	VisualBase

	// Shapes holds the root(s) of the shape tree this visual renders.
	// In the common case there is exactly one root shape.
	Shapes []Node
}

func (n *ShapeVisual) NodeKind() Kind { return KindShapeVisual }

// SpriteVisual is a visual that renders a single brush directly (e.g. an
// image or solid-color layer), with no shape tree.
type SpriteVisual struct {
	VisualBase

	Brush Node // ColorBrush, EffectBrush, SurfaceBrush, or nil
}

func (n *SpriteVisual) NodeKind() Kind { return KindSpriteVisual }
