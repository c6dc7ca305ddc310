// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

// ShapeBase holds the state common to both shape variants. Shapes only
// ever transform in 2D, so RotationAxis is always nil here (see
// TransformSlots).
type ShapeBase struct {
	NodeBase

	TransformSlots

	Properties PropertySet
	Animators  []Animator
}

// ContainerShape holds an ordered sequence of child shapes.
type ContainerShape struct {
	ShapeBase

	Shapes []Node
}

func (n *ContainerShape) NodeKind() Kind { return KindContainerShape }

// SpriteShape is a shape leaf: a single piece of geometry painted with a
// fill and/or stroke brush.
type SpriteShape struct {
	ShapeBase

	Geometry        Node // PathGeometry, EllipseGeometry, RectangleGeometry, RoundedRectangleGeometry
	FillBrush       Node // ColorBrush, EffectBrush, SurfaceBrush, or nil
	StrokeBrush     Node
	StrokeThickness *float32
	StrokeStartCap  string
	StrokeEndCap    string
	StrokeDashArray []float32
}

func (n *SpriteShape) NodeKind() Kind { return KindSpriteShape }

// IsTransparent reports whether neither fill nor stroke brush can ever
// paint a visible pixel: both are absent, or a non-animated ColorBrush
// with zero alpha (rule R1, section 4.D.3).
func (n *SpriteShape) IsTransparent() bool {

	return brushIsTransparent(n.FillBrush) && brushIsTransparent(n.StrokeBrush)
}

func brushIsTransparent(brush Node) bool {

	if brush == nil {
		return true
	}
	cb, ok := brush.(*ColorBrush)
	if !ok {
		return false
	}
	if len(cb.Animators) > 0 {
		return false
	}
	return cb.Color.IsTransparent()
}
