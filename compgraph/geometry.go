// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// GeometryBase holds the state every geometry variant shares: the trim
// range every path-like geometry supports (section 3.1).
type GeometryBase struct {
	NodeBase

	TrimStart  *float32
	TrimEnd    *float32
	TrimOffset *float32

	Animators []Animator
}

// PathData is an opaque geometry payload: the optimizer never inspects
// path contents, only node identity, so it is carried as raw command
// bytes rather than decoded into segments.
type PathData struct {
	FillType string
	Commands []byte
}

// PathGeometry is a filled/stroked vector path, typically lowered from a
// BodyMovin shape-path property.
type PathGeometry struct {
	GeometryBase

	Path PathData
}

func (n *PathGeometry) NodeKind() Kind { return KindPathGeometry }

// EllipseGeometry is an axis-aligned ellipse.
type EllipseGeometry struct {
	GeometryBase

	Center geom2d.Vector2
	Radius geom2d.Vector2
}

func (n *EllipseGeometry) NodeKind() Kind { return KindEllipseGeometry }

// RectangleGeometry is an axis-aligned rectangle.
type RectangleGeometry struct {
	GeometryBase

	Offset geom2d.Vector2
	Size   geom2d.Vector2
}

func (n *RectangleGeometry) NodeKind() Kind { return KindRectangleGeometry }

// RoundedRectangleGeometry is an axis-aligned rectangle with uniform or
// per-corner rounding.
type RoundedRectangleGeometry struct {
	GeometryBase

	Offset       geom2d.Vector2
	Size         geom2d.Vector2
	CornerRadius geom2d.Vector2
}

func (n *RoundedRectangleGeometry) NodeKind() Kind { return KindRoundedRectangleGeometry }
