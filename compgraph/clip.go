// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// InsetClip clips a visual to its bounds minus the given insets.
type InsetClip struct {
	NodeBase

	Top    *float32
	Left   *float32
	Right  *float32
	Bottom *float32

	CenterPoint *geom2d.Vector2
	Scale       *geom2d.Vector2

	Animators []Animator
}

func (n *InsetClip) NodeKind() Kind { return KindInsetClip }

// IsZero reports whether every inset is unset or zero and there is no
// center-point/scale override — i.e. this clip has no visible effect
// (used by rule R14, section 4.D.3).
func (n *InsetClip) IsZero() bool {

	if len(n.Animators) > 0 {
		return false
	}
	zero := func(f *float32) bool { return f == nil || *f == 0 }
	return zero(n.Top) && zero(n.Left) && zero(n.Right) && zero(n.Bottom) &&
		n.CenterPoint == nil && n.Scale == nil
}

// GeometricClip clips a visual to an arbitrary geometry.
type GeometricClip struct {
	NodeBase

	Geometry Node
}

func (n *GeometricClip) NodeKind() Kind { return KindGeometricClip }
