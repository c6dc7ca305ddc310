// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// ColorBrush paints with a single solid, possibly animated, color.
type ColorBrush struct {
	NodeBase

	Color     geom2d.Color4
	Animators []Animator
}

func (n *ColorBrush) NodeKind() Kind { return KindColorBrush }

// EffectBrush applies a graphics effect (blur, tint, etc.) to another
// brush. The effect parameters are an opaque passthrough from the
// source document; the optimizer never inspects them.
type EffectBrush struct {
	NodeBase

	EffectName string
	Source     Node // another brush, non-owning in principle but modeled owning here since effects do not alias
	Parameters PropertySet
}

func (n *EffectBrush) NodeKind() Kind { return KindEffectBrush }

// SurfaceBrush paints from a rendered surface, such as a VisualSurface or
// a decoded image asset (decoding itself is out of scope; see spec
// Non-goals).
type SurfaceBrush struct {
	NodeBase

	Source    Node // VisualSurface, or nil for an external image surface
	Stretch   string
	Animators []Animator
}

func (n *SurfaceBrush) NodeKind() Kind { return KindSurfaceBrush }
