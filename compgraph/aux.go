// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// VisualSurface renders a visual subtree off-screen so it can be used as
// a brush source elsewhere (e.g. by SurfaceBrush). Source is a
// non-owning reference: the Graph Index records it as an in-reference,
// and the referenced visual's transform properties are ignored by the
// runtime, so the optimizer must never hoist a transform property from
// the source's sole child onto the source itself (section 3.4,
// "VisualSurface safety").
type VisualSurface struct {
	NodeBase

	Source     Node
	SourceSize geom2d.Vector2
}

func (n *VisualSurface) NodeKind() Kind { return KindVisualSurface }

// ViewBox maps a logical coordinate space onto a visual's bounds, as
// BodyMovin's composition-level width/height does onto the render
// surface.
type ViewBox struct {
	NodeBase

	Size geom2d.Vector2
}

func (n *ViewBox) NodeKind() Kind { return KindViewBox }
