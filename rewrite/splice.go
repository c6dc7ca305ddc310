// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/graphindex"
)

// soleChild returns the single owned child of a container-shaped node,
// and whether it has exactly one.
func soleChild(n compgraph.Node) (compgraph.Node, bool) {

	children := compgraph.Children(n)
	if len(children) != 1 {
		return nil, false
	}
	return children[0], true
}

// spliceInto replaces old with replacements in parent's child list,
// preserving the position and order of the rest of parent's children,
// and updates idx's parent pointers for every node that changed owner.
//
// It tolerates old no longer being present in parent's child list
// (section 4.D.6: ElideContainerShape/ElideContainerVisual must
// tolerate partial pre-emption by an earlier rewrite in the same pass)
// by doing nothing and returning false in that case.
func spliceInto(idx *graphindex.Index, parent, old compgraph.Node, replacements []compgraph.Node) bool {

	if parent == nil || old == nil {
		return false
	}
	children := compgraph.Children(parent)
	pos := indexOf(children, old)
	if pos < 0 {
		return false
	}

	next := make([]compgraph.Node, 0, len(children)-1+len(replacements))
	next = append(next, children[:pos]...)
	next = append(next, replacements...)
	next = append(next, children[pos+1:]...)
	compgraph.SetChildren(parent, next)

	if idx != nil {
		idx.Forget(old)
		for _, r := range replacements {
			idx.SetParent(r, parent)
		}
	}
	return true
}

// replaceInPlace swaps old for replacement at old's exact position in
// parent's child list -- the single-for-single special case of
// spliceInto, used by rewrites (R14) that replace one node with another
// rather than expanding it into a sequence.
func replaceInPlace(idx *graphindex.Index, parent, old, replacement compgraph.Node) bool {

	return spliceInto(idx, parent, old, []compgraph.Node{replacement})
}

// removeFrom drops old from parent's child list entirely.
func removeFrom(idx *graphindex.Index, parent, old compgraph.Node) bool {

	return spliceInto(idx, parent, old, nil)
}

// spliceOrReplaceRoot splices replacements in place of old within
// parent's child list, or -- when old has no parent because it is the
// current root -- replaces *root itself: with nil if replacements is
// empty (section 8 scenario 1, a container pruned down to nothing), or
// with the sole remaining node if replacements has exactly one element
// (section 8 scenario 2, a structural wrapper collapsing to its only
// child). A root elision that would leave more than one top-level node
// has no single node to make the new root, so it is declined
// (section 4.D.6: rewrites decline silently on an unmet precondition).
func spliceOrReplaceRoot(idx *graphindex.Index, root *compgraph.Node, parent, old compgraph.Node, replacements []compgraph.Node) bool {

	if parent != nil {
		return spliceInto(idx, parent, old, replacements)
	}
	if *root != old {
		return false
	}
	switch len(replacements) {
	case 0:
		idx.Forget(old)
		*root = nil
		return true
	case 1:
		idx.Forget(old)
		idx.SetParent(replacements[0], nil)
		*root = replacements[0]
		return true
	default:
		return false
	}
}

func indexOf(nodes []compgraph.Node, target compgraph.Node) int {

	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

// transferTransformSlots moves every set transform slot from src to dst
// (dst's other slots are kept) and clears src's, used by R7 and, through
// transferVisualState, by R12/R13 when state moves between a node and
// its sole child.
func transferTransformSlots(src, dst *compgraph.TransformSlots) {

	if src.CenterPoint != nil {
		dst.CenterPoint = src.CenterPoint
	}
	if src.Offset != nil {
		dst.Offset = src.Offset
	}
	if src.RotationAngleInDegrees != nil {
		dst.RotationAngleInDegrees = src.RotationAngleInDegrees
	}
	if src.RotationAxis != nil {
		dst.RotationAxis = src.RotationAxis
	}
	if src.Scale != nil {
		dst.Scale = src.Scale
	}
	if src.TransformMatrix != nil {
		dst.TransformMatrix = src.TransformMatrix
	}
	src.Clear()
}

// transferAnimators moves src's entire animator list onto dst and
// clears src's own list.
func transferAnimators(n compgraph.Node, dst compgraph.Node) {

	compgraph.SetAnimators(dst, append(compgraph.Animators(dst), compgraph.Animators(n)...))
	compgraph.SetAnimators(n, nil)
}

// transferVisualState moves every piece of state rules R12/R13 may
// hoist between an outer container visual and its sole visual child:
// transform slots, Size/Opacity/IsVisible/Clip, animators, and
// PropertySet entries. src is left with none of it afterward.
func transferVisualState(src, dst compgraph.Node) {

	sb := compgraph.VisualBaseOf(src)
	db := compgraph.VisualBaseOf(dst)

	transferTransformSlots(&sb.TransformSlots, &db.TransformSlots)
	if sb.Size != nil {
		db.Size = sb.Size
		sb.Size = nil
	}
	if sb.Opacity != nil {
		db.Opacity = sb.Opacity
		sb.Opacity = nil
	}
	if sb.IsVisible != nil {
		db.IsVisible = sb.IsVisible
		sb.IsVisible = nil
	}
	if sb.Clip != nil {
		db.Clip = sb.Clip
		sb.Clip = nil
	}
	transferAnimators(src, dst)
	transferProperties(src, dst)
}

// isVisualSurfaceSource reports whether n is referenced as the Source
// of some VisualSurface (section 3.4): rules R12/R13 must never
// eliminate such a node, since a VisualSurface ignores its source's own
// transform and ceases to mean the same thing if the source identity
// changes.
func isVisualSurfaceSource(idx *graphindex.Index, n compgraph.Node) bool {

	for _, ref := range idx.InReferences(n) {
		if _, ok := ref.(*compgraph.VisualSurface); ok {
			return true
		}
	}
	return false
}

// transferProperties moves src's PropertySet entries onto dst's,
// creating dst's set if necessary, and clears src's.
func transferProperties(src, dst compgraph.Node) {

	srcProps := compgraph.Properties(src)
	if len(srcProps) == 0 {
		return
	}
	dstProps := compgraph.Properties(dst).Clone()
	if dstProps == nil {
		dstProps = make(compgraph.PropertySet, len(srcProps))
	}
	for k, v := range srcProps {
		dstProps[k] = v
	}
	compgraph.SetProperties(dst, dstProps)
	compgraph.SetProperties(src, nil)
}
