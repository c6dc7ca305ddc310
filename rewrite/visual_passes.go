// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/graphindex"
)

// pushPropertiesDownToShapeVisual is rule R10: a ContainerVisual whose
// sole child is a ShapeVisual, holding only a zero-inset Clip and a
// Size matching the child's, drops both: they are implicit on
// ShapeVisual and carrying them on the wrapper is redundant.
func pushPropertiesDownToShapeVisual(root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		cv, ok := n.(*compgraph.ContainerVisual)
		if !ok {
			continue
		}
		child, ok := soleChild(cv)
		if !ok {
			continue
		}
		sv, ok := child.(*compgraph.ShapeVisual)
		if !ok {
			continue
		}
		if !HasOnly(cv, PropClip, PropSize) {
			continue
		}
		clip, ok := cv.Clip.(*compgraph.InsetClip)
		if !ok || !clip.IsZero() {
			continue
		}
		if cv.Size == nil || sv.Size == nil || !cv.Size.Equals(*sv.Size) {
			continue
		}

		cv.Clip = nil
		cv.Size = nil
		changed = true
	}
	return changed
}

// coalesceContainerVisuals is rule R11: a ContainerVisual with no set
// property slots and at least one child is spliced away.
func coalesceContainerVisuals(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		cv, ok := n.(*compgraph.ContainerVisual)
		if !ok || len(cv.Children) == 0 {
			continue
		}
		if !PropertySetOf(cv).IsEmpty() {
			continue
		}
		parent := idx.Parent(cv)
		if spliceOrReplaceRoot(idx, root, parent, cv, cv.Children) {
			compgraph.PropagateDescription(cv, cv.Children[0])
			changed = true
		}
	}
	return changed
}

// coalesceOrthogonalVisuals is rule R12: a ContainerVisual whose own
// parent is also a ContainerVisual, with a sole SpriteVisual or
// ShapeVisual child whose property bitset is disjoint from and
// order-compatible with the container's, is spliced out, transferring
// its own state onto the child.
//
// Declines if the container is a VisualSurface's source: eliminating it
// would change what node the VisualSurface refers to.
func coalesceOrthogonalVisuals(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		cv, ok := n.(*compgraph.ContainerVisual)
		if !ok {
			continue
		}
		if _, ok := idx.Parent(cv).(*compgraph.ContainerVisual); !ok {
			continue
		}
		child, ok := soleChild(cv)
		if !ok {
			continue
		}
		switch child.(type) {
		case *compgraph.SpriteVisual, *compgraph.ShapeVisual:
		default:
			continue
		}

		P, C := PropertySetOf(cv), PropertySetOf(child)
		if P.Intersects(C) || !Orthogonal(P, C) {
			continue
		}
		if isVisualSurfaceSource(idx, cv) {
			continue
		}

		transferVisualState(cv, child)
		grandparent := idx.Parent(cv)
		if spliceOrReplaceRoot(idx, root, grandparent, cv, []compgraph.Node{child}) {
			compgraph.PropagateDescription(cv, child)
			changed = true
		}
	}
	return changed
}

// coalesceOrthogonalContainerVisuals is rule R13: identical
// preconditions to R12 but for a sole child that is itself a
// ContainerVisual, with the transfer direction reversed: the child's
// state moves up to the (retained) outer container, and the child is
// spliced away in favor of its own children.
func coalesceOrthogonalContainerVisuals(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		parent, ok := n.(*compgraph.ContainerVisual)
		if !ok {
			continue
		}
		if _, ok := idx.Parent(parent).(*compgraph.ContainerVisual); !ok {
			continue
		}
		child, ok := soleChild(parent)
		if !ok {
			continue
		}
		childCV, ok := child.(*compgraph.ContainerVisual)
		if !ok {
			continue
		}

		P, C := PropertySetOf(parent), PropertySetOf(childCV)
		if P.Intersects(C) || !Orthogonal(P, C) {
			continue
		}
		if isVisualSurfaceSource(idx, parent) {
			continue
		}

		transferVisualState(childCV, parent)
		compgraph.SetChildren(parent, childCV.Children)
		for _, gc := range childCV.Children {
			idx.SetParent(gc, parent)
		}
		idx.Forget(childCV)
		compgraph.PropagateDescription(childCV, parent)
		changed = true
	}
	return changed
}

// removeRedundantInsetClipVisuals is rule R14: a ContainerVisual
// holding only a zero-inset Clip and a Size matching its sole
// ShapeVisual child's is replaced outright by that child.
func removeRedundantInsetClipVisuals(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		cv, ok := n.(*compgraph.ContainerVisual)
		if !ok {
			continue
		}
		if !HasOnly(cv, PropClip, PropSize) {
			continue
		}
		clip, ok := cv.Clip.(*compgraph.InsetClip)
		if !ok || !clip.IsZero() {
			continue
		}
		child, ok := soleChild(cv)
		if !ok {
			continue
		}
		sv, ok := child.(*compgraph.ShapeVisual)
		if !ok {
			continue
		}
		if cv.Size == nil || sv.Size == nil || !cv.Size.Equals(*sv.Size) {
			continue
		}

		parent := idx.Parent(cv)
		if spliceOrReplaceRoot(idx, root, parent, cv, []compgraph.Node{sv}) {
			compgraph.PropagateDescription(cv, sv)
			changed = true
		}
	}
	return changed
}
