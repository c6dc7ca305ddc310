// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
	"github.com/movin/compgraph/graphindex"
)

// elideTransparentSpriteShapes is rule R1 (section 4.D.3): a
// SpriteShape whose fill and stroke brushes can never paint a visible
// pixel is removed from its parent's child list.
func elideTransparentSpriteShapes(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		ss, ok := n.(*compgraph.SpriteShape)
		if !ok || !ss.IsTransparent() {
			continue
		}
		parent := idx.Parent(ss)
		if spliceOrReplaceRoot(idx, root, parent, ss, nil) {
			changed = true
		}
	}
	return changed
}

// coalesceSiblingContainerShapes is rule R2: consecutive ContainerShape
// siblings that are equivalent modulo children are merged, their
// children concatenated under the first.
func coalesceSiblingContainerShapes(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		if !compgraph.IsContainerShaped(n) {
			continue
		}
		children := compgraph.Children(n)
		if len(children) < 2 {
			continue
		}
		out := make([]compgraph.Node, 0, len(children))
		out = append(out, children[0])
		localChanged := false
		for i := 1; i < len(children); i++ {
			prevCS, prevOK := out[len(out)-1].(*compgraph.ContainerShape)
			curCS, curOK := children[i].(*compgraph.ContainerShape)
			if prevOK && curOK && containerShapesEquivalentModuloChildren(prevCS, curCS) {
				prevCS.Shapes = append(prevCS.Shapes, curCS.Shapes...)
				for _, c := range curCS.Shapes {
					idx.SetParent(c, prevCS)
				}
				compgraph.PropagateDescription(curCS, prevCS)
				idx.Forget(curCS)
				localChanged = true
				continue
			}
			out = append(out, children[i])
		}
		if localChanged {
			compgraph.SetChildren(n, out)
			changed = true
		}
	}
	return changed
}

// elideEmptyContainerShapes is rule R3: container shapes with an empty
// child list are dropped, repeated until none remain.
func elideEmptyContainerShapes(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for {
		progressed := false
		for _, n := range snapshotNodes(*root) {
			cs, ok := n.(*compgraph.ContainerShape)
			if !ok || len(cs.Shapes) != 0 {
				continue
			}
			parent := idx.Parent(cs)
			if spliceOrReplaceRoot(idx, root, parent, cs, nil) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
		changed = true
	}
	return changed
}

// elideStructuralContainerShapes is rule R4: a container with no set
// property slots and at least one child is spliced away, its children
// taking its place in its parent's child list.
func elideStructuralContainerShapes(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		cs, ok := n.(*compgraph.ContainerShape)
		if !ok || len(cs.Shapes) == 0 {
			continue
		}
		if !PropertySetOf(cs).IsEmpty() {
			continue
		}
		parent := idx.Parent(cs)
		if spliceOrReplaceRoot(idx, root, parent, cs, cs.Shapes) {
			compgraph.PropagateDescription(cs, cs.Shapes[0])
			changed = true
		}
	}
	return changed
}

// pushContainerShapeTransformsDown is rule R5: a container holding only
// a TransformMatrix, with no animators and no child with an animated
// TransformMatrix, folds its matrix into each child's before splicing.
func pushContainerShapeTransformsDown(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		cs, ok := n.(*compgraph.ContainerShape)
		if !ok || len(cs.Shapes) == 0 {
			continue
		}
		if len(compgraph.Animators(cs)) != 0 {
			continue
		}
		if !HasOnly(cs, PropTransformMatrix) {
			continue
		}
		mat := cs.TransformMatrix
		if mat == nil {
			continue
		}
		anyChildAnimatedMatrix := false
		for _, child := range cs.Shapes {
			if compgraph.IsAnimated(child, "TransformMatrix") {
				anyChildAnimatedMatrix = true
				break
			}
		}
		if anyChildAnimatedMatrix {
			continue
		}

		for _, child := range cs.Shapes {
			slots := compgraph.TransformSlotsOf(child)
			var combined geom2d.Matrix3x2
			if slots.TransformMatrix != nil {
				combined.MultiplyMatrices(*mat, *slots.TransformMatrix)
			} else {
				combined = *mat
			}
			slots.TransformMatrix = &combined
		}

		parent := idx.Parent(cs)
		if spliceOrReplaceRoot(idx, root, parent, cs, cs.Shapes) {
			compgraph.PropagateDescription(cs, cs.Shapes[0])
			changed = true
		}
	}
	return changed
}

// coalesceSingleChildContainerShapes is rule R6: a container holding
// only a TransformMatrix whose sole, non-animated child is itself a
// container without its own TransformMatrix transfers its matrix to
// the child and splices the child into the grandparent.
func coalesceSingleChildContainerShapes(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		parent, ok := n.(*compgraph.ContainerShape)
		if !ok {
			continue
		}
		child, ok := soleChild(parent)
		if !ok {
			continue
		}
		childCS, ok := child.(*compgraph.ContainerShape)
		if !ok {
			continue
		}
		if !HasOnly(parent, PropTransformMatrix) {
			continue
		}
		if PropertySetOf(childCS).Has(PropTransformMatrix) {
			continue
		}
		if len(compgraph.Animators(childCS)) != 0 {
			continue
		}

		childSlots := compgraph.TransformSlotsOf(childCS)
		childSlots.TransformMatrix = parent.TransformMatrix
		parent.TransformMatrix = nil

		grandparent := idx.Parent(parent)
		if spliceOrReplaceRoot(idx, root, grandparent, parent, []compgraph.Node{childCS}) {
			compgraph.PropagateDescription(parent, childCS)
			changed = true
		}
	}
	return changed
}

// pushPropertiesDownToSpriteShape is rule R7: a container whose sole
// child is a sprite shape with no set property slots, and which itself
// has no PropertySet members, moves its transform slots and animators
// onto the sprite and splices it up in its own place.
func pushPropertiesDownToSpriteShape(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		parent, ok := n.(*compgraph.ContainerShape)
		if !ok {
			continue
		}
		child, ok := soleChild(parent)
		if !ok {
			continue
		}
		ss, ok := child.(*compgraph.SpriteShape)
		if !ok {
			continue
		}
		if !PropertySetOf(ss).IsEmpty() {
			continue
		}
		if len(parent.Properties) != 0 {
			continue
		}

		transferTransformSlots(&parent.TransformSlots, &ss.TransformSlots)
		transferAnimators(parent, ss)

		grandparent := idx.Parent(parent)
		if spliceOrReplaceRoot(idx, root, grandparent, parent, []compgraph.Node{ss}) {
			compgraph.PropagateDescription(parent, ss)
			changed = true
		}
	}
	return changed
}

// pushShapeVisibilityDown is rule R8: a container whose only set
// property is a visibility-encoding Scale, with exactly one child not
// itself scaled, moves the scale slot and its animator down to the
// child and splices the child up in its place.
func pushShapeVisibilityDown(idx *graphindex.Index, root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		parent, ok := n.(*compgraph.ContainerShape)
		if !ok {
			continue
		}
		if !HasOnly(parent, PropScale) {
			continue
		}
		if !scaleEncodesVisibility(parent) {
			continue
		}
		child, ok := soleChild(parent)
		if !ok {
			continue
		}
		if PropertySetOf(child).Has(PropScale) {
			continue
		}

		childSlots := compgraph.TransformSlotsOf(child)
		childSlots.Scale = parent.Scale
		parent.Scale = nil
		moveAnimator(parent, child, "Scale")

		grandparent := idx.Parent(parent)
		if spliceOrReplaceRoot(idx, root, grandparent, parent, []compgraph.Node{child}) {
			compgraph.PropagateDescription(parent, child)
			changed = true
		}
	}
	return changed
}

// pushShapeTreeVisibilityIntoVisualTree is rule R9: a ShapeVisual with
// a single child shape whose Scale encodes visibility has that
// visibility rewritten as the visual's own IsVisible property, freeing
// the shape's Scale slot.
//
// Declines (section V.3) when the ShapeVisual already has an explicit
// or animated IsVisible: merging two visibility sources risks changing
// effective visibility at a time point this rewrite cannot cheaply
// prove equivalent.
func pushShapeTreeVisibilityIntoVisualTree(root *compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(*root) {
		sv, ok := n.(*compgraph.ShapeVisual)
		if !ok || len(sv.Shapes) != 1 {
			continue
		}
		shape := sv.Shapes[0]
		if !scaleEncodesVisibility(shape) {
			continue
		}
		if sv.IsVisible != nil || compgraph.IsAnimated(sv, "IsVisible") {
			continue
		}

		shapeSlots := compgraph.TransformSlotsOf(shape)
		if compgraph.IsAnimated(shape, "Scale") {
			var controller *compgraph.AnimationController
			var scaleAnim *compgraph.KeyFrameAnimation[geom2d.Vector2]
			for _, a := range compgraph.Animators(shape) {
				if a.PropertyName != "Scale" {
					continue
				}
				scaleAnim, _ = a.Animation.(*compgraph.KeyFrameAnimation[geom2d.Vector2])
				controller = a.Controller
			}
			if scaleAnim == nil {
				continue
			}
			visAnim := &compgraph.KeyFrameAnimation[bool]{}
			for _, kf := range scaleAnim.Keyframes {
				visAnim.Keyframes = append(visAnim.Keyframes, compgraph.Keyframe[bool]{
					Progress: kf.Progress,
					Value:    !kf.Value.IsZero(),
					Easing:   kf.Easing,
				})
			}
			compgraph.StartAnimation(sv, "IsVisible", visAnim)
			animators := compgraph.Animators(sv)
			animators[len(animators)-1].Controller = controller
			compgraph.SetAnimators(sv, animators)
			compgraph.StopAnimation(shape, "Scale")
		} else {
			visible := !shapeSlots.Scale.IsZero()
			sv.IsVisible = &visible
		}
		shapeSlots.Scale = nil
		changed = true
	}
	return changed
}
