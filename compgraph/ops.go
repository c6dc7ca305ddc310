// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "fmt"

// Unreachable panics identifying the operation and the offending node
// variant. It is the "unreachable state" error tier from section 7: a
// tagged-variant match hit an impossible arm, which is a programmer
// error, not a precondition-skip.
func Unreachable(op string, n Node) {

	kind := "<nil>"
	if n != nil {
		kind = n.NodeKind().String()
	}
	panic(fmt.Sprintf("compgraph: unreachable state in %s: unexpected variant %s", op, kind))
}

// Children returns the owned child sequence of any container-shaped
// variant: ContainerVisual, ShapeVisual, SpriteVisual, ContainerShape.
// Every other variant has no children and returns nil.
//
// Children returns the live slice for container-shaped visual/shape
// variants so callers (the rewrite engine's splice helpers) can mutate
// it in place; for variants whose "children" live in a differently named
// field (ShapeVisual.Shapes), the same slice is returned here under the
// children() query's unified name.
func Children(n Node) []Node {

	switch v := n.(type) {
	case *ContainerVisual:
		return v.Children
	case *ShapeVisual:
		return v.Shapes
	case *SpriteVisual:
		return v.Children
	case *ContainerShape:
		return v.Shapes
	default:
		return nil
	}
}

// SetChildren replaces the owned child sequence of a container-shaped
// variant. It panics (Unreachable) if n is not container-shaped: asking
// a SpriteShape for a child list is a programmer error (section 4.A).
func SetChildren(n Node, children []Node) {

	switch v := n.(type) {
	case *ContainerVisual:
		v.Children = children
	case *ShapeVisual:
		v.Shapes = children
	case *SpriteVisual:
		v.Children = children
	case *ContainerShape:
		v.Shapes = children
	default:
		Unreachable("compgraph.SetChildren", n)
	}
}

// IsContainerShaped reports whether n accepts a child sequence.
func IsContainerShaped(n Node) bool {

	switch n.(type) {
	case *ContainerVisual, *ShapeVisual, *SpriteVisual, *ContainerShape:
		return true
	default:
		return false
	}
}

// IsVisual reports whether n is one of the three visual variants.
func IsVisual(n Node) bool {

	switch n.(type) {
	case *ContainerVisual, *ShapeVisual, *SpriteVisual:
		return true
	default:
		return false
	}
}

// IsShape reports whether n is one of the two shape variants.
func IsShape(n Node) bool {

	switch n.(type) {
	case *ContainerShape, *SpriteShape:
		return true
	default:
		return false
	}
}

// Animators returns the animator list owned by n. Variants with no
// animator list (geometries carry their own via GeometryBase, clips via
// their Animators field, brushes likewise) are all covered; an
// unrecognized variant returns nil rather than panicking, since not every
// caller of Animators() can be sure in advance that n animates anything.
func Animators(n Node) []Animator {

	switch v := n.(type) {
	case *ContainerVisual:
		return v.Animators
	case *ShapeVisual:
		return v.Animators
	case *SpriteVisual:
		return v.Animators
	case *ContainerShape:
		return v.Animators
	case *SpriteShape:
		return v.Animators
	case *ColorBrush:
		return v.Animators
	case *SurfaceBrush:
		return v.Animators
	case *InsetClip:
		return v.Animators
	case *PathGeometry:
		return v.Animators
	case *EllipseGeometry:
		return v.Animators
	case *RectangleGeometry:
		return v.Animators
	case *RoundedRectangleGeometry:
		return v.Animators
	case *AnimationController:
		return v.Animators
	default:
		return nil
	}
}

// SetAnimators replaces the animator list owned by n. Panics
// (Unreachable) if n cannot own animators.
func SetAnimators(n Node, animators []Animator) {

	switch v := n.(type) {
	case *ContainerVisual:
		v.Animators = animators
	case *ShapeVisual:
		v.Animators = animators
	case *SpriteVisual:
		v.Animators = animators
	case *ContainerShape:
		v.Animators = animators
	case *SpriteShape:
		v.Animators = animators
	case *ColorBrush:
		v.Animators = animators
	case *SurfaceBrush:
		v.Animators = animators
	case *InsetClip:
		v.Animators = animators
	case *PathGeometry:
		v.Animators = animators
	case *EllipseGeometry:
		v.Animators = animators
	case *RectangleGeometry:
		v.Animators = animators
	case *RoundedRectangleGeometry:
		v.Animators = animators
	case *AnimationController:
		v.Animators = animators
	default:
		Unreachable("compgraph.SetAnimators", n)
	}
}

// Properties returns the PropertySet owned by n, or nil if n is not a
// visual or shape (the only variants that carry one).
func Properties(n Node) PropertySet {

	switch v := n.(type) {
	case *ContainerVisual:
		return v.Properties
	case *ShapeVisual:
		return v.Properties
	case *SpriteVisual:
		return v.Properties
	case *ContainerShape:
		return v.Properties
	case *SpriteShape:
		return v.Properties
	default:
		return nil
	}
}

// SetProperties replaces the PropertySet owned by n. Panics
// (Unreachable) if n is not a visual or shape.
func SetProperties(n Node, props PropertySet) {

	switch v := n.(type) {
	case *ContainerVisual:
		v.Properties = props
	case *ShapeVisual:
		v.Properties = props
	case *SpriteVisual:
		v.Properties = props
	case *ContainerShape:
		v.Properties = props
	case *SpriteShape:
		v.Properties = props
	default:
		Unreachable("compgraph.SetProperties", n)
	}
}

// TransformSlotsOf returns a pointer to the live TransformSlots embedded
// in n, so callers may read or mutate it in place. Panics (Unreachable)
// if n is not a visual or shape.
func TransformSlotsOf(n Node) *TransformSlots {

	switch v := n.(type) {
	case *ContainerVisual:
		return &v.TransformSlots
	case *ShapeVisual:
		return &v.TransformSlots
	case *SpriteVisual:
		return &v.TransformSlots
	case *ContainerShape:
		return &v.TransformSlots
	case *SpriteShape:
		return &v.TransformSlots
	default:
		Unreachable("compgraph.TransformSlotsOf", n)
		return nil
	}
}

// StartAnimation binds a new animator for prop on n, appending it to n's
// animator list.
func StartAnimation(n Node, prop string, animation Node) {

	SetAnimators(n, append(Animators(n), Animator{PropertyName: prop, Animation: animation}))
}

// StopAnimation removes the first animator targeting prop on n, if any.
// Returns true if an animator was removed.
func StopAnimation(n Node, prop string) bool {

	animators := Animators(n)
	for i, a := range animators {
		if a.PropertyName == prop {
			SetAnimators(n, append(animators[:i:i], animators[i+1:]...))
			return true
		}
	}
	return false
}

// VisualBaseOf returns a pointer to the live VisualBase embedded in n, or
// nil if n is not one of the three visual variants. Used by code that
// needs Size/Opacity/IsVisible/Clip/BorderMode, which only visuals carry.
func VisualBaseOf(n Node) *VisualBase {

	switch v := n.(type) {
	case *ContainerVisual:
		return &v.VisualBase
	case *ShapeVisual:
		return &v.VisualBase
	case *SpriteVisual:
		return &v.VisualBase
	default:
		return nil
	}
}

// IsAnimated reports whether n has an animator targeting prop.
func IsAnimated(n Node, prop string) bool {

	for _, a := range Animators(n) {
		if a.PropertyName == prop {
			return true
		}
	}
	return false
}
