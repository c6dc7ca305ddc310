// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// Equal reports whether a and b are structurally equivalent composition
// graphs: same variant, same property slots, same owned children and
// animators, recursively. It compares values rather than pointer
// identity, so two independently-built graphs describing the same
// animation compare equal even though they share no nodes, which is the
// point of using it in golden-graph tests instead of reflect.DeepEqual
// (unexported Value/PropertySet fields) or raw pointer comparison
// (defeats the purpose of a structural check).
//
// Non-owning edges (ExpressionReference.Target, VisualSurface.Source)
// are followed one level for identity-shape comparison but not expanded
// recursively, matching the Graph Index's own rule that only owning
// edges are walked (section 4.B, section 5; see OwnedChildren and
// NonOwningTargets in walk.go): comparing them recursively would risk an
// infinite descent through a reference cycle.
func Equal(a, b Node) bool {

	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.NodeKind() != b.NodeKind() {
		return false
	}

	switch av := a.(type) {
	case *ContainerVisual:
		bv := b.(*ContainerVisual)
		return visualBaseEqual(&av.VisualBase, &bv.VisualBase) &&
			nodeListEqual(av.Children, bv.Children)
	case *ShapeVisual:
		bv := b.(*ShapeVisual)
		return visualBaseEqual(&av.VisualBase, &bv.VisualBase) &&
			nodeListEqual(av.Shapes, bv.Shapes)
	case *SpriteVisual:
		bv := b.(*SpriteVisual)
		return visualBaseEqual(&av.VisualBase, &bv.VisualBase) &&
			Equal(av.Brush, bv.Brush)
	case *ContainerShape:
		bv := b.(*ContainerShape)
		return shapeBaseEqual(&av.ShapeBase, &bv.ShapeBase) &&
			nodeListEqual(av.Shapes, bv.Shapes)
	case *SpriteShape:
		bv := b.(*SpriteShape)
		return shapeBaseEqual(&av.ShapeBase, &bv.ShapeBase) &&
			Equal(av.Geometry, bv.Geometry) &&
			Equal(av.FillBrush, bv.FillBrush) &&
			Equal(av.StrokeBrush, bv.StrokeBrush) &&
			float32PtrEq(av.StrokeThickness, bv.StrokeThickness) &&
			av.StrokeStartCap == bv.StrokeStartCap &&
			av.StrokeEndCap == bv.StrokeEndCap &&
			float32SliceEqual(av.StrokeDashArray, bv.StrokeDashArray)
	case *PathGeometry:
		bv := b.(*PathGeometry)
		return geometryBaseEqual(&av.GeometryBase, &bv.GeometryBase) &&
			av.Path.FillType == bv.Path.FillType &&
			byteSliceEqual(av.Path.Commands, bv.Path.Commands)
	case *EllipseGeometry:
		bv := b.(*EllipseGeometry)
		return geometryBaseEqual(&av.GeometryBase, &bv.GeometryBase) &&
			av.Center.Equals(bv.Center) && av.Radius.Equals(bv.Radius)
	case *RectangleGeometry:
		bv := b.(*RectangleGeometry)
		return geometryBaseEqual(&av.GeometryBase, &bv.GeometryBase) &&
			av.Offset.Equals(bv.Offset) && av.Size.Equals(bv.Size)
	case *RoundedRectangleGeometry:
		bv := b.(*RoundedRectangleGeometry)
		return geometryBaseEqual(&av.GeometryBase, &bv.GeometryBase) &&
			av.Offset.Equals(bv.Offset) && av.Size.Equals(bv.Size) &&
			av.CornerRadius.Equals(bv.CornerRadius)
	case *ColorBrush:
		bv := b.(*ColorBrush)
		return av.Color.Equals(bv.Color) && animatorListEqual(av.Animators, bv.Animators)
	case *EffectBrush:
		bv := b.(*EffectBrush)
		return av.EffectName == bv.EffectName && Equal(av.Source, bv.Source) &&
			av.Parameters.Equals(bv.Parameters)
	case *SurfaceBrush:
		bv := b.(*SurfaceBrush)
		return Equal(av.Source, bv.Source) && av.Stretch == bv.Stretch &&
			animatorListEqual(av.Animators, bv.Animators)
	case *InsetClip:
		bv := b.(*InsetClip)
		return float32PtrEq(av.Top, bv.Top) && float32PtrEq(av.Left, bv.Left) &&
			float32PtrEq(av.Right, bv.Right) && float32PtrEq(av.Bottom, bv.Bottom) &&
			vec2PtrEqual(av.CenterPoint, bv.CenterPoint) && vec2PtrEqual(av.Scale, bv.Scale) &&
			animatorListEqual(av.Animators, bv.Animators)
	case *GeometricClip:
		bv := b.(*GeometricClip)
		return Equal(av.Geometry, bv.Geometry)
	case *LinearEasing, *StepEasing, *HoldEasing:
		return true
	case *CubicBezierEasing:
		bv := b.(*CubicBezierEasing)
		return av.C1.Equals(bv.C1) && av.C2.Equals(bv.C2)
	case *ExpressionAnimation:
		bv := b.(*ExpressionAnimation)
		return expressionsEqualPublic(av, bv)
	case *KeyFrameAnimation[float32]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[float32]).Keyframes, func(x, y float32) bool { return x == y })
	case *KeyFrameAnimation[geom2d.Vector2]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[geom2d.Vector2]).Keyframes, geom2d.Vector2.Equals)
	case *KeyFrameAnimation[geom2d.Vector3]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[geom2d.Vector3]).Keyframes, geom2d.Vector3.Equals)
	case *KeyFrameAnimation[geom2d.Vector4]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[geom2d.Vector4]).Keyframes, geom2d.Vector4.Equals)
	case *KeyFrameAnimation[geom2d.Color4]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[geom2d.Color4]).Keyframes, geom2d.Color4.Equals)
	case *KeyFrameAnimation[bool]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[bool]).Keyframes, func(x, y bool) bool { return x == y })
	case *KeyFrameAnimation[PathData]:
		return keyframesEqual(av.Keyframes, b.(*KeyFrameAnimation[PathData]).Keyframes, func(x, y PathData) bool {
			return x.FillType == y.FillType && byteSliceEqual(x.Commands, y.Commands)
		})
	case *AnimationController:
		bv := b.(*AnimationController)
		return av.Paused == bv.Paused && animatorListEqual(av.Animators, bv.Animators)
	case *VisualSurface:
		bv := b.(*VisualSurface)
		return referenceEqual(av.Source, bv.Source) && av.SourceSize.Equals(bv.SourceSize)
	case *ViewBox:
		bv := b.(*ViewBox)
		return av.Size.Equals(bv.Size)
	default:
		Unreachable("compgraph.Equal", a)
		return false
	}
}

// visualBaseEqual compares the state every visual variant shares, minus
// the Children/Shapes/Brush field each variant exposes under its own
// name (handled by Equal's per-variant cases).
func visualBaseEqual(a, b *VisualBase) bool {

	return transformSlotsEqual(&a.TransformSlots, &b.TransformSlots) &&
		vec2PtrEqual(a.Size, b.Size) &&
		float32PtrEq(a.Opacity, b.Opacity) &&
		boolPtrEqual(a.IsVisible, b.IsVisible) &&
		Equal(a.Clip, b.Clip) &&
		a.BorderMode == b.BorderMode &&
		a.Properties.Equals(b.Properties) &&
		animatorListEqual(a.Animators, b.Animators)
}

// shapeBaseEqual compares the state every shape variant shares, minus
// the Shapes/Geometry/brush fields handled per-variant.
func shapeBaseEqual(a, b *ShapeBase) bool {

	return transformSlotsEqual(&a.TransformSlots, &b.TransformSlots) &&
		a.Properties.Equals(b.Properties) &&
		animatorListEqual(a.Animators, b.Animators)
}

// geometryBaseEqual compares the trim range every geometry variant
// shares, minus the shape-specific fields handled per-variant.
func geometryBaseEqual(a, b *GeometryBase) bool {

	return float32PtrEq(a.TrimStart, b.TrimStart) &&
		float32PtrEq(a.TrimEnd, b.TrimEnd) &&
		float32PtrEq(a.TrimOffset, b.TrimOffset) &&
		animatorListEqual(a.Animators, b.Animators)
}

// nodeListEqual compares two owned child sequences elementwise, in
// order: child order is observable (it determines paint/composition
// order), so this is not a set comparison.
func nodeListEqual(a, b []Node) bool {

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// animatorListEqual compares two animator lists elementwise, in order
// (unlike rule R2's animatorListsEqual in package rewrite, which treats
// animator lists as unordered sets for the narrower purpose of deciding
// whether two sibling containers may coalesce).
func animatorListEqual(a, b []Animator) bool {

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].PropertyName != b[i].PropertyName {
			return false
		}
		if !Equal(a[i].Animation, b[i].Animation) {
			return false
		}
		if !controllerEqual(a[i].Controller, b[i].Controller) {
			return false
		}
	}
	return true
}

func controllerEqual(a, b *AnimationController) bool {

	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

// referenceEqual compares a non-owning reference edge (VisualSurface.Source,
// an ExpressionAnimation reference parameter) one level deep: only the
// referenced node's variant, without recursing into whatever it in turn
// references, so that a reference cycle through non-owning edges cannot
// send this comparison into an infinite descent.
func referenceEqual(a, b Node) bool {

	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.NodeKind() != b.NodeKind() {
		return false
	}
	return true
}

// expressionsEqualPublic mirrors package rewrite's expressionsEqual
// (same conjunctive reference-parameter semantics, SPEC_FULL part V.1)
// but compares by name against the referenced node's shape rather than
// by Go pointer identity, since Equal must hold between two
// independently-constructed graphs whose nodes never share an address.
func expressionsEqualPublic(a, b *ExpressionAnimation) bool {

	if a.Expression != b.Expression {
		return false
	}
	if len(a.References) != len(b.References) {
		return false
	}
	for i := range a.References {
		ra, rb := a.References[i], b.References[i]
		if ra.Name != rb.Name {
			return false
		}
		aSelf := ra.Target == Node(a)
		bSelf := rb.Target == Node(b)
		if aSelf != bSelf {
			return false
		}
		if aSelf {
			continue
		}
		if !referenceEqual(ra.Target, rb.Target) {
			return false
		}
	}
	return true
}

func keyframesEqual[T Animatable](a, b []Keyframe[T], valueEqual func(x, y T) bool) bool {

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Progress != b[i].Progress {
			return false
		}
		if !valueEqual(a[i].Value, b[i].Value) {
			return false
		}
		if !Equal(a[i].Easing, b[i].Easing) {
			return false
		}
	}
	return true
}

func transformSlotsEqual(a, b *TransformSlots) bool {

	if !vec2PtrEqual(a.CenterPoint, b.CenterPoint) {
		return false
	}
	if !vec2PtrEqual(a.Offset, b.Offset) {
		return false
	}
	if !float32PtrEq(a.RotationAngleInDegrees, b.RotationAngleInDegrees) {
		return false
	}
	if !vec3PtrEqual(a.RotationAxis, b.RotationAxis) {
		return false
	}
	if !vec2PtrEqual(a.Scale, b.Scale) {
		return false
	}
	switch {
	case a.TransformMatrix == nil && b.TransformMatrix == nil:
		return true
	case a.TransformMatrix == nil || b.TransformMatrix == nil:
		return false
	default:
		return a.TransformMatrix.Equals(*b.TransformMatrix)
	}
}

func vec2PtrEqual(a, b *geom2d.Vector2) bool {

	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return a.Equals(*b)
	}
}

func vec3PtrEqual(a, b *geom2d.Vector3) bool {

	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return a.Equals(*b)
	}
}

func float32PtrEq(a, b *float32) bool {

	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return *a == *b
	}
}

func boolPtrEqual(a, b *bool) bool {

	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return *a == *b
	}
}

func float32SliceEqual(a, b []float32) bool {

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func byteSliceEqual(a, b []byte) bool {

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
