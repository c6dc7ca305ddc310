// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/movin/compgraph/geom2d"
)

func TestEqualNilNodes(t *testing.T) {

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, &ContainerShape{}))
	assert.False(t, Equal(&ContainerShape{}, nil))
}

func TestEqualDifferentKindsAreUnequal(t *testing.T) {

	assert.False(t, Equal(&ContainerShape{}, &ContainerVisual{}))
}

// TestEqualStructurallyIdenticalGraphsBuiltSeparately covers the reason
// Equal exists: two independently-constructed trees sharing no pointers
// still compare equal when every field matches recursively.
func TestEqualStructurallyIdenticalGraphsBuiltSeparately(t *testing.T) {

	build := func() Node {
		offset := geom2d.NewVector2(1, 2)
		return &ContainerShape{
			ShapeBase: ShapeBase{TransformSlots: TransformSlots{Offset: &offset}},
			Shapes: []Node{
				&SpriteShape{
					Geometry:  &EllipseGeometry{Radius: geom2d.NewVector2(5, 5)},
					FillBrush: &ColorBrush{Color: geom2d.NewColor4(1, 0, 0, 1)},
				},
			},
		}
	}

	assert.True(t, Equal(build(), build()))
}

func TestEqualDetectsChildOrderDifference(t *testing.T) {

	a := &ContainerShape{Shapes: []Node{
		&SpriteShape{FillBrush: &ColorBrush{Color: geom2d.NewColor4(1, 0, 0, 1)}},
		&SpriteShape{FillBrush: &ColorBrush{Color: geom2d.NewColor4(0, 1, 0, 1)}},
	}}
	b := &ContainerShape{Shapes: []Node{
		&SpriteShape{FillBrush: &ColorBrush{Color: geom2d.NewColor4(0, 1, 0, 1)}},
		&SpriteShape{FillBrush: &ColorBrush{Color: geom2d.NewColor4(1, 0, 0, 1)}},
	}}

	assert.False(t, Equal(a, b))
}

func TestEqualDetectsTransformSlotDifference(t *testing.T) {

	scaleA := geom2d.NewVector2(2, 2)
	scaleB := geom2d.NewVector2(3, 3)
	a := &ContainerVisual{VisualBase: VisualBase{TransformSlots: TransformSlots{Scale: &scaleA}}}
	b := &ContainerVisual{VisualBase: VisualBase{TransformSlots: TransformSlots{Scale: &scaleB}}}

	assert.False(t, Equal(a, b))
}

func TestEqualComparesAnimatorsByValueNotIdentity(t *testing.T) {

	keyframeAnim := func() *KeyFrameAnimation[float32] {
		return &KeyFrameAnimation[float32]{Keyframes: []Keyframe[float32]{
			{Progress: 0, Value: 0, Easing: &LinearEasing{}},
			{Progress: 1, Value: 1, Easing: &LinearEasing{}},
		}}
	}

	a := &SpriteVisual{VisualBase: VisualBase{Animators: []Animator{
		{PropertyName: "Opacity", Animation: keyframeAnim()},
	}}}
	b := &SpriteVisual{VisualBase: VisualBase{Animators: []Animator{
		{PropertyName: "Opacity", Animation: keyframeAnim()},
	}}}

	assert.True(t, Equal(a, b), "distinct but value-equal animation objects must compare equal")
}

// TestEqualExpressionReferenceSelfVsExternal mirrors rule R2's expression
// comparison semantics (SPEC_FULL part V.1): a self-reference on one side
// must not be treated as equal to an external reference on the other,
// even if the external reference happens to point at a structurally
// identical node.
func TestEqualExpressionReferenceSelfVsExternal(t *testing.T) {

	other := &ContainerShape{}
	selfReferencing := &ExpressionAnimation{Expression: "p"}
	selfReferencing.References = []ExpressionReference{{Name: "p", Target: selfReferencing}}
	externalReferencing := &ExpressionAnimation{
		Expression: "p",
		References: []ExpressionReference{{Name: "p", Target: other}},
	}

	assert.False(t, Equal(selfReferencing, externalReferencing))
}

func TestEqualPropertySetOrderIndependent(t *testing.T) {

	a := &ContainerShape{ShapeBase: ShapeBase{Properties: PropertySet{
		"x": ScalarValue(1), "y": ScalarValue(2),
	}}}
	b := &ContainerShape{ShapeBase: ShapeBase{Properties: PropertySet{
		"y": ScalarValue(2), "x": ScalarValue(1),
	}}}

	assert.True(t, Equal(a, b))
}
