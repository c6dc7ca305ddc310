// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
)

// TestEmptyContainerPrune covers spec.md section 8's concrete scenario 1:
// a ContainerShape containing only an empty ContainerShape collapses to
// nothing at all.
func TestEmptyContainerPrune(t *testing.T) {

	root := compgraph.Node(&compgraph.ContainerShape{
		Shapes: []compgraph.Node{&compgraph.ContainerShape{}},
	})

	got, stats := Optimize(root, DefaultOptions())
	assert.Nil(t, got)
	assert.Equal(t, 0, stats.FinalNodeCount)
}

// TestStructuralSplice covers scenario 2: a bare wrapper ContainerVisual
// around a single ShapeVisual disappears, leaving the ShapeVisual as the
// new root.
func TestStructuralSplice(t *testing.T) {

	size := geom2d.NewVector2(100, 100)
	shapeVisual := &compgraph.ShapeVisual{VisualBase: compgraph.VisualBase{Size: &size}}
	root := compgraph.Node(&compgraph.ContainerVisual{
		VisualBase: compgraph.VisualBase{Children: []compgraph.Node{shapeVisual}},
	})

	got, _ := Optimize(root, DefaultOptions())
	require.True(t, compgraph.Equal(compgraph.Node(shapeVisual), got))
}

// TestTransparentShapeRemoval covers scenario 4: a SpriteShape with a
// fully transparent fill and no stroke disappears from its parent.
func TestTransparentShapeRemoval(t *testing.T) {

	transparentFill := &compgraph.ColorBrush{Color: geom2d.NewColor4(1, 0, 0, 0)}
	transparent := &compgraph.SpriteShape{FillBrush: transparentFill}
	kept := &compgraph.SpriteShape{FillBrush: &compgraph.ColorBrush{Color: geom2d.NewColor4(0, 0, 1, 1)}}

	root := compgraph.Node(&compgraph.ContainerShape{Shapes: []compgraph.Node{transparent, kept}})

	got, _ := Optimize(root, DefaultOptions())
	require.NotNil(t, got)
	cs, ok := got.(*compgraph.ContainerShape)
	if ok {
		for _, child := range cs.Shapes {
			assert.False(t, compgraph.Equal(child, compgraph.Node(transparent)), "transparent shape must not survive")
		}
	} else {
		assert.True(t, compgraph.Equal(compgraph.Node(kept), got))
	}
}

// TestOrthogonalCoalesce covers scenario 5: a ContainerVisual{Opacity}
// with a sole SpriteVisual{Offset} child merges into one SpriteVisual
// carrying both properties, when the outer container's own parent is
// itself a ContainerVisual (rule R12's precondition).
func TestOrthogonalCoalesce(t *testing.T) {

	opacity := float32(0.5)
	offset := geom2d.NewVector2(1, 2)
	sprite := &compgraph.SpriteVisual{VisualBase: compgraph.VisualBase{TransformSlots: compgraph.TransformSlots{Offset: &offset}}}
	inner := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		Opacity:  &opacity,
		Children: []compgraph.Node{sprite},
	}}
	outer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{inner}}}

	got, _ := Optimize(compgraph.Node(outer), DefaultOptions())

	sv, ok := got.(*compgraph.SpriteVisual)
	require.True(t, ok, "expected the coalesced result to be the sole SpriteVisual")
	require.NotNil(t, sv.Opacity)
	assert.Equal(t, float32(0.5), *sv.Opacity)
	require.NotNil(t, sv.Offset)
	assert.True(t, sv.Offset.Equals(offset))
}

// TestOrderViolationBlocked covers scenario 6: a parent Scale must never
// coalesce over a child Offset (Scale precedes Offset in the transform
// evaluation order).
func TestOrderViolationBlocked(t *testing.T) {

	scale := geom2d.NewVector2(2, 2)
	offset := geom2d.NewVector2(3, 0)
	childContainer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{TransformSlots: compgraph.TransformSlots{Offset: &offset}}}
	parent := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		TransformSlots: compgraph.TransformSlots{Scale: &scale},
		Children:       []compgraph.Node{childContainer},
	}}
	outer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{parent}}}

	got, _ := Optimize(compgraph.Node(outer), DefaultOptions())

	// parent must still exist somewhere in the tree, still carrying Scale
	// and still the owner of a child that still carries Offset: the
	// rewrite must have declined.
	var found *compgraph.ContainerVisual
	compgraph.Walk(got, func(n compgraph.Node) bool {
		if cv, ok := n.(*compgraph.ContainerVisual); ok && cv.Scale != nil {
			found = cv
		}
		return true
	})
	require.NotNil(t, found, "a ContainerVisual still carrying Scale must survive")
	require.Len(t, compgraph.Children(found), 1)
	child, ok := compgraph.Children(found)[0].(*compgraph.ContainerVisual)
	require.True(t, ok)
	assert.NotNil(t, child.Offset)
}

func TestOptimizeOnNilRootIsNoop(t *testing.T) {

	got, stats := Optimize(nil, DefaultOptions())
	assert.Nil(t, got)
	assert.Equal(t, compgraph.Stats{}, stats)
}

func TestOptimizeIsIdempotentAtFixedPoint(t *testing.T) {

	root := buildSampleGraph()
	once, _ := Optimize(root, DefaultOptions())
	twice, _ := Optimize(once, DefaultOptions())

	assert.Equal(t, compgraph.CountNodes(once), compgraph.CountNodes(twice))
}

func TestOptimizeNeverIncreasesNodeCount(t *testing.T) {

	root := buildSampleGraph()
	before := compgraph.CountNodes(root)

	_, stats := Optimize(root, DefaultOptions())
	assert.LessOrEqual(t, stats.FinalNodeCount, before)
	assert.Equal(t, before, stats.InitialNodeCount)
}

func TestNodeCountMonotoneStrategyConverges(t *testing.T) {

	root := buildSampleGraph()
	opts := DefaultOptions()
	opts.Strategy = NodeCountMonotone

	got, stats := Optimize(root, opts)
	require.NotNil(t, got)
	assert.LessOrEqual(t, stats.Iterations, stats.InitialNodeCount+1)
}

func TestDisabledPassIsNotApplied(t *testing.T) {

	transparentFill := &compgraph.ColorBrush{Color: geom2d.NewColor4(1, 0, 0, 0)}
	transparent := &compgraph.SpriteShape{FillBrush: transparentFill}
	kept := &compgraph.SpriteShape{FillBrush: &compgraph.ColorBrush{Color: geom2d.NewColor4(0, 0, 1, 1)}}
	root := compgraph.Node(&compgraph.ContainerShape{Shapes: []compgraph.Node{transparent, kept}})

	opts := DefaultOptions()
	opts.DisabledPasses = PassElideTransparentSpriteShapes

	got, _ := Optimize(root, opts)
	var sawTransparent bool
	compgraph.Walk(got, func(n compgraph.Node) bool {
		if n == compgraph.Node(transparent) {
			sawTransparent = true
		}
		return true
	})
	assert.True(t, sawTransparent, "disabling R1 must keep the transparent sprite shape in place")
}

// buildSampleGraph assembles a small graph exercising several rewrite
// preconditions at once (a structural wrapper visual, a structural
// container shape, a transparent shape) for the driver-level properties
// (idempotence, monotonicity, termination).
func buildSampleGraph() compgraph.Node {

	transparentFill := &compgraph.ColorBrush{Color: geom2d.NewColor4(0, 0, 0, 0)}
	transparent := &compgraph.SpriteShape{FillBrush: transparentFill}
	visibleFill := &compgraph.ColorBrush{Color: geom2d.NewColor4(1, 1, 1, 1)}
	visible := &compgraph.SpriteShape{
		Geometry:  &compgraph.EllipseGeometry{Radius: geom2d.NewVector2(10, 10)},
		FillBrush: visibleFill,
	}
	shapes := &compgraph.ContainerShape{Shapes: []compgraph.Node{transparent, visible}}

	size := geom2d.NewVector2(64, 64)
	shapeVisual := &compgraph.ShapeVisual{
		VisualBase: compgraph.VisualBase{Size: &size},
		Shapes:     []compgraph.Node{shapes},
	}

	wrapper := &compgraph.ContainerVisual{
		VisualBase: compgraph.VisualBase{Children: []compgraph.Node{shapeVisual}},
	}
	return wrapper
}
