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
	"github.com/movin/compgraph/graphindex"
)

func TestPushPropertiesDownToShapeVisualR10(t *testing.T) {

	size := geom2d.NewVector2(50, 50)
	sv := &compgraph.ShapeVisual{VisualBase: compgraph.VisualBase{Size: &size}}
	cv := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		Size:     &size,
		Clip:     &compgraph.InsetClip{},
		Children: []compgraph.Node{sv},
	}}
	var root compgraph.Node = cv

	changed := pushPropertiesDownToShapeVisual(&root)
	require.True(t, changed)
	assert.Nil(t, cv.Clip)
	assert.Nil(t, cv.Size)
}

func TestPushPropertiesDownToShapeVisualDeclinesOnSizeMismatch(t *testing.T) {

	outer := geom2d.NewVector2(50, 50)
	inner := geom2d.NewVector2(10, 10)
	sv := &compgraph.ShapeVisual{VisualBase: compgraph.VisualBase{Size: &inner}}
	cv := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		Size:     &outer,
		Clip:     &compgraph.InsetClip{},
		Children: []compgraph.Node{sv},
	}}
	var root compgraph.Node = cv

	changed := pushPropertiesDownToShapeVisual(&root)
	assert.False(t, changed)
	assert.NotNil(t, cv.Clip)
}

func TestCoalesceContainerVisualsR11(t *testing.T) {

	leaf := &compgraph.SpriteVisual{}
	var root compgraph.Node = &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{leaf}}}
	idx := graphindex.Build(root)

	changed := coalesceContainerVisuals(idx, &root)
	require.True(t, changed)
	assert.Equal(t, compgraph.Node(leaf), root)
}

func TestCoalesceOrthogonalVisualsR12(t *testing.T) {

	opacity := float32(0.5)
	offset := geom2d.NewVector2(1, 2)
	sprite := &compgraph.SpriteVisual{VisualBase: compgraph.VisualBase{TransformSlots: compgraph.TransformSlots{Offset: &offset}}}
	inner := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Opacity: &opacity, Children: []compgraph.Node{sprite}}}
	outer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{inner}}}
	var root compgraph.Node = outer
	idx := graphindex.Build(root)

	changed := coalesceOrthogonalVisuals(idx, &root)
	require.True(t, changed)
	require.Len(t, outer.Children, 1)
	merged, ok := outer.Children[0].(*compgraph.SpriteVisual)
	require.True(t, ok)
	assert.Equal(t, sprite, merged)
	assert.NotNil(t, merged.Opacity)
	assert.NotNil(t, merged.Offset)
}

func TestCoalesceOrthogonalVisualsDeclinesWhenNotOrthogonal(t *testing.T) {

	scale := geom2d.NewVector2(2, 2)
	offset := geom2d.NewVector2(1, 0)
	sprite := &compgraph.SpriteVisual{VisualBase: compgraph.VisualBase{TransformSlots: compgraph.TransformSlots{Offset: &offset}}}
	inner := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		TransformSlots: compgraph.TransformSlots{Scale: &scale},
		Children:       []compgraph.Node{sprite},
	}}
	outer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{inner}}}
	var root compgraph.Node = outer
	idx := graphindex.Build(root)

	changed := coalesceOrthogonalVisuals(idx, &root)
	assert.False(t, changed)
	require.Len(t, outer.Children, 1)
	_, stillContainer := outer.Children[0].(*compgraph.ContainerVisual)
	assert.True(t, stillContainer)
}

func TestCoalesceOrthogonalVisualsDeclinesWhenVisualSurfaceSource(t *testing.T) {

	opacity := float32(0.5)
	sprite := &compgraph.SpriteVisual{}
	inner := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Opacity: &opacity, Children: []compgraph.Node{sprite}}}
	surface := &compgraph.VisualSurface{Source: inner}
	outer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{inner, surface}}}
	var root compgraph.Node = outer
	idx := graphindex.Build(root)

	changed := coalesceOrthogonalVisuals(idx, &root)
	assert.False(t, changed, "a VisualSurface source must never be eliminated by R12")
}

func TestCoalesceOrthogonalContainerVisualsR13(t *testing.T) {

	opacity := float32(0.5)
	offset := geom2d.NewVector2(1, 2)
	grandchild := &compgraph.SpriteVisual{}
	child := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		TransformSlots: compgraph.TransformSlots{Offset: &offset},
		Children:       []compgraph.Node{grandchild},
	}}
	parent := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Opacity: &opacity, Children: []compgraph.Node{child}}}
	outer := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Children: []compgraph.Node{parent}}}
	var root compgraph.Node = outer
	idx := graphindex.Build(root)

	changed := coalesceOrthogonalContainerVisuals(idx, &root)
	require.True(t, changed)
	require.Len(t, parent.Children, 1)
	assert.Equal(t, compgraph.Node(grandchild), parent.Children[0])
	assert.NotNil(t, parent.Opacity)
	assert.NotNil(t, parent.Offset)
}

func TestRemoveRedundantInsetClipVisualsR14(t *testing.T) {

	size := geom2d.NewVector2(50, 50)
	sv := &compgraph.ShapeVisual{VisualBase: compgraph.VisualBase{Size: &size}}
	cv := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{
		Size:     &size,
		Clip:     &compgraph.InsetClip{},
		Children: []compgraph.Node{sv},
	}}
	var root compgraph.Node = cv
	idx := graphindex.Build(root)

	changed := removeRedundantInsetClipVisuals(idx, &root)
	require.True(t, changed)
	assert.Equal(t, compgraph.Node(sv), root)
}
