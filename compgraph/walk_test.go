// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountNodesCountsEachNodeOnce(t *testing.T) {

	leaf := &SpriteShape{}
	shared := &ContainerShape{Shapes: []Node{leaf}}
	root := &ContainerShape{Shapes: []Node{shared}}

	// 3: root, shared, leaf.
	require.Equal(t, 3, CountNodes(root))
}

func TestWalkVisitsOwningEdgesNotNonOwning(t *testing.T) {

	source := &ContainerVisual{}
	surface := &VisualSurface{Source: source}
	brush := &SurfaceBrush{Source: surface}
	sprite := &SpriteVisual{Brush: brush}

	var visited []Node
	Walk(sprite, func(n Node) bool {
		visited = append(visited, n)
		return true
	})

	// sprite, brush, surface are owning edges; the VisualSurface's
	// Source is a non-owning reference and must not be walked into.
	assert.Len(t, visited, 3)
	assert.NotContains(t, visited, source)
}

func TestWalkStopsDescendingWhenVisitReturnsFalse(t *testing.T) {

	child := &SpriteShape{}
	root := &ContainerShape{Shapes: []Node{child}}

	var visited []Node
	Walk(root, func(n Node) bool {
		visited = append(visited, n)
		return n != root
	})

	assert.Equal(t, []Node{root}, visited)
}

func TestOwnedChildrenIncludesAnimatorsAndControllers(t *testing.T) {

	controller := &AnimationController{}
	anim := &KeyFrameAnimation[float32]{}
	ss := &SpriteShape{}
	ss.Animators = []Animator{{PropertyName: "Opacity", Animation: anim, Controller: controller}}

	owned := OwnedChildren(ss)
	assert.Contains(t, owned, Node(anim))
	assert.Contains(t, owned, Node(controller))
}

func TestNonOwningTargetsCoversExpressionReferencesAndVisualSurface(t *testing.T) {

	target := &SpriteVisual{}
	expr := &ExpressionAnimation{References: []ExpressionReference{{Name: "a", Target: target}}}
	assert.Equal(t, []Node{target}, NonOwningTargets(expr))

	surfaceSource := &ContainerVisual{}
	surface := &VisualSurface{Source: surfaceSource}
	assert.Equal(t, []Node{surfaceSource}, NonOwningTargets(surface))
}
