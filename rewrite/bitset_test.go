// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
)

func TestPropertySetOfReflectsTransformSlots(t *testing.T) {

	offset := geom2d.NewVector2(1, 0)
	shape := &compgraph.ContainerShape{ShapeBase: compgraph.ShapeBase{TransformSlots: compgraph.TransformSlots{Offset: &offset}}}

	bits := PropertySetOf(shape)
	assert.True(t, bits.Has(PropOffset))
	assert.False(t, bits.Has(PropScale))
}

func TestPropertySetOfIncludesVisualOnlyFields(t *testing.T) {

	size := geom2d.NewVector2(10, 10)
	visible := true
	cv := &compgraph.ContainerVisual{VisualBase: compgraph.VisualBase{Size: &size, IsVisible: &visible}}

	bits := PropertySetOf(cv)
	assert.True(t, bits.Has(PropSize))
	assert.True(t, bits.Has(PropIsVisible))
}

func TestPropertySetOfIncludesAnimatorNames(t *testing.T) {

	ss := &compgraph.SpriteShape{}
	ss.Animators = []compgraph.Animator{{PropertyName: "Scale"}}

	bits := PropertySetOf(ss)
	assert.True(t, bits.Has(PropScale))
}

func TestPropertySetOfMapsUnknownAnimatorNameToUnknownBit(t *testing.T) {

	ss := &compgraph.SpriteShape{}
	ss.Animators = []compgraph.Animator{{PropertyName: "CustomEffectParam"}}

	bits := PropertySetOf(ss)
	assert.True(t, bits.HasUnknown())
}

func TestHasOnlyExactMatch(t *testing.T) {

	offset := geom2d.NewVector2(1, 0)
	shape := &compgraph.ContainerShape{ShapeBase: compgraph.ShapeBase{TransformSlots: compgraph.TransformSlots{Offset: &offset}}}

	assert.True(t, HasOnly(shape, PropOffset))
	assert.False(t, HasOnly(shape, PropOffset, PropScale))
	assert.False(t, HasOnly(shape))
}

func TestBitsetIsEmptyAndIntersects(t *testing.T) {

	var empty Bitset
	assert.True(t, empty.IsEmpty())

	a := empty.With(PropScale)
	b := empty.With(PropScale).With(PropOffset)
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Equals(b))
}
