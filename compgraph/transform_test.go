// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movin/compgraph/geom2d"
)

func TestTransformSlotsIsDefault(t *testing.T) {

	var slots TransformSlots
	require.True(t, slots.IsDefault())

	offset := geom2d.NewVector2(1, 0)
	slots.Offset = &offset
	require.False(t, slots.IsDefault())
}

func TestTransformSlotsCloneIsDeep(t *testing.T) {

	offset := geom2d.NewVector2(1, 2)
	original := TransformSlots{Offset: &offset}

	clone := original.Clone()
	clone.Offset.X = 99

	assert.Equal(t, float32(1), original.Offset.X, "mutating the clone must not affect the original")
}

func TestTransformSlotsCloneOfAllNilIsAllNil(t *testing.T) {

	var slots TransformSlots
	clone := slots.Clone()
	assert.True(t, clone.IsDefault())
}

func TestTransformSlotsClearResetsEverySlot(t *testing.T) {

	offset := geom2d.NewVector2(1, 0)
	slots := TransformSlots{Offset: &offset}
	slots.Clear()
	assert.True(t, slots.IsDefault())
}
