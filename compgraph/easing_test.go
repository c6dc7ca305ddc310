// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStepLikeOnlyTrueForStepEasing(t *testing.T) {

	assert.True(t, IsStepLike(&StepEasing{}))
	assert.False(t, IsStepLike(&LinearEasing{}))
	assert.False(t, IsStepLike(&HoldEasing{}))
	assert.False(t, IsStepLike(&CubicBezierEasing{}))
	assert.False(t, IsStepLike(nil))
}

func TestKindStringNamesVariantsAndUnknown(t *testing.T) {

	assert.Equal(t, "ShapeVisual", (&ShapeVisual{}).NodeKind().String())
	assert.Equal(t, "SpriteShape", (&SpriteShape{}).NodeKind().String())
	assert.Equal(t, "Unknown", Kind(9999).String())
}
