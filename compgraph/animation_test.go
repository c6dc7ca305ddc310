// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAddKeyframeKeepsAscendingOrder(t *testing.T) {

	anim := &KeyFrameAnimation[float32]{}
	require.True(t, anim.TryAddKeyframe(Keyframe[float32]{Progress: 1, Value: 1}))
	require.True(t, anim.TryAddKeyframe(Keyframe[float32]{Progress: 0, Value: 0}))
	require.True(t, anim.TryAddKeyframe(Keyframe[float32]{Progress: 0.5, Value: 0.5}))

	var progresses []float32
	for _, kf := range anim.Keyframes {
		progresses = append(progresses, kf.Progress)
	}
	assert.Equal(t, []float32{0, 0.5, 1}, progresses)
}

func TestTryAddKeyframeRejectsDuplicateProgress(t *testing.T) {

	anim := &KeyFrameAnimation[float32]{}
	require.True(t, anim.TryAddKeyframe(Keyframe[float32]{Progress: 0.5, Value: 1}))
	require.False(t, anim.TryAddKeyframe(Keyframe[float32]{Progress: 0.5, Value: 2}))
	require.Len(t, anim.Keyframes, 1)
}

func TestIsConstantTrueForZeroOrOneKeyframes(t *testing.T) {

	eq := func(a, b float32) bool { return a == b }
	assert.True(t, (&KeyFrameAnimation[float32]{}).IsConstant(eq))

	anim := &KeyFrameAnimation[float32]{Keyframes: []Keyframe[float32]{{Progress: 0, Value: 1}}}
	assert.True(t, anim.IsConstant(eq))
}

func TestIsConstantFalseWhenValuesDiffer(t *testing.T) {

	anim := &KeyFrameAnimation[float32]{Keyframes: []Keyframe[float32]{
		{Progress: 0, Value: 1},
		{Progress: 1, Value: 2},
	}}
	assert.False(t, anim.IsConstant(func(a, b float32) bool { return a == b }))
}

func TestIsConstantTrueWhenAllValuesEqual(t *testing.T) {

	anim := &KeyFrameAnimation[float32]{Keyframes: []Keyframe[float32]{
		{Progress: 0, Value: 1},
		{Progress: 1, Value: 1},
	}}
	assert.True(t, anim.IsConstant(func(a, b float32) bool { return a == b }))
}
