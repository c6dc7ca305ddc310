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

func TestValueKindRoundTrip(t *testing.T) {

	v := ScalarValue(1.5)
	require.Equal(t, ValueScalar, v.Kind())
	f, ok := v.Scalar()
	require.True(t, ok)
	require.Equal(t, float32(1.5), f)

	_, ok = v.Vector2()
	require.False(t, ok)
}

func TestValueEqualsRequiresSameKind(t *testing.T) {

	require.True(t, ScalarValue(1).Equals(ScalarValue(1)))
	require.False(t, ScalarValue(1).Equals(ScalarValue(2)))
	require.False(t, ScalarValue(1).Equals(BoolValue(true)))
}

func TestPropertySetEqualsIgnoresKeyOrder(t *testing.T) {

	a := PropertySet{"x": ScalarValue(1), "y": Vector2Value(geom2d.NewVector2(1, 2))}
	b := PropertySet{"y": Vector2Value(geom2d.NewVector2(1, 2)), "x": ScalarValue(1)}
	assert.True(t, a.Equals(b))

	b["x"] = ScalarValue(2)
	assert.False(t, a.Equals(b))
}

func TestPropertySetCloneIsIndependent(t *testing.T) {

	a := PropertySet{"x": ScalarValue(1)}
	b := a.Clone()
	b["x"] = ScalarValue(2)

	assert.True(t, a.Equals(PropertySet{"x": ScalarValue(1)}))
	assert.False(t, a.Equals(b))
}

func TestNilPropertySetCloneIsNil(t *testing.T) {

	var p PropertySet
	require.Nil(t, p.Clone())
}
