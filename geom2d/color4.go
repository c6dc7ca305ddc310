// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom2d

// Color4 describes an RGBA color with components in [0, 1].
type Color4 struct {
	R float32
	G float32
	B float32
	A float32
}

// NewColor4 creates and returns a new Color4 with the specified components.
func NewColor4(r, g, b, a float32) Color4 {

	return Color4{R: r, G: g, B: b, A: a}
}

// IsTransparent reports whether this color's alpha channel is exactly zero.
func (c Color4) IsTransparent() bool {

	return c.A == 0
}

// Equals returns whether this color and other have identical components.
func (c Color4) Equals(other Color4) bool {

	return c == other
}
