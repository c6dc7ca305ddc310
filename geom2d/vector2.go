// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom2d provides the 2D vector and matrix primitives used by the
// composition graph: points, scale/offset vectors and the single affine
// matrix that every transform slot collapses into.
package geom2d

import "math"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// NewVector2 creates and returns a new Vector2 with the specified x and y components.
func NewVector2(x, y float32) Vector2 {

	return Vector2{X: x, Y: y}
}

// Set sets this vector X and Y components.
// Returns the pointer to this updated vector.
func (v *Vector2) Set(x, y float32) *Vector2 {

	v.X = x
	v.Y = y
	return v
}

// IsZero returns whether this vector is the zero vector.
func (v Vector2) IsZero() bool {

	return v.X == 0 && v.Y == 0
}

// Equals returns whether this vector and other have identical components.
func (v Vector2) Equals(other Vector2) bool {

	return v.X == other.X && v.Y == other.Y
}

// Add adds other to this vector and returns the resulting vector.
func (v Vector2) Add(other Vector2) Vector2 {

	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {

	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Lerp returns the linear interpolation between this vector and other at parameter t.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {

	return Vector2{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}
