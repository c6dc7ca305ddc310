// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom2d

import "math"

// Matrix3x2 is a 2D affine transform organized as:
//
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0  1  |
//
// stored column-major as [A, B, C, D, Tx, Ty], matching the row/column
// convention used throughout the composition graph's property model.
type Matrix3x2 [6]float32

// Identity returns the identity matrix.
func Identity() Matrix3x2 {

	return Matrix3x2{1, 0, 0, 1, 0, 0}
}

// IsIdentity reports whether this matrix is the identity transform.
func (m Matrix3x2) IsIdentity() bool {

	return m == Matrix3x2{1, 0, 0, 1, 0, 0}
}

// Set sets all six components of this matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix3x2) Set(a, b, c, d, tx, ty float32) *Matrix3x2 {

	m[0] = a
	m[1] = b
	m[2] = c
	m[3] = d
	m[4] = tx
	m[5] = ty
	return m
}

// MakeTranslation sets this matrix to a pure translation by (tx, ty).
// Returns the pointer to this updated matrix.
func (m *Matrix3x2) MakeTranslation(tx, ty float32) *Matrix3x2 {

	return m.Set(1, 0, 0, 1, tx, ty)
}

// MakeScale sets this matrix to a scale by (sx, sy) about the center point (cx, cy).
// Returns the pointer to this updated matrix.
func (m *Matrix3x2) MakeScale(sx, sy, cx, cy float32) *Matrix3x2 {

	return m.Set(sx, 0, 0, sy, cx-sx*cx, cy-sy*cy)
}

// MakeRotationZ sets this matrix to a rotation by angle (radians) about the
// center point (cx, cy).
// Returns the pointer to this updated matrix.
func (m *Matrix3x2) MakeRotationZ(angle, cx, cy float32) *Matrix3x2 {

	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return m.Set(c, s, -s, c, cx-c*cx+s*cy, cy-s*cx-c*cy)
}

// Multiply computes other * m, storing the result in this matrix, i.e. a
// point transformed by the result is first transformed by m, then by other.
// Returns the pointer to this updated matrix.
func (m *Matrix3x2) Multiply(other Matrix3x2) *Matrix3x2 {

	return m.MultiplyMatrices(other, *m)
}

// MultiplyMatrices computes a * b, storing the result in this matrix: a
// point run through the result is first transformed by b, then by a.
// Returns the pointer to this updated matrix.
func (m *Matrix3x2) MultiplyMatrices(a, b Matrix3x2) *Matrix3x2 {

	m[0] = a[0]*b[0] + a[2]*b[1]
	m[1] = a[1]*b[0] + a[3]*b[1]
	m[2] = a[0]*b[2] + a[2]*b[3]
	m[3] = a[1]*b[2] + a[3]*b[3]
	m[4] = a[0]*b[4] + a[2]*b[5] + a[4]
	m[5] = a[1]*b[4] + a[3]*b[5] + a[5]
	return m
}

// TransformPoint applies this matrix to the point (x, y) and returns the
// transformed point.
func (m Matrix3x2) TransformPoint(x, y float32) Vector2 {

	return Vector2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// Equals returns whether this matrix and other have identical components.
func (m Matrix3x2) Equals(other Matrix3x2) bool {

	return m == other
}
