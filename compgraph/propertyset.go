// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// ValueKind tags the type held by a Value.
type ValueKind int

const (
	ValueUnset ValueKind = iota
	ValueScalar
	ValueVector2
	ValueVector3
	ValueVector4
	ValueColor
	ValueBool
	ValueString
)

// Value is a single typed entry in a PropertySet. It is a small tagged
// union rather than a boxed `any`, so PropertySet equality and
// diagnostics never need a type switch over arbitrary Go types.
type Value struct {
	kind    ValueKind
	scalar  float32
	vector2 geom2d.Vector2
	vector3 geom2d.Vector3
	vector4 geom2d.Vector4
	color   geom2d.Color4
	boolean bool
	str     string
}

func ScalarValue(v float32) Value          { return Value{kind: ValueScalar, scalar: v} }
func Vector2Value(v geom2d.Vector2) Value  { return Value{kind: ValueVector2, vector2: v} }
func Vector3Value(v geom2d.Vector3) Value  { return Value{kind: ValueVector3, vector3: v} }
func Vector4Value(v geom2d.Vector4) Value  { return Value{kind: ValueVector4, vector4: v} }
func ColorValue(v geom2d.Color4) Value     { return Value{kind: ValueColor, color: v} }
func BoolValue(v bool) Value               { return Value{kind: ValueBool, boolean: v} }
func StringValue(v string) Value           { return Value{kind: ValueString, str: v} }

// Kind returns the tag identifying which accessor is valid.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Scalar() (float32, bool)          { return v.scalar, v.kind == ValueScalar }
func (v Value) Vector2() (geom2d.Vector2, bool)  { return v.vector2, v.kind == ValueVector2 }
func (v Value) Vector3() (geom2d.Vector3, bool)  { return v.vector3, v.kind == ValueVector3 }
func (v Value) Vector4() (geom2d.Vector4, bool)  { return v.vector4, v.kind == ValueVector4 }
func (v Value) Color() (geom2d.Color4, bool)     { return v.color, v.kind == ValueColor }
func (v Value) Bool() (bool, bool)               { return v.boolean, v.kind == ValueBool }
func (v Value) String() (string, bool)           { return v.str, v.kind == ValueString }

// Equals reports whether v and other hold the same kind and value.
func (v Value) Equals(other Value) bool {

	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueScalar:
		return v.scalar == other.scalar
	case ValueVector2:
		return v.vector2.Equals(other.vector2)
	case ValueVector3:
		return v.vector3.Equals(other.vector3)
	case ValueVector4:
		return v.vector4.Equals(other.vector4)
	case ValueColor:
		return v.color.Equals(other.color)
	case ValueBool:
		return v.boolean == other.boolean
	case ValueString:
		return v.str == other.str
	default:
		return true
	}
}

// PropertySet is a node's auxiliary name -> typed value bag (section
// 3.1), distinct from the fixed transform slots. It is a plain mutable
// map: the Graph Model's mutation operations work in place, matching the
// rest of the composition graph (section 3.5).
type PropertySet map[string]Value

// Clone returns a shallow copy of the property set (Values themselves
// are immutable, so a shallow copy is a full copy).
func (p PropertySet) Clone() PropertySet {

	if p == nil {
		return nil
	}
	out := make(PropertySet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Equals reports whether p and other hold exactly the same keys mapped
// to equal values.
func (p PropertySet) Equals(other PropertySet) bool {

	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}
