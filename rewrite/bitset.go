// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import "github.com/movin/compgraph/compgraph"

// PropertyID identifies one bit of a node's property bitset (section
// 4.E, the GLOSSARY's "Property-bitset").
type PropertyID uint

const (
	PropCenterPoint PropertyID = iota
	PropOffset
	PropRotation
	PropScale
	PropTransformMatrix
	PropClip
	PropSize
	PropOpacity
	PropIsVisible
	PropColor
	PropPath
	// PropUnknown is the target of any animated property name this
	// table does not recognize. It is treated as potentially
	// overlapping with every other property (section 4.E): an unknown
	// animated property vetoes every orthogonality check involving its
	// node, since the optimizer cannot prove a rewrite that reorders or
	// drops it is safe.
	PropUnknown
)

// Bitset is a mask over PropertyID, section 4.E's "Property-bitset":
// the set of non-default property slots plus the set of animated
// property names on a node.
type Bitset uint32

func bit(id PropertyID) Bitset { return Bitset(1) << uint(id) }

// With returns b with id's bit set.
func (b Bitset) With(id PropertyID) Bitset { return b | bit(id) }

// Has reports whether id's bit is set in b.
func (b Bitset) Has(id PropertyID) bool { return b&bit(id) != 0 }

// IsEmpty reports whether b has no bits set (the GLOSSARY's bottom, ⊥).
func (b Bitset) IsEmpty() bool { return b == 0 }

// Equals reports whether b and other are the same set of bits.
func (b Bitset) Equals(other Bitset) bool { return b == other }

// Intersects reports whether b and other share any bit.
func (b Bitset) Intersects(other Bitset) bool { return b&other != 0 }

// HasUnknown reports whether b includes the catch-all Unknown bit.
func (b Bitset) HasUnknown() bool { return b.Has(PropUnknown) }

// animatorPropertyIDs maps an animator's target-property name to a
// property id (section 4.E). Names outside this table map to
// PropUnknown.
var animatorPropertyIDs = map[string]PropertyID{
	"CenterPoint":            PropCenterPoint,
	"Offset":                 PropOffset,
	"RotationAngleInDegrees": PropRotation,
	"Scale":                  PropScale,
	"TransformMatrix":        PropTransformMatrix,
	"Clip":                   PropClip,
	"Size":                   PropSize,
	"Opacity":                PropOpacity,
	"IsVisible":              PropIsVisible,
	"Color":                  PropColor,
	"Path":                   PropPath,
}

func propertyIDForAnimatorName(name string) PropertyID {

	if id, ok := animatorPropertyIDs[name]; ok {
		return id
	}
	return PropUnknown
}

// PropertySetOf computes set(n): a bit for every non-default transform
// slot plus (on visuals) Size/Opacity/IsVisible/Clip, unioned with one
// bit per animator bound to n, mapped through animatorPropertyIDs
// (section 4.E).
func PropertySetOf(n compgraph.Node) Bitset {

	var b Bitset
	slots := safeTransformSlots(n)
	if slots != nil {
		if slots.CenterPoint != nil {
			b = b.With(PropCenterPoint)
		}
		if slots.Offset != nil {
			b = b.With(PropOffset)
		}
		if slots.RotationAngleInDegrees != nil {
			b = b.With(PropRotation)
		}
		if slots.Scale != nil {
			b = b.With(PropScale)
		}
		if slots.TransformMatrix != nil {
			b = b.With(PropTransformMatrix)
		}
	}

	if vb := compgraph.VisualBaseOf(n); vb != nil {
		if vb.Size != nil {
			b = b.With(PropSize)
		}
		if vb.Opacity != nil {
			b = b.With(PropOpacity)
		}
		if vb.IsVisible != nil {
			b = b.With(PropIsVisible)
		}
		if vb.Clip != nil {
			b = b.With(PropClip)
		}
	}

	for _, a := range compgraph.Animators(n) {
		b = b.With(propertyIDForAnimatorName(a.PropertyName))
	}
	return b
}

// safeTransformSlots returns n's TransformSlots, or nil if n is neither
// a visual nor a shape (TransformSlotsOf panics on those).
func safeTransformSlots(n compgraph.Node) *compgraph.TransformSlots {

	if compgraph.IsVisual(n) || compgraph.IsShape(n) {
		return compgraph.TransformSlotsOf(n)
	}
	return nil
}

// HasOnly reports whether n's property bitset is exactly the given set
// of ids and nothing else -- the common "set(n) == {X}" precondition
// shape used throughout section 4.D.3.
func HasOnly(n compgraph.Node, ids ...PropertyID) bool {

	var want Bitset
	for _, id := range ids {
		want = want.With(id)
	}
	return PropertySetOf(n).Equals(want)
}
