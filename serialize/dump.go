// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serialize implements the two optional downstream collaborators
// named in section 6 of the spec: a YAML and an XML dump of the
// composition graph for human inspection. Round-tripping back into a
// graph is explicitly not a requirement (section 6), so the tree built
// here is a flattened, best-effort description rather than a faithful
// re-encoding of every field compgraph carries.
package serialize

import (
	"fmt"

	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
)

// node is the shared tree shape both the YAML and XML encoders walk.
// Field order here drives field order in the emitted document.
type node struct {
	Kind       string            `yaml:"kind" xml:"kind,attr"`
	Name       string            `yaml:"name,omitempty" xml:"name,attr,omitempty"`
	Transform  map[string]string `yaml:"transform,omitempty" xml:"transform,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty" xml:"properties,omitempty"`
	Animators  []string          `yaml:"animators,omitempty" xml:"animator,omitempty"`
	Children   []*node           `yaml:"children,omitempty" xml:"children>node,omitempty"`
}

// build walks n's owning edges and produces the dump tree rooted at it.
// Only container-shaped children (compgraph.Children) are descended into
// as Children; single-valued owned references (a sprite shape's
// geometry and brushes, a visual's clip) are folded into Properties as
// their kind name rather than nested, since the dump's purpose is
// inspection, not a complete re-derivation of the graph. A sprite
// visual's brush, and a VisualSurface's source, are not recorded.
func build(n compgraph.Node) *node {

	if n == nil {
		return nil
	}
	out := &node{
		Kind: n.NodeKind().String(),
		Name: n.Base().Name,
	}
	out.Transform = transformFields(n)
	out.Properties = propertyFields(n)
	out.Animators = animatorFields(n)

	for _, c := range compgraph.Children(n) {
		if child := build(c); child != nil {
			out.Children = append(out.Children, child)
		}
	}
	return out
}

func transformFields(n compgraph.Node) map[string]string {

	if !compgraph.IsVisual(n) && !compgraph.IsShape(n) {
		return nil
	}
	slots := compgraph.TransformSlotsOf(n)
	out := make(map[string]string)
	if slots.CenterPoint != nil {
		out["centerPoint"] = vector2String(*slots.CenterPoint)
	}
	if slots.Offset != nil {
		out["offset"] = vector2String(*slots.Offset)
	}
	if slots.RotationAngleInDegrees != nil {
		out["rotationAngleInDegrees"] = fmt.Sprintf("%g", *slots.RotationAngleInDegrees)
	}
	if slots.RotationAxis != nil {
		out["rotationAxis"] = vector3String(*slots.RotationAxis)
	}
	if slots.Scale != nil {
		out["scale"] = vector2String(*slots.Scale)
	}
	if slots.TransformMatrix != nil {
		out["transformMatrix"] = matrixString(*slots.TransformMatrix)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func propertyFields(n compgraph.Node) map[string]string {

	out := make(map[string]string)
	if vb := compgraph.VisualBaseOf(n); vb != nil {
		if vb.Size != nil {
			out["size"] = vector2String(*vb.Size)
		}
		if vb.Opacity != nil {
			out["opacity"] = fmt.Sprintf("%g", *vb.Opacity)
		}
		if vb.IsVisible != nil {
			out["isVisible"] = fmt.Sprintf("%t", *vb.IsVisible)
		}
		if vb.Clip != nil {
			out["clip"] = vb.Clip.NodeKind().String()
		}
	}
	if ss, ok := n.(*compgraph.SpriteShape); ok {
		if ss.Geometry != nil {
			out["geometry"] = ss.Geometry.NodeKind().String()
		}
		if ss.FillBrush != nil {
			out["fillBrush"] = ss.FillBrush.NodeKind().String()
		}
		if ss.StrokeBrush != nil {
			out["strokeBrush"] = ss.StrokeBrush.NodeKind().String()
		}
	}
	for k, v := range compgraph.Properties(n) {
		out["prop."+k] = propertyValueString(v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func propertyValueString(v compgraph.Value) string {

	switch v.Kind() {
	case compgraph.ValueScalar:
		f, _ := v.Scalar()
		return fmt.Sprintf("%g", f)
	case compgraph.ValueVector2:
		vec, _ := v.Vector2()
		return vector2String(vec)
	case compgraph.ValueBool:
		b, _ := v.Bool()
		return fmt.Sprintf("%t", b)
	case compgraph.ValueString:
		s, _ := v.String()
		return s
	default:
		return "<unset>"
	}
}

func animatorFields(n compgraph.Node) []string {

	animators := compgraph.Animators(n)
	if len(animators) == 0 {
		return nil
	}
	out := make([]string, 0, len(animators))
	for _, a := range animators {
		kind := "nil"
		if a.Animation != nil {
			kind = a.Animation.NodeKind().String()
		}
		out = append(out, fmt.Sprintf("%s:%s", a.PropertyName, kind))
	}
	return out
}

func vector2String(v geom2d.Vector2) string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func vector3String(v geom2d.Vector3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func matrixString(m geom2d.Matrix3x2) string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}
