// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

import "github.com/movin/compgraph/geom2d"

// OwnedChildren enumerates every node n owns directly: container
// children, sub-objects referenced by a single field (geometry,
// brushes, clips), and the animation/controller objects bound by n's
// animators. This is a superset of Children, which only covers the
// container-shaped visual/shape variants; a full graph walk (the Graph
// Index's construction, node counting, the serializer) needs the
// complete owning-edge graph.
func OwnedChildren(n Node) []Node {

	var out []Node
	appendIf := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	appendAnimators := func(animators []Animator) {
		for _, a := range animators {
			appendIf(a.Animation)
			if a.Controller != nil {
				out = append(out, a.Controller)
			}
		}
	}

	switch v := n.(type) {
	case *ContainerVisual:
		out = append(out, v.Children...)
		appendIf(v.Clip)
		appendAnimators(v.Animators)
	case *ShapeVisual:
		out = append(out, v.Children...)
		out = append(out, v.Shapes...)
		appendIf(v.Clip)
		appendAnimators(v.Animators)
	case *SpriteVisual:
		out = append(out, v.Children...)
		appendIf(v.Clip)
		appendIf(v.Brush)
		appendAnimators(v.Animators)
	case *ContainerShape:
		out = append(out, v.Shapes...)
		appendAnimators(v.Animators)
	case *SpriteShape:
		appendIf(v.Geometry)
		appendIf(v.FillBrush)
		appendIf(v.StrokeBrush)
		appendAnimators(v.Animators)
	case *PathGeometry:
		appendAnimators(v.Animators)
	case *EllipseGeometry:
		appendAnimators(v.Animators)
	case *RectangleGeometry:
		appendAnimators(v.Animators)
	case *RoundedRectangleGeometry:
		appendAnimators(v.Animators)
	case *ColorBrush:
		appendAnimators(v.Animators)
	case *EffectBrush:
		appendIf(v.Source)
	case *SurfaceBrush:
		appendIf(v.Source) // owns the VisualSurface object itself
		appendAnimators(v.Animators)
	case *InsetClip:
		appendAnimators(v.Animators)
	case *GeometricClip:
		appendIf(v.Geometry)
	case *VisualSurface:
		// Source is a non-owning reference (section 3.4); never appended here.
	case *AnimationController:
		appendAnimators(v.Animators)
	case *ExpressionAnimation:
		// References are non-owning (section 3.4); never appended here.
	case *KeyFrameAnimation[float32]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *KeyFrameAnimation[geom2d.Vector2]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *KeyFrameAnimation[geom2d.Vector3]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *KeyFrameAnimation[geom2d.Vector4]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *KeyFrameAnimation[geom2d.Color4]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *KeyFrameAnimation[bool]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *KeyFrameAnimation[PathData]:
		out = append(out, keyframeEasings(v.Keyframes)...)
	case *ViewBox:
	}
	return out
}

func keyframeEasings[T Animatable](keyframes []Keyframe[T]) []Node {

	out := make([]Node, 0, len(keyframes))
	for _, kf := range keyframes {
		if kf.Easing != nil {
			out = append(out, kf.Easing)
		}
	}
	return out
}

// NonOwningTargets enumerates the non-owning reference edges leaving n:
// an ExpressionAnimation's reference parameters, and a VisualSurface's
// Source (section 3.4, section 4.B). The ownership walk (Walk, and the
// Graph Index's parent map) never follows these.
func NonOwningTargets(n Node) []Node {

	switch v := n.(type) {
	case *ExpressionAnimation:
		out := make([]Node, 0, len(v.References))
		for _, ref := range v.References {
			if ref.Target != nil {
				out = append(out, ref.Target)
			}
		}
		return out
	case *VisualSurface:
		if v.Source != nil {
			return []Node{v.Source}
		}
	}
	return nil
}

// Walk performs a depth-first traversal of root along owning edges only,
// calling visit for every reachable node exactly once (including root).
// If visit returns false, Walk stops descending into that node's
// children but continues with its siblings.
func Walk(root Node, visit func(Node) bool) {

	if root == nil {
		return
	}
	visited := make(map[Node]bool)
	var walk func(Node)
	walk = func(n Node) {
		if n == nil || visited[n] {
			return
		}
		visited[n] = true
		if !visit(n) {
			return
		}
		for _, child := range OwnedChildren(n) {
			walk(child)
		}
	}
	walk(root)
}

// CountNodes returns the number of distinct nodes reachable from root
// along owning edges, used by the node-count-monotone driver strategy
// (section 4.D.1) and by the Monotonicity testable property (section
// 8).
func CountNodes(root Node) int {

	count := 0
	Walk(root, func(Node) bool {
		count++
		return true
	})
	return count
}
