// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphindex builds a reverse index from any composition-graph
// node to its owning parent and to the non-owning edges that reference
// it (section 4.B). The index is rebuilt on demand after a batch of
// rewrites that may have invalidated it; individual rewrite helpers may
// instead patch the handful of entries they touch with SetParent/Forget
// so they can run without a full rebuild between them (section 4.B).
package graphindex

import "github.com/movin/compgraph/compgraph"

// Index answers two queries over a composition graph: Parent (the single
// owning edge into a node) and InReferences (the non-owning edges into a
// node, from expression-animation parameters and VisualSurface sources).
//
// An Index holds only borrowed references for the lifetime of a single
// pass iteration; it is discarded and rebuilt between iterations rather
// than kept consistent indefinitely (section 5).
type Index struct {
	root     compgraph.Node
	parent   map[compgraph.Node]compgraph.Node
	inRefs   map[compgraph.Node][]compgraph.Node
	nodeIDs  map[compgraph.Node]string
	nextID   int
}

// Build walks root once along owning edges, recording each child's
// owning parent, and records a non-owning in-reference edge for every
// ExpressionAnimation reference parameter and VisualSurface source
// (section 4.B "Construction").
func Build(root compgraph.Node) *Index {

	idx := &Index{
		root:    root,
		parent:  make(map[compgraph.Node]compgraph.Node),
		inRefs:  make(map[compgraph.Node][]compgraph.Node),
		nodeIDs: make(map[compgraph.Node]string),
	}
	if root == nil {
		return idx
	}
	visited := make(map[compgraph.Node]bool)
	idx.walk(root, visited)
	return idx
}

func (idx *Index) walk(n compgraph.Node, visited map[compgraph.Node]bool) {

	if n == nil || visited[n] {
		return
	}
	visited[n] = true
	idx.label(n)

	for _, child := range compgraph.OwnedChildren(n) {
		idx.parent[child] = n
		idx.walk(child, visited)
	}
	for _, target := range compgraph.NonOwningTargets(n) {
		idx.inRefs[target] = append(idx.inRefs[target], n)
		// Non-owning targets still need their own subtree indexed so
		// that, e.g., a VisualSurface's source visual's descendants are
		// reachable for in-reference queries too.
		idx.walk(target, visited)
	}
}

// Parent returns the single owning parent of n, or nil if n is the root
// (or not present in the index).
func (idx *Index) Parent(n compgraph.Node) compgraph.Node {

	return idx.parent[n]
}

// InReferences returns every node that holds a non-owning reference to
// n (expression-animation parameters, VisualSurface sources).
func (idx *Index) InReferences(n compgraph.Node) []compgraph.Node {

	return idx.inRefs[n]
}

// HasInReferences reports whether any node holds a non-owning reference
// to n. Rewrite rules that would otherwise hoist a property across n
// (e.g. the VisualSurface-safety check) use this to decline when n is
// referenced from outside the owning tree.
func (idx *Index) HasInReferences(n compgraph.Node) bool {

	return len(idx.inRefs[n]) > 0
}

// SetParent patches a single parent-edge entry without a full rebuild.
// Rewrite splice helpers call this for every child they reparent so the
// index stays correct for the remainder of the current pass (section
// 4.B).
func (idx *Index) SetParent(child, parent compgraph.Node) {

	if parent == nil {
		delete(idx.parent, child)
		return
	}
	idx.parent[child] = parent
}

// Forget removes n from the parent index entirely, used when a rewrite
// drops n from the graph (e.g. an elided container, or a pruned empty
// container). It is not an error to look up a forgotten node afterward;
// Parent simply returns nil, matching a node that is no longer reachable
// from the root (section 4.D.6 on tolerating partial pre-emption).
func (idx *Index) Forget(n compgraph.Node) {

	delete(idx.parent, n)
}

// label assigns (memoized) a short debug label to n, used only in log
// and diagnostic strings, never in equality or hashing.
func (idx *Index) label(n compgraph.Node) string {

	if id, ok := idx.nodeIDs[n]; ok {
		return id
	}
	id := newNodeID(n, idx.nextID)
	idx.nextID++
	idx.nodeIDs[n] = id
	return id
}

// Label returns n's memoized debug label, assigning a new one if n was
// not seen during Build (e.g. a node created after the last rebuild).
// It does not add n to the parent or in-reference index.
func (idx *Index) Label(n compgraph.Node) string {

	return idx.label(n)
}
