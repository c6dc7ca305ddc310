// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite implements the Rewrite Engine (section 4.D): the
// fixed-point driver plus the suite of local rewrite rules R1-R14 over
// the composition graph's shapes and visuals.
package rewrite

import (
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/graphindex"
	"github.com/movin/compgraph/logger"
	"github.com/movin/compgraph/propsimplify"
)

// log is this package's named sub-logger, found with
// logger.Find("compgraph/rewrite"). It copies the default logger's level
// when created, so its DEBUG output needs SetLevel(logger.DEBUG) on this
// logger itself.
var log = logger.New("rewrite", logger.Default)

// Optimize runs the fixed-point rewrite engine over root and returns
// the (possibly different) root of the optimized graph along with a
// summary of the run. A nil root is returned unchanged.
//
// Each iteration runs simplify_properties over every node, rebuilds the
// Graph Index, then the shape-pass suite followed by the visual-pass
// suite in the order fixed by section 4.D.2. Iteration continues per
// opts.Strategy until no more progress is possible or MaxIterations is
// reached, whichever comes first (section 4.D.1).
func Optimize(root compgraph.Node, opts Options) (compgraph.Node, compgraph.Stats) {

	var stats compgraph.Stats
	if root == nil {
		return nil, stats
	}
	stats.InitialNodeCount = compgraph.CountNodes(root)

	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = stats.InitialNodeCount + 1
	}

	current := root
	prevCount := stats.InitialNodeCount

iterations:
	for i := 0; i < maxIterations; i++ {
		stats.Iterations++

		progress := simplifyAll(current)

		idx := graphindex.Build(current)
		if runShapePasses(idx, &current, opts) {
			progress = true
		}
		if runVisualPasses(idx, &current, opts) {
			progress = true
		}

		count := compgraph.CountNodes(current)
		log.Debug("iteration %d: %d nodes, progress=%v", stats.Iterations, count, progress)

		switch opts.Strategy {
		case NodeCountMonotone:
			if count >= prevCount {
				break iterations
			}
			prevCount = count
		default:
			if !progress {
				break iterations
			}
		}
	}

	stats.FinalNodeCount = compgraph.CountNodes(current)
	log.Info("fixed point reached after %d iterations: %d -> %d nodes", stats.Iterations, stats.InitialNodeCount, stats.FinalNodeCount)
	return current, stats
}

// simplifyAll runs the Property Simplifier over every visual and shape
// reachable from root (section 4.D.2 step 1).
func simplifyAll(root compgraph.Node) bool {

	changed := false
	for _, n := range snapshotNodes(root) {
		if propsimplify.Node(n) {
			changed = true
		}
	}
	return changed
}

// runShapePasses runs the shape-pass suite (section 4.D.2 step 2) in
// order, skipping any pass opts disables.
func runShapePasses(idx *graphindex.Index, root *compgraph.Node, opts Options) bool {

	progress := false
	run := func(flag PassFlag, fn func() bool) {
		if !flag.enabled(opts.DisabledPasses) {
			return
		}
		if fn() {
			progress = true
		}
	}

	run(PassElideTransparentSpriteShapes, func() bool { return elideTransparentSpriteShapes(idx, root) })
	run(PassCoalesceSiblingContainerShapes, func() bool { return coalesceSiblingContainerShapes(idx, root) })
	run(PassElideEmptyContainerShapes, func() bool { return elideEmptyContainerShapes(idx, root) })
	run(PassElideStructuralContainerShapes, func() bool { return elideStructuralContainerShapes(idx, root) })
	run(PassPushContainerShapeTransformsDown, func() bool { return pushContainerShapeTransformsDown(idx, root) })
	run(PassCoalesceSingleChildContainerShapes, func() bool { return coalesceSingleChildContainerShapes(idx, root) })
	run(PassPushPropertiesDownToSpriteShape, func() bool { return pushPropertiesDownToSpriteShape(idx, root) })
	run(PassPushShapeVisibilityDown, func() bool { return pushShapeVisibilityDown(idx, root) })
	run(PassPushShapeTreeVisibilityIntoVisualTree, func() bool { return pushShapeTreeVisibilityIntoVisualTree(root) })

	return progress
}

// runVisualPasses runs the visual-pass suite (section 4.D.2 step 3) in
// order, skipping any pass opts disables.
func runVisualPasses(idx *graphindex.Index, root *compgraph.Node, opts Options) bool {

	progress := false
	run := func(flag PassFlag, fn func() bool) {
		if !flag.enabled(opts.DisabledPasses) {
			return
		}
		if fn() {
			progress = true
		}
	}

	run(PassPushPropertiesDownToShapeVisual, func() bool { return pushPropertiesDownToShapeVisual(root) })
	run(PassCoalesceContainerVisuals, func() bool { return coalesceContainerVisuals(idx, root) })
	run(PassCoalesceOrthogonalVisuals, func() bool { return coalesceOrthogonalVisuals(idx, root) })
	run(PassCoalesceOrthogonalContainerVisuals, func() bool { return coalesceOrthogonalContainerVisuals(idx, root) })
	run(PassRemoveRedundantInsetClipVisuals, func() bool { return removeRedundantInsetClipVisuals(idx, root) })

	return progress
}
