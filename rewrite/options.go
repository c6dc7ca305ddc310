// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

// DriverStrategy selects one of the two acceptable fixed-point driving
// strategies named in section 4.D.1 (both are observed in the source;
// this implementation picks one as the default and supports the other
// for diagnostics/testing).
type DriverStrategy int

const (
	// ProgressFlag loops while the most recent iteration's pass suite
	// reported at least one rewrite.
	ProgressFlag DriverStrategy = iota
	// NodeCountMonotone loops while the graph's node count strictly
	// decreases between iterations.
	NodeCountMonotone
)

// PassFlag identifies one named pass in the suite (section 4.D.2), for
// use with Options.DisabledPasses. Disabling a pass is a diagnostic and
// testing affordance; production callers should leave DisabledPasses
// at its zero value.
type PassFlag uint32

const (
	PassElideTransparentSpriteShapes PassFlag = 1 << iota
	PassCoalesceSiblingContainerShapes
	PassElideEmptyContainerShapes
	PassElideStructuralContainerShapes
	PassPushContainerShapeTransformsDown
	PassCoalesceSingleChildContainerShapes
	PassPushPropertiesDownToSpriteShape
	PassPushShapeVisibilityDown
	PassPushShapeTreeVisibilityIntoVisualTree
	PassPushPropertiesDownToShapeVisual
	PassCoalesceContainerVisuals
	PassCoalesceOrthogonalVisuals
	PassCoalesceOrthogonalContainerVisuals
	PassRemoveRedundantInsetClipVisuals
)

// Options configures a single Optimize run.
type Options struct {
	Strategy DriverStrategy

	// DisabledPasses suppresses individual passes. Zero value runs the
	// full suite.
	DisabledPasses PassFlag

	// MaxIterations caps the number of fixed-point iterations. Zero
	// means derive the cap from the graph's initial node count plus
	// one, matching the Termination testable property's bound for the
	// node-count strategy (section 8).
	MaxIterations int
}

// DefaultOptions returns the engine's default configuration: the
// progress-flag driver strategy, every pass enabled, and an
// automatically derived iteration cap.
func DefaultOptions() Options {

	return Options{Strategy: ProgressFlag}
}

func (f PassFlag) enabled(disabled PassFlag) bool {

	return disabled&f == 0
}
