// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

// Stats summarizes one run of the rewrite engine's fixed-point driver:
// how many nodes the graph started and ended with, and how many
// iterations the driver took to reach its fixed point. Useful for the
// Termination and Monotonicity testable properties (section 8) and for
// a CLI's "-stats" style diagnostic output.
type Stats struct {
	InitialNodeCount int
	FinalNodeCount   int
	Iterations       int
}

// NodesElided returns how many nodes the optimizer removed net.
func (s Stats) NodesElided() int {

	return s.InitialNodeCount - s.FinalNodeCount
}
