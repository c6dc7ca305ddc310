// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command optimize is a thin CLI wrapper around the Rewrite Engine
// (package rewrite). It builds a small demonstration composition graph
// in place of the out-of-scope BodyMovin parser and IR builder (section
// 6 names both as external collaborators whose internal design is not
// specified here), runs the fixed-point optimizer over it, and prints a
// stats summary plus an optional YAML/XML dump and codegen stub.
//
// A real caller would instead obtain its root compgraph.Node from the
// parser/IR-builder pipeline; this command exists so the optimizer has
// a runnable, flag-configurable entry point, matching the way g3n's own
// examples take configuration directly from flags rather than a config
// file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/movin/compgraph/codegen"
	"github.com/movin/compgraph/compgraph"
	"github.com/movin/compgraph/geom2d"
	"github.com/movin/compgraph/issues"
	"github.com/movin/compgraph/logger"
	"github.com/movin/compgraph/rewrite"
	"github.com/movin/compgraph/serialize"
)

var log = logger.New("optimize", logger.Default)

func main() {

	var (
		format       = flag.String("format", "none", "dump format after optimizing: yaml, xml, or none")
		className    = flag.String("class", "GeneratedAnimation", "codegen.Configuration.ClassName")
		namespace    = flag.String("namespace", "", "codegen.Configuration.Namespace")
		disableOpt   = flag.Bool("disable-optimizer", false, "skip the rewrite engine entirely")
		nodeMonotone = flag.Bool("node-count-strategy", false, "use the node-count-monotone driver strategy instead of progress-flag")
		verbose      = flag.Bool("v", false, "enable DEBUG-level logging")
	)
	flag.Parse()

	level := logger.INFO
	if *verbose {
		level = logger.DEBUG
	}
	logger.Default.SetLevel(level)
	log.SetLevel(level)
	if rewriteLog := logger.Find("compgraph/rewrite"); rewriteLog != nil {
		rewriteLog.SetLevel(level)
	}

	collector := issues.NewCollector()
	root := demoGraph(collector)

	opts := rewrite.DefaultOptions()
	if *nodeMonotone {
		opts.Strategy = rewrite.NodeCountMonotone
	}

	var stats compgraph.Stats
	if *disableOpt {
		stats.InitialNodeCount = compgraph.CountNodes(root)
		stats.FinalNodeCount = stats.InitialNodeCount
	} else {
		root, stats = rewrite.Optimize(root, opts)
	}

	log.Info("optimized graph: %d -> %d nodes over %d iterations (%d elided)",
		stats.InitialNodeCount, stats.FinalNodeCount, stats.Iterations, stats.NodesElided())
	for _, iss := range collector.Issues() {
		log.Warn("%s", iss.String())
	}

	switch *format {
	case "yaml":
		if err := serialize.WriteYAML(os.Stdout, root); err != nil {
			fail(err)
		}
	case "xml":
		if err := serialize.WriteXML(os.Stdout, root); err != nil {
			fail(err)
		}
	case "none":
	default:
		fail(fmt.Errorf("unknown -format %q (want yaml, xml, or none)", *format))
	}

	if root != nil {
		cfg := codegen.Configuration{
			ClassName:        *className,
			Namespace:        *namespace,
			Width:            512,
			Height:           512,
			DisableOptimizer: *disableOpt,
			Objects:          []compgraph.Node{root},
			SourceMetadata:   "cmd/optimize demo graph",
		}
		if err := codegen.Stub(os.Stdout, cfg); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// demoGraph builds a small composition graph with the shapes this
// command's flags are most useful for demonstrating: a structural
// wrapper container visual around a shape visual around a container
// shape whose only content is a transparent sprite shape and a visible
// one, so a default run visibly prunes the wrapper (R11) and the
// transparent sprite (R1).
func demoGraph(collector *issues.Collector) compgraph.Node {

	collector.Collect(issues.Info, "DEMO001", "using a built-in demonstration graph; no BodyMovin input was parsed")

	transparentFill := &compgraph.ColorBrush{Color: geom2d.NewColor4(1, 0, 0, 0)}
	transparent := &compgraph.SpriteShape{
		Geometry:  &compgraph.RectangleGeometry{Size: geom2d.NewVector2(10, 10)},
		FillBrush: transparentFill,
	}

	visibleFill := &compgraph.ColorBrush{Color: geom2d.NewColor4(0, 0.5, 1, 1)}
	visible := &compgraph.SpriteShape{
		Geometry:  &compgraph.EllipseGeometry{Radius: geom2d.NewVector2(50, 50)},
		FillBrush: visibleFill,
	}

	shapeTree := &compgraph.ContainerShape{
		Shapes: []compgraph.Node{transparent, visible},
	}

	size := geom2d.NewVector2(512, 512)
	shapeVisual := &compgraph.ShapeVisual{
		VisualBase: compgraph.VisualBase{Size: &size},
		Shapes:     []compgraph.Node{shapeTree},
	}

	wrapper := &compgraph.ContainerVisual{
		VisualBase: compgraph.VisualBase{Children: []compgraph.Node{shapeVisual}},
	}

	return wrapper
}
