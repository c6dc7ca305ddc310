// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codegen gives the downstream Code Generator collaborator
// (section 6) just enough surface to prove the optimizer's output is
// consumable: a Configuration carrying the fields section 6 names, and
// a Stub emitter that writes a factory-shaped source header plus an
// object count. The generator's own internal design ("class name to
// source code") is explicitly out of scope (section 6: "Not specified
// here").
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/movin/compgraph/compgraph"
)

// Configuration is the CodegenConfiguration named in section 6: the
// class name, namespace, target dimensions and duration, an
// optimization-disable flag, the object-graph list, and a free-form
// source-metadata string the caller may use for a file header comment.
type Configuration struct {
	ClassName         string
	Namespace         string
	Width             float32
	Height            float32
	DurationInSeconds float32
	DisableOptimizer  bool
	Objects           []compgraph.Node
	SourceMetadata    string
}

// Validate reports the first configuration problem a real generator
// would reject before emitting anything: an empty class name, or no
// object graph to emit.
func (c Configuration) Validate() error {

	if strings.TrimSpace(c.ClassName) == "" {
		return fmt.Errorf("codegen: ClassName must not be empty")
	}
	if len(c.Objects) == 0 {
		return fmt.Errorf("codegen: Objects must contain at least one root")
	}
	return nil
}

// Stub emits a minimal factory-shaped source file standing in for the
// fully specified code generator: a header comment naming the class,
// namespace, dimensions and duration, followed by a line per root
// object reporting its node count. It does not attempt to emit the
// actual factory method body; that is the real generator's job
// (section 6).
func Stub(w io.Writer, cfg Configuration) error {

	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "// Generated by codegen.Stub; not the full Code Generator (section 6).\n"); err != nil {
		return err
	}
	if cfg.Namespace != "" {
		if _, err := fmt.Fprintf(w, "namespace %s {\n", cfg.Namespace); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "class %s {\n", cfg.ClassName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  // size=%gx%g duration=%gs optimized=%t\n",
		cfg.Width, cfg.Height, cfg.DurationInSeconds, !cfg.DisableOptimizer); err != nil {
		return err
	}
	if cfg.SourceMetadata != "" {
		if _, err := fmt.Fprintf(w, "  // source: %s\n", cfg.SourceMetadata); err != nil {
			return err
		}
	}
	for i, obj := range cfg.Objects {
		if _, err := fmt.Fprintf(w, "  // object[%d]: %s (%d nodes)\n",
			i, obj.NodeKind(), compgraph.CountNodes(obj)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "}\n"); err != nil {
		return err
	}
	if cfg.Namespace != "" {
		if _, err := fmt.Fprintf(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}
