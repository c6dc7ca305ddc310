// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphindex

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/movin/compgraph/compgraph"
)

// newNodeID builds a stable-for-this-process diagnostic label such as
// "ShapeVisual-3-a1b2c3d4". The ordinal makes logs easy to scan; the
// short UUID suffix disambiguates nodes across separate Optimize calls
// when logs from several runs are interleaved. Neither component is
// ever used for graph equality or hashing -- only map identity (the
// Node interface value itself) is.
func newNodeID(n compgraph.Node, ordinal int) string {

	return fmt.Sprintf("%s-%d-%s", n.NodeKind(), ordinal, shortUUID())
}

func shortUUID() string {

	id := uuid.New()
	return id.String()[:8]
}
