// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialize

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/movin/compgraph/compgraph"
)

// WriteYAML writes a human-inspection YAML dump of the composition
// graph rooted at root to w (section 6, "Serializer" collaborator). A
// nil root writes "null\n", matching yaml.v2's usual encoding of a nil
// value.
func WriteYAML(w io.Writer, root compgraph.Node) error {

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(build(root))
}
