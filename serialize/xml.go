// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialize

import (
	"encoding/xml"
	"io"

	"github.com/movin/compgraph/compgraph"
)

// xmlDoc wraps the dump tree with the document-level element name; the
// plain node type has no XMLName field of its own since it is reused,
// unwrapped, for YAML encoding too.
type xmlDoc struct {
	XMLName xml.Name `xml:"compositionGraph"`
	*node
}

// WriteXML writes a human-inspection XML dump of the composition graph
// rooted at root to w (section 6, "Serializer" collaborator). No XML
// library appears anywhere in the example pack, so this uses stdlib
// encoding/xml directly rather than reaching for a third-party one (see
// DESIGN.md).
func WriteXML(w io.Writer, root compgraph.Node) error {

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(xmlDoc{node: build(root)})
}
