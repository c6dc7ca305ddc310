// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compgraph

// PropagateDescription copies best-effort descriptive metadata from an
// eliminated node onto the node that replaces it in the graph (section
// 4.D.5):
//
//   - short description: copied if the replacement has none, otherwise
//     the two are concatenated with a space;
//   - long description: copied only if the replacement has none;
//   - name: copied only if the replacement has none.
func PropagateDescription(eliminated, replacement Node) {

	if eliminated == nil || replacement == nil {
		return
	}
	from := eliminated.Base()
	to := replacement.Base()

	switch {
	case to.ShortDescription == "":
		to.ShortDescription = from.ShortDescription
	case from.ShortDescription != "":
		to.ShortDescription = to.ShortDescription + " " + from.ShortDescription
	}

	if to.LongDescription == "" {
		to.LongDescription = from.LongDescription
	}
	if to.Name == "" {
		to.Name = from.Name
	}
}
