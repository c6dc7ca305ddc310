// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package issues implements the side-channel Issues collector named in
// section 6 of the spec: a collect-only sink for (code, description)
// pairs reported by the upstream parser and IR builder. The optimizer
// itself never writes to it (section 7), and Optimize does not take a
// collector: a caller keeps the collector the parser used alongside the
// graph, as cmd/optimize does.
package issues

import "fmt"

// Severity orders an Issue by how much it should concern a caller.
// Lower values are more severe, matching the convention used elsewhere
// in the example pack's diagnostic collectors.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Info
)

// String returns the canonical lowercase label for the severity.
func (s Severity) String() string {

	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Issue is one reported problem: a stable code plus a human-readable
// description (section 6).
type Issue struct {
	Severity    Severity
	Code        string
	Description string
}

// String renders the issue as "severity[code]: description".
func (i Issue) String() string {

	return fmt.Sprintf("%s[%s]: %s", i.Severity, i.Code, i.Description)
}

// Collector accumulates issues in insertion order. It has no backward
// control flow: Collect never fails and nothing downstream of it can
// affect the caller that reported the issue (section 6).
type Collector struct {
	issues []Issue
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {

	return &Collector{}
}

// Collect records an issue.
func (c *Collector) Collect(severity Severity, code, description string) {

	c.issues = append(c.issues, Issue{Severity: severity, Code: code, Description: description})
}

// Issues returns every issue collected so far, in insertion order. The
// returned slice is owned by the caller; mutating it does not affect the
// collector.
func (c *Collector) Issues() []Issue {

	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// HasErrors reports whether any collected issue has Error severity.
func (c *Collector) HasErrors() bool {

	for _, i := range c.issues {
		if i.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of issues collected so far.
func (c *Collector) Len() int {

	return len(c.issues)
}
