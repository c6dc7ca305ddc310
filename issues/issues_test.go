// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorPreservesInsertionOrder(t *testing.T) {

	c := NewCollector()
	c.Collect(Warning, "W001", "first")
	c.Collect(Error, "E001", "second")

	got := c.Issues()
	require.Len(t, got, 2)
	assert.Equal(t, "W001", got[0].Code)
	assert.Equal(t, "E001", got[1].Code)
}

func TestIssuesReturnsACopy(t *testing.T) {

	c := NewCollector()
	c.Collect(Info, "I001", "info")

	got := c.Issues()
	got[0].Code = "mutated"

	assert.Equal(t, "I001", c.Issues()[0].Code)
}

func TestHasErrorsOnlyTrueWithErrorSeverity(t *testing.T) {

	c := NewCollector()
	assert.False(t, c.HasErrors())

	c.Collect(Warning, "W001", "just a warning")
	assert.False(t, c.HasErrors())

	c.Collect(Error, "E001", "a real problem")
	assert.True(t, c.HasErrors())
}

func TestLenCountsEveryCollectedIssue(t *testing.T) {

	c := NewCollector()
	assert.Equal(t, 0, c.Len())
	c.Collect(Info, "I001", "one")
	c.Collect(Info, "I002", "two")
	assert.Equal(t, 2, c.Len())
}

func TestSeverityString(t *testing.T) {

	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestIssueStringFormat(t *testing.T) {

	i := Issue{Severity: Warning, Code: "W042", Description: "something odd"}
	assert.Equal(t, "warning[W042]: something odd", i.String())
}
