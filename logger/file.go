// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import "os"

// File is a Writer that appends events to a plain text file, for
// capturing a run's pass-by-pass trace alongside its console output.
type File struct {
	writer *os.File
}

// NewFile opens (creating if needed, appending if present) the named
// file for log output.
func NewFile(filename string) (*File, error) {

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &File{writer: f}, nil
}

// Write implements Writer.
func (f *File) Write(event *Event) {

	f.writer.WriteString(event.fmsg)
}

// Close implements Writer.
func (f *File) Close() {

	f.writer.Close()
}

// Sync implements Writer.
func (f *File) Sync() {

	f.writer.Sync()
}
