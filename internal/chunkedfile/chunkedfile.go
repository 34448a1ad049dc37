// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile provides utilities for testing that source code
// errors are reported in the appropriate places.
//
// A chunked file consists of several chunks of input text separated by
// "---" lines. Each chunk is an input to the program under test, such
// as the parser or the transformer. A line containing "###", usually
// inside a comment, is an expectation of failure on that line: the
// following text is a Go string literal denoting a regular expression
// that should match the failure message.
//
// Example:
//
//	let = 1; // ### "want identifier"
//	---
//	let a;
//	let a; // ### "let a already declared"
//
// A client test feeds each chunk of text into the program under test,
// then calls chunk.GotError for each error that actually occurred. Any
// discrepancy between the actual and expected errors is reported using
// the client's reporter, which is typically a testing.T.
package chunkedfile // import "go.jsxmemo.dev/internal/chunkedfile"

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	separator = "---"
	marker    = "###"
)

// A Chunk is a portion of a source file.
// It contains a set of expected errors.
type Chunk struct {
	Source    string // padded with newlines so that line numbers match the file
	StartLine int    // line of the file on which the chunk begins

	filename string
	report   Reporter
	wantErrs map[int]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a chunked file and returns its chunks.
// It reports failures using the reporter.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	return Parse(filename, data, report)
}

// Parse is like Read but takes the file content as an argument.
//
// Error messages of the form "file.jsx:line: ..." are prefixed
// by a newline so that the Go source position added by (*testing.T).Errorf
// appears on a separate line so as not to confuse editors.
func Parse(filename string, data []byte, report Reporter) (chunks []Chunk) {
	lines := strings.Split(string(data), "\n")
	start := 0 // index of the first line of the current chunk
	flush := func(end int) {
		chunk := Chunk{
			Source:    strings.Repeat("\n", start) + strings.Join(lines[start:end], "\n"),
			StartLine: start + 1,
			filename:  filename,
			report:    report,
			wantErrs:  make(map[int]*regexp.Regexp),
		}
		for i := start; i < end; i++ {
			linenum := i + 1
			j := strings.Index(lines[i], marker)
			if j < 0 {
				continue
			}
			rest := strings.TrimSpace(lines[i][j+len(marker):])
			pattern, err := strconv.Unquote(rest)
			if err != nil {
				report.Errorf("\n%s:%d: not a quoted regexp: %s", filename, linenum, rest)
				continue
			}
			rx, err := regexp.Compile(pattern)
			if err != nil {
				report.Errorf("\n%s:%d: %v", filename, linenum, err)
				continue
			}
			chunk.wantErrs[linenum] = rx
		}
		chunks = append(chunks, chunk)
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
		if lines[i] == separator {
			flush(i)
			start = i + 1
		}
	}
	flush(len(lines))
	return chunks
}

// GotError should be called by the client to report an error at a particular line.
// GotError reports unexpected errors to the chunk's reporter.
func (chunk *Chunk) GotError(linenum int, msg string) {
	if rx, ok := chunk.wantErrs[linenum]; ok {
		delete(chunk.wantErrs, linenum)
		if !rx.MatchString(msg) {
			chunk.report.Errorf("\n%s:%d: error %q does not match pattern %q", chunk.filename, linenum, msg, rx)
		}
	} else {
		chunk.report.Errorf("\n%s:%d: unexpected error: %v", chunk.filename, linenum, msg)
	}
}

// Done should be called by the client to indicate that the chunk has no more errors.
// Done reports expected errors that did not occur to the chunk's reporter.
func (chunk *Chunk) Done() {
	for linenum, rx := range chunk.wantErrs {
		chunk.report.Errorf("\n%s:%d: expected error matching %q", chunk.filename, linenum, rx)
	}
}
