// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides an interactive loop that transforms snippets
// of component source.
//
// It supports readline-style command editing.
// The REPL reads lines until a blank line, transforms the input as a
// module, and prints the result. Control-C discards the pending input.
package repl // import "go.jsxmemo.dev/repl"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"go.jsxmemo.dev/resolve"
	"go.jsxmemo.dev/transform"
)

// A LineReader reads one line of input at a time.
// *readline.Instance is a LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// REPL runs a read, transform, print loop on the terminal.
func REPL(opts transform.Options) {
	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(os.Stderr, err)
		return
	}
	defer rl.Close()
	Run(rl, os.Stdout, os.Stderr, opts)
	fmt.Println()
}

// Run reads snippets from rl until end of input, writing each
// transformed snippet to out and each error to errOut.
func Run(rl LineReader, out, errOut io.Writer, opts transform.Options) {
	for {
		if err := rep(rl, out, errOut, opts); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Fprintln(errOut, err)
				continue
			}
			break
		}
	}
}

// rep reads, transforms, and prints one snippet.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if reading failed. Transform errors are printed.
func rep(rl LineReader, out, errOut io.Writer, opts transform.Options) error {
	var buf strings.Builder
	eof := false

	rl.SetPrompt(">>> ")
	for {
		line, err := rl.Readline()
		if err == io.EOF {
			eof = true
			break
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			if buf.Len() == 0 {
				return nil
			}
			break
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		rl.SetPrompt("... ")
	}
	if buf.Len() == 0 {
		return io.EOF
	}

	src, res, err := transform.Source("<stdin>", buf.String(), opts)
	if err != nil {
		PrintError(errOut, err)
	} else {
		out.Write(src)
		if opts.Logger != nil {
			opts.Logger.Debug("snippet transformed", zap.Int("rewrites", res.Total()), zap.Strings("caches", res.Caches))
		}
	}
	if eof {
		return io.EOF
	}
	return nil
}

// PrintError prints err to w,
// or each of its errors if it is a resolver error list.
func PrintError(w io.Writer, err error) {
	var list resolve.ErrorList
	if errors.As(err, &list) {
		for _, err := range list {
			fmt.Fprintln(w, err)
		}
		return
	}
	fmt.Fprintln(w, err)
}
