// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"

	"go.jsxmemo.dev/transform"
)

// script is a LineReader that replays lines, recording prompts.
// An element "^C" reads as an interrupt.
type script struct {
	lines   []string
	prompts []string
}

func (s *script) SetPrompt(p string) { s.prompts = append(s.prompts, p) }

func (s *script) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == "^C" {
		return "", readline.ErrInterrupt
	}
	return line, nil
}

func TestRun(t *testing.T) {
	for _, test := range []struct {
		lines       []string
		out, errOut string
	}{
		{
			lines: []string{"const A = () =>", "  <b onClick={() => go()} />;", ""},
			out: "import useEventCallback from 'react-use-event-callback';\n" +
				"const A = () => <b onClick={useEventCallback(() => go())} />;\n",
		},
		{
			// Blank lines between snippets are skipped; the last
			// snippet ends at end of input.
			lines: []string{"", "", "f();", "", "g();"},
			out:   "f();\ng();\n",
		},
		{
			lines:  []string{"let a;", "let a;", "", "b();"},
			out:    "b();\n",
			errOut: "<stdin>:2:5: let a already declared at <stdin>:1:5\n",
		},
		{
			lines:  []string{"let a; let a;", "class C {} class C {}"},
			errOut: "<stdin>:1:12: let a already declared at <stdin>:1:5\n<stdin>:2:18: class C already declared at <stdin>:2:7\n",
		},
		{
			lines:  []string{"f(", "^C", "h();"},
			out:    "h();\n",
			errOut: "Interrupt\n",
		},
	} {
		var out, errOut bytes.Buffer
		Run(&script{lines: test.lines}, &out, &errOut, transform.Options{})
		if got := out.String(); got != test.out {
			t.Errorf("%q: output\n%s\nwant\n%s", test.lines, got, test.out)
		}
		if got := errOut.String(); got != test.errOut {
			t.Errorf("%q: errors\n%s\nwant\n%s", test.lines, got, test.errOut)
		}
	}
}

func TestPrompts(t *testing.T) {
	s := &script{lines: []string{"f(", "1);", ""}}
	Run(s, io.Discard, io.Discard, transform.Options{})
	if got, want := strings.Join(s.prompts, "|"), ">>> |... |... |>>> "; got != want {
		t.Errorf("prompts = %s, want %s", got, want)
	}
}
