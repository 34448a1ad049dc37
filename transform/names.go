// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.jsxmemo.dev/syntax"
)

// A namer generates names that collide with no identifier of a file,
// following the _name, _name2, _name3, ... convention.
type namer struct {
	used map[string]bool
}

// newNamer returns a namer that avoids every identifier spelled in f,
// including property names.
func newNamer(f *syntax.File) *namer {
	used := make(map[string]bool)
	syntax.Walk(f, func(n syntax.Node) bool {
		if id, ok := n.(*syntax.Ident); ok {
			used[id.Name] = true
		}
		return true
	})
	return &namer{used: used}
}

// New returns a fresh name derived from base.
func (nm *namer) New(base string) string {
	base = sanitize(base)
	name := "_" + base
	for i := 2; nm.used[name]; i++ {
		name = "_" + base + strconv.Itoa(i)
	}
	nm.used[name] = true
	return name
}

// sanitize turns a markup attribute name such as aria-label or
// xlink:href into an identifier fragment: ariaLabel, xlinkHref.
func sanitize(base string) string {
	var sb strings.Builder
	upper := false
	for _, r := range base {
		switch {
		case r == '-' || r == ':':
			upper = sb.Len() > 0
		case upper:
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			sb.WriteRune(r)
		}
	}
	if s := sb.String(); s != "" {
		if r, _ := utf8.DecodeRuneInString(s); !unicode.IsDigit(r) {
			return s
		}
	}
	return "ref"
}
