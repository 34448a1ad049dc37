// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"go.jsxmemo.dev/resolve"
	"go.jsxmemo.dev/syntax"
)

type importState uint8

const (
	noRewrite     importState = iota // nothing rewritten yet
	pendingImport                    // rewritten; import not yet added
	imported                         // finished
)

// An importer tracks whether a file needs an import of the primitive.
type importer struct {
	root   string // local name the import binds
	source string
	state  importState
}

// rewrote records a completed rewrite. Any number of rewrites leads
// to at most one import.
func (im *importer) rewrote() {
	if im.state == noRewrite {
		im.state = pendingImport
	}
}

// finish ends the traversal. It returns the import declaration to add,
// or nil if nothing was rewritten or the root name is already bound in
// the module scope.
func (im *importer) finish(module *resolve.Scope) *syntax.ImportDecl {
	pending := im.state == pendingImport
	im.state = imported
	if !pending || module.Lookup(im.root) != nil {
		return nil
	}
	return &syntax.ImportDecl{
		Default: ident(im.root),
		Source:  &syntax.Literal{Token: syntax.STRING, Value: im.source},
	}
}

// rootName returns the first component of a dotted name.
func rootName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// importIndex returns the index after the last import declaration
// among the top-level statements, or 0 if there is none.
func importIndex(stmts []syntax.Stmt) int {
	i := 0
	for j, stmt := range stmts {
		if _, ok := stmt.(*syntax.ImportDecl); ok {
			i = j + 1
		}
	}
	return i
}
