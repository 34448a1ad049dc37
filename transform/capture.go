// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"go.jsxmemo.dev/resolve"
	"go.jsxmemo.dev/syntax"
)

// captures returns the capture set of the function fn: the references
// within it to bindings declared in an enclosing scope, in order of
// first occurrence and without duplicates. Parameters, locals of fn and
// of functions nested in it, and unresolved (global) names are excluded.
//
// A name read through a chain of plain property selections contributes
// the whole chain, so props.value is captured as props.value rather
// than props. An entry whose dotted form extends another entry is
// dropped, so a function that reads both props and props.value
// captures props alone.
func captures(info *resolve.Info, fn syntax.Node) []syntax.Expr {
	inner := info.ScopeOf(fn)
	if inner == nil {
		return nil
	}
	outer := func(id *syntax.Ident) bool {
		b := id.Binding
		return b != nil && !inner.Encloses(info.ScopeOf(b.Scope))
	}

	var refs []syntax.Expr
	var keys []string
	seen := make(map[string]bool)
	add := func(x syntax.Expr) {
		key := refString(x)
		if !seen[key] {
			seen[key] = true
			refs = append(refs, cloneRef(x))
			keys = append(keys, key)
		}
	}

	syntax.Walk(fn, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.DotExpr:
			if root := chainRoot(n); root != nil {
				if outer(root) {
					add(n)
				}
				return false
			}
		case *syntax.Ident:
			if outer(n) {
				add(n)
			}
		}
		return true
	})

	// Drop entries covered by a shorter one.
	result := refs[:0]
	for i, key := range keys {
		if !covered(key, seen) {
			result = append(result, refs[i])
		}
	}
	return result
}

// covered reports whether some proper prefix of the dotted reference
// key, ending at a property boundary, is in set.
func covered(key string, set map[string]bool) bool {
	for i := strings.LastIndexByte(key, '.'); i > 0; i = strings.LastIndexByte(key[:i], '.') {
		if set[key[:i]] {
			return true
		}
	}
	return false
}
