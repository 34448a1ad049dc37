// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"go.jsxmemo.dev/syntax"
)

// sameRef reports whether x and y are reference expressions that denote
// the same value path. Two names are equal when spelled alike, and this
// always equals this. Two property selections are equal when their
// property names match and their operands are recursively equal.
// Any other pairing, including computed or optional member access and
// call results, is never equal.
func sameRef(x, y syntax.Expr) bool {
	switch x := x.(type) {
	case *syntax.Ident:
		y, ok := y.(*syntax.Ident)
		return ok && x.Name == y.Name
	case *syntax.ThisExpr:
		_, ok := y.(*syntax.ThisExpr)
		return ok
	case *syntax.DotExpr:
		y, ok := y.(*syntax.DotExpr)
		return ok && !x.Optional && !y.Optional &&
			x.Name.Name == y.Name.Name &&
			sameRef(x.X, y.X)
	}
	return false
}

// isRef reports whether x is a reference expression: a name, this, or
// a chain of plain property selections rooted at either.
func isRef(x syntax.Expr) bool {
	for {
		switch y := x.(type) {
		case *syntax.Ident, *syntax.ThisExpr:
			return true
		case *syntax.DotExpr:
			if y.Optional {
				return false
			}
			x = y.X
		default:
			return false
		}
	}
}

// chainRoot returns the identifier at the root of a chain of plain
// property selections, or nil if x is not such a chain.
func chainRoot(x *syntax.DotExpr) *syntax.Ident {
	var y syntax.Expr = x
	for {
		switch z := y.(type) {
		case *syntax.Ident:
			return z
		case *syntax.DotExpr:
			if z.Optional {
				return nil
			}
			y = z.X
		default:
			return nil
		}
	}
}

// refString returns the dotted source form of a reference expression.
func refString(x syntax.Expr) string {
	switch x := x.(type) {
	case *syntax.Ident:
		return x.Name
	case *syntax.ThisExpr:
		return "this"
	case *syntax.DotExpr:
		return refString(x.X) + "." + x.Name.Name
	}
	return ""
}

// cloneRef returns a fresh copy of a reference expression.
// Copied identifiers keep their bindings.
func cloneRef(x syntax.Expr) syntax.Expr {
	switch x := x.(type) {
	case *syntax.Ident:
		return &syntax.Ident{NamePos: x.NamePos, Name: x.Name, Binding: x.Binding}
	case *syntax.ThisExpr:
		return &syntax.ThisExpr{This: x.This}
	case *syntax.DotExpr:
		return &syntax.DotExpr{
			X:    cloneRef(x.X),
			Dot:  x.Dot,
			Name: &syntax.Ident{NamePos: x.Name.NamePos, Name: x.Name.Name},
		}
	}
	panic(x)
}

// dotted returns a new reference expression for a dotted name
// such as React.useCallback.
func dotted(name string) syntax.Expr {
	parts := strings.Split(name, ".")
	var x syntax.Expr = &syntax.Ident{Name: parts[0]}
	for _, part := range parts[1:] {
		x = &syntax.DotExpr{X: x, Name: &syntax.Ident{Name: part}}
	}
	return x
}

// calleeName returns the dotted name of a callee rooted at an
// identifier, or "" for any other callee.
func calleeName(fn syntax.Expr) string {
	switch fn := fn.(type) {
	case *syntax.Ident:
		return fn.Name
	case *syntax.DotExpr:
		if chainRoot(fn) != nil {
			return refString(fn)
		}
	}
	return ""
}

// validName reports whether name is a dotted sequence of identifiers.
func validName(name string) bool {
	for _, part := range strings.Split(name, ".") {
		if !syntax.IsIdentifier(part) {
			return false
		}
	}
	return true
}
