// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "go.jsxmemo.dev/syntax"

// An attrClass is the classification of a markup attribute value.
type attrClass uint8

const (
	attrPlain    attrClass = iota // anything else; see xref.go
	attrInline                    // inline function literal
	attrCollapse                  // call of a dependency-based primitive
)

var attrClassNames = [...]string{
	attrPlain:    "plain",
	attrInline:   "inline",
	attrCollapse: "collapse",
}

func (c attrClass) String() string { return attrClassNames[c] }

// classifyAttr classifies the value of attr. Only a value that is a
// single embedded expression is ever a candidate.
func (s *state) classifyAttr(attr *syntax.JSXAttr) attrClass {
	c, ok := attr.Value.(*syntax.JSXExprContainer)
	if !ok || c.X == nil {
		return attrPlain
	}
	switch x := c.X.(type) {
	case *syntax.ArrowFunc, *syntax.FuncExpr:
		return attrInline
	case *syntax.CallExpr:
		if s.isDependencyCall(x) {
			return attrCollapse
		}
	}
	return attrPlain
}

func (s *state) visitAttr(attr *syntax.JSXAttr) {
	switch s.classifyAttr(attr) {
	case attrInline:
		if s.opts.Mode == Scoped {
			s.markLift()
			return
		}
		c := attr.Value.(*syntax.JSXExprContainer)
		pos := syntax.Start(c.X)
		c.X = s.wrap(c.X)
		s.record(InlineWrap, pos)

	case attrCollapse:
		if s.opts.Mode == EventCallback {
			s.collapse(attr.Value.(*syntax.JSXExprContainer).X.(*syntax.CallExpr))
		}
	}
}
