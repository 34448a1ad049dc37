// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.jsxmemo.dev/syntax"
)

func TestPrint(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{"let   x=1", "let x = 1;\n"},
		{"a+b*c", "a + b * c;\n"},
		{"(a+b)*c", "(a + b) * c;\n"},
		{"a-(b-c)", "a - (b - c);\n"},
		{"(a**b)**c", "(a ** b) ** c;\n"},
		{"a ?? (b || c)", "a ?? (b || c);\n"},
		{"a || (b ?? c)", "a || (b ?? c);\n"},
		{"x = (a, b)", "x = (a, b);\n"},
		{"- -x; typeof x", "- -x;\ntypeof x;\n"},
		{"({ a: 1 }).a", "({ a: 1 }.a);\n"},
		{"(function () {})()", "(function() {}());\n"},
		{"(1).toString()", "(1).toString();\n"},
		{"x => ({ y })", "x => ({ y });\n"},
		{"async (a, b) => { await a }", "async (a, b) => {\n  await a;\n};\n"},
		{"a?.b?.(c)?.[d]", "a?.b?.(c)?.[d];\n"},
		{"`x${ a + b }y`", "`x${a + b}y`;\n"},
		{"new Foo", "new Foo();\n"},
		{"if (a) { b() } else c()", "if (a) {\n  b();\n} else c();\n"},
		{"if (a) b(); else c()", "if (a) b();\nelse c();\n"},
		{"for (const [k, v] of Object.entries(o)) {}", "for (const [k, v] of Object.entries(o)) {}\n"},
		{"for (let i=0;i<n;i++) f(i)", "for (let i = 0; i < n; i++) f(i);\n"},
		{"try { a() } catch { b() }", "try {\n  a();\n} catch {\n  b();\n}\n"},
		{"async function f() { await g() }", "async function f() {\n  await g();\n}\n"},
		{"class A { static x = 1; async m(a) { return a } }",
			"class A {\n  static x = 1;\n  async m(a) {\n    return a;\n  }\n}\n"},
		{"import   React,{useState as s} from 'react'", "import React, { useState as s } from 'react';\n"},
		{"import * as m from \"m\"", "import * as m from \"m\";\n"},
		{"export {a,b as c}", "export { a, b as c };\n"},
		{"export const f = function () {}", "export const f = function() {};\n"},
		{"switch (a.type) { case 'x': return 1; case 'y': default: { f() } }",
			"switch (a.type) {\n  case 'x':\n    return 1;\n  case 'y':\n  default:\n    {\n      f();\n    }\n}\n"},
		{"const re = /a+\\/[/]b/gi; x = a / /c/", "const re = /a+\\/[/]b/gi;\nx = a / /c/;\n"},
		{"/a/.test(s)", "/a/.test(s);\n"},
		{"class S { get v() { return this._v } static set v(x) {} }",
			"class S {\n  get v() {\n    return this._v;\n  }\n  static set v(x) {}\n}\n"},
		{"({ get x() {}, set x(v) {}, get: 1 })", "({ get x() {}, set x(v) {}, get: 1 });\n"},

		// markup text is reproduced verbatim
		{"const A = <a  b = 'c'   d={e}>  text {f}</a>", "const A = <a b='c' d={e}>  text {f}</a>;\n"},
		{"<>\n  <b />\n</>", "<>\n  <b />\n</>;\n"},
		{"<a {...p} x />", "<a {...p} x />;\n"},
		{"<p>{/* c */}</p>", "<p>{}</p>;\n"},
		{"<ul>{xs.map(x => <li key={x}>{x}</li>)}</ul>", "<ul>{xs.map(x => <li key={x}>{x}</li>)}</ul>;\n"},
	} {
		f, err := syntax.Parse("p.jsx", test.input)
		if err != nil {
			t.Errorf("parse `%s`: %v", test.input, err)
			continue
		}
		got := syntax.Format(f)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Format(`%s`) mismatch (-want +got):\n%s", test.input, diff)
			continue
		}

		// Printing is a fixed point.
		f2, err := syntax.Parse("p.jsx", got)
		if err != nil {
			t.Errorf("reparse of `%s`: %v", got, err)
			continue
		}
		var buf bytes.Buffer
		if err := syntax.Print(&buf, f2); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(got, buf.String()); diff != "" {
			t.Errorf("reprint of `%s` mismatch (-first +second):\n%s", test.input, diff)
		}
	}
}

func TestFormatExpr(t *testing.T) {
	x, err := syntax.ParseExpr("e.js", "f(a,b)")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := syntax.Format(x), "f(a, b)"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
