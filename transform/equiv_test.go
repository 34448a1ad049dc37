// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"
	"testing"

	"go.jsxmemo.dev/resolve"
	"go.jsxmemo.dev/syntax"
)

func TestSameRef(t *testing.T) {
	for _, test := range []struct {
		x, y string
		want bool
	}{
		{"a", "a", true},
		{"a", "b", false},
		{"this", "this", true},
		{"this.a", "this.a", true},
		{"this.a", "this.b", false},
		{"this.a", "a", false},
		{"a.b.c", "a.b.c", true},
		{"a.b.c", "a.b", false},
		{"x.b.c", "a.b.c", false},
		{"a[b]", "a[b]", false},
		{"a?.b", "a?.b", false},
		{"f()", "f()", false},
		{"f().x", "f().x", false},
		{"a.b", "b", false},
	} {
		x, err := syntax.ParseExpr("x.js", test.x)
		if err != nil {
			t.Fatal(err)
		}
		y, err := syntax.ParseExpr("y.js", test.y)
		if err != nil {
			t.Fatal(err)
		}
		if got := sameRef(x, y); got != test.want {
			t.Errorf("sameRef(%s, %s) = %t, want %t", test.x, test.y, got, test.want)
		}
		if got := sameRef(y, x); got != test.want {
			t.Errorf("sameRef(%s, %s) = %t, want %t", test.y, test.x, got, test.want)
		}
	}
}

func TestIsRef(t *testing.T) {
	for _, test := range []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"this", true},
		{"this.a.b", true},
		{"a.b", true},
		{"a?.b", false},
		{"a[0]", false},
		{"a().b", false},
		{"(a, b)", false},
		{"1", false},
	} {
		x, err := syntax.ParseExpr("x.js", test.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := isRef(x); got != test.want {
			t.Errorf("isRef(%s) = %t, want %t", test.input, got, test.want)
		}
	}
}

func TestCaptures(t *testing.T) {
	for _, test := range []struct {
		src  string // the innermost function whose body contains "target" is examined
		want string
	}{
		{`function f(a, b) { const c = 1; return () => target(a.x.y + b + c + g + a.x); }`, "[b c a.x]"},
		{`const f = props => () => target(props.onClick(props));`, "[props]"},
		{`const f = props => () => target(props.a.b, props.a.c);`, "[props.a.b props.a.c]"},
		{`function f(x) { return () => { const y = 1; let z; return target(x + y + z); }; }`, "[x]"},
		{`function f(x) { return (x) => target(x); }`, "[]"},
		{`function f(x) { return () => target(x, x, x); }`, "[x]"},
		{`function f(o) { return () => target(o?.a, o[k], o.m().n); }`, "[o]"},
		{`let m = 0; function f() { return () => target(m, window.m); }`, "[m]"},
		{`function f(s) { return () => target(function () { return s.v; }); }`, "[s.v]"},
		{`function f(p) { return () => target(this.p, p.q); }`, "[p.q]"},
	} {
		f, err := syntax.Parse("f.js", test.src)
		if err != nil {
			t.Fatalf("%s: %v", test.src, err)
		}
		info, err := resolve.File(f)
		if err != nil {
			t.Fatalf("%s: %v", test.src, err)
		}
		var fn syntax.Node
		syntax.Walk(f, func(n syntax.Node) bool {
			switch n := n.(type) {
			case *syntax.ArrowFunc, *syntax.FuncDecl, *syntax.FuncExpr:
				if strings.Contains(syntax.Format(n), "target") {
					fn = n
				}
			}
			return true
		})
		var names []string
		for _, x := range captures(info, fn) {
			names = append(names, refString(x))
		}
		if got := "[" + strings.Join(names, " ") + "]"; got != test.want {
			t.Errorf("captures in %s = %s, want %s", test.src, got, test.want)
		}
	}
}

func TestNamer(t *testing.T) {
	f, err := syntax.Parse("n.js", `let _cache, _onClick; x._ariaLabel = 1;`)
	if err != nil {
		t.Fatal(err)
	}
	nm := newNamer(f)
	var got []string
	for _, base := range []string{"cache", "cache", "onClick", "title", "aria-label", "xlink:href", "-", "9lives"} {
		got = append(got, nm.New(base))
	}
	want := "_cache2 _cache3 _onClick2 _title _ariaLabel2 _xlinkHref _ref _ref2"
	if strings.Join(got, " ") != want {
		t.Errorf("names = %s, want %s", strings.Join(got, " "), want)
	}
}

func TestClassifyAttr(t *testing.T) {
	s := &state{opts: Options{}.withDefaults()}
	for _, test := range []struct {
		attr string
		want attrClass
	}{
		{`x={() => 1}`, attrInline},
		{`x={async () => 1}`, attrInline},
		{`x={function () {}}`, attrInline},
		{`x={useCallback(f, [])}`, attrCollapse},
		{`x={React.useCallback(f, [a])}`, attrCollapse},
		{`x={useCallback(...args)}`, attrPlain},
		{`x={useCallback()}`, attrPlain},
		{`x={useMemo(f, [])}`, attrPlain},
		{`x={useEventCallback(f)}`, attrPlain},
		{`x={f}`, attrPlain},
		{`x={this.f}`, attrPlain},
		{`x="s"`, attrPlain},
		{`x`, attrPlain},
		{`x=<i />`, attrPlain},
	} {
		x, err := syntax.ParseExpr("a.jsx", "<b "+test.attr+" />")
		if err != nil {
			t.Errorf("%s: %v", test.attr, err)
			continue
		}
		attr := x.(*syntax.JSXElement).Attrs[0].(*syntax.JSXAttr)
		if got := s.classifyAttr(attr); got != test.want {
			t.Errorf("classifyAttr(%s) = %s, want %s", test.attr, got, test.want)
		}
	}
}

func TestTakeKey(t *testing.T) {
	for _, test := range []struct {
		input, props, rest string
	}{
		{`<li key={id} a="1" />`, `{ key: id }`, `<li a="1" />`},
		{`<li a={b} key="k" />`, `{ key: "k" }`, `<li a={b} />`},
		{`<li a={b} />`, `null`, `<li a={b} />`},
		{`<li {...p} />`, `null`, `<li {...p} />`},
	} {
		x, err := syntax.ParseExpr("a.jsx", test.input)
		if err != nil {
			t.Fatal(err)
		}
		elem := x.(*syntax.JSXElement)
		props := takeKey(elem)
		if got := syntax.Format(props); got != test.props {
			t.Errorf("takeKey(%s) = %s, want %s", test.input, got, test.props)
		}
		if got := syntax.Format(elem); got != test.rest {
			t.Errorf("after takeKey(%s), element = %s, want %s", test.input, got, test.rest)
		}
	}
}

func TestImportIndex(t *testing.T) {
	for _, test := range []struct {
		src  string
		want int
	}{
		{``, 0},
		{`f();`, 0},
		{`import a from 'a'; f();`, 1},
		{`import a from 'a'; f(); import b from 'b'; g();`, 3},
	} {
		f, err := syntax.Parse("i.js", test.src)
		if err != nil {
			t.Fatal(err)
		}
		if got := importIndex(f.Stmts); got != test.want {
			t.Errorf("importIndex(%s) = %d, want %d", test.src, got, test.want)
		}
	}
}
