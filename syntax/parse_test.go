// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"

	"go.jsxmemo.dev/internal/chunkedfile"
	"go.jsxmemo.dev/syntax"
)

func TestExprParseTrees(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`f(1)`,
			`(CallExpr Fn=f Args=(1))`},
		{"f(1);",
			`(CallExpr Fn=f Args=(1))`},
		{`x + 1`,
			`(BinaryExpr X=x Op=+ Y=1)`},
		{`x+y*z`,
			`(BinaryExpr X=x Op=+ Y=(BinaryExpr X=y Op=* Y=z))`},
		{`x%y-z`,
			`(BinaryExpr X=(BinaryExpr X=x Op=% Y=y) Op=- Y=z)`},
		{`a ** b ** c`,
			`(BinaryExpr X=a Op=** Y=(BinaryExpr X=b Op=** Y=c))`},
		{`a || b && c`,
			`(BinaryExpr X=a Op=|| Y=(BinaryExpr X=b Op=&& Y=c))`},
		{`a ?? b`,
			`(BinaryExpr X=a Op=?? Y=b)`},
		{`a < b`,
			`(BinaryExpr X=a Op=< Y=b)`},
		{`(a, b)`,
			`(BinaryExpr X=a Op=, Y=b)`},
		{`a ? b : c ? d : e`,
			`(CondExpr Cond=a True=b False=(CondExpr Cond=c True=d False=e))`},
		{`x.f()`,
			`(CallExpr Fn=(DotExpr X=x Name=f))`},
		{`x[i].f(42)`,
			`(CallExpr Fn=(DotExpr X=(IndexExpr X=x Y=i) Name=f) Args=(42))`},
		{`a?.b?.(c)?.[d]`,
			`(IndexExpr X=(CallExpr Fn=(DotExpr X=a Optional Name=b) Optional Args=(c)) Optional Y=d)`},
		{`x.class.if`,
			`(DotExpr X=(DotExpr X=x Name=class) Name=if)`},
		{`f(...args, 'a')`,
			`(CallExpr Fn=f Args=((SpreadExpr X=args) "a"))`},
		{`new Foo(1).bar`,
			`(DotExpr X=(NewExpr Fn=Foo Args=(1)) Name=bar)`},
		{`new a.b`,
			`(NewExpr Fn=(DotExpr X=a Name=b))`},
		{`!a.b`,
			`(UnaryExpr Op=! X=(DotExpr X=a Name=b))`},
		{`i++`,
			`(UnaryExpr Op=++ X=i Postfix)`},
		{`typeof x === "string"`,
			`(BinaryExpr X=(UnaryExpr Op=typeof X=x) Op==== Y="string")`},
		{`await f()`,
			`(UnaryExpr Op=await X=(CallExpr Fn=f))`},
		{`a = b = c`,
			`(AssignExpr LHS=a Op== RHS=(AssignExpr LHS=b Op== RHS=c))`},
		{`a.b += 1`,
			`(AssignExpr LHS=(DotExpr X=a Name=b) Op=+= RHS=1)`},
		{`[a, ...b] = c`,
			`(AssignExpr LHS=(ArrayExpr List=(a (SpreadExpr X=b))) Op== RHS=c)`},
		{`({ a, b: [c] } = d)`,
			`(AssignExpr LHS=(ObjectExpr List=((Property Key=a Value=a Shorthand) (Property Key=b Value=(ArrayExpr List=(c))))) Op== RHS=d)`},
		{`({ a = 1 } = d)`,
			`(AssignExpr LHS=(ObjectExpr List=((Property Key=a Value=(AssignExpr LHS=a Op== RHS=1) Shorthand))) Op== RHS=d)`},
		{`{ a: 1, 'b': 2, [c]: 3, d() {}, ...e }`,
			`(ObjectExpr List=((Property Key=a Value=1) (Property Key="b" Value=2) (Property Key=c Value=3 Computed) (Property Key=d Value=(FuncExpr Body=(BlockStmt)) Method) (Property Value=(SpreadExpr X=e))))`},
		{`x => x + 1`,
			`(ArrowFunc Params=(x) Result=(BinaryExpr X=x Op=+ Y=1))`},
		{`async (a, b = 1, ...c) => {}`,
			`(ArrowFunc Async Params=(a (AssignExpr LHS=b Op== RHS=1) (SpreadExpr X=c)) Body=(BlockStmt))`},
		{`async x => x`,
			`(ArrowFunc Async Params=(x) Result=x)`},
		{`async(x)`,
			`(CallExpr Fn=async Args=(x))`},
		{`() => ({})`,
			`(ArrowFunc Result=(ObjectExpr))`},
		{`({ a }) => a`,
			`(ArrowFunc Params=((ObjectExpr List=((Property Key=a Value=a Shorthand)))) Result=a)`},
		{`function f(a) { return a; }`,
			`(FuncExpr Name=f Params=(a) Body=(BlockStmt Stmts=((ReturnStmt Result=a))))`},
		{`async function () {}`,
			`(FuncExpr Async Body=(BlockStmt))`},
		{"`a${b}c`",
			`(TemplateExpr Quasis=("a" "c") Exprs=(b))`},
		{"``",
			`(TemplateExpr Quasis=(""))`},
		{`class extends B { static x = 1; m() {} }`,
			`(ClassExpr Super=B Members=((ClassMember Static Key=x Value=1) (ClassMember Key=m Method Value=(FuncExpr Body=(BlockStmt)))))`},
		{`this.x`,
			`(DotExpr X=(ThisExpr) Name=x)`},
		{`[1, "two", true, null]`,
			`(ArrayExpr List=(1 "two" true null))`},
		{`() => /a+/.test(x)`,
			`(ArrowFunc Result=(CallExpr Fn=(DotExpr X=/a+/ Name=test) Args=(x)))`},
		{`a / b / /c[/]d\//gi`,
			`(BinaryExpr X=(BinaryExpr X=a Op=/ Y=b) Op=/ Y=/c[/]d\//gi)`},
		{`s.replace(/=+/g, "")`,
			`(CallExpr Fn=(DotExpr X=s Name=replace) Args=(/=+/g ""))`},
		{`class S { get v() { return 1; } set v(x) {} static get [k]() {} get() {} }`,
			`(ClassExpr Name=S Members=((ClassMember Accessor="get" Key=v Method Value=(FuncExpr Body=(BlockStmt Stmts=((ReturnStmt Result=1))))) (ClassMember Accessor="set" Key=v Method Value=(FuncExpr Params=(x) Body=(BlockStmt))) (ClassMember Static Accessor="get" Computed Key=k Method Value=(FuncExpr Body=(BlockStmt))) (ClassMember Key=get Method Value=(FuncExpr Body=(BlockStmt)))))`},
		{`{ get x() { return 1; }, set: 2, get }`,
			`(ObjectExpr List=((Property Key=x Value=(FuncExpr Body=(BlockStmt Stmts=((ReturnStmt Result=1)))) Method Accessor="get") (Property Key=set Value=2) (Property Key=get Value=get Shorthand)))`},

		// markup
		{`<b />`,
			`(JSXElement Name=b SelfClosing)`},
		{`<a href="x" disabled {...p} on-click={f}>hi {name}<br/></a>`,
			`(JSXElement Name=a Attrs=((JSXAttr Name=href Value="x") (JSXAttr Name=disabled) (JSXSpreadAttr X=p) (JSXAttr Name=on-click Value=(JSXExprContainer X=f))) Children=("hi " (JSXExprContainer X=name) (JSXElement Name=br SelfClosing)))`},
		{`<>a</>`,
			`(JSXElement Children=("a"))`},
		{`<Foo.Bar x=<i/> />`,
			`(JSXElement Name=(DotExpr X=Foo Name=Bar) Attrs=((JSXAttr Name=x Value=(JSXElement Name=i SelfClosing))) SelfClosing)`},
		{`<p>{/* empty */}</p>`,
			`(JSXElement Name=p Children=((JSXExprContainer)))`},
		{`<a title="it's \n" />`,
			`(JSXElement Name=a Attrs=((JSXAttr Name=title Value="it's \\n")) SelfClosing)`},
		{`<ul>{items.map(i => <li key={i}>{i}</li>)}</ul>`,
			`(JSXElement Name=ul Children=((JSXExprContainer X=(CallExpr Fn=(DotExpr X=items Name=map) Args=((ArrowFunc Params=(i) Result=(JSXElement Name=li Attrs=((JSXAttr Name=key Value=(JSXExprContainer X=i))) Children=((JSXExprContainer X=i)))))))))`},
		{`<a>x</a>.props`,
			`(DotExpr X=(JSXElement Name=a Children=("x")) Name=props)`},

		// errors
		{`a b`,
			`got identifier after expression, want EOF`},
		{`f(`,
			`got end of file, want primary expression`},
		{`x ? y`,
			`got end of file, want ':'`},
		{`a + b = c`,
			`invalid destructuring target`},
		{`1++`,
			`invalid operand for increment or decrement`},
		{`[a] += 1`,
			`invalid left-hand side in assignment`},
		{`(...a)`,
			`unexpected '...'`},
		{`()`,
			`got ')', want expression`},
		{`<a></b>`,
			`closing tag </b> does not match <a>`},
		{`<a x={} />`,
			`JSX attribute value must not be empty`},
		{`/a`,
			`unterminated regular expression literal`},
		{`{ set x(a, b) {} }`,
			`setter must have exactly one parameter`},
	} {
		e, err := syntax.ParseExpr("foo.js", test.input)
		var got string
		if err != nil {
			got = stripPos(err)
		} else {
			got = treeString(e)
		}
		if test.want != got {
			t.Errorf("parse `%s` = %s, want %s", test.input, got, test.want)
		}
	}
}

func TestStmtParseTrees(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`const a = 1, { b } = c;`,
			`(VarDecl Kind=const List=((VarDeclarator Name=a Init=1) (VarDeclarator Name=(ObjectExpr List=((Property Key=b Value=b Shorthand))) Init=c)))`},
		{`let x`,
			`(VarDecl Kind=let List=((VarDeclarator Name=x)))`},
		{`function f(a = 1, ...r) { return }`,
			`(FuncDecl Name=f Params=((AssignExpr LHS=a Op== RHS=1) (SpreadExpr X=r)) Body=(BlockStmt Stmts=((ReturnStmt))))`},
		{`async function g() {}`,
			`(FuncDecl Name=g Async Body=(BlockStmt))`},
		{`class A extends B {}`,
			`(ClassDecl Name=A Super=B)`},
		{`if (a) b; else if (c) d`,
			`(IfStmt Cond=a Then=(ExprStmt X=b) Else=(IfStmt Cond=c Then=(ExprStmt X=d)))`},
		{`for (let i = 0; i < n; i++) {}`,
			`(ForStmt Init=(VarDecl Kind=let List=((VarDeclarator Name=i Init=0))) Cond=(BinaryExpr X=i Op=< Y=n) Post=(UnaryExpr Op=++ X=i Postfix) Body=(BlockStmt))`},
		{`for (const k in o) f(k)`,
			`(ForInStmt Kind=const Decl=k X=o Body=(ExprStmt X=(CallExpr Fn=f Args=(k))))`},
		{`for (x of xs);`,
			`(ForInStmt Of Decl=x X=xs Body=(EmptyStmt))`},
		{`for (;;) break`,
			`(ForStmt Body=(BranchStmt Token=break))`},
		{`while (x) continue;`,
			`(WhileStmt Cond=x Body=(BranchStmt Token=continue))`},
		{`try { a() } catch (e) {} finally {}`,
			`(TryStmt Body=(BlockStmt Stmts=((ExprStmt X=(CallExpr Fn=a)))) Param=e Catch=(BlockStmt) Finally=(BlockStmt))`},
		{`try {} catch {}`,
			`(TryStmt Body=(BlockStmt) Catch=(BlockStmt))`},
		{`throw new Error('x')`,
			`(ThrowStmt X=(NewExpr Fn=Error Args=("x")))`},
		{`import React, { useState as s, x } from 'react';`,
			`(ImportDecl Default=React Specs=((ImportSpec Imported=useState Local=s) (ImportSpec Imported=x Local=x)) Source="react")`},
		{`import * as ns from "m"`,
			`(ImportDecl Namespace=ns Source="m")`},
		{`import 'side'`,
			`(ImportDecl Source="side")`},
		{`export default function () {}`,
			`(ExportDecl Default X=(FuncExpr Body=(BlockStmt)))`},
		{`export const a = 1;`,
			`(ExportDecl Decl=(VarDecl Kind=const List=((VarDeclarator Name=a Init=1))))`},
		{`export { a, b as c } from './m';`,
			`(ExportDecl Specs=((ExportSpec Local=a Exported=a) (ExportSpec Local=b Exported=c)) Source="./m")`},
		{`export default a + b;`,
			`(ExportDecl Default X=(BinaryExpr X=a Op=+ Y=b))`},
		{`{ ; }`,
			`(BlockStmt Stmts=((EmptyStmt)))`},
		{`function r(s,a){ switch (a.type) { case 'x': return 1; default: return s; } }`,
			`(FuncDecl Name=r Params=(s a) Body=(BlockStmt Stmts=((SwitchStmt Tag=(DotExpr X=a Name=type) Cases=((CaseClause Value="x" Body=((ReturnStmt Result=1))) (CaseClause Body=((ReturnStmt Result=s))))))))`},
		{`switch (x) { case 1: case 2: f(); break; default: }`,
			`(SwitchStmt Tag=x Cases=((CaseClause Value=1) (CaseClause Value=2 Body=((ExprStmt X=(CallExpr Fn=f)) (BranchStmt Token=break))) (CaseClause)))`},
		{`import { default as d } from 'm'`,
			`(ImportDecl Specs=((ImportSpec Imported=default Local=d)) Source="m")`},
		{`/a/.test(s)`,
			`(ExprStmt X=(CallExpr Fn=(DotExpr X=/a/ Name=test) Args=(s)))`},
		{`const C = () => <div>{x}</div>;`,
			`(VarDecl Kind=const List=((VarDeclarator Name=C Init=(ArrowFunc Result=(JSXElement Name=div Children=((JSXExprContainer X=x)))))))`},

		// automatic semicolon insertion
		{"a\nb",
			`(ExprStmt X=a)(ExprStmt X=b)`},
		{"a; b; c\n",
			`(ExprStmt X=a)(ExprStmt X=b)(ExprStmt X=c)`},
		{"function f() { return\nx }",
			`(FuncDecl Name=f Body=(BlockStmt Stmts=((ReturnStmt) (ExprStmt X=x))))`},
		{"a\n++b",
			`(ExprStmt X=a)(ExprStmt X=(UnaryExpr Op=++ X=b))`},
		{"x = a\n/b/g",
			`(ExprStmt X=(AssignExpr LHS=x Op== RHS=(BinaryExpr X=(BinaryExpr X=a Op=/ Y=b) Op=/ Y=g)))`},
		{"a; b c\n",
			`got identifier, want ';'`},
	} {
		var got string
		f, err := syntax.Parse("foo.js", test.input)
		if err != nil {
			got = stripPos(err)
		} else {
			for _, stmt := range f.Stmts {
				got += treeString(stmt)
			}
		}
		if test.want != got {
			t.Errorf("parse `%s` = %s, want %s", test.input, got, test.want)
		}
	}
}

func stripPos(err error) string {
	s := err.Error()
	if i := strings.Index(s, ": "); i >= 0 {
		s = s[i+len(": "):] // strip file:line:col
	}
	return s
}

// treeString prints a syntax node as a parenthesized tree.
// Idents are printed as foo, Literals as "foo" or 42, and
// markup text as a quoted string.
// Structs are printed as (type name=value ...), with the fields of
// embedded structs inlined. Only non-empty fields are shown.
func treeString(n syntax.Node) string {
	var buf bytes.Buffer
	writeTree(&buf, reflect.ValueOf(n))
	return buf.String()
}

var (
	positionType = reflect.TypeOf(syntax.Position{})
	tokenType    = reflect.TypeOf(syntax.Token(0))
	tagType      = reflect.TypeOf(syntax.Tag(0))
)

func writeTree(out *bytes.Buffer, x reflect.Value) {
	switch x.Kind() {
	case reflect.String:
		fmt.Fprintf(out, "%q", x.String())
	case reflect.Int, reflect.Bool:
		fmt.Fprintf(out, "%v", x.Interface())
	case reflect.Ptr, reflect.Interface:
		if elem := x.Elem(); elem.Kind() == 0 {
			out.WriteString("nil")
		} else {
			writeTree(out, elem)
		}
	case reflect.Struct:
		switch v := x.Interface().(type) {
		case syntax.Literal:
			if v.Token == syntax.STRING {
				fmt.Fprintf(out, "%q", v.Value)
			} else {
				out.WriteString(v.Raw)
			}
			return
		case syntax.Ident:
			out.WriteString(v.Name)
			return
		case syntax.JSXText:
			fmt.Fprintf(out, "%q", v.Raw)
			return
		}
		fmt.Fprintf(out, "(%s", strings.TrimPrefix(x.Type().String(), "syntax."))
		writeFields(out, x)
		out.WriteByte(')')
	default:
		fmt.Fprintf(out, "%T", x.Interface())
	}
}

func writeFields(out *bytes.Buffer, x reflect.Value) {
	for i, n := 0, x.NumField(); i < n; i++ {
		f := x.Field(i)
		field := x.Type().Field(i)
		name := field.Name
		switch {
		case f.Type() == positionType:
			continue // skip positions
		case name == "Binding":
			continue // skip resolver annotations
		case field.Anonymous:
			writeFields(out, f) // Function, Class
			continue
		case f.Type() == tokenType:
			if f.Int() != 0 {
				fmt.Fprintf(out, " %s=%s", name, f.Interface())
			}
			continue
		case f.Type() == tagType:
			if f.Uint() != 0 {
				fmt.Fprintf(out, " %s=%s", name, f.Interface())
			}
			continue
		}

		switch f.Kind() {
		case reflect.Slice:
			if n := f.Len(); n > 0 {
				fmt.Fprintf(out, " %s=(", name)
				for i := 0; i < n; i++ {
					if i > 0 {
						out.WriteByte(' ')
					}
					writeTree(out, f.Index(i))
				}
				out.WriteByte(')')
			}
			continue
		case reflect.Ptr, reflect.Interface:
			if f.IsNil() {
				continue
			}
		case reflect.Bool:
			if f.Bool() {
				fmt.Fprintf(out, " %s", name)
			}
			continue
		case reflect.String:
			if f.Len() == 0 {
				continue
			}
		}
		fmt.Fprintf(out, " %s=", name)
		writeTree(out, f)
	}
}

func TestParseErrors(t *testing.T) {
	filename := "testdata/errors.jsx"
	for _, chunk := range chunkedfile.Read(filename, t) {
		_, err := syntax.Parse(filename, chunk.Source)
		switch err := err.(type) {
		case nil:
			// ok
		case syntax.Error:
			chunk.GotError(int(err.Pos.Line), err.Msg)
		default:
			t.Error(err)
		}
		chunk.Done()
	}
}

func TestSpans(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`f(x)`, "1:1-1:5"},
		{`a.b?.c`, "1:1-1:7"},
		{`<a>hi</a>`, "1:1-1:10"},
		{`<a b="c" />`, "1:1-1:12"},
		{`<>x</>`, "1:1-1:7"},
		{"`a${b}`", "1:1-1:8"},
		{"x => {\n}", "1:1-2:2"},
		{"i++", "1:1-1:4"},
		{"new F", "1:1-1:6"},
	} {
		e, err := syntax.ParseExpr("foo.js", test.input)
		if err != nil {
			t.Errorf("parse `%s` failed: %v", test.input, err)
			continue
		}
		start, end := e.Span()
		got := fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if got != test.want {
			t.Errorf("span of `%s` = %s, want %s", test.input, got, test.want)
		}
	}
}

func TestFilePortion(t *testing.T) {
	// Imagine that the component f(x.y) is extracted from the middle
	// of a larger document, such as a fenced block in Markdown:
	// --
	// ```jsx
	//    f(x.y)
	// ```
	// --
	fp := syntax.FilePortion{Content: []byte("f(x.y)"), FirstLine: 2, FirstCol: 4}
	file, err := syntax.Parse("foo.md", fp)
	if err != nil {
		t.Fatal(err)
	}
	span := fmt.Sprint(file.Stmts[0].Span())
	want := "foo.md:2:4 foo.md:2:10"
	if span != want {
		t.Errorf("wrong span: got %q, want %q", span, want)
	}
}

func BenchmarkParse(b *testing.B) {
	filename := "testdata/scan.js"
	b.StopTimer()
	data, err := os.ReadFile(filename)
	if err != nil {
		b.Fatal(err)
	}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		_, err := syntax.Parse(filename, data)
		if err != nil {
			b.Fatal(err)
		}
	}
}
