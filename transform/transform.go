// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform rewrites component source so that function values
// passed to markup attributes are wrapped in a referentially stable
// memoization call.
//
// In EventCallback mode (the default) the memoization primitive tracks
// its own dependencies: inline attribute functions are wrapped in
// place, dependency-based calls such as useCallback(fn, deps) are
// collapsed to primitive(fn), and function-valued declarations and
// assignments whose target appears as an attribute value are wrapped
// where they are declared or assigned.
//
// In Scoped mode the primitive takes an explicit dependency array,
// computed from the function's free variables. Inline attribute
// functions are hoisted out of the returned markup into a factory
// closure cached in a module-level variable, giving the memoization
// calls inside it a stable scope:
//
//	return React.createElement(_cache = _cache || (() => {
//	  const _onClick = React.useCallback(() => alert(x), [x]);
//	  return <button onClick={_onClick} />;
//	}), null);
//
// Every node a rewrite produces is tagged, and rewriting already
// transformed source leaves it unchanged.
package transform // import "go.jsxmemo.dev/transform"

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"go.jsxmemo.dev/resolve"
	"go.jsxmemo.dev/syntax"
)

// A Mode selects the memoization strategy.
type Mode uint8

const (
	EventCallback Mode = iota // self-tracking primitive, wrap in place
	Scoped                    // dependency-array primitive inside lifted scopes
)

var modeNames = [...]string{EventCallback: "eventcallback", Scoped: "scoped"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want eventcallback or scoped)", s)
}

// Options configures a transform. The zero value selects
// EventCallback mode with useEventCallback from
// react-use-event-callback.
type Options struct {
	Mode Mode

	// Primitive is the dotted name of the memoization primitive.
	// Default: useEventCallback, or React.useCallback in Scoped mode.
	Primitive string

	// Source is the module the primitive's root name is imported from.
	// Default: react-use-event-callback, or react in Scoped mode.
	Source string

	// DependencyPrimitives name the dependency-based memoization
	// calls collapsed in EventCallback mode.
	// Default: useCallback and React.useCallback.
	DependencyPrimitives []string

	// ElementFactory constructs a lifted element in Scoped mode.
	// Default: React.createElement.
	ElementFactory string

	// HookPrefix marks a callee as a hook. Default: use.
	HookPrefix string

	// Logger receives a debug entry for each rewrite. Default: no-op.
	Logger *zap.Logger
}

func (opts Options) withDefaults() Options {
	if opts.Primitive == "" {
		opts.Primitive = "useEventCallback"
		if opts.Mode == Scoped {
			opts.Primitive = "React.useCallback"
		}
	}
	if opts.Source == "" {
		opts.Source = "react-use-event-callback"
		if opts.Mode == Scoped {
			opts.Source = "react"
		}
	}
	if opts.DependencyPrimitives == nil {
		opts.DependencyPrimitives = []string{"useCallback", "React.useCallback"}
	}
	if opts.ElementFactory == "" {
		opts.ElementFactory = "React.createElement"
	}
	if opts.HookPrefix == "" {
		opts.HookPrefix = "use"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

// Validate reports whether the options, with defaults applied, are
// usable.
func (opts Options) Validate() error {
	opts = opts.withDefaults()
	if opts.Mode > Scoped {
		return fmt.Errorf("invalid mode %v", opts.Mode)
	}
	names := append([]string{opts.Primitive, opts.ElementFactory}, opts.DependencyPrimitives...)
	for _, name := range names {
		if !validName(name) {
			return fmt.Errorf("invalid name %q: want identifier or dotted identifiers", name)
		}
	}
	if !syntax.IsIdentifier(opts.HookPrefix) {
		return fmt.Errorf("invalid hook prefix %q", opts.HookPrefix)
	}
	if opts.Mode == EventCallback {
		for _, dep := range opts.DependencyPrimitives {
			if dep == opts.Primitive {
				return fmt.Errorf("primitive %s is also a dependency primitive", dep)
			}
		}
	}
	return nil
}

// A RewriteKind identifies one kind of tree mutation.
type RewriteKind uint8

const (
	InlineWrap RewriteKind = iota // inline attribute function wrapped in place
	Collapse                      // dependency-based call collapsed to the primitive
	DeclWrap                      // declaration initializer wrapped
	AssignWrap                    // assigned function wrapped
	Hoist                         // inline attribute function hoisted into a lifted scope
	Lift                          // returned markup lifted into a cached factory
	numRewriteKinds
)

var rewriteKindNames = [...]string{
	InlineWrap: "inline",
	Collapse:   "collapse",
	DeclWrap:   "declaration",
	AssignWrap: "assignment",
	Hoist:      "hoist",
	Lift:       "lift",
}

func (k RewriteKind) String() string { return rewriteKindNames[k] }

// A Result summarizes the rewrites applied to one file.
type Result struct {
	Counts   [numRewriteKinds]int
	Caches   []string // module-level cache variables, in allocation order
	Imported bool     // an import of the primitive was added
}

// Rewrote reports whether any rewrite happened.
func (r *Result) Rewrote() bool {
	for _, n := range r.Counts {
		if n > 0 {
			return true
		}
	}
	return false
}

// Total returns the number of rewrites of all kinds.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// File transforms a parsed file in place. It resolves the file's names
// first; a resolver error aborts the transform before any change.
// On error the file may have been partially modified and should be
// discarded.
func File(f *syntax.File, opts Options) (res *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	info, err := resolve.File(f)
	if err != nil {
		return nil, err
	}

	defer func() {
		if e := recover(); e != nil {
			res, err = nil, fmt.Errorf("transform %s: internal error: %v", f.Path, e)
		}
	}()

	s := newState(f, info, opts)
	s.run()
	return s.result, nil
}

// Source parses, transforms and prints the source of one file.
// See syntax.Parse for the meaning of filename and src.
// On any error no output is returned.
func Source(filename string, src interface{}, opts Options) ([]byte, *Result, error) {
	f, err := syntax.Parse(filename, src)
	if err != nil {
		return nil, nil, err
	}
	res, err := File(f, opts)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := syntax.Print(&buf, f); err != nil {
		return nil, nil, fmt.Errorf("printing %s: %w", filename, err)
	}
	return buf.Bytes(), res, nil
}

// state is the transform state of one file. It is created when the
// traversal starts and discarded when it ends.
type state struct {
	opts   Options
	log    *zap.Logger
	file   *syntax.File
	info   *resolve.Info
	names  *namer
	result *Result

	imports  importer
	stack    []syntax.Node                 // ancestors of the current node, inclusive
	attrRefs []syntax.Expr                 // reference expressions used as attribute values
	pending  map[*syntax.JSXElement]string // elements marked for lifting, with their cache variables
	caches   []string                      // cache variables in allocation order
}

func newState(f *syntax.File, info *resolve.Info, opts Options) *state {
	return &state{
		opts:    opts,
		log:     opts.Logger.With(zap.String("file", f.Path)),
		file:    f,
		info:    info,
		result:  new(Result),
		imports: importer{root: rootName(opts.Primitive), source: opts.Source},
		pending: make(map[*syntax.JSXElement]string),
	}
}

// run makes one depth-first pass over the file, dispatching to the
// visitors on entry to and exit from each node.
func (s *state) run() {
	s.programEnter()
	syntax.Walk(s.file, func(n syntax.Node) bool {
		if n == nil {
			s.exit(s.stack[len(s.stack)-1])
			s.stack = s.stack[:len(s.stack)-1]
			return true
		}
		s.stack = append(s.stack, n)
		s.enter(n)
		return true
	})
	s.programExit()
}

func (s *state) programEnter() {
	s.names = newNamer(s.file)
	s.attrRefs = collectAttrRefs(s.file)
}

func (s *state) enter(n syntax.Node) {
	switch n := n.(type) {
	case *syntax.JSXAttr:
		s.visitAttr(n)
	case *syntax.CallExpr:
		if s.opts.Mode == EventCallback && s.isDependencyCall(n) {
			s.collapse(n)
		}
	case *syntax.VarDeclarator:
		if s.opts.Mode == EventCallback {
			s.visitDeclarator(n)
		}
	case *syntax.AssignExpr:
		if s.opts.Mode == EventCallback {
			s.visitAssign(n)
		}
	case *syntax.ReturnStmt:
		s.visitReturn(n)
	}
}

func (s *state) exit(n syntax.Node) {
	if ret, ok := n.(*syntax.ReturnStmt); ok && s.opts.Mode == Scoped {
		s.liftReturn(ret)
	}
}

func (s *state) programExit() {
	s.result.Caches = s.caches

	i := importIndex(s.file.Stmts)
	if decl := s.imports.finish(s.info.ScopeOf(s.file)); decl != nil {
		s.file.Stmts = insertStmts(s.file.Stmts, i, decl)
		s.result.Imported = true
		i++
	}
	if len(s.result.Caches) > 0 {
		decl := &syntax.VarDecl{Kind: syntax.LET}
		for _, name := range s.result.Caches {
			decl.List = append(decl.List, &syntax.VarDeclarator{Name: &syntax.Ident{Name: name}})
		}
		s.file.Stmts = insertStmts(s.file.Stmts, i, decl)
	}
}

// record notes a completed rewrite.
func (s *state) record(kind RewriteKind, pos syntax.Position) {
	s.result.Counts[kind]++
	s.imports.rewrote()
	s.log.Debug("rewrite", zap.Stringer("kind", kind), zap.Stringer("pos", pos))
}

// enclosingFunc returns the stack index of the nearest function
// enclosing the node at stack index i, or -1 at module level.
// For a return statement it is the function returned from, however
// deeply the return is nested in blocks and clauses.
func (s *state) enclosingFunc(i int) int {
	for j := i - 1; j >= 0; j-- {
		switch s.stack[j].(type) {
		case *syntax.FuncDecl, *syntax.FuncExpr, *syntax.ArrowFunc:
			return j
		}
	}
	return -1
}
