// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A lexical scanner for JavaScript with JSX.

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Token represents a JavaScript lexical token.
type Token int8

const (
	ILLEGAL Token = iota
	EOF

	// Tokens with values
	IDENT           // x
	NUMBER          // 123, 1.5, 0x1f
	STRING          // "foo" or 'foo'
	TEMPLATE        // `foo`
	TEMPLATE_HEAD   // `foo${
	TEMPLATE_MIDDLE // }foo${
	TEMPLATE_TAIL   // }foo`
	JSXTEXT         // text between JSX tags
	REGEXP          // /a+/g

	// Punctuation
	PLUS             // +
	MINUS            // -
	STAR             // *
	SLASH            // /
	PERCENT          // %
	STARSTAR         // **
	PLUSPLUS         // ++
	MINUSMINUS       // --
	AMP              // &
	PIPE             // |
	CIRCUMFLEX       // ^
	TILDE            // ~
	LTLT             // <<
	GTGT             // >>
	GTGTGT           // >>>
	AMPAMP           // &&
	PIPEPIPE         // ||
	QUESTIONQUESTION // ??
	BANG             // !
	DOT              // .
	ELLIPSIS         // ...
	COMMA            // ,
	SEMI             // ;
	COLON            // :
	QUESTION         // ?
	QUESTIONDOT      // ?.
	LPAREN           // (
	RPAREN           // )
	LBRACK           // [
	RBRACK           // ]
	LBRACE           // {
	RBRACE           // }
	LT               // <
	GT               // >
	LE               // <=
	GE               // >=
	EQL              // ==
	NEQ              // !=
	EQLEQL           // ===
	NEQEQ            // !==
	EQ               // =
	ARROW            // =>

	// Assignment operators
	PLUS_EQ             // +=
	MINUS_EQ            // -=
	STAR_EQ             // *=
	SLASH_EQ            // /=
	PERCENT_EQ          // %=
	STARSTAR_EQ         // **=
	AMP_EQ              // &=
	PIPE_EQ             // |=
	CIRCUMFLEX_EQ       // ^=
	LTLT_EQ             // <<=
	GTGT_EQ             // >>=
	GTGTGT_EQ           // >>>=
	AMPAMP_EQ           // &&=
	PIPEPIPE_EQ         // ||=
	QUESTIONQUESTION_EQ // ??=

	// Keywords
	AWAIT
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEFAULT
	DELETE
	ELSE
	EXPORT
	EXTENDS
	FALSE
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	LET
	NEW
	NULL
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPEOF
	VAR
	VOID
	WHILE

	maxToken
)

func (tok Token) String() string { return tokenNames[tok] }

// GoString is like String but quotes punctuation tokens.
// Use Sprintf("%#v", tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok >= PLUS && tok <= QUESTIONQUESTION_EQ {
		return "'" + tokenNames[tok] + "'"
	}
	return tokenNames[tok]
}

var tokenNames = [...]string{
	ILLEGAL:             "illegal token",
	EOF:                 "end of file",
	IDENT:               "identifier",
	NUMBER:              "number literal",
	STRING:              "string literal",
	TEMPLATE:            "template literal",
	TEMPLATE_HEAD:       "template literal",
	TEMPLATE_MIDDLE:     "template literal",
	TEMPLATE_TAIL:       "template literal",
	JSXTEXT:             "JSX text",
	REGEXP:              "regular expression literal",
	PLUS:                "+",
	MINUS:               "-",
	STAR:                "*",
	SLASH:               "/",
	PERCENT:             "%",
	STARSTAR:            "**",
	PLUSPLUS:            "++",
	MINUSMINUS:          "--",
	AMP:                 "&",
	PIPE:                "|",
	CIRCUMFLEX:          "^",
	TILDE:               "~",
	LTLT:                "<<",
	GTGT:                ">>",
	GTGTGT:              ">>>",
	AMPAMP:              "&&",
	PIPEPIPE:            "||",
	QUESTIONQUESTION:    "??",
	BANG:                "!",
	DOT:                 ".",
	ELLIPSIS:            "...",
	COMMA:               ",",
	SEMI:                ";",
	COLON:               ":",
	QUESTION:            "?",
	QUESTIONDOT:         "?.",
	LPAREN:              "(",
	RPAREN:              ")",
	LBRACK:              "[",
	RBRACK:              "]",
	LBRACE:              "{",
	RBRACE:              "}",
	LT:                  "<",
	GT:                  ">",
	LE:                  "<=",
	GE:                  ">=",
	EQL:                 "==",
	NEQ:                 "!=",
	EQLEQL:              "===",
	NEQEQ:               "!==",
	EQ:                  "=",
	ARROW:               "=>",
	PLUS_EQ:             "+=",
	MINUS_EQ:            "-=",
	STAR_EQ:             "*=",
	SLASH_EQ:            "/=",
	PERCENT_EQ:          "%=",
	STARSTAR_EQ:         "**=",
	AMP_EQ:              "&=",
	PIPE_EQ:             "|=",
	CIRCUMFLEX_EQ:       "^=",
	LTLT_EQ:             "<<=",
	GTGT_EQ:             ">>=",
	GTGTGT_EQ:           ">>>=",
	AMPAMP_EQ:           "&&=",
	PIPEPIPE_EQ:         "||=",
	QUESTIONQUESTION_EQ: "??=",
	AWAIT:               "await",
	BREAK:               "break",
	CASE:                "case",
	CATCH:               "catch",
	CLASS:               "class",
	CONST:               "const",
	CONTINUE:            "continue",
	DEFAULT:             "default",
	DELETE:              "delete",
	ELSE:                "else",
	EXPORT:              "export",
	EXTENDS:             "extends",
	FALSE:               "false",
	FINALLY:             "finally",
	FOR:                 "for",
	FUNCTION:            "function",
	IF:                  "if",
	IMPORT:              "import",
	IN:                  "in",
	INSTANCEOF:          "instanceof",
	LET:                 "let",
	NEW:                 "new",
	NULL:                "null",
	RETURN:              "return",
	SUPER:               "super",
	SWITCH:              "switch",
	THIS:                "this",
	THROW:               "throw",
	TRUE:                "true",
	TRY:                 "try",
	TYPEOF:              "typeof",
	VAR:                 "var",
	VOID:                "void",
	WHILE:               "while",
}

// keywordToken records the special tokens for
// strings that should not be treated as ordinary identifiers.
var keywordToken = map[string]Token{}

func init() {
	for tok := AWAIT; tok < maxToken; tok++ {
		keywordToken[tokenNames[tok]] = tok
	}
}

// IsKeyword reports whether tok is a reserved word.
// Reserved words are still valid property names.
func (tok Token) IsKeyword() bool { return tok >= AWAIT && tok < maxToken }

// IsAssign reports whether tok is = or a compound assignment operator.
func (tok Token) IsAssign() bool { return tok == EQ || tok >= PLUS_EQ && tok <= QUESTIONQUESTION_EQ }

// A Position describes the location of a rune of input.
type Position struct {
	file *string // filename (indirect for compactness)
	Line int32   // 1-based line number; 0 if line unknown
	Col  int32   // 1-based column (rune) number; 0 if column unknown
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.file != nil }

// Filename returns the name of the file containing this position.
func (p Position) Filename() string {
	if p.file != nil {
		return *p.file
	}
	return "<invalid>"
}

// MakePosition returns position with the specified components.
func MakePosition(file *string, line, col int32) Position { return Position{file, line, col} }

// add returns the position at the end of s, assuming it starts at p.
func (p Position) add(s string) Position {
	if n := strings.Count(s, "\n"); n > 0 {
		p.Line += int32(n)
		s = s[strings.LastIndex(s, "\n")+1:]
		p.Col = 1
	}
	p.Col += int32(utf8.RuneCountInString(s))
	return p
}

func (p Position) String() string {
	file := p.Filename()
	if p.Line > 0 {
		if p.Col > 0 {
			return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Col)
		}
		return fmt.Sprintf("%s:%d", file, p.Line)
	}
	return file
}

func (p Position) isBefore(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// An Error describes the nature and position of a scanner or parser error.
type Error struct {
	Pos Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// A scanMode selects the lexical grammar used for the next token.
// JSX children and tags are not tokenized like ordinary code.
type scanMode uint8

const (
	scanCode     scanMode = iota // ordinary JavaScript
	scanJSXTag                   // inside <...>: hyphenated names, raw strings
	scanJSXChild                 // between tags: text runs, '{' and '<'
)

// scanner represents a single input file being parsed.
type scanner struct {
	rest  []byte   // rest of input
	token []byte   // token being scanned
	pos   Position // current input position
}

// A FilePortion describes the content of a portion of a file.
// Callers may provide a FilePortion for the src argument of Parse
// when the desired initial line and column numbers are not (1, 1),
// such as when a component is embedded in a larger document.
type FilePortion struct {
	Content             []byte
	FirstLine, FirstCol int32
}

func newScanner(filename string, src interface{}) (*scanner, error) {
	var firstLine, firstCol int32 = 1, 1
	if portion, ok := src.(FilePortion); ok {
		firstLine, firstCol = portion.FirstLine, portion.FirstCol
	}
	data, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	return &scanner{
		rest: data,
		pos:  MakePosition(&filename, firstLine, firstCol),
	}, nil
}

func readSource(filename string, src interface{}) ([]byte, error) {
	switch src := src.(type) {
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	case io.Reader:
		data, err := io.ReadAll(src)
		if err != nil {
			err = &os.PathError{Op: "read", Path: filename, Err: err}
			return nil, err
		}
		return data, nil
	case FilePortion:
		return src.Content, nil
	case nil:
		return os.ReadFile(filename)
	default:
		return nil, fmt.Errorf("invalid source: %T", src)
	}
}

// error aborts scanning or parsing with the given message.
// The parser's entry points recover it.
func (sc *scanner) error(pos Position, s string) {
	panic(Error{pos, s})
}

func (sc *scanner) errorf(pos Position, format string, args ...interface{}) {
	sc.error(pos, fmt.Sprintf(format, args...))
}

func (sc *scanner) recover(err *error) {
	// The scanner and parser panic both for routine errors like
	// syntax errors and for programmer bugs like array index
	// errors.  Turn both into error returns.  Catching bug panics
	// is especially important when processing many files.
	switch e := recover().(type) {
	case nil:
		// no panic
	case Error:
		*err = e
	default:
		*err = Error{sc.pos, fmt.Sprintf("internal error: %v", e)}
	}
}

// eof reports whether the input has reached end of file.
func (sc *scanner) eof() bool {
	return len(sc.rest) == 0
}

// peekRune returns the next rune in the input without consuming it.
func (sc *scanner) peekRune() rune {
	if len(sc.rest) == 0 {
		return 0
	}
	if b := sc.rest[0]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRune(sc.rest)
	return r
}

// peekAt returns the i'th byte of the remaining input, or 0.
func (sc *scanner) peekAt(i int) byte {
	if i < len(sc.rest) {
		return sc.rest[i]
	}
	return 0
}

// readRune consumes and returns the next rune in the input.
func (sc *scanner) readRune() rune {
	if len(sc.rest) == 0 {
		sc.error(sc.pos, "internal scanner error: readRune at EOF")
	}
	r, size := rune(sc.rest[0]), 1
	if r >= utf8.RuneSelf {
		r, size = utf8.DecodeRune(sc.rest)
	}
	sc.rest = sc.rest[size:]
	if r == '\n' {
		sc.pos.Line++
		sc.pos.Col = 1
	} else {
		sc.pos.Col++
	}
	return r
}

// tokenValue records the position and value associated with each token.
type tokenValue struct {
	raw     string   // raw text of token
	string  string   // decoded value of STRING, TEMPLATE* and JSXTEXT tokens
	pos     Position // start position of token
	newline bool     // a line terminator precedes the token
}

// startToken marks the beginning of the next input token.
// It must be followed by a call to endToken once the token has
// been consumed using readRune.
func (sc *scanner) startToken(val *tokenValue) {
	sc.token = sc.rest
	val.raw = ""
	val.string = ""
	val.pos = sc.pos
}

// endToken marks the end of an input token.
// It records the actual token string in val.raw.
func (sc *scanner) endToken(val *tokenValue) {
	if val.raw == "" {
		val.raw = string(sc.token[:len(sc.token)-len(sc.rest)])
	}
}

// skipSpace consumes white space and comments, recording in val
// whether a line terminator was crossed.
func (sc *scanner) skipSpace(val *tokenValue) {
	for !sc.eof() {
		c := sc.peekRune()
		switch {
		case c == '\n' || c == '\r' || c == '\u2028' || c == '\u2029':
			val.newline = true
			sc.readRune()
		case c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\u00a0' || c == '\ufeff':
			sc.readRune()
		case c == '/' && sc.peekAt(1) == '/':
			for !sc.eof() && sc.peekRune() != '\n' {
				sc.readRune()
			}
		case c == '/' && sc.peekAt(1) == '*':
			pos := sc.pos
			sc.readRune()
			sc.readRune()
			for {
				if sc.eof() {
					sc.error(pos, "unterminated comment")
				}
				c := sc.readRune()
				if c == '\n' {
					val.newline = true
				}
				if c == '*' && sc.peekRune() == '/' {
					sc.readRune()
					break
				}
			}
		default:
			return
		}
	}
}

// next scans the next token in the given mode.
func (sc *scanner) next(mode scanMode, val *tokenValue) Token {
	switch mode {
	case scanJSXTag:
		return sc.nextJSXTag(val)
	case scanJSXChild:
		return sc.nextJSXChild(val)
	}
	return sc.nextToken(val)
}

// nextToken is called by the parser to obtain the next input token.
// It returns the token value and sets val to the data associated with
// the token.
func (sc *scanner) nextToken(val *tokenValue) Token {
	val.newline = false
	sc.skipSpace(val)

	sc.startToken(val)
	defer sc.endToken(val)

	if sc.eof() {
		return EOF
	}

	c := sc.peekRune()

	// identifier or keyword
	if isIdentStart(c) {
		for isIdent(sc.peekRune()) {
			sc.readRune()
		}
		sc.endToken(val)
		if k, ok := keywordToken[val.raw]; ok {
			return k
		}
		return IDENT
	}

	// number
	if isdigit(c) || c == '.' && isdigit(rune(sc.peekAt(1))) {
		return sc.scanNumber(val)
	}

	switch c {
	case '"', '\'':
		return sc.scanString(val, c)
	case '`':
		sc.readRune()
		return sc.scanTemplate(val, TEMPLATE, TEMPLATE_HEAD)
	}

	// punctuation
	sc.readRune()
	switch c {
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	case '[':
		return LBRACK
	case ']':
		return RBRACK
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case ',':
		return COMMA
	case ';':
		return SEMI
	case ':':
		return COLON
	case '~':
		return TILDE
	case '.':
		if sc.peekRune() == '.' && sc.peekAt(1) == '.' {
			sc.readRune()
			sc.readRune()
			return ELLIPSIS
		}
		return DOT
	case '?':
		switch sc.peekRune() {
		case '?':
			sc.readRune()
			return sc.withEq(QUESTIONQUESTION, QUESTIONQUESTION_EQ)
		case '.':
			// a?.5:0 is a conditional, not an optional chain
			if !isdigit(rune(sc.peekAt(1))) {
				sc.readRune()
				return QUESTIONDOT
			}
		}
		return QUESTION
	case '+':
		if sc.peekRune() == '+' {
			sc.readRune()
			return PLUSPLUS
		}
		return sc.withEq(PLUS, PLUS_EQ)
	case '-':
		if sc.peekRune() == '-' {
			sc.readRune()
			return MINUSMINUS
		}
		return sc.withEq(MINUS, MINUS_EQ)
	case '*':
		if sc.peekRune() == '*' {
			sc.readRune()
			return sc.withEq(STARSTAR, STARSTAR_EQ)
		}
		return sc.withEq(STAR, STAR_EQ)
	case '/':
		return sc.withEq(SLASH, SLASH_EQ)
	case '%':
		return sc.withEq(PERCENT, PERCENT_EQ)
	case '^':
		return sc.withEq(CIRCUMFLEX, CIRCUMFLEX_EQ)
	case '&':
		if sc.peekRune() == '&' {
			sc.readRune()
			return sc.withEq(AMPAMP, AMPAMP_EQ)
		}
		return sc.withEq(AMP, AMP_EQ)
	case '|':
		if sc.peekRune() == '|' {
			sc.readRune()
			return sc.withEq(PIPEPIPE, PIPEPIPE_EQ)
		}
		return sc.withEq(PIPE, PIPE_EQ)
	case '!':
		if sc.peekRune() == '=' {
			sc.readRune()
			return sc.withEq(NEQ, NEQEQ)
		}
		return BANG
	case '=':
		switch sc.peekRune() {
		case '>':
			sc.readRune()
			return ARROW
		case '=':
			sc.readRune()
			return sc.withEq(EQL, EQLEQL)
		}
		return EQ
	case '<':
		if sc.peekRune() == '<' {
			sc.readRune()
			return sc.withEq(LTLT, LTLT_EQ)
		}
		return sc.withEq(LT, LE)
	case '>':
		if sc.peekRune() == '>' {
			sc.readRune()
			if sc.peekRune() == '>' {
				sc.readRune()
				return sc.withEq(GTGTGT, GTGTGT_EQ)
			}
			return sc.withEq(GTGT, GTGT_EQ)
		}
		return sc.withEq(GT, GE)
	}
	sc.errorf(val.pos, "unexpected input character %#q", c)
	panic("unreachable")
}

// withEq consumes a following '=' and returns eq if present, otherwise tok.
func (sc *scanner) withEq(tok, eq Token) Token {
	if sc.peekRune() == '=' {
		sc.readRune()
		return eq
	}
	return tok
}

func (sc *scanner) scanNumber(val *tokenValue) Token {
	start := sc.pos
	if sc.peekRune() == '0' {
		switch sc.peekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			sc.readRune()
			sc.readRune()
			n := 0
			for isHexDigit(sc.peekRune()) || sc.peekRune() == '_' {
				sc.readRune()
				n++
			}
			if n == 0 {
				sc.error(start, "invalid number literal")
			}
			if sc.peekRune() == 'n' {
				sc.readRune()
			}
			return NUMBER
		}
	}
	for isdigit(sc.peekRune()) || sc.peekRune() == '_' {
		sc.readRune()
	}
	if sc.peekRune() == '.' {
		sc.readRune()
		for isdigit(sc.peekRune()) || sc.peekRune() == '_' {
			sc.readRune()
		}
	}
	if c := sc.peekRune(); c == 'e' || c == 'E' {
		sc.readRune()
		if c := sc.peekRune(); c == '+' || c == '-' {
			sc.readRune()
		}
		if !isdigit(sc.peekRune()) {
			sc.error(start, "invalid number literal: missing exponent")
		}
		for isdigit(sc.peekRune()) {
			sc.readRune()
		}
	} else if c == 'n' {
		sc.readRune()
	}
	if isIdentStart(sc.peekRune()) {
		sc.error(start, "identifier starts immediately after number literal")
	}
	return NUMBER
}

func (sc *scanner) scanString(val *tokenValue, quote rune) Token {
	start := sc.pos
	sc.readRune()
	for {
		if sc.eof() {
			sc.error(start, "unterminated string literal")
		}
		c := sc.readRune()
		if c == quote {
			break
		}
		switch c {
		case '\\':
			if sc.eof() {
				sc.error(start, "unterminated string literal")
			}
			sc.readRune()
		case '\n', '\r':
			sc.error(start, "unterminated string literal")
		}
	}
	sc.endToken(val)
	s, err := unquote(val.raw)
	if err != nil {
		sc.error(start, err.Error())
	}
	val.string = s
	return STRING
}

// scanTemplate scans the text of a template literal after its opening
// backtick or closing '}' has been consumed. It returns done if the
// template ends with a backtick and more if a substitution follows.
func (sc *scanner) scanTemplate(val *tokenValue, done, more Token) Token {
	start := val.pos
	var text strings.Builder
	for {
		if sc.eof() {
			sc.error(start, "unterminated template literal")
		}
		c := sc.readRune()
		switch {
		case c == '`':
			val.string = text.String()
			return done
		case c == '$' && sc.peekRune() == '{':
			sc.readRune()
			val.string = text.String()
			return more
		case c == '\\':
			if sc.eof() {
				sc.error(start, "unterminated template literal")
			}
			text.WriteRune(c)
			text.WriteRune(sc.readRune())
		default:
			text.WriteRune(c)
		}
	}
}

// nextTemplate continues a template literal after the '}' that closes
// a substitution.
func (sc *scanner) nextTemplate(val *tokenValue) Token {
	val.newline = false
	sc.startToken(val)
	defer sc.endToken(val)
	return sc.scanTemplate(val, TEMPLATE_TAIL, TEMPLATE_MIDDLE)
}

// nextRegexp rescans the current '/' or '/=' token, which the parser
// found where an operand must start, as a regular expression literal.
// The pattern is kept verbatim in val.raw, flags included.
func (sc *scanner) nextRegexp(val *tokenValue) Token {
	start := val.pos
	class := false // within [...], where '/' does not terminate
	for {
		if sc.eof() {
			sc.error(start, "unterminated regular expression literal")
		}
		c := sc.readRune()
		switch c {
		case '\\':
			if sc.eof() || sc.peekRune() == '\n' {
				sc.error(start, "unterminated regular expression literal")
			}
			sc.readRune()
			continue
		case '\n', '\r':
			sc.error(start, "unterminated regular expression literal")
		case '[':
			class = true
		case ']':
			class = false
		}
		if c == '/' && !class {
			break
		}
	}
	for isIdent(sc.peekRune()) {
		sc.readRune()
	}
	val.raw = string(sc.token[:len(sc.token)-len(sc.rest)])
	val.string = ""
	return REGEXP
}

// nextJSXTag scans a token inside a JSX opening or closing tag.
func (sc *scanner) nextJSXTag(val *tokenValue) Token {
	val.newline = false
	sc.skipSpace(val)

	sc.startToken(val)
	defer sc.endToken(val)

	if sc.eof() {
		return EOF
	}
	c := sc.peekRune()
	if isIdentStart(c) {
		for c := sc.peekRune(); isIdent(c) || c == '-' || c == ':'; c = sc.peekRune() {
			sc.readRune()
		}
		return IDENT
	}
	switch c {
	case '"', '\'':
		start := sc.pos
		sc.readRune()
		for {
			if sc.eof() {
				sc.error(start, "unterminated JSX attribute string")
			}
			if sc.readRune() == c {
				break
			}
		}
		sc.endToken(val)
		val.string = val.raw[1 : len(val.raw)-1]
		return STRING
	}
	sc.readRune()
	switch c {
	case '=':
		return EQ
	case '{':
		return LBRACE
	case '/':
		return SLASH
	case '>':
		return GT
	case '<':
		return LT
	case '.':
		return DOT
	}
	sc.errorf(val.pos, "unexpected character %#q in JSX tag", c)
	panic("unreachable")
}

// nextJSXChild scans a token between JSX tags. Text runs, including
// their white space, are returned verbatim as JSXTEXT.
func (sc *scanner) nextJSXChild(val *tokenValue) Token {
	val.newline = false
	sc.startToken(val)
	defer sc.endToken(val)

	if sc.eof() {
		return EOF
	}
	switch sc.peekRune() {
	case '{':
		sc.readRune()
		return LBRACE
	case '<':
		sc.readRune()
		return LT
	}
	for !sc.eof() {
		if c := sc.peekRune(); c == '{' || c == '<' {
			break
		}
		sc.readRune()
	}
	sc.endToken(val)
	val.string = val.raw
	return JSXTEXT
}

func isIdentStart(c rune) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		c == '_' || c == '$' ||
		c >= 0x80 && unicode.IsLetter(c)
}

func isIdent(c rune) bool {
	return isdigit(c) || isIdentStart(c)
}

func isdigit(c rune) bool { return '0' <= c && c <= '9' }

func isHexDigit(c rune) bool {
	return isdigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsIdentifier reports whether s is a valid JavaScript identifier
// that is not a reserved word.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) || !isIdent(r) {
			return false
		}
	}
	_, reserved := keywordToken[s]
	return !reserved
}
