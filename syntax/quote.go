// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// JavaScript quoted string syntax.

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unesc maps single-letter chars following \ to their actual values.
var unesc = [256]byte{
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// esc maps escape-worthy bytes to the char that should follow \.
var esc = [256]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\\': '\\',
	'\'': '\'',
}

// unquote unquotes the quoted string, returning the actual
// string value. The quote may be ' or ".
func unquote(quoted string) (s string, err error) {
	if len(quoted) < 2 {
		return "", fmt.Errorf("string literal too short")
	}
	q := quoted[0]
	if q != '"' && q != '\'' || quoted[len(quoted)-1] != q {
		return "", fmt.Errorf("string literal has invalid quotes")
	}
	quoted = quoted[1 : len(quoted)-1]

	// Fast path: no escapes.
	if !strings.Contains(quoted, `\`) {
		return quoted, nil
	}

	var buf strings.Builder
	for len(quoted) > 0 {
		i := strings.IndexByte(quoted, '\\')
		if i < 0 {
			buf.WriteString(quoted)
			break
		}
		buf.WriteString(quoted[:i])
		quoted = quoted[i:]

		if len(quoted) == 1 {
			return "", fmt.Errorf(`truncated escape sequence \`)
		}

		switch c := quoted[1]; c {
		case '\n':
			// Line continuation.
			quoted = quoted[2:]

		case '\r':
			quoted = quoted[2:]
			if len(quoted) > 0 && quoted[0] == '\n' {
				quoted = quoted[1:]
			}

		case 'x':
			if len(quoted) < 4 {
				return "", fmt.Errorf(`truncated escape sequence %s`, quoted)
			}
			n, err := strconv.ParseUint(quoted[2:4], 16, 0)
			if err != nil {
				return "", fmt.Errorf(`invalid escape sequence %s`, quoted[:4])
			}
			buf.WriteRune(rune(n))
			quoted = quoted[4:]

		case 'u':
			var hex string
			if len(quoted) > 2 && quoted[2] == '{' {
				end := strings.IndexByte(quoted, '}')
				if end < 0 {
					return "", fmt.Errorf(`truncated escape sequence %s`, quoted)
				}
				hex, quoted = quoted[3:end], quoted[end+1:]
			} else {
				if len(quoted) < 6 {
					return "", fmt.Errorf(`truncated escape sequence %s`, quoted)
				}
				hex, quoted = quoted[2:6], quoted[6:]
			}
			n, err := strconv.ParseUint(hex, 16, 0)
			if err != nil || n > utf8.MaxRune {
				return "", fmt.Errorf(`invalid escape sequence \u%s`, hex)
			}
			buf.WriteRune(rune(n))

		default:
			if unesc[c] != 0 || c == '0' {
				buf.WriteByte(unesc[c])
			} else {
				// JavaScript keeps the character of an unknown escape.
				buf.WriteByte(c)
			}
			quoted = quoted[2:]
		}
	}
	return buf.String(), nil
}

// Quote returns a single-quoted JavaScript string literal
// representing s.
func Quote(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if e := esc[c]; e != 0 {
			buf.WriteByte('\\')
			buf.WriteByte(e)
			continue
		}
		if c < 0x20 || c == 0x7f {
			fmt.Fprintf(&buf, `\x%02x`, c)
			continue
		}
		buf.WriteByte(c)
	}
	buf.WriteByte('\'')
	return buf.String()
}
