// Copyright 2026 The go-idlc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-idlc/idlc/diag"
)

// Lexer tokenizes a single source file's contents. It tracks tabs (E2002),
// unexpected bytes (E2001), and records the innermost file/line/column for
// every token it produces. Nested-file state (pushed when the parser
// reduces an `import` statement) is owned by the parser, not here — each
// Lexer value only ever sees one file.
type Lexer struct {
	file string
	src  []byte
	pos  int
	line int
	col  int

	h *diag.Handler
}

// New creates a Lexer over src, attributing every position to file.
func New(file string, src []byte, h *diag.Handler) *Lexer {
	return &Lexer{file: file, src: src, line: 1, col: 1, h: h}
}

func (l *Lexer) here() diag.Position {
	return diag.Position{File: l.file, Line: l.line, Column: l.col}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekByte() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRune(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// skipSpacesAndComments consumes plain whitespace (not tabs, those are
// rejected) and `//` line comments that are NOT doc comments (those begin
// with exactly three slashes and are tokenized, not skipped).
func (l *Lexer) skipSpacesAndComments() error {
	for !l.eof() {
		b := l.peekByte()
		switch {
		case b == '\t':
			pos := l.here()
			l.advance()
			return l.h.HandleErrorf(pos, diag.E2002)
		case b == ' ' || b == '\n' || b == '\r':
			l.advance()
		case b == '/' && l.peekByteAt(1) == '/' && l.peekByteAt(2) != '/':
			for !l.eof() && l.peekByte() != '\n' {
				l.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

// Next returns the next significant token. At end of input it returns an EOF
// token with a nil error; repeated calls past EOF keep returning the EOF token.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpacesAndComments(); err != nil {
		return Token{}, err
	}
	if l.eof() {
		p := l.here()
		return Token{Kind: EOF, Pos: p, End: p}, nil
	}

	start := l.here()
	b := l.peekByte()

	switch {
	case b == '/' && l.peekByteAt(1) == '/' && l.peekByteAt(2) == '/':
		return l.lexDocLine(start)
	case b == '/' && l.peekByteAt(1) == '*':
		return l.lexDocBlock(start)
	case b == '"':
		return l.lexString(start)
	case isDigit(b):
		return l.lexNumber(start)
	case isIdentStart(b):
		return l.lexIdent(start)
	case strings.ContainsRune("{}()[],|", rune(b)):
		l.advance()
		return Token{Kind: Punct, Text: string(b), Pos: start, End: l.here()}, nil
	default:
		r := l.advance()
		return Token{}, l.h.HandleErrorf(start, diag.E2001, string(r))
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func (l *Lexer) lexIdent(start diag.Position) (Token, error) {
	s := l.pos
	for !l.eof() && isIdentCont(l.peekByte()) {
		l.advance()
	}
	text := string(l.src[s:l.pos])
	return Token{Kind: Ident, Text: text, Pos: start, End: l.here()}, nil
}

func (l *Lexer) lexNumber(start diag.Position) (Token, error) {
	s := l.pos
	if l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X') {
		l.advance()
		l.advance()
		for !l.eof() && isHexDigit(l.peekByte()) {
			l.advance()
		}
		text := string(l.src[s:l.pos])
		v, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			return Token{}, l.h.HandleErrorf(start, diag.E2001, text)
		}
		return Token{Kind: IntLiteral, Text: text, Int: v, Pos: start, End: l.here()}, nil
	}
	for !l.eof() && isDigit(l.peekByte()) {
		l.advance()
	}
	text := string(l.src[s:l.pos])
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, l.h.HandleErrorf(start, diag.E2001, text)
	}
	return Token{Kind: IntLiteral, Text: text, Int: v, Pos: start, End: l.here()}, nil
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (l *Lexer) lexString(start diag.Position) (Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.eof() {
			return Token{}, l.h.HandleErrorf(start, diag.E2005)
		}
		b := l.peekByte()
		if b == '"' {
			l.advance()
			break
		}
		if b == '\\' && l.peekByteAt(1) == '"' {
			l.advance()
			l.advance()
			sb.WriteByte('"')
			continue
		}
		if b == '\\' && l.peekByteAt(1) == '\\' {
			l.advance()
			l.advance()
			sb.WriteByte('\\')
			continue
		}
		sb.WriteRune(l.advance())
	}
	return Token{Kind: StringLiteral, Text: sb.String(), Pos: start, End: l.here()}, nil
}

// lexDocLine consumes one `/// ...` line, starting at the leading slash.
// Text is the raw content following the three-slash marker, unindented
// relative to where the marker ended — callers (the parser) determine tag
// keywords and continuation-line indentation from Text directly.
func (l *Lexer) lexDocLine(start diag.Position) (Token, error) {
	l.advance()
	l.advance()
	l.advance()
	if !l.eof() && l.peekByte() == ' ' {
		l.advance()
	}
	s := l.pos
	for !l.eof() && l.peekByte() != '\n' {
		l.advance()
	}
	text := string(l.src[s:l.pos])
	return Token{Kind: DocLine, Text: text, Pos: start, End: l.here()}, nil
}

// lexDocBlock consumes a `/** ... */` block comment, raw inner text
// preserved line-by-line in Text (newline-joined) for the parser to split.
func (l *Lexer) lexDocBlock(start diag.Position) (Token, error) {
	l.advance()
	l.advance()
	s := l.pos
	for {
		if l.eof() {
			return Token{}, l.h.HandleErrorf(start, diag.E2005)
		}
		if l.peekByte() == '*' && l.peekByteAt(1) == '/' {
			break
		}
		l.advance()
	}
	text := string(l.src[s:l.pos])
	l.advance()
	l.advance()
	return Token{Kind: DocBlock, Text: text, Pos: start, End: l.here()}, nil
}
