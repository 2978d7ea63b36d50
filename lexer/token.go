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

// Package lexer turns a single UTF-8 source file into a stream of tagged
// tokens with source positions, tracking indentation for documentation
// continuation lines and rejecting literal tabs, per spec.md §4.2. Import
// resolution and the nested-file lexer stack that drives it live one layer
// up, in the parser package, since pushing a new lexer requires invoking
// the Source Resolver.
package lexer

import "github.com/go-idlc/idlc/diag"

// Kind tags a Token's lexical category.
type Kind int

const (
	EOF Kind = iota
	Ident
	IntLiteral
	StringLiteral
	Punct    // one of { } ( ) [ ] , |
	DocLine  // a `///` doc-comment line, Text holds the content after the lead
	DocBlock // a `/** ... */` doc-comment block, Text holds the inner text
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case IntLiteral:
		return "integer literal"
	case StringLiteral:
		return "string literal"
	case Punct:
		return "punctuation"
	case DocLine:
		return "doc-comment line"
	case DocBlock:
		return "doc-comment block"
	default:
		return "unknown"
	}
}

// Token is one lexeme with its source span and, for literals, its decoded
// value.
type Token struct {
	Kind Kind
	Text string // raw identifier/punctuation text, or decoded literal text
	Int  int64  // decoded value for IntLiteral
	Pos  diag.Position
	End  diag.Position
}

// Location returns the Token's span as a diag.Location.
func (t Token) Location() diag.Location {
	return diag.Location{Start: t.Pos, End: t.End}
}

// IsUpper reports whether Text begins with an uppercase ASCII letter, the
// rule spec.md §4.2 uses to distinguish declaration/type names from
// keywords and attribute names.
func (t Token) IsUpper() bool {
	if t.Text == "" {
		return false
	}
	c := t.Text[0]
	return c >= 'A' && c <= 'Z'
}
