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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/lexer"
)

func newHandler() (*diag.Handler, *diag.Sink) {
	sink := diag.NewSink(false)
	return diag.NewHandler(sink), sink
}

func tokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	h, sink := newHandler()
	lx := lexer.New("test.idl", []byte(src), h)
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		require.NoError(t, err, "diagnostics: %v", sink.Diagnostics())
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			return toks
		}
	}
}

func TestIdentAndPunct(t *testing.T) {
	toks := tokenize(t, "api Foo { }")
	require.Len(t, toks, 5)
	require.Equal(t, lexer.Ident, toks[0].Kind)
	require.Equal(t, "api", toks[0].Text)
	require.Equal(t, lexer.Ident, toks[1].Kind)
	require.Equal(t, "Foo", toks[1].Text)
	require.True(t, toks[1].IsUpper())
	require.False(t, toks[0].IsUpper())
	require.Equal(t, lexer.Punct, toks[2].Kind)
	require.Equal(t, "{", toks[2].Text)
	require.Equal(t, lexer.Punct, toks[3].Kind)
	require.Equal(t, "}", toks[3].Text)
	require.Equal(t, lexer.EOF, toks[4].Kind)
}

func TestDecimalAndHexIntegers(t *testing.T) {
	toks := tokenize(t, "42 0x2A 0X10")
	require.Equal(t, lexer.IntLiteral, toks[0].Kind)
	require.EqualValues(t, 42, toks[0].Int)
	require.Equal(t, lexer.IntLiteral, toks[1].Kind)
	require.EqualValues(t, 42, toks[1].Int)
	require.Equal(t, lexer.IntLiteral, toks[2].Kind)
	require.EqualValues(t, 16, toks[2].Int)
}

func TestStringLiteralEscapes(t *testing.T) {
	toks := tokenize(t, `"hello \"world\" and \\slash"`)
	require.Equal(t, lexer.StringLiteral, toks[0].Kind)
	require.Equal(t, `hello "world" and \slash`, toks[0].Text)
}

func TestUnterminatedStringReportsE2005(t *testing.T) {
	h, sink := newHandler()
	lx := lexer.New("test.idl", []byte(`"unterminated`), h)
	_, err := lx.Next()
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2005, sink.Diagnostics()[0].Code)
}

func TestTabRejectedAsE2002(t *testing.T) {
	h, sink := newHandler()
	lx := lexer.New("test.idl", []byte("\tapi"), h)
	_, err := lx.Next()
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2002, sink.Diagnostics()[0].Code)
}

func TestUnexpectedByteReportsE2001(t *testing.T) {
	h, sink := newHandler()
	lx := lexer.New("test.idl", []byte("@"), h)
	_, err := lx.Next()
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2001, sink.Diagnostics()[0].Code)
}

func TestLineCommentsAreSkippedButDocLinesAreTokenized(t *testing.T) {
	toks := tokenize(t, "// plain comment\n/// a doc line\napi")
	require.Equal(t, lexer.DocLine, toks[0].Kind)
	require.Equal(t, "a doc line", toks[0].Text)
	require.Equal(t, lexer.Ident, toks[1].Kind)
	require.Equal(t, "api", toks[1].Text)
}

func TestDocBlockPreservesInnerText(t *testing.T) {
	toks := tokenize(t, "/** line one\nline two */ api")
	require.Equal(t, lexer.DocBlock, toks[0].Kind)
	require.Equal(t, "line one\nline two ", toks[0].Text)
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	toks := tokenize(t, "api\nFoo")
	require.Equal(t, 1, toks[0].Pos.Line)
	require.Equal(t, 1, toks[0].Pos.Column)
	require.Equal(t, 2, toks[1].Pos.Line)
	require.Equal(t, 1, toks[1].Pos.Column)
}

func TestPunctuationSetIsExact(t *testing.T) {
	toks := tokenize(t, "{}()[],|")
	for i, want := range []string{"{", "}", "(", ")", "[", "]", ",", "|"} {
		require.Equal(t, lexer.Punct, toks[i].Kind)
		require.Equal(t, want, toks[i].Text)
	}
}
