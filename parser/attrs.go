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

package parser

import (
	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/lexer"
)

// parseAttrList parses `[` attr (',' attr)* `]`, already positioned at the
// opening `[`. Each attr is `name` or `name(slot (',' slot)*)`, where a slot
// is itself a `|`-joined chain of tokens (only meaningful for `value`).
func (p *Parser) parseAttrList() ([]ast.RawAttr, error) {
	if err := p.expectPunct("["); err != nil {
		return nil, err
	}
	var out []ast.RawAttr
	for {
		if p.atPunct("]") {
			break
		}
		attr, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		out = append(out, attr)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct("]"); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseAttr() (ast.RawAttr, error) {
	name, err := p.expectIdent()
	if err != nil {
		return ast.RawAttr{}, err
	}
	attr := ast.RawAttr{Name: name.Text, Pos: name.Pos}
	if !p.atPunct("(") {
		return attr, nil
	}
	p.advance()
	for {
		if p.atPunct(")") {
			break
		}
		slot, err := p.parseArgSlot()
		if err != nil {
			return ast.RawAttr{}, err
		}
		attr.Args = append(attr.Args, slot)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct(")"); err != nil {
		return ast.RawAttr{}, err
	}
	return attr, nil
}

func (p *Parser) parseArgSlot() (ast.RawArgSlot, error) {
	var slot ast.RawArgSlot
	for {
		tok, err := p.parseRawToken()
		if err != nil {
			return ast.RawArgSlot{}, err
		}
		slot.Tokens = append(slot.Tokens, tok)
		if p.atPunct("|") {
			p.advance()
			continue
		}
		break
	}
	return slot, nil
}

func (p *Parser) parseRawToken() (ast.RawToken, error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.Ident:
		p.advance()
		return ast.RawToken{Kind: ast.RawIdent, Text: tok.Text, Pos: tok.Pos}, nil
	case lexer.IntLiteral:
		p.advance()
		return ast.RawToken{Kind: ast.RawInt, Text: tok.Text, Int: tok.Int, Pos: tok.Pos}, nil
	case lexer.StringLiteral:
		p.advance()
		return ast.RawToken{Kind: ast.RawString, Text: tok.Text, Pos: tok.Pos}, nil
	default:
		return ast.RawToken{}, p.h.HandleErrorf(tok.Pos, diag.E2016, tok.Text)
	}
}
