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
	"errors"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/attrs"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/lexer"
)

func (p *Parser) parseApi() (*ast.Api, error) {
	rawAttrs, doc, err := p.parseAttrsAndDoc()
	if err != nil {
		return nil, err
	}
	if !p.atKeyword("api") {
		return nil, p.h.HandleErrorf(p.cur.Pos, diag.E2012)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	api := ast.NewApi(name.Text, name.Location())
	api.Doc = doc
	validated, err := attrs.Validate(ast.KindApi, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	api.Attrs = validated
	p.ctx.Root = api

	if err := p.parseTopDecls(api, func() bool { return p.atPunct("}") }); err != nil {
		return nil, err
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.syntaxError()
	}
	return api, nil
}

// parseTopDecls parses a run of enum/struct/interface/callback/func/import
// declarations, shared between a root file's `api { ... }` body and every
// imported file's entire content, until end reports true.
func (p *Parser) parseTopDecls(api *ast.Api, end func() bool) error {
	for !end() {
		rawAttrs, doc, err := p.parseAttrsAndDoc()
		if err != nil {
			return err
		}
		switch {
		case p.atKeyword("api"):
			return p.h.HandleErrorf(p.cur.Pos, diag.E2004, p.file)
		case p.atKeyword("enum"):
			e, err := p.parseEnum(rawAttrs, doc)
			if err != nil {
				return err
			}
			api.AddEnum(e)
		case p.atKeyword("struct"):
			s, err := p.parseStruct(rawAttrs, doc)
			if err != nil {
				return err
			}
			api.AddStruct(s)
		case p.atKeyword("interface"):
			i, err := p.parseInterface(rawAttrs, doc)
			if err != nil {
				return err
			}
			api.AddInterface(i)
		case p.atKeyword("callback"):
			c, err := p.parseCallback(rawAttrs, doc)
			if err != nil {
				return err
			}
			api.AddCallback(c)
		case p.atKeyword("func"):
			f, err := p.parseFunc(rawAttrs, doc)
			if err != nil {
				return err
			}
			api.AddFunc(f)
		case p.atKeyword("import"):
			if err := p.parseImportDecl(api); err != nil {
				return err
			}
		default:
			return p.syntaxError()
		}
	}
	return nil
}

func (p *Parser) parseImportDecl(api *ast.Api) error {
	pos := p.cur.Pos
	if err := p.expectKeyword("import"); err != nil {
		return err
	}
	if p.cur.Kind != lexer.StringLiteral {
		return p.syntaxError()
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return err
	}
	return p.pushImport(api, name, pos)
}

func (p *Parser) pushImport(api *ast.Api, name string, pos diag.Position) error {
	if p.resolver == nil {
		return p.h.HandleErrorf(pos, diag.E2041, name)
	}
	if p.depth+1 > maxImportDepth {
		return p.h.HandleErrorf(pos, diag.E2043, name)
	}
	src, key, resolvedFile, err := p.resolver.Resolve(name, p.file, p.depth+1)
	if err != nil {
		if errors.Is(err, diag.ErrImportEscapesDirs) {
			return p.h.HandleErrorf(pos, diag.E2042, name)
		}
		return p.h.HandleErrorf(pos, diag.E2041, name)
	}
	if p.visited[key] {
		return nil
	}
	p.visited[key] = true

	p.stack = append(p.stack, frame{lx: p.lx, cur: p.cur, file: p.file})
	p.depth++
	p.file = resolvedFile
	p.lx = lexer.New(resolvedFile, src, p.h)
	if err := p.advance(); err != nil {
		return err
	}

	err = p.parseTopDecls(api, func() bool { return p.atEOF() })

	last := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.lx, p.cur, p.file = last.lx, last.cur, last.file
	p.depth--

	return err
}

func (p *Parser) parseEnum(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Enum, error) {
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	e := ast.NewEnum(name.Text, name.Location())
	e.Doc = doc
	validated, err := attrs.Validate(ast.KindEnum, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	e.Attrs = validated

	for !p.atPunct("}") {
		c, err := p.parseEnumConst()
		if err != nil {
			return nil, err
		}
		e.AddConst(c)
		if p.atPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseEnumConst() (*ast.EnumConst, error) {
	rawAttrs, doc, err := p.parseAttrsAndDoc()
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	c := ast.NewEnumConst(name.Text, name.Location())
	c.Doc = doc
	validated, err := attrs.Validate(ast.KindEnumConst, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	c.Attrs = validated
	return c, nil
}

func (p *Parser) parseStruct(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Struct, error) {
	if err := p.expectKeyword("struct"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	s := ast.NewStruct(name.Text, name.Location())
	s.Doc = doc
	validated, err := attrs.Validate(ast.KindStruct, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	s.Attrs = validated

	for !p.atPunct("}") {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		s.AddField(f)
		if p.atPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	if len(s.Fields) == 0 {
		return nil, p.h.HandleErrorf(name.Pos, diag.E2081, name.Text)
	}
	return s, nil
}

func (p *Parser) parseField() (*ast.Field, error) {
	rawAttrs, doc, err := p.parseAttrsAndDoc()
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	f := ast.NewField(name.Text, name.Location())
	f.Doc = doc
	validated, err := attrs.Validate(ast.KindField, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	f.Attrs = validated
	return f, nil
}

func (p *Parser) parseInterface(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Interface, error) {
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	i := ast.NewInterface(name.Text, name.Location())
	i.Doc = doc
	validated, err := attrs.Validate(ast.KindInterface, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	i.Attrs = validated

	for !p.atPunct("}") {
		memberAttrs, memberDoc, err := p.parseAttrsAndDoc()
		if err != nil {
			return nil, err
		}
		switch {
		case p.atKeyword("method"):
			m, err := p.parseMethod(memberAttrs, memberDoc)
			if err != nil {
				return nil, err
			}
			i.AddMethod(m)
		case p.atKeyword("property"):
			pr, err := p.parseProperty(memberAttrs, memberDoc)
			if err != nil {
				return nil, err
			}
			i.AddProperty(pr)
		case p.atKeyword("event"):
			ev, err := p.parseEvent(memberAttrs, memberDoc)
			if err != nil {
				return nil, err
			}
			i.AddEvent(ev)
		default:
			return nil, p.syntaxError()
		}
		if p.atPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return i, nil
}

func (p *Parser) parseMethod(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Method, error) {
	if err := p.expectKeyword("method"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	m := ast.NewMethod(name.Text, name.Location())
	m.Doc = doc
	validated, err := attrs.Validate(ast.KindMethod, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	m.Attrs = validated

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	for !p.atPunct(")") {
		a, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		m.AddArg(a)
		if p.atPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Parser) parseArg() (*ast.Arg, error) {
	rawAttrs, _, err := p.parseAttrsAndDoc()
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	a := ast.NewArg(name.Text, name.Location())
	validated, err := attrs.Validate(ast.KindArg, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	a.Attrs = validated
	return a, nil
}

func (p *Parser) parseProperty(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Property, error) {
	if err := p.expectKeyword("property"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	pr := ast.NewProperty(name.Text, name.Location())
	pr.Doc = doc
	validated, err := attrs.Validate(ast.KindProperty, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	pr.Attrs = validated
	return pr, nil
}

func (p *Parser) parseEvent(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Event, error) {
	if err := p.expectKeyword("event"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	ev := ast.NewEvent(name.Text, name.Location())
	ev.Doc = doc
	validated, err := attrs.Validate(ast.KindEvent, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	ev.Attrs = validated
	return ev, nil
}

func (p *Parser) parseCallback(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Callback, error) {
	if err := p.expectKeyword("callback"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	cb := ast.NewCallback(name.Text, name.Location())
	cb.Doc = doc
	validated, err := attrs.Validate(ast.KindCallback, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	cb.Attrs = validated

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	for !p.atPunct(")") {
		a, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		cb.AddArg(a)
		if p.atPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return cb, nil
}

func (p *Parser) parseFunc(rawAttrs []ast.RawAttr, doc *ast.Documentation) (*ast.Func, error) {
	if err := p.expectKeyword("func"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	doc, err = p.parseInlineDoc(doc)
	if err != nil {
		return nil, err
	}
	fn := ast.NewFunc(name.Text, name.Location())
	fn.Doc = doc
	validated, err := attrs.Validate(ast.KindFunc, rawAttrs, p.h)
	if err != nil {
		return nil, err
	}
	fn.Attrs = validated

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	for !p.atPunct(")") {
		a, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		fn.AddArg(a)
		if p.atPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return fn, nil
}
