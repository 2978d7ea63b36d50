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

// Package symtab implements the Symbol Table (spec.md §4.5): a two-pass
// insert-then-resolve index of every named declaration in a compile job,
// backed by an adaptive radix trie for exact lookups plus a case-folded
// trie for the case-mismatch diagnostic (E2037).
package symtab

import (
	"strings"

	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
)

// Table is the flat, single-namespace symbol table for one compile job. The
// IDL has no module/package nesting (spec.md §3), so every Enum, EnumConst,
// Struct, Interface, Callback, and Func shares one name space.
type Table struct {
	exact art.Tree
	lower art.Tree
}

// New creates an empty Table.
func New() *Table {
	return &Table{exact: art.New(), lower: art.New()}
}

// Insert is Pass A: it registers every named declaration reachable from api,
// failing on the first name collision (E2030). Declarations are visited in
// ast.Api.AllDecls order, so the earlier declaration is always the one
// reported as "already declared at".
func Insert(t *Table, api *ast.Api, h *diag.Handler) error {
	for _, d := range api.AllDecls() {
		if _, ok := d.(*ast.Api); ok {
			continue
		}
		if err := t.insert(d, h); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) insert(d ast.Decl, h *diag.Handler) error {
	name := d.DeclName()
	lowerKey := art.Key(strings.ToLower(name))
	if v, ok := t.lower.Search(lowerKey); ok {
		existing := v.(ast.Decl)
		return h.HandleErrorf(d.Location().Start, diag.E2030, name, existing.Location().Start.String())
	}
	t.exact.Insert(art.Key(name), d)
	t.lower.Insert(lowerKey, d)
	return nil
}

// Lookup resolves name against the table: an exact match resolves directly,
// a case-insensitive-only match fails with E2037, and no match at all fails
// with E2032. It never returns (nil, nil) — exactly one of the return values
// is non-nil unless err is non-nil.
func (t *Table) Lookup(name string, pos diag.Position, h *diag.Handler) (ast.Decl, error) {
	if v, ok := t.exact.Search(art.Key(name)); ok {
		return v.(ast.Decl), nil
	}
	if v, ok := t.lower.Search(art.Key(strings.ToLower(name))); ok {
		existing := v.(ast.Decl)
		return nil, h.HandleErrorf(pos, diag.E2037, name, existing.DeclName())
	}
	return nil, h.HandleErrorf(pos, diag.E2032, name)
}
