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

package symtab

import (
	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
)

// Resolve is Pass B: it walks every attribute and documentation link
// reachable from api and binds each ast.DeclRef to its target, stopping at
// the first unresolved (E2032) or case-mismatched (E2037) reference.
func Resolve(t *Table, api *ast.Api, h *diag.Handler) error {
	for _, d := range api.AllDecls() {
		for _, ref := range attrRefs(d) {
			if err := resolveOne(t, ref, h); err != nil {
				return err
			}
		}
		if doc := docOf(d); doc != nil {
			for _, ref := range doc.Links {
				if err := resolveOne(t, ref, h); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func resolveOne(t *Table, ref *ast.DeclRef, h *diag.Handler) error {
	if ref.IsResolved() {
		return nil
	}
	d, err := t.Lookup(ref.Text, ref.Pos, h)
	if err != nil {
		return err
	}
	ref.Resolve(d)
	return nil
}

// attrRefs collects every DeclRef carried by d's attributes, in a fixed,
// deterministic order.
func attrRefs(d ast.Decl) []*ast.DeclRef {
	attrs := attrsOf(d)
	if attrs == nil {
		return nil
	}
	var out []*ast.DeclRef
	for _, kind := range []ast.AttrKind{
		ast.AttrGet, ast.AttrSet, ast.AttrErrorCode, ast.AttrType,
		ast.AttrArray, ast.AttrDataSize, ast.AttrValue,
	} {
		a, ok := attrs.Get(kind)
		if !ok {
			continue
		}
		if a.Method != nil {
			out = append(out, a.Method)
		}
		if a.Type.Ref != nil {
			out = append(out, a.Type.Ref)
		}
		if a.ArrayRef != nil {
			out = append(out, a.ArrayRef)
		}
		if a.DataSizeRef != nil {
			out = append(out, a.DataSizeRef)
		}
		if a.Value.Kind == ast.LitConstRefs {
			out = append(out, a.Value.Const...)
		}
	}
	return out
}

// attrsOf and docOf extract the Attributes/Documentation common to every
// Decl kind without exporting an interface method on ast.Decl itself, since
// not every kind carries both (Arg has no Documentation).
func attrsOf(d ast.Decl) ast.Attributes {
	switch v := d.(type) {
	case *ast.Api:
		return v.Attrs
	case *ast.Enum:
		return v.Attrs
	case *ast.EnumConst:
		return v.Attrs
	case *ast.Struct:
		return v.Attrs
	case *ast.Field:
		return v.Attrs
	case *ast.Interface:
		return v.Attrs
	case *ast.Method:
		return v.Attrs
	case *ast.Arg:
		return v.Attrs
	case *ast.Property:
		return v.Attrs
	case *ast.Event:
		return v.Attrs
	case *ast.Callback:
		return v.Attrs
	case *ast.Func:
		return v.Attrs
	default:
		return nil
	}
}

func docOf(d ast.Decl) *ast.Documentation {
	switch v := d.(type) {
	case *ast.Api:
		return v.Doc
	case *ast.Enum:
		return v.Doc
	case *ast.EnumConst:
		return v.Doc
	case *ast.Struct:
		return v.Doc
	case *ast.Field:
		return v.Doc
	case *ast.Interface:
		return v.Doc
	case *ast.Method:
		return v.Doc
	case *ast.Property:
		return v.Doc
	case *ast.Event:
		return v.Doc
	case *ast.Callback:
		return v.Doc
	case *ast.Func:
		return v.Doc
	default:
		return nil
	}
}
