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

package sema

import (
	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/symtab"
)

// documentation is Pass 10: a declaration that carries documentation must
// have at least a brief or a detail (E2111); missing author/copyright on it
// are warnings (W1001, W1002), never fatal. A declaration with no
// documentation at all is skipped and draws none of these diagnostics. Inline link resolution already happened in symtab's
// Pass B; this pass only checks completeness.
func documentation(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, d := range api.AllDecls() {
		doc := docOf(d)
		if doc == nil {
			continue
		}
		if !doc.HasBriefOrDetail() {
			return h.HandleErrorf(d.Location().Start, diag.E2111, d.DeclName())
		}
		if len(doc.Authors) == 0 {
			h.HandleWarningf(d.Location().Start, diag.W1001, d.DeclName())
		}
		if doc.Copyright == "" {
			h.HandleWarningf(d.Location().Start, diag.W1002, d.DeclName())
		}
	}
	return nil
}

// docOf is also used by symtab's resolution pass; declared here again as a
// sema-local helper over the same Decl kinds, since symtab's is unexported.
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
