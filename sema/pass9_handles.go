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

// handles is Pass 9: a field or argument carrying the `ref` attribute marks
// its `type` as a reference to an opaque handle rather than a by-value
// struct. Such a reference must name a struct (E2070) carrying `handle`
// (E2071).
func handles(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, s := range api.Structs {
		for _, f := range s.Fields {
			if !f.Attrs.Has(ast.AttrRef) {
				continue
			}
			if err := checkHandleRef(f.Attrs, f.Location().Start, h); err != nil {
				return err
			}
		}
	}
	for _, cb := range api.Callbacks {
		if err := checkArgHandleRefs(cb.Args, h); err != nil {
			return err
		}
	}
	for _, fn := range api.Funcs {
		if err := checkArgHandleRefs(fn.Args, h); err != nil {
			return err
		}
	}
	for _, i := range api.Interfaces {
		for _, m := range i.Methods {
			if err := checkArgHandleRefs(m.Args, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkArgHandleRefs(args []*ast.Arg, h *diag.Handler) error {
	for _, a := range args {
		if a.Attrs.Has(ast.AttrThis) || !a.Attrs.Has(ast.AttrRef) {
			continue
		}
		if err := checkHandleRef(a.Attrs, a.Location().Start, h); err != nil {
			return err
		}
	}
	return nil
}

func checkHandleRef(attrs ast.Attributes, pos diag.Position, h *diag.Handler) error {
	t, ok := attrs.Get(ast.AttrType)
	if !ok {
		return nil
	}
	if t.Type.Ref == nil {
		return h.HandleErrorf(pos, diag.E2069, t.Type.Name)
	}
	s, isStruct := t.Type.Ref.Resolved.(*ast.Struct)
	if !isStruct {
		return h.HandleErrorf(pos, diag.E2070, t.Type.Ref.Text)
	}
	if !s.IsHandle() {
		return h.HandleErrorf(pos, diag.E2071, s.Name)
	}
	return nil
}
