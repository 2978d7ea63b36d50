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

var methodSizingCodes = argSizingCodes{
	arrayNotSibling:    diag.E2103,
	arrayNotInt:        diag.E2104,
	dataSizeNotSibling: diag.E2115,
	dataSizeNotInt:     diag.E2123,
}

// checkThisType verifies a non-static, non-constructor method's `this` arg
// is typed as the enclosing interface, the interface's own handle.
func checkThisType(a *ast.Arg, i *ast.Interface, h *diag.Handler) error {
	t, ok := a.Attrs.Get(ast.AttrType)
	if !ok || t.Type.Ref == nil || t.Type.Ref.Resolved != i {
		return h.HandleErrorf(a.Location().Start, diag.E2050, a.DeclName())
	}
	return nil
}

// methods is Pass 5: validates the `this` argument contract, arg shape, and
// the at-most-one `refinc`/`destroy` method per interface.
func methods(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, i := range api.Interfaces {
		var refinc, destroy *ast.Method
		for _, m := range i.Methods {
			thisCount := 0
			for _, a := range m.Args {
				if a.Attrs.Has(ast.AttrThis) {
					thisCount++
				}
				if isVoidArg(a) {
					return h.HandleErrorf(a.Location().Start, diag.E2051)
				}
				if fixedSizeArrayArg(a) {
					return h.HandleErrorf(a.Location().Start, diag.E2102)
				}
			}

			switch {
			case m.IsStatic():
				if thisCount > 0 {
					return h.HandleErrorf(m.Location().Start, diag.E2046, m.Name)
				}
			case m.IsCtor():
				if thisCount > 0 {
					return h.HandleErrorf(m.Location().Start, diag.E2047, m.Name)
				}
			default:
				if thisCount == 0 {
					return h.HandleErrorf(m.Location().Start, diag.E2048, m.Name)
				}
				if thisCount > 1 {
					return h.HandleErrorf(m.Location().Start, diag.E2049, m.Name)
				}
				if err := checkThisType(m.ThisArg(), i, h); err != nil {
					return err
				}
			}

			if err := checkArgSizing(m.Args, methodSizingCodes, h); err != nil {
				return err
			}

			if m.Attrs.Has(ast.AttrRefInc) {
				if refinc != nil {
					return h.HandleErrorf(m.Location().Start, diag.E2088, i.Name)
				}
				refinc = m
				if m.IsStatic() || thisCount != 1 {
					return h.HandleErrorf(m.Location().Start, diag.E2086)
				}
			}
			if m.Attrs.Has(ast.AttrDestroy) {
				if destroy != nil {
					return h.HandleErrorf(m.Location().Start, diag.E2089, i.Name)
				}
				destroy = m
				if m.IsStatic() || thisCount != 1 {
					return h.HandleErrorf(m.Location().Start, diag.E2087)
				}
			}
		}
	}
	return nil
}
