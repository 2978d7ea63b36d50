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

// events is Pass 7: mirrors properties (Pass 6) but binds getter/setter
// methods that additionally carry a `userdata` argument.
func events(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, i := range api.Interfaces {
		for _, e := range i.Events {
			if err := checkEvent(i, e, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkEvent(i *ast.Interface, e *ast.Event, h *diag.Handler) error {
	getAttr, hasGet := e.Attrs.Get(ast.AttrGet)
	setAttr, hasSet := e.Attrs.Get(ast.AttrSet)
	if !hasGet && !hasSet {
		return h.HandleErrorf(e.Location().Start, diag.E2090, e.Name)
	}

	isStatic := e.Attrs.Has(ast.AttrStatic)

	var getter, setter *ast.Method
	if hasGet {
		m, ok := getAttr.Method.Resolved.(*ast.Method)
		if !ok {
			return h.HandleErrorf(getAttr.Method.Pos, diag.E2091, e.Name)
		}
		if m.IsStatic() != isStatic {
			return h.HandleErrorf(getAttr.Method.Pos, diag.E2092, e.Name)
		}
		if m.Interface() != i {
			return h.HandleErrorf(getAttr.Method.Pos, diag.E2093, e.Name)
		}
		wantArgs := 2
		if isStatic {
			wantArgs = 1
		}
		if len(m.Args) != wantArgs {
			if isStatic {
				return h.HandleErrorf(m.Location().Start, diag.E2094, e.Name)
			}
			return h.HandleErrorf(m.Location().Start, diag.E2095, e.Name)
		}
		if err := checkUserDataArg(m.Args[len(m.Args)-1], e.Name, h); err != nil {
			return err
		}
		getter = m
	}

	if hasSet {
		m, ok := setAttr.Method.Resolved.(*ast.Method)
		if !ok {
			return h.HandleErrorf(setAttr.Method.Pos, diag.E2096, e.Name)
		}
		if m.IsStatic() != isStatic {
			return h.HandleErrorf(setAttr.Method.Pos, diag.E2097, e.Name)
		}
		if m.Interface() != i {
			return h.HandleErrorf(setAttr.Method.Pos, diag.E2098, e.Name)
		}
		wantArgs := 3
		if isStatic {
			wantArgs = 2
		}
		if len(m.Args) != wantArgs {
			if isStatic {
				return h.HandleErrorf(m.Location().Start, diag.E2099, e.Name)
			}
			return h.HandleErrorf(m.Location().Start, diag.E2100, e.Name)
		}
		if err := checkUserDataArg(m.Args[len(m.Args)-1], e.Name, h); err != nil {
			return err
		}
		setter = m
	}
	_ = getter
	_ = setter
	return nil
}

func checkUserDataArg(a *ast.Arg, eventName string, h *diag.Handler) error {
	if !a.Attrs.Has(ast.AttrUserData) {
		return nil
	}
	t, ok := a.Attrs.Get(ast.AttrType)
	if !ok || !isPointerSizedType(t.Type) {
		return h.HandleErrorf(a.Location().Start, diag.E2101, eventName)
	}
	return nil
}

// isPointerSizedType reports whether t is wide enough to carry an opaque
// userdata pointer: any user declaration (passed by handle/pointer in the
// generated C binding) or one of the 64-bit/opaque-buffer primitives.
func isPointerSizedType(t ast.TypeRef) bool {
	if t.Ref != nil {
		return true
	}
	switch t.Name {
	case "Int64", "UInt64", "Data", "ConstData", "Handle":
		return true
	default:
		return false
	}
}
