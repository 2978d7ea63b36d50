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

// propertyCodes names the rule codes for the property/event getter-setter
// contract; events reuse this shape with their own disjoint code block and
// an extra `userdata` argument.
type propertyCodes struct {
	mustCarryGetOrSet     diag.Code
	getNotMethod          diag.Code
	getWrongInterface     diag.Code
	getStaticMismatch     diag.Code
	getStaticArity        diag.Code
	getInstanceArity      diag.Code
	getNoVoid             diag.Code
	setNotMethod          diag.Code
	setStaticMismatch     diag.Code
	setWrongInterface     diag.Code
	setStaticArity        diag.Code
	setInstanceArity      diag.Code
	getSetTypeMismatch    diag.Code
	declaredVsGetMismatch diag.Code
	declaredVsSetMismatch diag.Code
}

var propertyRuleCodes = propertyCodes{
	mustCarryGetOrSet:     diag.E2052,
	getNotMethod:          diag.E2053,
	getWrongInterface:     diag.E2054,
	getStaticMismatch:     diag.E2055,
	getStaticArity:        diag.E2056,
	getInstanceArity:      diag.E2057,
	getNoVoid:             diag.E2058,
	setNotMethod:          diag.E2059,
	setStaticMismatch:     diag.E2060,
	setWrongInterface:     diag.E2061,
	setStaticArity:        diag.E2062,
	setInstanceArity:      diag.E2063,
	getSetTypeMismatch:    diag.E2064,
	declaredVsGetMismatch: diag.E2065,
	declaredVsSetMismatch: diag.E2066,
}

// properties is Pass 6: binds each Property's `get`/`set` to a Method of the
// same Interface and checks their static-ness, arity, and type agreement.
func properties(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, i := range api.Interfaces {
		for _, p := range i.Properties {
			if err := checkProperty(i, p, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkProperty(i *ast.Interface, p *ast.Property, h *diag.Handler) error {
	c := propertyRuleCodes
	getAttr, hasGet := p.Attrs.Get(ast.AttrGet)
	setAttr, hasSet := p.Attrs.Get(ast.AttrSet)
	if !hasGet && !hasSet {
		return h.HandleErrorf(p.Location().Start, c.mustCarryGetOrSet, p.Name)
	}

	isStatic := p.Attrs.Has(ast.AttrStatic)
	declType, hasDeclType := p.Attrs.Get(ast.AttrType)

	var getter, setter *ast.Method
	if hasGet {
		m, ok := getAttr.Method.Resolved.(*ast.Method)
		if !ok {
			return h.HandleErrorf(getAttr.Method.Pos, c.getNotMethod, p.Name)
		}
		if m.Interface() != i {
			return h.HandleErrorf(getAttr.Method.Pos, c.getWrongInterface, p.Name)
		}
		if m.IsStatic() != isStatic {
			return h.HandleErrorf(getAttr.Method.Pos, c.getStaticMismatch, p.Name)
		}
		wantArgs := 1
		if isStatic {
			wantArgs = 0
		}
		if len(m.Args) != wantArgs {
			if isStatic {
				return h.HandleErrorf(m.Location().Start, c.getStaticArity, p.Name)
			}
			return h.HandleErrorf(m.Location().Start, c.getInstanceArity, p.Name)
		}
		retType, ok := m.Attrs.Get(ast.AttrType)
		if !ok || retType.Type.IsVoid() {
			return h.HandleErrorf(m.Location().Start, c.getNoVoid, p.Name)
		}
		getter = m
	}

	if hasSet {
		m, ok := setAttr.Method.Resolved.(*ast.Method)
		if !ok {
			return h.HandleErrorf(setAttr.Method.Pos, c.setNotMethod, p.Name)
		}
		if m.Interface() != i {
			return h.HandleErrorf(setAttr.Method.Pos, c.setWrongInterface, p.Name)
		}
		if m.IsStatic() != isStatic {
			return h.HandleErrorf(setAttr.Method.Pos, c.setStaticMismatch, p.Name)
		}
		wantArgs := 2
		if isStatic {
			wantArgs = 1
		}
		if len(m.Args) != wantArgs {
			if isStatic {
				return h.HandleErrorf(m.Location().Start, c.setStaticArity, p.Name)
			}
			return h.HandleErrorf(m.Location().Start, c.setInstanceArity, p.Name)
		}
		setter = m
	}

	if getter != nil && setter != nil {
		retType, _ := getter.Attrs.Get(ast.AttrType)
		valueArg := setter.Args[len(setter.Args)-1]
		argType, _ := valueArg.Attrs.Get(ast.AttrType)
		if !sameType(retType.Type, argType.Type) {
			return h.HandleErrorf(setter.Location().Start, c.getSetTypeMismatch, p.Name)
		}
	}
	if hasDeclType {
		if getter != nil {
			retType, _ := getter.Attrs.Get(ast.AttrType)
			if !sameType(declType.Type, retType.Type) {
				return h.HandleErrorf(p.Location().Start, c.declaredVsGetMismatch, p.Name)
			}
		}
		if setter != nil {
			valueArg := setter.Args[len(setter.Args)-1]
			argType, _ := valueArg.Attrs.Get(ast.AttrType)
			if !sameType(declType.Type, argType.Type) {
				return h.HandleErrorf(p.Location().Start, c.declaredVsSetMismatch, p.Name)
			}
		}
	}
	return nil
}

func sameType(a, b ast.TypeRef) bool {
	if a.Ref != nil || b.Ref != nil {
		return a.Ref != nil && b.Ref != nil && a.Ref.Resolved == b.Ref.Resolved
	}
	return a.Name == b.Name
}
