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

var functionSizingCodes = argSizingCodes{
	arrayNotSibling:    diag.E2105,
	arrayNotInt:        diag.E2106,
	dataSizeNotSibling: diag.E2116,
	dataSizeNotInt:     diag.E2122,
}

// functions is Pass 4: validates free-function argument shape — no `this`,
// at most one `result`, the `errorcode` converter contract for whichever
// enum it names, and the same array/datasize sibling rules as callbacks.
func functions(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, fn := range api.Funcs {
		resultCount := 0
		for _, a := range fn.Args {
			if a.Attrs.Has(ast.AttrThis) {
				return h.HandleErrorf(a.Location().Start, diag.E2073)
			}
			if a.Attrs.Has(ast.AttrResult) {
				resultCount++
			}
		}
		if resultCount > 1 {
			return h.HandleErrorf(fn.Location().Start, diag.E2084, fn.Name)
		}
		if err := checkArgSizing(fn.Args, functionSizingCodes, h); err != nil {
			return err
		}
	}

	for _, e := range api.Enums {
		if !e.Attrs.Has(ast.AttrErrorCode) {
			continue
		}
		if err := checkErrorCodeConverter(api, e, h); err != nil {
			return err
		}
	}
	return nil
}

// checkErrorCodeConverter finds the function marked `errorcode` for e and
// verifies it takes exactly one argument of e's type and returns a string.
func checkErrorCodeConverter(api *ast.Api, e *ast.Enum, h *diag.Handler) error {
	var converter *ast.Func
	for _, fn := range api.Funcs {
		a, ok := fn.Attrs.Get(ast.AttrErrorCode)
		if !ok {
			continue
		}
		if a.Method == nil || a.Method.Resolved != e {
			continue
		}
		converter = fn
		break
	}
	if converter == nil {
		return h.HandleErrorf(e.Location().Start, diag.E2085, e.Name)
	}
	if len(converter.Args) != 1 {
		return h.HandleErrorf(converter.Location().Start, diag.E2085, e.Name)
	}
	arg := converter.Args[0]
	argType, ok := arg.Attrs.Get(ast.AttrType)
	if !ok || !refersTo(argType.Type, e) {
		return h.HandleErrorf(converter.Location().Start, diag.E2085, e.Name)
	}
	retType, ok := converter.Attrs.Get(ast.AttrType)
	if !ok || retType.Type.Name != "Str" {
		return h.HandleErrorf(converter.Location().Start, diag.E2085, e.Name)
	}
	return nil
}

func refersTo(t ast.TypeRef, d ast.Decl) bool {
	return t.Ref != nil && t.Ref.Resolved == d
}
