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

// structs is Pass 2: validates field types and the `array`/`datasize` sizing
// attributes for every Struct. Handle-typed field references are checked in
// Pass 9, not here.
func structs(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, s := range api.Structs {
		if len(s.Fields) == 0 {
			return h.HandleErrorf(s.Location().Start, diag.E2081, s.Name)
		}
		for idx, f := range s.Fields {
			if err := checkField(s, f, idx, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkField(s *ast.Struct, f *ast.Field, idx int, h *diag.Handler) error {
	typeAttr, hasType := f.Attrs.Get(ast.AttrType)
	if hasType && typeAttr.Type.IsVoid() {
		return h.HandleErrorf(f.Location().Start, diag.E2068, f.Name)
	}

	hasArray := f.Attrs.Has(ast.AttrArray)
	hasDataSize := f.Attrs.Has(ast.AttrDataSize)
	if hasArray && hasDataSize {
		return h.HandleErrorf(f.Location().Start, diag.E2124, f.Name)
	}

	if hasArray {
		arr, _ := f.Attrs.Get(ast.AttrArray)
		if arr.ArrayRef == nil {
			if arr.ArraySize <= 0 {
				return h.HandleErrorf(arr.Pos, diag.E2077, arr.ArraySize)
			}
		} else {
			target, prevIdx, ok := findFieldByRef(s, arr.ArrayRef)
			if !ok {
				return h.HandleErrorf(arr.ArrayRef.Pos, diag.E2078)
			}
			if prevIdx >= idx {
				return h.HandleErrorf(arr.ArrayRef.Pos, diag.E2079)
			}
			if !isIntegerField(target) {
				return h.HandleErrorf(arr.ArrayRef.Pos, diag.E2080)
			}
		}
	}

	if hasDataSize {
		if !hasType || (typeAttr.Type.Name != "Data" && typeAttr.Type.Name != "ConstData") {
			return h.HandleErrorf(f.Location().Start, diag.E2113)
		}
		ds, _ := f.Attrs.Get(ast.AttrDataSize)
		target, prevIdx, ok := findFieldByRef(s, ds.DataSizeRef)
		if !ok {
			return h.HandleErrorf(ds.DataSizeRef.Pos, diag.E2118)
		}
		if prevIdx >= idx {
			return h.HandleErrorf(ds.DataSizeRef.Pos, diag.E2119)
		}
		if !isIntegerField(target) {
			return h.HandleErrorf(ds.DataSizeRef.Pos, diag.E2114)
		}
	}

	if s.IsHandle() {
		// Handle-struct field shape is otherwise unconstrained; the
		// handle relationship itself is checked in Pass 9.
		_ = s
	}

	return nil
}

func findFieldByRef(s *ast.Struct, ref *ast.DeclRef) (*ast.Field, int, bool) {
	target, ok := ref.Resolved.(*ast.Field)
	if !ok {
		return nil, 0, false
	}
	for idx, f := range s.Fields {
		if f == target {
			if f.Struct() != s {
				return nil, 0, false
			}
			return f, idx, true
		}
	}
	return nil, 0, false
}

func isIntegerField(f *ast.Field) bool {
	t, ok := f.Attrs.Get(ast.AttrType)
	if !ok {
		return false
	}
	return isIntegerTypeName(t.Type.Name)
}

func isIntegerTypeName(name string) bool {
	switch name {
	case "Int8", "Int16", "Int32", "Int64",
		"UInt8", "UInt16", "UInt32", "UInt64":
		return true
	default:
		return false
	}
}
