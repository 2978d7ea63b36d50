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
)

// argSizingCodes names the four (or five) rule codes a callable kind
// (callback, function, method) reports when an `array`/`datasize` argument
// reference is malformed. dataSizePrecede is only set for callback args,
// matching the distinct E2121 "must precede" rule spec.md gives callbacks
// but not functions or methods.
type argSizingCodes struct {
	arrayNotSibling    diag.Code
	arrayNotInt        diag.Code
	dataSizeNotSibling diag.Code
	dataSizeNotInt     diag.Code
	dataSizePrecede    diag.Code // zero value means "not checked"
}

// checkArgSizing validates the `array`/`datasize` reference attributes of
// every arg in args against the sibling-argument rules shared by callbacks,
// functions, and methods (spec.md §4.6 Passes 3-5).
func checkArgSizing(args []*ast.Arg, codes argSizingCodes, h *diag.Handler) error {
	index := make(map[*ast.Arg]int, len(args))
	for i, a := range args {
		index[a] = i
	}
	for i, a := range args {
		if arr, ok := a.Attrs.Get(ast.AttrArray); ok && arr.ArrayRef != nil {
			target, tIdx, ok := findArgByRef(index, arr.ArrayRef)
			if !ok {
				return h.HandleErrorf(arr.ArrayRef.Pos, codes.arrayNotSibling)
			}
			_ = tIdx
			if !isIntegerArg(target) {
				return h.HandleErrorf(arr.ArrayRef.Pos, codes.arrayNotInt)
			}
		}
		if ds, ok := a.Attrs.Get(ast.AttrDataSize); ok && ds.DataSizeRef != nil {
			target, tIdx, ok := findArgByRef(index, ds.DataSizeRef)
			if !ok {
				return h.HandleErrorf(ds.DataSizeRef.Pos, codes.dataSizeNotSibling)
			}
			if !isIntegerArg(target) {
				return h.HandleErrorf(ds.DataSizeRef.Pos, codes.dataSizeNotInt)
			}
			if codes.dataSizePrecede != 0 && tIdx >= i {
				return h.HandleErrorf(ds.DataSizeRef.Pos, codes.dataSizePrecede)
			}
		}
	}
	return nil
}

func findArgByRef(index map[*ast.Arg]int, ref *ast.DeclRef) (*ast.Arg, int, bool) {
	target, ok := ref.Resolved.(*ast.Arg)
	if !ok {
		return nil, 0, false
	}
	idx, ok := index[target]
	if !ok {
		return nil, 0, false
	}
	return target, idx, true
}

func isIntegerArg(a *ast.Arg) bool {
	t, ok := a.Attrs.Get(ast.AttrType)
	if !ok {
		return false
	}
	return isIntegerTypeName(t.Type.Name)
}

func isVoidArg(a *ast.Arg) bool {
	t, ok := a.Attrs.Get(ast.AttrType)
	return ok && t.Type.IsVoid()
}

func fixedSizeArrayArg(a *ast.Arg) bool {
	arr, ok := a.Attrs.Get(ast.AttrArray)
	return ok && arr.ArrayRef == nil
}
