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

var callbackSizingCodes = argSizingCodes{
	arrayNotSibling:    diag.E2107,
	arrayNotInt:        diag.E2108,
	dataSizeNotSibling: diag.E2117,
	dataSizeNotInt:     diag.E2120,
	dataSizePrecede:    diag.E2121,
}

// callbacks is Pass 3: validates callback argument shape — at most one
// `userdata`, no `this`, no `Void` args, no fixed-size array args, and
// `array`/`datasize` references resolving within the same callback.
func callbacks(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, cb := range api.Callbacks {
		userdataCount := 0
		for _, a := range cb.Args {
			if a.Attrs.Has(ast.AttrThis) {
				return h.HandleErrorf(a.Location().Start, diag.E2083)
			}
			if a.Attrs.Has(ast.AttrUserData) {
				userdataCount++
			}
			if isVoidArg(a) {
				return h.HandleErrorf(a.Location().Start, diag.E2074)
			}
			if fixedSizeArrayArg(a) {
				return h.HandleErrorf(a.Location().Start, diag.E2102)
			}
		}
		if userdataCount > 1 {
			return h.HandleErrorf(cb.Location().Start, diag.E2082, cb.Name)
		}
		if err := checkArgSizing(cb.Args, callbackSizingCodes, h); err != nil {
			return err
		}
	}
	return nil
}
