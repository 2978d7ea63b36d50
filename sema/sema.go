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

// Package sema runs the ten ordered semantic passes of spec.md §4.6 over an
// already-parsed, symbol-resolved ast.Api: enum constants, structs,
// callbacks, functions, methods, properties, events, interfaces, handles,
// and documentation. Each pass treats the tree as read-only except for a
// disjoint set of derived fields it alone computes, and the first rule
// violation within a pass aborts that pass — later passes never run once an
// earlier one fails, matching the compiler's first-error policy.
package sema

import (
	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/symtab"
)

// Run executes all ten passes in spec order against api. Every pass receives
// t, but the passes read the references symtab.Resolve already bound and do
// not look anything up in t themselves.
func Run(api *ast.Api, t *symtab.Table, h *diag.Handler) error {
	passes := []func(*ast.Api, *symtab.Table, *diag.Handler) error{
		enumConstants,
		structs,
		callbacks,
		functions,
		methods,
		properties,
		events,
		interfaces,
		handles,
		documentation,
	}
	for _, pass := range passes {
		if err := pass(api, t, h); err != nil {
			return err
		}
	}
	return nil
}
