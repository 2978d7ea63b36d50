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

// interfaces is Pass 8: consolidates the property and event tables built in
// Passes 6-7 and rejects a method claimed as a getter/setter by more than
// one property or event.
func interfaces(api *ast.Api, _ *symtab.Table, h *diag.Handler) error {
	for _, i := range api.Interfaces {
		claimed := map[*ast.Method]string{}
		check := func(name string, ref *ast.DeclRef) error {
			if ref == nil {
				return nil
			}
			m, ok := ref.Resolved.(*ast.Method)
			if !ok {
				return nil
			}
			if owner, ok := claimed[m]; ok && owner != name {
				return h.HandleErrorf(ref.Pos, diag.E2067, name)
			}
			claimed[m] = name
			return nil
		}
		for _, p := range i.Properties {
			if a, ok := p.Attrs.Get(ast.AttrGet); ok {
				if err := check(p.Name, a.Method); err != nil {
					return err
				}
			}
			if a, ok := p.Attrs.Get(ast.AttrSet); ok {
				if err := check(p.Name, a.Method); err != nil {
					return err
				}
			}
		}
		for _, ev := range i.Events {
			if a, ok := ev.Attrs.Get(ast.AttrGet); ok {
				if err := check(ev.Name, a.Method); err != nil {
					return err
				}
			}
			if a, ok := ev.Attrs.Get(ast.AttrSet); ok {
				if err := check(ev.Name, a.Method); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
