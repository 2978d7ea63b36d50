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

package ast

import "github.com/go-idlc/idlc/diag"

// DeclRef is an unresolved-or-resolved reference to a declaration by name,
// as it appears in an attribute argument or a documentation inline link
// (`::name`). Resolution happens in the Symbol Table's second pass
// (spec.md §4.5 Pass B); before that pass runs, Resolved is nil.
type DeclRef struct {
	Text     string
	Pos      diag.Position
	Resolved Decl
}

// NewDeclRef creates an unresolved reference at pos.
func NewDeclRef(text string, pos diag.Position) *DeclRef {
	return &DeclRef{Text: text, Pos: pos}
}

// IsResolved reports whether the Symbol Table has already matched this
// reference to a declaration.
func (r *DeclRef) IsResolved() bool {
	return r.Resolved != nil
}

// Resolve binds r to d. Called exactly once, by symtab's resolution pass.
func (r *DeclRef) Resolve(d Decl) {
	r.Resolved = d
}
