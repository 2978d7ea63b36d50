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

// Documentation is the `{ brief?, detail?, copyright?, license?, authors,
// notes }` block attached to a declaration, whether written as a preceding
// doc-comment block or as an inline `detail`-only fragment (spec.md §4.3).
type Documentation struct {
	Loc       diag.Location
	Brief     string
	Detail    string
	Copyright string
	License   string
	Authors   []string
	Notes     []string
	Inline    bool

	// Links collects every `::name` inline reference found across all
	// fragments, in the order encountered. Pass 10 resolves each against
	// the symbol table.
	Links []*DeclRef
}

// IsEmpty reports whether no section at all was populated (E2006: "empty
// documentation block").
func (d *Documentation) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Brief == "" && d.Detail == "" && d.Copyright == "" && d.License == "" &&
		len(d.Authors) == 0 && len(d.Notes) == 0
}

// HasBriefOrDetail reports whether the documentation satisfies E2111.
func (d *Documentation) HasBriefOrDetail() bool {
	return d != nil && (d.Brief != "" || d.Detail != "")
}
