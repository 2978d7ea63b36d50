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

// LiteralKind tags the payload carried by a Literal value.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitBool
	LitString
	LitConstRefs
)

// Literal is the value of a `value` attribute: a signed 32-bit-range
// integer, a boolean, a UTF-8 string, or an ordered list of DeclRefs to
// previously declared EnumConsts (the `A | B | C` form) — spec.md §3.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Bool  bool
	Str   string
	Const []*DeclRef
}

func IntLiteral(v int64) Literal   { return Literal{Kind: LitInt, Int: v} }
func BoolLiteral(v bool) Literal   { return Literal{Kind: LitBool, Bool: v} }
func StringLiteral(v string) Literal { return Literal{Kind: LitString, Str: v} }
func ConstRefsLiteral(refs []*DeclRef) Literal {
	return Literal{Kind: LitConstRefs, Const: refs}
}
