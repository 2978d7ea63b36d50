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

// RawArgKind tags one argument token inside a just-parsed, not-yet-validated
// attribute occurrence.
type RawArgKind int

const (
	RawIdent RawArgKind = iota
	RawInt
	RawString
)

// RawToken is one lexical token inside an argument slot.
type RawToken struct {
	Kind RawArgKind
	Text string
	Int  int64
	Pos  diag.Position
}

// RawArgSlot is one comma-separated argument position. It holds more than
// one RawToken only for the `value(A | B | C)` pipe-chain form; every other
// attribute argument is a single-token slot.
type RawArgSlot struct {
	Tokens []RawToken
}

// RawAttr is a `name(arg, arg, ...)` or bare `name` attribute occurrence as
// produced by the parser, before context/arity/type validation. Args counts
// comma-separated slots, not raw tokens.
type RawAttr struct {
	Name string
	Pos  diag.Position
	Args []RawArgSlot
}

// DeclKind names the declaration kind an attribute list was parsed for, so
// the Attribute Engine can look up the allowed-attribute table.
type DeclKind int

const (
	KindApi DeclKind = iota
	KindEnum
	KindEnumConst
	KindStruct
	KindField
	KindInterface
	KindMethod
	KindArg
	KindProperty
	KindEvent
	KindCallback
	KindFunc
)

func (k DeclKind) String() string {
	switch k {
	case KindApi:
		return "api"
	case KindEnum:
		return "enum"
	case KindEnumConst:
		return "enum constant"
	case KindStruct:
		return "struct"
	case KindField:
		return "field"
	case KindInterface:
		return "interface"
	case KindMethod:
		return "method"
	case KindArg:
		return "argument"
	case KindProperty:
		return "property"
	case KindEvent:
		return "event"
	case KindCallback:
		return "callback"
	case KindFunc:
		return "func"
	default:
		return "declaration"
	}
}
