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

// AttrKind names one of the recognized attributes from spec.md §1. The
// Attribute Engine (package attrs) rejects anything outside this set with
// E2015.
type AttrKind int

const (
	AttrPlatform AttrKind = iota
	AttrFlags
	AttrHex
	AttrErrorCode
	AttrCtor
	AttrRefInc
	AttrDestroy
	AttrThis
	AttrGet
	AttrSet
	AttrType
	AttrValue
	AttrArray
	AttrDataSize
	AttrUserData
	AttrResult
	AttrHandle
	AttrNoError
	AttrVersion
	AttrTokenizer
	AttrOptional
	AttrRef
	AttrStatic
	AttrConst
	AttrIn
	AttrOut
	AttrCName
)

// attrNames is the canonical source-text spelling of each AttrKind, used
// both by the lexer/parser to recognize attribute names and by diagnostics
// to name them back to the user.
var attrNames = map[AttrKind]string{
	AttrPlatform:  "platform",
	AttrFlags:     "flags",
	AttrHex:       "hex",
	AttrErrorCode: "errorcode",
	AttrCtor:      "ctor",
	AttrRefInc:    "refinc",
	AttrDestroy:   "destroy",
	AttrThis:      "this",
	AttrGet:       "get",
	AttrSet:       "set",
	AttrType:      "type",
	AttrValue:     "value",
	AttrArray:     "array",
	AttrDataSize:  "datasize",
	AttrUserData:  "userdata",
	AttrResult:    "result",
	AttrHandle:    "handle",
	AttrNoError:   "noerror",
	AttrVersion:   "version",
	AttrTokenizer: "tokenizer",
	AttrOptional:  "optional",
	AttrRef:       "ref",
	AttrStatic:    "static",
	AttrConst:     "const",
	AttrIn:        "in",
	AttrOut:       "out",
	AttrCName:     "cname",
}

// AttrKindByName is the reverse lookup used when validating a raw,
// just-parsed attribute name.
var AttrKindByName = func() map[string]AttrKind {
	m := make(map[string]AttrKind, len(attrNames))
	for k, v := range attrNames {
		m[v] = k
	}
	return m
}()

func (k AttrKind) String() string {
	return attrNames[k]
}

// Version is the typed payload of the `version` attribute.
type Version struct {
	Major, Minor, Micro int
}

// TypeRef is the typed payload of the `type` attribute: either a builtin
// primitive name (Int32, Int64, Bool, Str, Void, Data, ConstData, Handle, ...)
// or a reference to a user declaration (a Struct, Enum, Callback, or
// Interface used as a type).
type TypeRef struct {
	Name string
	Ref  *DeclRef // non-nil when Name refers to a user declaration
}

// IsVoid reports whether this TypeRef names the Void primitive.
func (t TypeRef) IsVoid() bool { return t.Ref == nil && t.Name == "Void" }

// Attribute is the typed record produced by the Attribute Engine for one
// recognized attribute occurrence. Only the fields relevant to Kind are
// populated; the rest are zero.
type Attribute struct {
	Kind AttrKind
	Pos  diag.Position

	// AttrPlatform
	Platforms []string

	// AttrValue
	Value Literal

	// AttrType
	Type TypeRef

	// AttrArray: either a fixed positive size, or a reference to a
	// preceding integer field/argument.
	ArraySize int
	ArrayRef  *DeclRef

	// AttrDataSize
	DataSizeRef *DeclRef

	// AttrGet / AttrSet
	Method *DeclRef

	// AttrVersion
	Ver Version

	// AttrTokenizer
	TokenizerIndices []int

	// AttrCName
	Str string

	// AttrHex: a marker; no value is carried beyond presence.
}

// Attributes is the sparse kind -> payload mapping described in spec.md §9
// ("model attributes as a sparse mapping ... rather than a list"). This
// makes duplicate detection, which the Attribute Engine performs while
// populating the map, an O(1) check against the map itself.
type Attributes map[AttrKind]*Attribute

// Has reports whether kind is present.
func (a Attributes) Has(kind AttrKind) bool {
	_, ok := a[kind]
	return ok
}

// Get returns the Attribute for kind, if present.
func (a Attributes) Get(kind AttrKind) (*Attribute, bool) {
	v, ok := a[kind]
	return v, ok
}
