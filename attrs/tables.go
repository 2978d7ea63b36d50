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

// Package attrs implements the Attribute Engine (spec.md §4.4): context
// validation, arity/shape validation, and duplicate detection for every
// recognized attribute, producing the typed ast.Attribute records consumed
// by the semantic passes.
package attrs

import "github.com/go-idlc/idlc/ast"

// common is the set of attributes every declaration kind may carry,
// regardless of its own specific set.
var common = []ast.AttrKind{ast.AttrPlatform, ast.AttrCName}

// allowed maps each DeclKind to the attribute kinds permitted on it, beyond
// common. An attribute outside this union fails with E2014.
var allowed = map[ast.DeclKind][]ast.AttrKind{
	ast.KindApi:       {ast.AttrVersion},
	ast.KindEnum:      {ast.AttrFlags, ast.AttrHex, ast.AttrErrorCode},
	ast.KindEnumConst: {ast.AttrValue, ast.AttrNoError},
	ast.KindStruct:    {ast.AttrHandle},
	ast.KindField:     {ast.AttrType, ast.AttrValue, ast.AttrArray, ast.AttrDataSize, ast.AttrRef, ast.AttrOptional},
	ast.KindInterface: {},
	ast.KindMethod:    {ast.AttrType, ast.AttrStatic, ast.AttrCtor, ast.AttrRefInc, ast.AttrDestroy, ast.AttrConst},
	ast.KindArg: {
		ast.AttrType, ast.AttrThis, ast.AttrIn, ast.AttrOut, ast.AttrResult, ast.AttrUserData,
		ast.AttrErrorCode, ast.AttrArray, ast.AttrDataSize, ast.AttrRef, ast.AttrOptional,
	},
	ast.KindProperty: {ast.AttrType, ast.AttrStatic, ast.AttrGet, ast.AttrSet},
	ast.KindEvent:    {ast.AttrType, ast.AttrStatic, ast.AttrGet, ast.AttrSet},
	ast.KindCallback: {ast.AttrType, ast.AttrTokenizer},
	ast.KindFunc:     {ast.AttrType, ast.AttrErrorCode},
}

func isAllowed(kind ast.DeclKind, attr ast.AttrKind) bool {
	for _, a := range common {
		if a == attr {
			return true
		}
	}
	for _, a := range allowed[kind] {
		if a == attr {
			return true
		}
	}
	return false
}

var platformTargets = map[string]bool{
	"windows": true, "linux": true, "macos": true,
	"web": true, "android": true, "ios": true,
}

// primitiveTypes is the closed set of builtin type names recognized by the
// `type` attribute without needing to resolve a DeclRef.
var primitiveTypes = map[string]bool{
	"Void": true, "Bool": true, "Int32": true, "Int64": true, "UInt32": true, "UInt64": true,
	"Float32": true, "Float64": true, "Str": true, "Data": true, "ConstData": true, "Handle": true,
}
