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

package attrs

import (
	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
)

// Validate checks every raw attribute parsed for a declaration of the given
// kind: context (E2014/E2015), duplication (E2013), and per-attribute
// arity/shape (E2016 et al.), returning the typed Attributes map the rest of
// the compiler operates on. It stops at the first invalid attribute,
// matching the rest of the compiler's first-error-terminates-the-unit
// policy.
func Validate(kind ast.DeclKind, raws []ast.RawAttr, h *diag.Handler) (ast.Attributes, error) {
	out := ast.Attributes{}
	for _, raw := range raws {
		ak, ok := ast.AttrKindByName[raw.Name]
		if !ok {
			return nil, h.HandleErrorf(raw.Pos, diag.E2015, raw.Name)
		}
		if !isAllowed(kind, ak) {
			return nil, h.HandleErrorf(raw.Pos, diag.E2014, raw.Name, kind.String())
		}
		if out.Has(ak) {
			return nil, h.HandleErrorf(raw.Pos, diag.E2013, raw.Name)
		}
		attr, err := validateOne(ak, raw, h)
		if err != nil {
			return nil, err
		}
		out[ak] = attr
	}
	return out, nil
}

func validateOne(kind ast.AttrKind, raw ast.RawAttr, h *diag.Handler) (*ast.Attribute, error) {
	a := &ast.Attribute{Kind: kind, Pos: raw.Pos}
	switch kind {
	case ast.AttrPlatform:
		return a, validatePlatform(a, raw, h)
	case ast.AttrFlags, ast.AttrHex, ast.AttrCtor, ast.AttrRefInc, ast.AttrDestroy,
		ast.AttrThis, ast.AttrUserData, ast.AttrResult, ast.AttrHandle, ast.AttrOptional,
		ast.AttrRef, ast.AttrStatic, ast.AttrConst, ast.AttrIn, ast.AttrOut:
		return a, requireNoArgs(raw, h)
	case ast.AttrNoError:
		return a, requireNoArgs(raw, h)
	case ast.AttrErrorCode:
		return a, validateErrorCode(a, raw, h)
	case ast.AttrGet, ast.AttrSet:
		return a, validateMethodRef(a, raw, h)
	case ast.AttrType:
		return a, validateType(a, raw, h)
	case ast.AttrValue:
		return a, validateValue(a, raw, h)
	case ast.AttrArray:
		return a, validateArray(a, raw, h)
	case ast.AttrDataSize:
		return a, validateDataSize(a, raw, h)
	case ast.AttrVersion:
		return a, validateVersion(a, raw, h)
	case ast.AttrTokenizer:
		return a, validateTokenizer(a, raw, h)
	case ast.AttrCName:
		return a, validateCName(a, raw, h)
	default:
		return a, nil
	}
}

func requireNoArgs(raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 0 {
		return h.HandleErrorf(raw.Pos, diag.E2028, raw.Name)
	}
	return nil
}

func validatePlatform(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) == 0 {
		return h.HandleErrorf(raw.Pos, diag.E2016, raw.Name)
	}
	seen := map[string]bool{}
	for _, slot := range raw.Args {
		if len(slot.Tokens) != 1 || slot.Tokens[0].Kind != ast.RawIdent {
			return h.HandleErrorf(raw.Pos, diag.E2017, slotText(slot))
		}
		name := slot.Tokens[0].Text
		if !platformTargets[name] {
			return h.HandleErrorf(slot.Tokens[0].Pos, diag.E2017, name)
		}
		if seen[name] {
			return h.HandleErrorf(slot.Tokens[0].Pos, diag.E2018, name)
		}
		seen[name] = true
		a.Platforms = append(a.Platforms, name)
	}
	return nil
}

func validateErrorCode(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) == 0 {
		return nil // marker form: Enum{errorcode}, Arg{errorcode}
	}
	if len(raw.Args) != 1 || len(raw.Args[0].Tokens) != 1 || raw.Args[0].Tokens[0].Kind != ast.RawIdent {
		return h.HandleErrorf(raw.Pos, diag.E2029, raw.Name)
	}
	tok := raw.Args[0].Tokens[0]
	a.Method = ast.NewDeclRef(tok.Text, tok.Pos)
	return nil
}

func validateMethodRef(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 1 || len(raw.Args[0].Tokens) != 1 || raw.Args[0].Tokens[0].Kind != ast.RawIdent {
		return h.HandleErrorf(raw.Pos, diag.E2029, raw.Name)
	}
	tok := raw.Args[0].Tokens[0]
	a.Method = ast.NewDeclRef(tok.Text, tok.Pos)
	return nil
}

func validateType(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 1 || len(raw.Args[0].Tokens) != 1 || raw.Args[0].Tokens[0].Kind != ast.RawIdent {
		return h.HandleErrorf(raw.Pos, diag.E2029, raw.Name)
	}
	tok := raw.Args[0].Tokens[0]
	if primitiveTypes[tok.Text] {
		a.Type = ast.TypeRef{Name: tok.Text}
		return nil
	}
	a.Type = ast.TypeRef{Name: tok.Text, Ref: ast.NewDeclRef(tok.Text, tok.Pos)}
	return nil
}

func validateValue(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) == 0 {
		return h.HandleErrorf(raw.Pos, diag.E2023, raw.Name)
	}
	if len(raw.Args) > 1 {
		return h.HandleErrorf(raw.Pos, diag.E2024, raw.Name)
	}
	slot := raw.Args[0]
	if len(slot.Tokens) == 0 {
		return h.HandleErrorf(raw.Pos, diag.E2025, raw.Name)
	}
	if len(slot.Tokens) == 1 {
		tok := slot.Tokens[0]
		switch tok.Kind {
		case ast.RawInt:
			a.Value = ast.IntLiteral(tok.Int)
			return nil
		case ast.RawString:
			a.Value = ast.StringLiteral(tok.Text)
			return nil
		case ast.RawIdent:
			switch tok.Text {
			case "true":
				a.Value = ast.BoolLiteral(true)
				return nil
			case "false":
				a.Value = ast.BoolLiteral(false)
				return nil
			default:
				a.Value = ast.ConstRefsLiteral([]*ast.DeclRef{ast.NewDeclRef(tok.Text, tok.Pos)})
				return nil
			}
		}
		return h.HandleErrorf(tok.Pos, diag.E2025, raw.Name)
	}
	refs := make([]*ast.DeclRef, 0, len(slot.Tokens))
	for _, tok := range slot.Tokens {
		if tok.Kind != ast.RawIdent {
			return h.HandleErrorf(tok.Pos, diag.E2025, raw.Name)
		}
		refs = append(refs, ast.NewDeclRef(tok.Text, tok.Pos))
	}
	a.Value = ast.ConstRefsLiteral(refs)
	return nil
}

func validateArray(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 1 || len(raw.Args[0].Tokens) != 1 {
		return h.HandleErrorf(raw.Pos, diag.E2076, raw.Name)
	}
	tok := raw.Args[0].Tokens[0]
	switch tok.Kind {
	case ast.RawInt:
		if tok.Int <= 0 {
			return h.HandleErrorf(tok.Pos, diag.E2077, tok.Int)
		}
		a.ArraySize = int(tok.Int)
		return nil
	case ast.RawIdent:
		a.ArrayRef = ast.NewDeclRef(tok.Text, tok.Pos)
		return nil
	default:
		return h.HandleErrorf(tok.Pos, diag.E2076, raw.Name)
	}
}

func validateDataSize(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 1 || len(raw.Args[0].Tokens) != 1 || raw.Args[0].Tokens[0].Kind != ast.RawIdent {
		return h.HandleErrorf(raw.Pos, diag.E2029, raw.Name)
	}
	tok := raw.Args[0].Tokens[0]
	a.DataSizeRef = ast.NewDeclRef(tok.Text, tok.Pos)
	return nil
}

func validateVersion(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 3 {
		return h.HandleErrorf(raw.Pos, diag.E2110, raw.Name)
	}
	parts := make([]int, 3)
	for i, slot := range raw.Args {
		if len(slot.Tokens) != 1 || slot.Tokens[0].Kind != ast.RawInt {
			return h.HandleErrorf(raw.Pos, diag.E2110, raw.Name)
		}
		parts[i] = int(slot.Tokens[0].Int)
	}
	a.Ver = ast.Version{Major: parts[0], Minor: parts[1], Micro: parts[2]}
	return nil
}

func validateTokenizer(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) == 0 {
		return h.HandleErrorf(raw.Pos, diag.E2109, raw.Name)
	}
	indices := make([]int, 0, len(raw.Args))
	for _, slot := range raw.Args {
		if len(slot.Tokens) != 1 || slot.Tokens[0].Kind != ast.RawInt {
			return h.HandleErrorf(raw.Pos, diag.E2109, raw.Name)
		}
		indices = append(indices, int(slot.Tokens[0].Int))
	}
	a.TokenizerIndices = indices
	return nil
}

func validateCName(a *ast.Attribute, raw ast.RawAttr, h *diag.Handler) error {
	if len(raw.Args) != 1 || len(raw.Args[0].Tokens) != 1 || raw.Args[0].Tokens[0].Kind != ast.RawString {
		return h.HandleErrorf(raw.Pos, diag.E2075, raw.Name)
	}
	a.Str = raw.Args[0].Tokens[0].Text
	return nil
}

func slotText(slot ast.RawArgSlot) string {
	if len(slot.Tokens) == 0 {
		return ""
	}
	return slot.Tokens[0].Text
}
