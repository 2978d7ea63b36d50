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

package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/attrs"
	"github.com/go-idlc/idlc/diag"
)

func pos() diag.Position { return diag.Position{File: "a.idl", Line: 1, Column: 1} }

func rawMarker(name string) ast.RawAttr {
	return ast.RawAttr{Name: name, Pos: pos()}
}

func rawIdentArg(name, arg string) ast.RawAttr {
	return ast.RawAttr{
		Name: name,
		Pos:  pos(),
		Args: []ast.RawArgSlot{{Tokens: []ast.RawToken{{Kind: ast.RawIdent, Text: arg, Pos: pos()}}}},
	}
}

func TestValidateRejectsUnknownAttributeName(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	_, err := attrs.Validate(ast.KindStruct, []ast.RawAttr{rawMarker("bogus")}, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2015, sink.Diagnostics()[0].Code)
}

func TestValidateRejectsDisallowedContext(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	// `flags` is an Enum attribute, not allowed on a Struct.
	_, err := attrs.Validate(ast.KindStruct, []ast.RawAttr{rawMarker("flags")}, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2014, sink.Diagnostics()[0].Code)
}

func TestValidateRejectsDuplicateAttribute(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	raws := []ast.RawAttr{rawMarker("hex"), rawMarker("hex")}
	_, err := attrs.Validate(ast.KindEnum, raws, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2013, sink.Diagnostics()[0].Code)
}

func TestValidateAcceptsCommonAttributesOnAnyKind(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	raw := ast.RawAttr{
		Name: "cname",
		Pos:  pos(),
		Args: []ast.RawArgSlot{{Tokens: []ast.RawToken{{Kind: ast.RawString, Text: "my_name", Pos: pos()}}}},
	}
	got, err := attrs.Validate(ast.KindStruct, []ast.RawAttr{raw}, h)
	require.NoError(t, err)
	require.True(t, got.Has(ast.AttrCName))
	require.Equal(t, "my_name", got[ast.AttrCName].Str)
}

func TestValidateFlagsAndHexAreMarkersWithNoArgs(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	got, err := attrs.Validate(ast.KindEnum, []ast.RawAttr{rawMarker("flags"), rawMarker("hex")}, h)
	require.NoError(t, err)
	require.True(t, got.Has(ast.AttrFlags))
	require.True(t, got.Has(ast.AttrHex))
}

func TestValidateMarkerRejectsArgs(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	raw := ast.RawAttr{
		Name: "flags",
		Pos:  pos(),
		Args: []ast.RawArgSlot{{Tokens: []ast.RawToken{{Kind: ast.RawInt, Int: 1, Pos: pos()}}}},
	}
	_, err := attrs.Validate(ast.KindEnum, []ast.RawAttr{raw}, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2028, sink.Diagnostics()[0].Code)
}

func TestValidateTypeResolvesPrimitiveWithoutDeclRef(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	got, err := attrs.Validate(ast.KindField, []ast.RawAttr{rawIdentArg("type", "Int32")}, h)
	require.NoError(t, err)
	require.Equal(t, "Int32", got[ast.AttrType].Type.Name)
	require.Nil(t, got[ast.AttrType].Type.Ref)
}

func TestValidateTypeBuildsDeclRefForNonPrimitive(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	got, err := attrs.Validate(ast.KindField, []ast.RawAttr{rawIdentArg("type", "Widget")}, h)
	require.NoError(t, err)
	require.Equal(t, "Widget", got[ast.AttrType].Type.Name)
	require.NotNil(t, got[ast.AttrType].Type.Ref)
}

func TestValidateValueAcceptsIntStringBoolAndConstRef(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)

	intRaw := ast.RawAttr{Name: "value", Pos: pos(), Args: []ast.RawArgSlot{
		{Tokens: []ast.RawToken{{Kind: ast.RawInt, Int: 7, Pos: pos()}}},
	}}
	got, err := attrs.Validate(ast.KindEnumConst, []ast.RawAttr{intRaw}, h)
	require.NoError(t, err)
	require.Equal(t, ast.IntLiteral(7), got[ast.AttrValue].Value)

	boolRaw := rawIdentArg("value", "true")
	got, err = attrs.Validate(ast.KindEnumConst, []ast.RawAttr{boolRaw}, h)
	require.NoError(t, err)
	require.Equal(t, ast.BoolLiteral(true), got[ast.AttrValue].Value)

	strRaw := ast.RawAttr{Name: "value", Pos: pos(), Args: []ast.RawArgSlot{
		{Tokens: []ast.RawToken{{Kind: ast.RawString, Text: "s", Pos: pos()}}},
	}}
	got, err = attrs.Validate(ast.KindEnumConst, []ast.RawAttr{strRaw}, h)
	require.NoError(t, err)
	require.Equal(t, ast.StringLiteral("s"), got[ast.AttrValue].Value)

	refRaw := rawIdentArg("value", "Other")
	got, err = attrs.Validate(ast.KindEnumConst, []ast.RawAttr{refRaw}, h)
	require.NoError(t, err)
	require.Equal(t, ast.LitConstRefs, got[ast.AttrValue].Value.Kind)
	require.Len(t, got[ast.AttrValue].Value.Const, 1)
	require.Equal(t, "Other", got[ast.AttrValue].Value.Const[0].Text)
}

func TestValidatePlatformRejectsUnknownTarget(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	raw := ast.RawAttr{Name: "platform", Pos: pos(), Args: []ast.RawArgSlot{
		{Tokens: []ast.RawToken{{Kind: ast.RawIdent, Text: "atari", Pos: pos()}}},
	}}
	_, err := attrs.Validate(ast.KindStruct, []ast.RawAttr{raw}, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2017, sink.Diagnostics()[0].Code)
}

func TestValidateArrayAcceptsFixedSizeAndFieldRef(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	fixed := ast.RawAttr{Name: "array", Pos: pos(), Args: []ast.RawArgSlot{
		{Tokens: []ast.RawToken{{Kind: ast.RawInt, Int: 4, Pos: pos()}}},
	}}
	got, err := attrs.Validate(ast.KindField, []ast.RawAttr{fixed}, h)
	require.NoError(t, err)
	require.Equal(t, 4, got[ast.AttrArray].ArraySize)

	ref := rawIdentArg("array", "Count")
	got, err = attrs.Validate(ast.KindField, []ast.RawAttr{ref}, h)
	require.NoError(t, err)
	require.Equal(t, "Count", got[ast.AttrArray].ArrayRef.Text)
}

func TestValidateArrayRejectsNonPositiveSize(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	raw := ast.RawAttr{Name: "array", Pos: pos(), Args: []ast.RawArgSlot{
		{Tokens: []ast.RawToken{{Kind: ast.RawInt, Int: 0, Pos: pos()}}},
	}}
	_, err := attrs.Validate(ast.KindField, []ast.RawAttr{raw}, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2077, sink.Diagnostics()[0].Code)
}

func TestValidateTokenizerOnCallback(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	raw := ast.RawAttr{Name: "tokenizer", Pos: pos(), Args: []ast.RawArgSlot{
		{Tokens: []ast.RawToken{{Kind: ast.RawInt, Int: 0, Pos: pos()}}},
		{Tokens: []ast.RawToken{{Kind: ast.RawInt, Int: 2, Pos: pos()}}},
	}}
	got, err := attrs.Validate(ast.KindCallback, []ast.RawAttr{raw}, h)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, got[ast.AttrTokenizer].TokenizerIndices)
}

func TestValidateGetSetRequireMethodIdentArg(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	got, err := attrs.Validate(ast.KindProperty, []ast.RawAttr{rawIdentArg("get", "GetValue")}, h)
	require.NoError(t, err)
	require.Equal(t, "GetValue", got[ast.AttrGet].Method.Text)
}
