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

package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/parser"
)

func parse(t *testing.T, src string) (*ast.Api, *diag.Sink) {
	t.Helper()
	// The lexer rejects tabs (E2002); these fixtures are indented with Go's
	// tabs, so expand them to spaces before parsing.
	src = strings.ReplaceAll(src, "\t", "    ")
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	p := parser.New(ast.NewContext(), h, nil)
	api, err := p.ParseRoot("test.idl", []byte(src))
	require.Truef(t, err == nil || errors.Is(err, diag.ErrInvalidSource), "unexpected error: %v", err)
	return api, sink
}

func TestParseMinimalApi(t *testing.T) {
	api, sink := parse(t, "api Widgets {\n}\n")
	require.Empty(t, sink.Diagnostics())
	require.Equal(t, "Widgets", api.Name)
}

func TestParseEnumWithTrailingComma(t *testing.T) {
	api, sink := parse(t, `api Widgets {
		enum Color {
			Red,
			Green,
			Blue,
		}
	}`)
	require.Empty(t, sink.Diagnostics())
	require.Len(t, api.Enums, 1)
	require.Equal(t, "Color", api.Enums[0].Name)
	require.Len(t, api.Enums[0].Consts, 3)
	require.Equal(t, "Blue", api.Enums[0].Consts[2].Name)
}

func TestParseEnumConstExplicitValue(t *testing.T) {
	api, sink := parse(t, `api Widgets {
		enum Color {
			[value(5)]
			Red
		}
	}`)
	require.Empty(t, sink.Diagnostics())
	c := api.Enums[0].Consts[0]
	require.True(t, c.Attrs.Has(ast.AttrValue))
	require.Equal(t, ast.IntLiteral(5), c.Attrs[ast.AttrValue].Value)
}

func TestParseStructWithTypedFields(t *testing.T) {
	api, sink := parse(t, `api Widgets {
		struct Point {
			[type(Int32)] X,
			[type(Int32)] Y,
		}
	}`)
	require.Empty(t, sink.Diagnostics())
	require.Len(t, api.Structs, 1)
	require.Len(t, api.Structs[0].Fields, 2)
	require.Equal(t, "Int32", api.Structs[0].Fields[0].Attrs[ast.AttrType].Type.Name)
}

func TestParseEmptyStructIsE2081(t *testing.T) {
	_, sink := parse(t, `api Widgets {
		struct Empty {
		}
	}`)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2081, sink.Diagnostics()[0].Code)
}

func TestParseLowercaseDeclNameIsE2003(t *testing.T) {
	_, sink := parse(t, "api widgets {\n}\n")
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2003, sink.Diagnostics()[0].Code)
}

func TestParseInterfaceWithMethodPropertyEvent(t *testing.T) {
	api, sink := parse(t, `api Widgets {
		interface Button {
			method Click(
				[this] Self,
			)
			[type(Int32)]
			property Count
			event Pressed
		}
	}`)
	require.Empty(t, sink.Diagnostics())
	require.Len(t, api.Interfaces, 1)
	iface := api.Interfaces[0]
	require.Len(t, iface.Methods, 1)
	require.Equal(t, "Click", iface.Methods[0].Name)
	require.Len(t, iface.Properties, 1)
	require.Equal(t, "Count", iface.Properties[0].Name)
	require.Len(t, iface.Events, 1)
	require.Equal(t, "Pressed", iface.Events[0].Name)
}

func TestParseDocCommentAttachesToDecl(t *testing.T) {
	api, sink := parse(t, "api Widgets {\n\t/// brief: Describes a named color.\n\tenum Color {\n\t\tRed\n\t}\n}\n")
	require.Empty(t, sink.Diagnostics())
	require.NotNil(t, api.Enums[0].Doc)
	require.Contains(t, api.Enums[0].Doc.Brief, "Describes a named color.")
}

func TestParseRejectsNestedApiKeyword(t *testing.T) {
	_, sink := parse(t, `api Widgets {
		api Nested {
		}
	}`)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2004, sink.Diagnostics()[0].Code)
}

func TestParseImportWithoutResolverIsE2041(t *testing.T) {
	_, sink := parse(t, `api Widgets {
		import "other.idl"
	}`)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2041, sink.Diagnostics()[0].Code)
}

type stubResolver struct {
	src map[string]string
	err error
}

func (r stubResolver) Resolve(name, _ string, _ int) ([]byte, string, string, error) {
	if r.err != nil {
		return nil, "", "", r.err
	}
	src, ok := r.src[name]
	if !ok {
		return nil, "", "", errors.New("not found")
	}
	return []byte(src), name, name, nil
}

func TestParseImportResolvesAndMergesDecls(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	resolver := stubResolver{src: map[string]string{
		"colors.idl": "enum Color {\n    Red\n}\n",
	}}
	p := parser.New(ast.NewContext(), h, resolver)
	api, err := p.ParseRoot("root.idl", []byte("api Widgets {\n    import \"colors.idl\"\n}\n"))
	require.NoError(t, err)
	require.Empty(t, sink.Diagnostics())
	require.Len(t, api.Enums, 1)
	require.Equal(t, "Color", api.Enums[0].Name)
}

func TestParseImportEscapeReportsE2042(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	resolver := stubResolver{err: diag.ErrImportEscapesDirs}
	p := parser.New(ast.NewContext(), h, resolver)
	_, err := p.ParseRoot("root.idl", []byte("api Widgets {\n    import \"../outside.idl\"\n}\n"))
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2042, sink.Diagnostics()[0].Code)
}

func TestParseFlagsAndHexEnumAttributes(t *testing.T) {
	api, sink := parse(t, `api Widgets {
		[flags, hex]
		enum Perms {
			[value(1)]
			Read,
			[value(2)]
			Write,
		}
	}`)
	require.Empty(t, sink.Diagnostics())
	e := api.Enums[0]
	require.True(t, e.Attrs.Has(ast.AttrFlags))
	require.True(t, e.Attrs.Has(ast.AttrHex))
}
