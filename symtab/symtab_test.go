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

package symtab_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/parser"
	"github.com/go-idlc/idlc/symtab"
)

func buildAPI(t *testing.T, src string) (*ast.Api, *diag.Sink, *diag.Handler) {
	t.Helper()
	// The lexer rejects tabs (E2002); these fixtures are indented with Go's
	// tabs, so expand them to spaces before parsing.
	src = strings.ReplaceAll(src, "\t", "    ")
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	p := parser.New(ast.NewContext(), h, nil)
	api, err := p.ParseRoot("test.idl", []byte(src))
	require.NoError(t, err)
	return api, sink, h
}

func TestInsertAndResolveForwardReference(t *testing.T) {
	api, sink, h := buildAPI(t, `api Widgets {
		struct Point {
			[type(Widget)] Owner,
		}
		struct Widget {
			[type(Int32)] Id,
		}
	}`)
	require.Empty(t, sink.Diagnostics())

	table := symtab.New()
	require.NoError(t, symtab.Insert(table, api, h))
	require.NoError(t, symtab.Resolve(table, api, h))

	owner := api.Structs[0].Fields[0]
	ref := owner.Attrs[ast.AttrType].Type.Ref
	require.True(t, ref.IsResolved())
	widget, ok := ref.Resolved.(*ast.Struct)
	require.True(t, ok)
	require.Equal(t, "Widget", widget.Name)
}

func TestInsertRejectsDuplicateName(t *testing.T) {
	api, sink, h := buildAPI(t, `api Widgets {
		struct Point {
			[type(Int32)] X,
		}
		struct Point {
			[type(Int32)] Y,
		}
	}`)
	require.Empty(t, sink.Diagnostics())

	table := symtab.New()
	err := symtab.Insert(table, api, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Len(t, sink.Diagnostics(), 1)
	require.Equal(t, diag.E2030, sink.Diagnostics()[0].Code)
}

func TestResolveUnresolvedReferenceIsE2032(t *testing.T) {
	api, sink, h := buildAPI(t, `api Widgets {
		struct Point {
			[type(Nonexistent)] Owner,
		}
	}`)
	require.Empty(t, sink.Diagnostics())

	table := symtab.New()
	require.NoError(t, symtab.Insert(table, api, h))
	err := symtab.Resolve(table, api, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2032, sink.Diagnostics()[0].Code)
}

func TestResolveCaseMismatchIsE2037(t *testing.T) {
	api, sink, h := buildAPI(t, `api Widgets {
		struct Point {
			[type(widget)] Owner,
		}
		struct Widget {
			[type(Int32)] Id,
		}
	}`)
	require.Empty(t, sink.Diagnostics())

	table := symtab.New()
	require.NoError(t, symtab.Insert(table, api, h))
	err := symtab.Resolve(table, api, h)
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.Equal(t, diag.E2037, sink.Diagnostics()[0].Code)
}

func TestLookupExactHit(t *testing.T) {
	api, sink, h := buildAPI(t, `api Widgets {
		enum Color {
			Red
		}
	}`)
	require.Empty(t, sink.Diagnostics())

	table := symtab.New()
	require.NoError(t, symtab.Insert(table, api, h))
	d, err := table.Lookup("Color", diag.Position{File: "test.idl", Line: 1, Column: 1}, h)
	require.NoError(t, err)
	require.Equal(t, "Color", d.DeclName())
}
