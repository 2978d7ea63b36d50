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

package generator_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/generator"
)

// memSink captures every file a Generator writes, keyed by name.
type memSink struct {
	files map[string]*bytes.Buffer
}

func newMemSink() *memSink { return &memSink{files: map[string]*bytes.Buffer{}} }

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func (s *memSink) Write(name string) (io.WriteCloser, error) {
	buf := &bytes.Buffer{}
	s.files[name] = buf
	return nopCloser{buf}, nil
}

func buildEnumAPI(t *testing.T, name string, hex, flags bool, consts []string) *ast.Api {
	t.Helper()
	api := ast.NewApi(name, diag.Location{})
	e := ast.NewEnum("Color", diag.Location{})
	attrList := ast.Attributes{}
	if hex {
		attrList[ast.AttrHex] = &ast.Attribute{Kind: ast.AttrHex}
	}
	if flags {
		attrList[ast.AttrFlags] = &ast.Attribute{Kind: ast.AttrFlags}
	}
	e.Attrs = attrList
	for i, name := range consts {
		c := ast.NewEnumConst(name, diag.Location{})
		c.Value = int32(1 << i)
		c.Resolved = true
		e.AddConst(c)
	}
	api.AddEnum(e)
	return api
}

func TestCGeneratorRegistered(t *testing.T) {
	g, ok := generator.Lookup("c")
	require.True(t, ok)
	require.Equal(t, "c", g.Name())
}

func TestCGeneratorDecimalEnum(t *testing.T) {
	g, _ := generator.Lookup("c")
	api := buildEnumAPI(t, "Widgets", false, false, []string{"Red", "Green"})
	sink := newMemSink()
	require.NoError(t, g.Generate(api, sink, generator.Additions{}))

	out := sink.files["WIDGETS.h"].String()
	require.Contains(t, out, "typedef enum")
	require.Contains(t, out, "COLOR_RED      = 1,")
	require.Contains(t, out, "COLOR_GREEN    = 2,")
	require.Contains(t, out, "COLOR_MAX_ENUM = 0x7FFFFFFF")
	require.Contains(t, out, "} COLOR;")
}

func TestCGeneratorHexEnum(t *testing.T) {
	g, _ := generator.Lookup("c")
	api := buildEnumAPI(t, "Widgets", true, false, []string{"Red"})
	sink := newMemSink()
	require.NoError(t, g.Generate(api, sink, generator.Additions{}))

	out := sink.files["WIDGETS.h"].String()
	require.Contains(t, out, "COLOR_RED      = 0x01,")
}

func TestCGeneratorFlagsEnumKeepsMaxEnumSentinel(t *testing.T) {
	g, _ := generator.Lookup("c")
	api := buildEnumAPI(t, "Widgets", false, true, []string{"Read", "Write"})
	sink := newMemSink()
	require.NoError(t, g.Generate(api, sink, generator.Additions{}))

	out := sink.files["WIDGETS.h"].String()
	require.Contains(t, out, "COLOR_MAX_ENUM = 0x7FFFFFFF")
	require.NotContains(t, out, "COLOR_MAX_ ")
}
