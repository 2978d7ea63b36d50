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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/generator"
)

func TestJSGeneratorRegistered(t *testing.T) {
	g, ok := generator.Lookup("js")
	require.True(t, ok)
	require.Equal(t, "js", g.Name())
}

func TestJSGeneratorEmitsEnumAndInterfaceBindings(t *testing.T) {
	g, _ := generator.Lookup("js")
	api := ast.NewApi("Widgets", diag.Location{})
	e := ast.NewEnum("Color", diag.Location{})
	e.AddConst(ast.NewEnumConst("Red", diag.Location{}))
	api.AddEnum(e)
	api.AddInterface(ast.NewInterface("Button", diag.Location{}))

	sink := newMemSink()
	require.NoError(t, g.Generate(api, sink, generator.Additions{}))

	out := sink.files["Widgets.embind.cc"].String()
	require.Contains(t, out, "EMSCRIPTEN_BINDINGS(Widgets) {")
	require.Contains(t, out, `emscripten::enum_<Color>("Color")`)
	require.Contains(t, out, `.value("Red", Color::Red)`)
	require.Contains(t, out, `emscripten::class_<Button>("Button");`)
	require.Contains(t, out, "}\n")
}
