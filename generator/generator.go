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

// Package generator defines the contract every code emitter implements and
// a small in-process registry the CLI uses to select one by name
// (spec.md §6.4a). A generator consumes a validated ast.Api and calls Sink
// only; it never mutates the tree (spec.md §9 "Generator isolation").
package generator

import (
	"io"

	"github.com/go-idlc/idlc/ast"
)

// Sink receives one named output file per call. A generator may call Write
// more than once (e.g. a header and a source file).
type Sink interface {
	Write(name string) (io.WriteCloser, error)
}

// Additions carries the `--additions key=value` directives from Options,
// generator-specific and otherwise uninterpreted by the compiler.
type Additions map[string]string

// Generator emits bindings for a validated Api. Implementations must not
// retain api beyond the call, and must visit every collection in
// insertion-order, depth-first (spec.md §9).
type Generator interface {
	// Name is the CLI-facing selector, e.g. "c" or "js".
	Name() string
	Generate(api *ast.Api, sink Sink, additions Additions) error
}

var registry = map[string]Generator{}

// Register adds g to the registry under g.Name(), overwriting any previous
// registration of the same name. Called from each generator's init().
func Register(g Generator) {
	registry[g.Name()] = g
}

// Lookup returns the registered Generator for name.
func Lookup(name string) (Generator, bool) {
	g, ok := registry[name]
	return g, ok
}

// Names returns every registered generator name, for CLI help text.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	return out
}
