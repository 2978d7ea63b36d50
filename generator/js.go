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

package generator

import (
	"fmt"

	"github.com/go-idlc/idlc/ast"
)

func init() {
	Register(jsGenerator{})
}

// jsGenerator emits an Embind-style binding stub naming every enum and
// interface in the Api. A full Embind emitter (enum value bindings, class
// wrappers with property/event glue) is out of this spec's core; this
// generator only needs to exist and be selectable so the CLI can target
// "js" end-to-end (SPEC_FULL.md §6.4a).
type jsGenerator struct{}

func (jsGenerator) Name() string { return "js" }

func (jsGenerator) Generate(api *ast.Api, sink Sink, _ Additions) error {
	w, err := sink.Write(api.Name + ".embind.cc")
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := fmt.Fprintf(w, "EMSCRIPTEN_BINDINGS(%s) {\n", api.Name); err != nil {
		return err
	}
	for _, e := range api.Enums {
		if _, err := fmt.Fprintf(w, "    emscripten::enum_<%s>(\"%s\")", e.Name, e.Name); err != nil {
			return err
		}
		for _, c := range e.Consts {
			if _, err := fmt.Fprintf(w, "\n        .value(\"%s\", %s::%s)", c.Name, e.Name, c.Name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, ";\n"); err != nil {
			return err
		}
	}
	for _, i := range api.Interfaces {
		if _, err := fmt.Fprintf(w, "    emscripten::class_<%s>(\"%s\");\n", i.Name, i.Name); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, "}\n")
	return err
}
