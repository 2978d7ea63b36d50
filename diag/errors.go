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

package diag

import "fmt"

// ErrInvalidSource is returned by Handler.Error once at least one error-level
// diagnostic has been reported. It is a sentinel: callers use errors.Is to
// detect "compilation already failed" without inspecting individual
// diagnostics.
var ErrInvalidSource = fmt.Errorf("idlc: invalid source")

// ErrAbsoluteImport and ErrImportEscapesDirs are sentinels a Resolver
// implementation returns from Resolve to request a specific diagnostic
// code (E2041 vs E2042) rather than the parser's generic "cannot resolve"
// fallback. Declared here, not in the root package, so the parser can
// recognize them via errors.Is without importing the root package (which
// already imports parser, and a back-import would cycle).
var (
	ErrAbsoluteImport    = fmt.Errorf("idlc: absolute paths are not permitted in import statements")
	ErrImportEscapesDirs = fmt.Errorf("idlc: import path escapes the configured import directories")
)

// WithPos is the interface satisfied by every typed rule error in this
// package: an error that also knows the Position that caused it.
type WithPos interface {
	error
	Position() Position
}

// AlreadyDefinedError backs E2030 and E2004: a symbol-table key, or the Api
// singleton, was declared a second time.
type AlreadyDefinedError struct {
	Name     string
	Previous Position
	pos      Position
}

func AlreadyDefined(name string, previous, pos Position) AlreadyDefinedError {
	return AlreadyDefinedError{Name: name, Previous: previous, pos: pos}
}

func (e AlreadyDefinedError) Error() string {
	return fmt.Sprintf("%q is already declared at %s", e.Name, e.Previous)
}

func (e AlreadyDefinedError) Position() Position { return e.pos }

// CycleError backs E2040: a `value` reference chain among EnumConsts forms
// a cycle.
type CycleError struct {
	Chain []string
	pos   Position
}

func Cycle(chain []string, pos Position) CycleError {
	return CycleError{Chain: chain, pos: pos}
}

func (e CycleError) Error() string {
	return fmt.Sprintf("cyclic value reference: %v", e.Chain)
}

func (e CycleError) Position() Position { return e.pos }

// TypeMismatchError backs the property/event getter-setter-type family
// (E2064-E2066).
type TypeMismatchError struct {
	Want string
	Got  string
	pos  Position
}

func TypeMismatch(want, got string, pos Position) TypeMismatchError {
	return TypeMismatchError{Want: want, Got: got, pos: pos}
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("expected type %s, got %s", e.Want, e.Got)
}

func (e TypeMismatchError) Position() Position { return e.pos }

// UnresolvedError backs E2032: a DeclRef has no matching symbol-table entry.
type UnresolvedError struct {
	Name string
	pos  Position
}

func Unresolved(name string, pos Position) UnresolvedError {
	return UnresolvedError{Name: name, pos: pos}
}

func (e UnresolvedError) Error() string {
	return fmt.Sprintf("undeclared identifier %q", e.Name)
}

func (e UnresolvedError) Position() Position { return e.pos }
