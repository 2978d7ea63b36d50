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

// Package diag implements the diagnostics model shared by every stage of
// the compiler: source positions, the fixed W1xxx/E2xxx rule table, typed
// errors for the handful of rules that carry structured payloads, and the
// Sink that accumulates diagnostics for a single compile job.
package diag

import "fmt"

// Position identifies a single byte in a source file by line and column,
// both 1-based. File is the interned, innermost file that produced the
// token the position belongs to (see spec.md §4.2: "the reported file for
// any token is the innermost file that produced it").
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether p names an actual file; the zero Position is used
// for synthetic nodes that have no source location.
func (p Position) IsValid() bool {
	return p.File != ""
}

// Location is a half-open span of positions, [Start, End).
type Location struct {
	Start Position
	End   Position
}

func (l Location) String() string {
	if l.Start.File == l.End.File && l.Start.Line == l.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", l.Start.File, l.Start.Line, l.Start.Column, l.End.Column)
	}
	return fmt.Sprintf("%s-%s", l.Start, l.End)
}

// Single collapses Location to its Start position, which is what every
// diagnostic in this compiler reports (spec.md §7: "the exact source
// location of the offending token").
func (l Location) Single() Position {
	return l.Start
}
