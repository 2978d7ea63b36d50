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

// Diagnostic is one reported rule violation: a fixed Code, its rule's own
// Severity (warnings-as-errors never rewrites it), a fully formatted Message, and
// the Position of the offending token — never the enclosing declaration
// (spec.md §7).
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Pos      Position
}

// CodeString renders the code with its conventional prefix: "W1001",
// "E2037", etc.
func (d Diagnostic) CodeString() string {
	if d.Code < 2000 {
		return fmt.Sprintf("W%04d", int(d.Code))
	}
	return fmt.Sprintf("E%04d", int(d.Code))
}

// String renders the diagnostic in the CLI wire format mandated by
// spec.md §6.4: "error|warning [Ennnn]: <message> at <file>:<line>:<column>."
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s at %s.", d.Severity, d.CodeString(), d.Message, d.Pos)
}
