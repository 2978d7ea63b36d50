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

// Sink accumulates diagnostics for a single compile job, in the insertion
// order they were reported (spec.md §4.7). It never drops a diagnostic and
// never reorders them; the passes that call it are themselves responsible
// for visiting declarations in source order.
type Sink struct {
	diagnostics      []Diagnostic
	warningsAsErrors bool
}

// NewSink creates an empty Sink. When warningsAsErrors is true, HasErrors
// reports true as soon as any warning has been appended, per spec.md §4.7
// and §6.2 (`warnings_as_errors`).
func NewSink(warningsAsErrors bool) *Sink {
	return &Sink{warningsAsErrors: warningsAsErrors}
}

// Add appends a fully-formed Diagnostic unchanged. Warnings-as-errors
// promotion is not applied here: the stored Severity stays as reported, and
// only HasErrors takes the promotion into account.
func (s *Sink) Add(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Report looks up the Rule for code, formats its template with args, and
// appends the resulting Diagnostic at pos. It panics if code is not a
// registered rule — that is a bug in the calling pass, not a user-facing
// condition.
func (s *Sink) Report(code Code, pos Position, args ...any) Diagnostic {
	rule, ok := Lookup(code)
	if !ok {
		panic(fmt.Sprintf("diag: report of unregistered code %d", code))
	}
	d := Diagnostic{
		Code:     code,
		Severity: rule.Severity,
		Message:  fmt.Sprintf(rule.Template, args...),
		Pos:      pos,
	}
	s.Add(d)
	return d
}

// Diagnostics returns the accumulated diagnostics in report order. The
// returned slice must not be mutated by the caller.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any Error-severity diagnostic was reported, or
// (under warnings-as-errors) any diagnostic at all.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == Error {
			return true
		}
		if s.warningsAsErrors && d.Severity == Warning {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any Warning-severity diagnostic was reported,
// irrespective of promotion.
func (s *Sink) HasWarnings() bool {
	for _, d := range s.diagnostics {
		if d.Severity == Warning {
			return true
		}
	}
	return false
}

// Handler wraps a Sink with the pass-termination policy from spec.md §4.6
// and §7: "the first error within a pass raises and terminates that pass."
// A semantic pass calls HandleErrorf and returns immediately on its non-nil
// result; warnings (HandleWarningf) never terminate a pass.
type Handler struct {
	sink *Sink
}

// NewHandler wraps sink for use by the parser and semantic passes.
func NewHandler(sink *Sink) *Handler {
	return &Handler{sink: sink}
}

// HandleErrorf reports an Error-severity diagnostic for code at pos and
// returns ErrInvalidSource, so that `return h.HandleErrorf(...)` both
// records the diagnostic and unwinds the current pass.
func (h *Handler) HandleErrorf(pos Position, code Code, args ...any) error {
	h.sink.Report(code, pos, args...)
	return ErrInvalidSource
}

// HandleWarningf reports a Warning-severity diagnostic and never returns an
// error: warnings accumulate but never terminate a pass.
func (h *Handler) HandleWarningf(pos Position, code Code, args ...any) {
	h.sink.Report(code, pos, args...)
}

// Error reports whether this handler has recorded any error-severity
// diagnostic so far, returning ErrInvalidSource if so.
func (h *Handler) Error() error {
	if h.sink.HasErrors() {
		return ErrInvalidSource
	}
	return nil
}

// Sink exposes the underlying Sink, e.g. for a caller that needs the final
// Diagnostics() slice once every pass has run.
func (h *Handler) Sink() *Sink {
	return h.sink
}
