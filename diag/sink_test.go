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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/diag"
)

func TestReportFormatsTemplate(t *testing.T) {
	sink := diag.NewSink(false)
	pos := diag.Position{File: "a.idl", Line: 3, Column: 5}
	d := sink.Report(diag.E2001, pos, "@")
	require.Equal(t, diag.E2001, d.Code)
	require.Equal(t, diag.Error, d.Severity)
	require.Contains(t, d.Message, "@")
	require.Equal(t, pos, d.Pos)
}

func TestReportPanicsOnUnregisteredCode(t *testing.T) {
	sink := diag.NewSink(false)
	require.Panics(t, func() {
		sink.Report(diag.Code(999999), diag.Position{})
	})
}

func TestHandleErrorfReturnsInvalidSourceSentinel(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	err := h.HandleErrorf(diag.Position{File: "a.idl", Line: 1, Column: 1}, diag.E2001, "@")
	require.ErrorIs(t, err, diag.ErrInvalidSource)
	require.True(t, sink.HasErrors())
	require.False(t, sink.HasWarnings())
}

func TestHandleWarningfNeverTerminates(t *testing.T) {
	sink := diag.NewSink(false)
	h := diag.NewHandler(sink)
	h.HandleWarningf(diag.Position{File: "a.idl", Line: 1, Column: 1}, diag.W1001, "Foo")
	require.False(t, sink.HasErrors())
	require.True(t, sink.HasWarnings())
	require.NoError(t, h.Error())
}

func TestWarningsAsErrorsPromotesHasErrorsOnly(t *testing.T) {
	sink := diag.NewSink(true)
	h := diag.NewHandler(sink)
	h.HandleWarningf(diag.Position{File: "a.idl", Line: 1, Column: 1}, diag.W1001, "Foo")
	require.True(t, sink.HasErrors())
	require.True(t, sink.HasWarnings())
	require.Equal(t, diag.Warning, sink.Diagnostics()[0].Severity)
}

func TestDiagnosticStringWireFormat(t *testing.T) {
	sink := diag.NewSink(false)
	d := sink.Report(diag.E2001, diag.Position{File: "a.idl", Line: 3, Column: 5}, "@")
	require.Equal(t, "error [E2001]: "+d.Message+" at a.idl:3:5.", d.String())
}

func TestCodeStringPrefix(t *testing.T) {
	sink := diag.NewSink(false)
	w := sink.Report(diag.W1001, diag.Position{File: "a.idl", Line: 1, Column: 1}, "Foo")
	require.Equal(t, "W1001", w.CodeString())
	e := sink.Report(diag.E2001, diag.Position{File: "a.idl", Line: 1, Column: 1}, "@")
	require.Equal(t, "E2001", e.CodeString())
}

func TestPositionString(t *testing.T) {
	p := diag.Position{File: "a.idl", Line: 3, Column: 5}
	require.Equal(t, "a.idl:3:5", p.String())
	require.True(t, p.IsValid())
	require.False(t, (diag.Position{}).IsValid())
}

func TestTypedErrorsCarryPosition(t *testing.T) {
	pos := diag.Position{File: "a.idl", Line: 2, Column: 4}
	err := diag.AlreadyDefined("Foo", diag.Position{File: "a.idl", Line: 1, Column: 1}, pos)
	require.Equal(t, pos, err.Position())
	require.Contains(t, err.Error(), "Foo")
}
