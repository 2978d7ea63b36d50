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

package idlc

import "github.com/go-idlc/idlc/diag"

// ResultCode is the host-level stratum of spec.md §7: returned from the
// top-level entry points for conditions that prevent producing a
// CompileResult at all. An error raised after a CompileResult exists is
// instead recorded in its Diagnostics, with CompilationFailed as the code.
type ResultCode int

const (
	Success ResultCode = iota
	UnknownError
	OutOfMemory
	InvalidArg
	FileCreate
	CompilationFailed
	NotSupported
)

func (r ResultCode) String() string {
	switch r {
	case Success:
		return "Success"
	case UnknownError:
		return "UnknownError"
	case OutOfMemory:
		return "OutOfMemory"
	case InvalidArg:
		return "InvalidArg"
	case FileCreate:
		return "FileCreate"
	case CompilationFailed:
		return "CompilationFailed"
	case NotSupported:
		return "NotSupported"
	default:
		return "UnknownError"
	}
}

// CompileResult is the compilation-result handle of spec.md §6.3: exposed
// fields only, no method set a caller needs beyond reading them.
type CompileResult struct {
	Code        ResultCode
	HasWarnings bool
	HasErrors   bool
	Diagnostics []diag.Diagnostic
}

func resultFromSink(sink *diag.Sink) CompileResult {
	return CompileResult{
		Code:        codeForSink(sink),
		HasWarnings: sink.HasWarnings(),
		HasErrors:   sink.HasErrors(),
		Diagnostics: sink.Diagnostics(),
	}
}

func codeForSink(sink *diag.Sink) ResultCode {
	if sink.HasErrors() {
		return CompilationFailed
	}
	return Success
}
