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

import "github.com/go-idlc/idlc/generator"

// Version is the API version embedded into generated artefacts, overriding
// any `version` attribute on the Api declaration itself (spec.md §6.2).
type Version struct {
	Major, Minor, Micro int
}

// ImporterFunc overrides filesystem lookup for a named import at the given
// nesting depth. A false ok means "defer to the next resolution step"
// (spec.md §4.1 step 1); a true ok makes the returned source win outright.
type ImporterFunc func(name string, depth int) (source []byte, ok bool)

// ReleaseImporterFunc is the paired release for sources returned by an
// ImporterFunc, called once the compiler has finished with that source.
type ReleaseImporterFunc func(source []byte)

// Options bundles every knob spec.md §6.2 enumerates. Construct one with
// NewOptions and the With* functions below; the zero Options is not valid
// for direct use (NewOptions fills in the required defaults).
type Options struct {
	DebugMode        bool
	WarningsAsErrors bool
	OutputDir        string
	ImportDirs       []string
	Importer         ImporterFunc
	ReleaseImporter  ReleaseImporterFunc
	Writer           generator.Sink
	Version          *Version
	Additions        generator.Additions
}

// Option configures an Options record, following the teacher's functional-
// option convention (SourceResolver/CompositeResolver construction style).
type Option func(*Options)

// NewOptions builds an Options record with every With* applied in order.
func NewOptions(opts ...Option) *Options {
	o := &Options{Additions: generator.Additions{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithDebugMode(v bool) Option { return func(o *Options) { o.DebugMode = v } }

func WithWarningsAsErrors(v bool) Option { return func(o *Options) { o.WarningsAsErrors = v } }

func WithOutputDir(dir string) Option { return func(o *Options) { o.OutputDir = dir } }

func WithImportDirs(dirs ...string) Option {
	return func(o *Options) { o.ImportDirs = append(o.ImportDirs, dirs...) }
}

// WithImporter installs a client-supplied import callback and its release
// companion. release may be nil only if importer is also nil; a non-nil
// importer paired with a nil release is reported as InvalidArg at
// Compile time (spec.md §6.2a), not here, since With* constructors never
// fail.
func WithImporter(importer ImporterFunc, release ReleaseImporterFunc) Option {
	return func(o *Options) {
		o.Importer = importer
		o.ReleaseImporter = release
	}
}

// WithWriter overrides filesystem writes; every generator output is
// delivered to sink instead of OutputDir.
func WithWriter(sink generator.Sink) Option { return func(o *Options) { o.Writer = sink } }

func WithVersion(major, minor, micro int) Option {
	return func(o *Options) { o.Version = &Version{Major: major, Minor: minor, Micro: micro} }
}

// WithAddition appends one generator-specific key=value directive.
func WithAddition(key, value string) Option {
	return func(o *Options) {
		if o.Additions == nil {
			o.Additions = generator.Additions{}
		}
		o.Additions[key] = value
	}
}

// validate reports InvalidArg when the option combination cannot be acted
// on, per spec.md §6.2a: "never a panic."
func (o *Options) validate() error {
	if o.Importer != nil && o.ReleaseImporter == nil {
		return errInvalidOptions("importer requires a release_importer")
	}
	return nil
}

type invalidOptionsError string

func errInvalidOptions(msg string) error { return invalidOptionsError(msg) }

func (e invalidOptionsError) Error() string { return string(e) }
