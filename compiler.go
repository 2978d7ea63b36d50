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

// Package idlc is the compile-job driver: it wires the Source Resolver,
// Parser, Symbol Table, and Semantic Passes into the single Compile entry
// point spec.md §6.3 describes, plus the additive batch driver CompileAll
// (§5 expansion) that runs independent jobs under a bounded worker pool.
package idlc

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/go-idlc/idlc/ast"
	"github.com/go-idlc/idlc/diag"
	"github.com/go-idlc/idlc/generator"
	"github.com/go-idlc/idlc/parser"
	"github.com/go-idlc/idlc/sema"
	"github.com/go-idlc/idlc/symtab"
)

// Job is a single compile invocation's inputs: the root file path (or an
// inline source, for callers that never touch the filesystem), the
// selected Generator, and its Options. Either RootFile or InlineSources[""]
// (the root's canonical key) must be set.
type Job struct {
	RootFile      string
	InlineSources map[string][]byte
	Generator     string
	Options       *Options
}

// logEntry builds the component-scoped logger spec.md §7a describes:
// silent unless DebugMode is set, at which point it raises to DebugLevel
// and writes a text-formatted trace to stderr.
func logEntry(o *Options) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(logrus.PanicLevel)
	if o.DebugMode {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("component", "idlc")
}

// Compile runs one compile job end to end: parse, resolve symbols, run the
// semantic passes, and — if a Generator is selected and the result carries
// no errors — emit its output. It never panics on malformed input; every
// error from stratum 1 and 2 of spec.md §7 is returned via the ResultCode
// or CompileResult respectively.
func Compile(job Job) (CompileResult, ResultCode) {
	opts := job.Options
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.validate(); err != nil {
		return CompileResult{Code: InvalidArg}, InvalidArg
	}

	log := logEntry(opts)
	sink := diag.NewSink(opts.WarningsAsErrors)
	h := diag.NewHandler(sink)

	rootFile := job.RootFile
	baseDir := filepath.Dir(rootFile)
	if rootFile == "" {
		baseDir = "."
	}

	var src []byte
	if job.InlineSources != nil {
		if s, ok := job.InlineSources[CanonicalKey(rootFile)]; ok {
			src = s
		}
	}
	if src == nil {
		if rootFile == "" {
			return CompileResult{Code: InvalidArg}, InvalidArg
		}
		b, err := os.ReadFile(rootFile)
		if err != nil {
			log.WithError(err).Debug("failed to read root file")
			_ = h.HandleErrorf(diag.Position{File: rootFile}, diag.E2041, rootFile)
			return resultFromSink(sink), CompilationFailed
		}
		src = b
	}

	resolver := newSourceResolver(baseDir, opts.ImportDirs, job.InlineSources, opts.Importer, opts.ReleaseImporter)
	defer resolver.Close()

	ctx := ast.NewContext()
	log.Debug("parsing root file")
	p := parser.New(ctx, h, resolver)
	api, err := p.ParseRoot(rootFile, src)
	if err != nil && !errors.Is(err, diag.ErrInvalidSource) {
		return CompileResult{Code: UnknownError}, UnknownError
	}
	if api == nil {
		return resultFromSink(sink), codeForSink(sink)
	}

	if err := runSymbolsAndSema(api, h, log); err != nil && !errors.Is(err, diag.ErrInvalidSource) {
		return CompileResult{Code: UnknownError}, UnknownError
	}

	result := resultFromSink(sink)
	if result.HasErrors {
		return result, CompilationFailed
	}

	if job.Generator != "" {
		if err := generate(api, job.Generator, opts); err != nil {
			if errors.Is(err, errUnsupportedGenerator) {
				return result, NotSupported
			}
			return result, FileCreate
		}
	}
	return result, result.Code
}

func runSymbolsAndSema(api *ast.Api, h *diag.Handler, log *logrus.Entry) error {
	log.Debug("building symbol table")
	t := symtab.New()
	if err := symtab.Insert(t, api, h); err != nil {
		return err
	}
	if err := symtab.Resolve(t, api, h); err != nil {
		return err
	}
	log.Debug("running semantic passes")
	return sema.Run(api, t, h)
}

var errUnsupportedGenerator = errors.New("idlc: no such generator")

func generate(api *ast.Api, name string, opts *Options) error {
	g, ok := generator.Lookup(name)
	if !ok {
		return errUnsupportedGenerator
	}
	sink := opts.Writer
	if sink == nil {
		dir := opts.OutputDir
		if dir == "" {
			dir = "."
		}
		sink = dirSink(dir)
	}
	return g.Generate(api, sink, opts.Additions)
}

// dirSink adapts a plain output directory into a generator.Sink, creating
// it lazily so a generator that writes nothing never touches the
// filesystem.
type dirSink string

func (d dirSink) Write(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(string(d), name))
}

// CompileAll runs every job concurrently under a worker pool bounded by
// maxParallelism (non-positive picks min(NumCPU, GOMAXPROCS), matching the
// teacher's Compiler.MaxParallelism convention), one Context arena per
// job. Results are returned in the same order as jobs; a job whose own
// context is canceled does not cancel its siblings.
func CompileAll(ctx context.Context, maxParallelism int, jobs []Job) ([]CompileResult, []ResultCode) {
	results := make([]CompileResult, len(jobs))
	codes := make([]ResultCode, len(jobs))
	if len(jobs) == 0 {
		return results, codes
	}

	par := maxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	sem := semaphore.NewWeighted(int64(par))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			results[i], codes[i] = Compile(job)
			return nil
		})
	}
	_ = g.Wait()
	return results, codes
}
