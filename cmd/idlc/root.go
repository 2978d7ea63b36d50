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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-idlc/idlc"
	_ "github.com/go-idlc/idlc/generator" // registers the "c" and "js" emitters via init()
)

// compileFailedError marks a compile job that produced a CompileResult with
// diagnostics already printed to stderr, so main doesn't print it again.
type compileFailedError struct{ code idlc.ResultCode }

func (e *compileFailedError) Error() string { return e.code.String() }

var flags struct {
	generator        string
	output           string
	imports          []string
	additions        []string
	warningsAsErrors bool
	apiver           string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "idlc <file.idl>",
		Short:         "Compile an IDL source file into generated bindings",
		Args:          cobra.ExactArgs(1),
		RunE:          runCompile,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().StringVar(&flags.generator, "generator", "c", "target generator: c or js")
	cmd.Flags().StringVar(&flags.output, "output", ".", "output directory for generated files")
	cmd.Flags().StringSliceVar(&flags.imports, "imports", nil, "import search directory (repeatable)")
	cmd.Flags().StringSliceVar(&flags.additions, "additions", nil, "generator-specific key=value directive (repeatable)")
	cmd.Flags().BoolVar(&flags.warningsAsErrors, "warnings", false, "promote warnings to errors")
	cmd.Flags().StringVar(&flags.apiver, "apiver", "", "API version as MAJOR.MINOR.MICRO")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	opts := []idlc.Option{
		idlc.WithOutputDir(flags.output),
		idlc.WithWarningsAsErrors(flags.warningsAsErrors),
		idlc.WithImportDirs(flags.imports...),
	}
	for _, kv := range flags.additions {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--additions %q is not in key=value form", kv)
		}
		opts = append(opts, idlc.WithAddition(k, v))
	}
	if flags.apiver != "" {
		major, minor, micro, err := parseVersion(flags.apiver)
		if err != nil {
			return err
		}
		opts = append(opts, idlc.WithVersion(major, minor, micro))
	}

	result, code := idlc.Compile(idlc.Job{
		RootFile:  args[0],
		Generator: flags.generator,
		Options:   idlc.NewOptions(opts...),
	})

	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if code != idlc.Success {
		return &compileFailedError{code: code}
	}
	return nil
}

func parseVersion(s string) (major, minor, micro int, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("--apiver %q must be MAJOR.MINOR.MICRO", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("--apiver %q must be MAJOR.MINOR.MICRO: %w", s, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
