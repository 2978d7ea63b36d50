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

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-idlc/idlc/diag"
)

// sourceResolver implements spec.md §4.1's fixed four-step resolution
// order, mirroring the teacher's SourceResolver (an optional ImportPaths
// list searched in order, falling back to the filesystem) but adding the
// importer-callback and inline-sources steps the teacher's Resolver
// doesn't need.
type sourceResolver struct {
	baseDir         string
	importDirs      []string
	inline          map[string][]byte
	importer        ImporterFunc
	releaseImporter ReleaseImporterFunc

	// released accumulates sources vended by importer so Close can release
	// them all at job teardown, in case a given import is never retired
	// mid-parse (e.g. parsing fails first).
	released [][]byte
}

func newSourceResolver(baseDir string, importDirs []string, inline map[string][]byte, importer ImporterFunc, release ReleaseImporterFunc) *sourceResolver {
	return &sourceResolver{
		baseDir:         baseDir,
		importDirs:      importDirs,
		inline:          inline,
		importer:        importer,
		releaseImporter: release,
	}
}

// Resolve implements parser.ImportResolver.
func (r *sourceResolver) Resolve(name, _ string, depth int) (src []byte, canonicalKey, resolvedFile string, err error) {
	if filepath.IsAbs(name) {
		return nil, "", "", diag.ErrAbsoluteImport
	}

	// Step 1: client-supplied importer callback.
	if r.importer != nil {
		if source, ok := r.importer(name, depth); ok {
			r.released = append(r.released, source)
			key := CanonicalKey(name)
			return source, key, name, nil
		}
	}

	// Step 2: inline sources list, matched by normalised name.
	if source, ok := r.inline[CanonicalKey(name)]; ok {
		return source, CanonicalKey(name), name, nil
	}

	// Step 3: configured import directories, then the base path, each with
	// a case-insensitive scan and progressive dot-to-separator rewriting.
	dirs := append(append([]string{}, r.importDirs...), r.baseDir)
	rel := name
	if !strings.HasSuffix(rel, ".idl") {
		rel += ".idl"
	}
	candidates := dotRewrites(rel)

	var lastErr error
	for _, dir := range dirs {
		for _, candidate := range candidates {
			resolved, err := findCaseInsensitive(dir, candidate)
			if err != nil {
				lastErr = err
				continue
			}
			relToBase, err := filepath.Rel(r.baseDir, resolved)
			if err != nil {
				return nil, "", "", err
			}
			if strings.HasPrefix(filepath.ToSlash(relToBase), "../") {
				return nil, "", "", diag.ErrImportEscapesDirs
			}
			source, err := os.ReadFile(resolved)
			if err != nil {
				lastErr = err
				continue
			}
			return source, canonicalKeyFromPaths(r.baseDir, resolved), resolved, nil
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("idlc: cannot resolve import %q", name)
	}
	return nil, "", "", lastErr
}

// Close releases every source vended by the importer callback during this
// job, per spec.md §4.1 step 1: "the companion release callback must be
// called when the source is retired."
func (r *sourceResolver) Close() {
	if r.releaseImporter == nil {
		return
	}
	for _, src := range r.released {
		r.releaseImporter(src)
	}
	r.released = nil
}

// dotRewrites produces progressively-rewritten candidates for a logical
// import name, so that `foo.bar` first tries `foo.bar` and then
// `foo/bar.idl`, per spec.md §4.1 step 3.
func dotRewrites(name string) []string {
	out := []string{name}
	base := strings.TrimSuffix(name, ".idl")
	if !strings.Contains(base, ".") {
		return out
	}
	rewritten := strings.ReplaceAll(base, ".", string(filepath.Separator)) + ".idl"
	return append(out, rewritten)
}

// findCaseInsensitive resolves candidate against dir, tolerating a
// case-sensitive filesystem by scanning dir's entries when an exact match
// misses.
func findCaseInsensitive(dir, candidate string) (string, error) {
	full := filepath.Join(dir, candidate)
	if _, err := os.Stat(full); err == nil {
		return full, nil
	}

	segments := strings.Split(filepath.ToSlash(candidate), "/")
	current := dir
	for _, seg := range segments {
		entries, err := os.ReadDir(current)
		if err != nil {
			return "", err
		}
		found := ""
		for _, e := range entries {
			if strings.EqualFold(e.Name(), seg) {
				found = e.Name()
				break
			}
		}
		if found == "" {
			return "", fmt.Errorf("idlc: %q not found under %s", seg, current)
		}
		current = filepath.Join(current, found)
	}
	return current, nil
}

// CanonicalKey normalises name to the deduplication key spec.md §3's
// GLOSSARY defines: lowercase, forward-slash, `.idl`-suffix-stripped.
func CanonicalKey(name string) string {
	key := filepath.ToSlash(name)
	key = strings.ToLower(key)
	key = strings.TrimSuffix(key, ".idl")
	return key
}

// canonicalKeyFromPaths derives the canonical key for resolved, made
// relative to base first (spec.md §4.1: "the resolved path made relative
// to the base path").
func canonicalKeyFromPaths(base, resolved string) string {
	rel, err := filepath.Rel(base, resolved)
	if err != nil {
		rel = resolved
	}
	return CanonicalKey(rel)
}
