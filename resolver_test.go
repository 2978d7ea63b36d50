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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-idlc/idlc/diag"
)

func TestCanonicalKeyNormalisesCaseSlashAndSuffix(t *testing.T) {
	require.Equal(t, "foo/bar", CanonicalKey("Foo/Bar.idl"))
	require.Equal(t, "colors", CanonicalKey("Colors.idl"))
	require.Equal(t, "colors", CanonicalKey("colors"))
}

func TestDotRewritesAddsSeparatorCandidate(t *testing.T) {
	out := dotRewrites("foo.bar.idl")
	require.Contains(t, out, "foo.bar.idl")
	require.Contains(t, out, filepath.Join("foo", "bar.idl"))
}

func TestDotRewritesLeavesPlainNameAlone(t *testing.T) {
	out := dotRewrites("colors.idl")
	require.Equal(t, []string{"colors.idl"}, out)
}

func TestResolverStepOneImporterCallbackWins(t *testing.T) {
	called := false
	importer := func(name string, depth int) ([]byte, bool) {
		if name == "colors.idl" {
			return []byte("enum Color {\n\tRed\n}\n"), true
		}
		return nil, false
	}
	release := func(src []byte) { called = true }

	r := newSourceResolver(t.TempDir(), nil, nil, importer, release)
	src, key, resolved, err := r.Resolve("colors.idl", "", 0)
	require.NoError(t, err)
	require.Equal(t, "colors", key)
	require.Equal(t, "colors.idl", resolved)
	require.Contains(t, string(src), "enum Color")

	r.Close()
	require.True(t, called)
}

func TestResolverStepTwoInlineSourcesMatchedByCanonicalKey(t *testing.T) {
	inline := map[string][]byte{
		"colors": []byte("enum Color {\n\tRed\n}\n"),
	}
	r := newSourceResolver(t.TempDir(), nil, inline, nil, nil)
	src, key, _, err := r.Resolve("Colors.idl", "", 0)
	require.NoError(t, err)
	require.Equal(t, "colors", key)
	require.Contains(t, string(src), "enum Color")
}

func TestResolverStepThreeFilesystemCaseInsensitiveScan(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Shapes")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Colors.idl"), []byte("enum Color {\n\tRed\n}\n"), 0o644))

	r := newSourceResolver(dir, nil, nil, nil, nil)
	src, _, resolved, err := r.Resolve("shapes.colors", "", 0)
	require.NoError(t, err)
	require.Contains(t, string(src), "enum Color")
	require.Equal(t, filepath.Join(sub, "Colors.idl"), resolved)
}

func TestResolverImportEscapingBaseDirIsRejected(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "project")
	outside := filepath.Join(dir, "outside.idl")
	require.NoError(t, os.MkdirAll(base, 0o755))
	require.NoError(t, os.WriteFile(outside, []byte("enum Color {\n\tRed\n}\n"), 0o644))

	r := newSourceResolver(base, nil, nil, nil, nil)
	_, _, _, err := r.Resolve("../outside.idl", "", 0)
	require.ErrorIs(t, err, diag.ErrImportEscapesDirs)
}

func TestResolverAbsoluteImportIsRejected(t *testing.T) {
	r := newSourceResolver(t.TempDir(), nil, nil, nil, nil)
	_, _, _, err := r.Resolve(string(filepath.Separator)+"etc/colors.idl", "", 0)
	require.ErrorIs(t, err, diag.ErrAbsoluteImport)
}

func TestResolverImportDirsSearchedBeforeBaseDir(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "vendor")
	base := filepath.Join(dir, "project")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.MkdirAll(base, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "colors.idl"), []byte("enum Color {\n\tRed\n}\n"), 0o644))

	r := newSourceResolver(base, []string{importDir}, nil, nil, nil)
	src, _, _, err := r.Resolve("colors.idl", "", 0)
	require.NoError(t, err)
	require.Contains(t, string(src), "enum Color")
}
