// Copyright 2020-2025 Buf Technologies, Inc.
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

package batch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/batch"
	"github.com/vosper-lang/vosperfmt/config"
)

// parseLetDecl treats src as the name of a single "let <name> = 0"
// declaration, avoiding any dependency on a real parser (out of scope).
func parseLetDecl(_ string, src []byte) (*ast.File, error) {
	name := string(src)
	if name == "" {
		return nil, errors.New("empty source")
	}
	v := &ast.Var{
		Keyword: ast.NewLeaf("let"),
		Name:    ast.NewLeaf(name),
		Equals:  ast.NewLeaf("="),
		Value:   &ast.Literal{Token: ast.NewLeaf("0")},
	}
	return &ast.File{Decls: []ast.Decl{v}}, nil
}

func TestFormatFilesPreservesInputOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c", "a", "b"} {
		p := filepath.Join(dir, name+".vp")
		require.NoError(t, os.WriteFile(p, []byte(name), 0o644))
		paths = append(paths, p)
	}

	results, err := batch.FormatFiles(context.Background(), paths, parseLetDecl, config.Default(), 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, p := range paths {
		require.Equal(t, p, results[i].Path)
		require.NoError(t, results[i].Err)
		require.Equal(t, "let "+filepath.Base(p)[:1]+" = 0", results[i].Text)
	}
}

func TestFormatFilesReportsPerFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.vp")
	require.NoError(t, os.WriteFile(good, []byte("good"), 0o644))
	missing := filepath.Join(dir, "missing.vp")

	results, err := batch.FormatFiles(context.Background(), []string{good, missing}, parseLetDecl, config.Default(), 4)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
}

func TestFormatFilesTreatsNonPositiveConcurrencyAsOne(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "a.vp")
	require.NoError(t, os.WriteFile(p, []byte("a"), 0o644))

	results, err := batch.FormatFiles(context.Background(), []string{p}, parseLetDecl, config.Default(), 0)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
}

func TestGlobExpandsDoublestarPattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.vp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.vp"), []byte("y"), 0o644))

	matches, err := batch.Glob(filepath.Join(dir, "**", "*.vp"))
	require.NoError(t, err)
	sort.Strings(matches)
	require.Len(t, matches, 2)
}
