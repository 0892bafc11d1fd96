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

package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/builder"
	"github.com/vosper-lang/vosperfmt/config"
	"github.com/vosper-lang/vosperfmt/pretty"
	"github.com/vosper-lang/vosperfmt/token"
)

func sampleFile() *ast.File {
	decl := ast.NewTypeDecl(ast.DeclKindStruct)
	decl.Keyword = ast.NewLeaf("struct")
	decl.Name = ast.NewLeaf("Point")
	decl.Body = &ast.Body{
		LBrace: ast.NewLeaf("{"),
		RBrace: ast.NewLeaf("}"),
		Members: []ast.Decl{
			&ast.Var{Keyword: ast.NewLeaf("var"), Name: ast.NewLeaf("x"), Colon: ast.NewLeaf(":"), Type: ident("Int")},
		},
	}
	return &ast.File{Decls: []ast.Decl{decl}}
}

// TestBuildFileIsDeterministic pins the TokenStreamBuilder's core
// guarantee: walking the same AST twice yields the identical token
// stream, token for token. A builder that depended on map iteration
// order or any other incidental source of nondeterminism would fail
// this immediately.
func TestBuildFileIsDeterministic(t *testing.T) {
	t.Parallel()

	f := sampleFile()
	cfg := config.Default()

	first, _ := builder.BuildFile(f, cfg)
	second, _ := builder.BuildFile(f, cfg)

	diff := cmp.Diff(first, second, cmp.AllowUnexported(token.Token{}))
	require.Empty(t, diff, "BuildFile should be deterministic: %s", diff)
}

// TestFormatRendersWhatBuildFileProduces checks that builder.Format is
// exactly builder.File piped through pretty.Render, not a diverging
// code path that happens to look similar.
func TestFormatRendersWhatBuildFileProduces(t *testing.T) {
	t.Parallel()

	f := sampleFile()
	cfg := config.Default()

	viaFormat, err := builder.Format(f, cfg)
	require.NoError(t, err)

	toks, _ := builder.BuildFile(f, cfg)
	require.NotEmpty(t, toks)
	viaRender, err := pretty.Render(toks, cfg.Options())
	require.NoError(t, err)
	require.Equal(t, viaFormat, viaRender)
	require.Equal(t, "struct Point {\n  var x: Int\n}", viaFormat)
}
