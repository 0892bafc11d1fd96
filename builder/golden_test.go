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
	"path/filepath"
	"strings"
	"testing"

	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/builder"
	"github.com/vosper-lang/vosperfmt/config"
	"github.com/vosper-lang/vosperfmt/internal/golden"
)

// goldenFixtures maps a corpus entry's base name to the AST it stands in
// for. A front end's own golden tests would parse testdata/golden/*.vsp
// into these trees directly; since parsing is out of this module's scope
// (spec.md Non-goals), the fixture is pinned here instead, so the corpus
// still exercises the real filesystem-walking, comparison, and diffing
// machinery of package golden against real builder.Format output.
var goldenFixtures = map[string]func() *ast.File{
	"struct_point": func() *ast.File {
		decl := ast.NewTypeDecl(ast.DeclKindStruct)
		decl.Keyword = ast.NewLeaf("struct")
		decl.Name = ast.NewLeaf("Point")
		decl.Body = &ast.Body{
			LBrace: ast.NewLeaf("{"),
			RBrace: ast.NewLeaf("}"),
			Members: []ast.Decl{
				&ast.Var{Keyword: ast.NewLeaf("var"), Name: ast.NewLeaf("x"), Colon: ast.NewLeaf(":"), Type: ident("Int")},
				&ast.Var{Keyword: ast.NewLeaf("var"), Name: ast.NewLeaf("y"), Colon: ast.NewLeaf(":"), Type: ident("Int")},
			},
		}
		return &ast.File{Decls: []ast.Decl{decl}}
	},
	"bare_accessor_wraps": func() *ast.File {
		v := &ast.Var{
			Keyword: ast.NewLeaf("var"), Name: ast.NewLeaf("veryLongPropertyName"), Colon: ast.NewLeaf(":"), Type: ident("Int"),
			Accessor: &ast.AccessorBlock{
				LBrace: ast.NewLeaf("{"),
				Accessors: []ast.Accessor{
					{Keyword: ast.NewLeaf("get")},
					{Keyword: ast.NewLeaf("set")},
				},
				RBrace: ast.NewLeaf("}"),
			},
		}
		return &ast.File{Decls: []ast.Decl{v}}
	},
}

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata/golden",
		Refresh:    "VOSPERFMT_REFRESH",
		Extensions: []string{"vsp"},
		Outputs:    []golden.Output{{Extension: "golden"}},
	}

	corpus.Run(t, func(t *testing.T, path, _ string, outputs []string) {
		name := strings.TrimSuffix(filepath.Base(path), ".vsp")
		build, ok := goldenFixtures[name]
		if !ok {
			t.Fatalf("golden: no fixture registered for %q", name)
		}

		cfg := config.Default()
		if name == "bare_accessor_wraps" {
			cfg.MaxLineLength = 30
		}

		out, err := builder.Format(build(), cfg)
		if err != nil {
			t.Fatalf("golden: Format(%q): %v", name, err)
		}
		outputs[0] = out
	})
}
