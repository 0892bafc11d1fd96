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

package builder

import (
	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/config"
	"github.com/vosper-lang/vosperfmt/pretty"
)

// Format builds f's token stream and renders it to text: the composition
// of this package's TokenStreamBuilder with package pretty's Scan+Print
// engine, the whole "AST × Configuration -> String" pipeline of spec.md
// §1.
func Format(f *ast.File, cfg config.Config) (string, error) {
	cfg = cfg.WithDefaults()
	toks := File(f, cfg)
	return pretty.Render(toks, cfg.Options())
}
