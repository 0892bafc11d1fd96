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
	"github.com/vosper-lang/vosperfmt/token"
)

// delimitedList emits a bracketed, comma-separated list of n elements the
// way spec.md §4.3's grouping idioms describe: the open bracket, a group
// of the given style offset by one indentation level, a zero-width break
// before the first element and after the last (so the brackets hug their
// content when the whole thing fits on one line), and a Break(1,0) after
// every interior comma.
//
// elem emits element i's own content; commaOf returns element i's
// trailing comma leaf, or nil for the last element.
func (b *Builder) delimitedList(open *ast.Leaf, style token.Style, n int, elem func(i int), commaOf func(i int) *ast.Leaf, close *ast.Leaf) {
	b.leaf(open)
	if n == 0 {
		b.leaf(close)
		return
	}
	off := b.indent
	b.push(token.Open(style, off))
	b.push(token.Break(0, 0))
	for i := 0; i < n; i++ {
		elem(i)
		if c := commaOf(i); c != nil {
			b.leaf(c)
			b.push(token.Break(1, 0))
		}
	}
	b.push(token.Break(0, -off))
	b.push(token.Close())
	b.leaf(close)
}

// bracedBlock emits a "{ ... }" group the way a function, initializer, or
// type body is braced: indented one level, with a forced newline after
// the opening brace and before the closing one so an empty body still
// reads as "{}" but a non-empty one always spans multiple lines. Members
// are separated the same way top-level declarations are, via declList,
// so blank lines between body members are preserved on the same terms as
// blank lines between files' top-level declarations.
func (b *Builder) bracedBlock(open *ast.Leaf, members []ast.Decl, close *ast.Leaf) {
	b.leaf(open)
	if len(members) == 0 {
		b.leaf(close)
		return
	}
	off := b.indent
	b.push(token.Open(token.Consistent, off))
	b.push(token.Newline(1, 0))
	b.declList(members)
	b.push(token.Newline(1, -off))
	b.push(token.Close())
	b.leaf(close)
}
