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
	"github.com/tidwall/btree"

	"github.com/vosper-lang/vosperfmt/ast"
)

// LeafIndex is a byte-offset-ordered index of a file's leaves, built
// once as Builder walks the tree. A front end that tracks source byte
// offsets (to resolve a diagnostic's position, or answer an LSP-style
// "what's at this offset" query) uses it to map a position back to the
// leaf it falls in, without re-walking the tree it was built from.
//
// Only leaves with a non-zero ast.Leaf.Pos are recorded; a front end
// that doesn't track positions leaves every Pos at its zero value, and
// LeafIndex ends up empty, which is harmless.
type LeafIndex struct {
	tree btree.Map[int, *ast.Leaf]
}

func (ix *LeafIndex) record(leaf *ast.Leaf) {
	if leaf == nil || leaf.Pos == 0 {
		return
	}
	ix.tree.Set(leaf.Pos, leaf)
}

// At returns the leaf recorded at exactly pos, if any.
func (ix *LeafIndex) At(pos int) (*ast.Leaf, bool) {
	return ix.tree.Get(pos)
}

// Before returns the leaf at the greatest recorded position <= pos: the
// leaf that a byte offset inside its own text, or inside trivia
// following it, belongs to.
func (ix *LeafIndex) Before(pos int) (*ast.Leaf, bool) {
	it := ix.tree.Iter()
	if !it.Seek(pos) {
		if !it.Last() {
			return nil, false
		}
		return it.Value(), true
	}
	if it.Key() == pos {
		return it.Value(), true
	}
	if !it.Prev() {
		return nil, false
	}
	return it.Value(), true
}

// Len reports how many positioned leaves the index holds.
func (ix *LeafIndex) Len() int { return ix.tree.Len() }
