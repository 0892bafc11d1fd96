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

// Package builder is the TokenStreamBuilder of spec.md §4.3: it walks an
// *ast.File depth-first and emits the []token.Token stream package
// pretty's Scan+Print engine consumes.
//
// Builder.Before and Builder.After register decorations (tokens that
// belong immediately before or after a particular AST leaf) in two
// leaf-keyed registries, which emit flushes around that leaf's own syntax
// token. The emitters in this package do not register anything there:
// they push their structural tokens (open/close, breaks, spaces,
// newlines) straight into the output stream in traversal order, so the
// registries stay empty during a File or BuildFile walk.
package builder

import (
	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/config"
	"github.com/vosper-lang/vosperfmt/token"
)

// Builder accumulates a token stream for one file.
type Builder struct {
	cfg    config.Config
	indent int // columns contributed by one indentation level

	before map[*ast.Leaf][]token.Token
	after  map[*ast.Leaf][]token.Token

	out   []token.Token
	index LeafIndex
}

// New returns a Builder configured to honor cfg's formatting options.
func New(cfg config.Config) *Builder {
	cfg = cfg.WithDefaults()
	return &Builder{
		cfg:    cfg,
		indent: cfg.IndentUnit().Columns(cfg.Options().TabWidth),
		before: make(map[*ast.Leaf][]token.Token),
		after:  make(map[*ast.Leaf][]token.Token),
	}
}

// Before registers tokens to be emitted immediately before leaf's own
// syntax token. Attaching to a nil leaf (an absent optional child) is a
// no-op, per the traversal contract.
func (b *Builder) Before(leaf *ast.Leaf, toks ...token.Token) {
	if leaf == nil || len(toks) == 0 {
		return
	}
	b.before[leaf] = append(b.before[leaf], toks...)
}

// After registers tokens to be emitted immediately after leaf's own
// syntax token, in registration order. Whenever two decorating visitors
// both register After tokens for the same leaf (a shared closing
// delimiter), the outer visitor's tokens must be registered first so
// they are flushed first — callers arrange this simply by registering
// their own After tokens before recursing into children that might also
// decorate the same leaf.
func (b *Builder) After(leaf *ast.Leaf, toks ...token.Token) {
	if leaf == nil || len(toks) == 0 {
		return
	}
	b.after[leaf] = append(b.after[leaf], toks...)
}

// push appends tokens directly to the output stream; used for structural
// tokens (open/close, breaks, spaces) that are not attached to a
// specific leaf.
func (b *Builder) push(toks ...token.Token) {
	b.out = append(b.out, toks...)
}

// Tokens returns the accumulated token stream. It is only meaningful
// after the whole tree has been walked.
func (b *Builder) Tokens() []token.Token { return b.out }

// Index returns the position index built up over the course of the
// walk. It is only meaningful after the whole tree has been walked.
func (b *Builder) Index() *LeafIndex { return &b.index }

// emit performs the leaf emission procedure of spec.md §4.3: it
// processes leading trivia (end-of-line comment reattachment, blank
// runs, ordinary comments), flushes Before decorations, emits the leaf's
// own syntax token, and flushes After decorations.
//
// gap, when non-nil, is a declaration list's already-decided separating
// newline (see declList). It is inserted after any end-of-line comment
// this leaf's own trivia carries for the *previous* leaf, but before
// everything else — in particular before a leading blank run, which gap
// already accounts for and which is therefore skipped here rather than
// re-emitted.
func (b *Builder) emit(leaf *ast.Leaf, gap *token.Token) {
	if leaf == nil {
		return
	}

	trivia := leaf.Leading
	i := 0
	if len(trivia) > 0 && trivia[0].Kind == ast.TriviaComment && trivia[0].NewlineCount == 0 {
		// This is the end-of-line comment for the *previous* leaf: it
		// belongs right where we are now, before anything of our own,
		// including the gap newline above.
		b.push(token.Space(1))
		b.pushComment(trivia[0])
		i++
	}
	if gap != nil {
		b.push(*gap)
		if i < len(trivia) && trivia[i].Kind == ast.TriviaBlankRun {
			i++
		}
	}
	for ; i < len(trivia); i++ {
		t := trivia[i]
		switch t.Kind {
		case ast.TriviaBlankRun:
			if b.cfg.RespectsExistingLineBreaks && t.NewlineCount >= 2 {
				b.push(token.Newline(2, 0))
			}
		case ast.TriviaComment:
			b.pushComment(t)
			b.push(token.Newline(1, 0))
		}
	}

	b.push(b.before[leaf]...)
	b.push(token.Syntax(leaf.Text))
	b.index.record(leaf)
	b.push(b.after[leaf]...)
}

// leaf is shorthand for the common case of emit with no pending gap.
func (b *Builder) leaf(l *ast.Leaf) { b.emit(l, nil) }

// emitLeafMaybe emits l, consuming *gap if it is still set: a
// declaration's per-kind printer calls this for every leaf it emits, in
// source order, without needing to know in advance which one is
// syntactically first (an attribute, a modifier, or the bare keyword) —
// whichever leaf this function is called with first is the one that
// gets the declaration list's pending separator.
func (b *Builder) emitLeafMaybe(l *ast.Leaf, gap **token.Token) {
	if l == nil {
		if *gap != nil {
			b.push(**gap)
			*gap = nil
		}
		return
	}
	if *gap != nil {
		g := *gap
		*gap = nil
		b.emit(l, g)
		return
	}
	b.leaf(l)
}

func (b *Builder) pushComment(t ast.Trivia) {
	b.push(token.NewComment(commentKind(t.CommentKind), t.Text))
}

func commentKind(k ast.CommentKind) token.CommentKind {
	switch k {
	case ast.DocLine:
		return token.DocLine
	case ast.Block:
		return token.Block
	case ast.DocBlock:
		return token.DocBlock
	default:
		return token.Line
	}
}
