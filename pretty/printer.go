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

package pretty

import (
	"strings"

	"github.com/vosper-lang/vosperfmt/indent"
	"github.com/vosper-lang/vosperfmt/perr"
	"github.com/vosper-lang/vosperfmt/token"
)

// groupFrame is the live state of one open (but not yet closed) group.
type groupFrame struct {
	style token.Style
	// cumulativeOffset is the indentation baseline that this group's
	// breaks add their own Offset to: the indentation column in effect
	// when this group opened (the top of indentStack, which already
	// includes the offset of the most recently fired break) plus this
	// group's own Open offset. When no break has fired inside the parent
	// group, that column is not parent.cumulativeOffset but whatever an
	// outer group's last fired break left on the stack.
	cumulativeOffset int
	// broken latches to true the first time any break fires inside a
	// consistent group; once true, every further break in the group
	// fires unconditionally (the "consistency rule", spec.md §8.6).
	broken bool
	// indentDepth is indentStack.Depth() at the moment this group
	// opened, so Close can pop every frame pushed by breaks fired
	// inside it (the "indent pop policy", spec.md §4.5).
	indentDepth int
}

type pending struct {
	size, offset int
}

// printer holds the state the second pass of the engine mutates as it
// walks a scanned token stream: remaining columns, the live indentation
// and group stacks, and a single slot for a break waiting to see whether
// it will be collapsed into plain spaces.
type printer struct {
	opts Options

	out strings.Builder

	remaining   int
	indentStack *indent.Stack
	groupStack  []groupFrame
	pend        *pending
}

// Print consumes a token stream and its Scan-computed lengths and emits
// the formatted text, per spec.md §4.5.
func Print(tokens []token.Token, lengths []int, opts Options) (string, error) {
	if len(tokens) != len(lengths) {
		return "", perr.Malformedf("token/length slice length mismatch: %d vs %d", len(tokens), len(lengths))
	}
	opts = opts.WithDefaults()

	p := &printer{
		opts:        opts,
		remaining:   opts.MaxLineLength,
		indentStack: indent.NewStack(opts.Indent.Kind, opts.TabWidth),
	}

	for i, tok := range tokens {
		switch tok.Kind() {
		case token.Syntax:
			p.flush()
			p.out.WriteString(tok.Text())
			p.remaining -= columnWidth(tok.Text(), opts.TabWidth)

		case token.Space:
			p.flush()
			p.out.WriteString(strings.Repeat(" ", tok.Size()))
			p.remaining -= tok.Size()

		case token.Open:
			p.flush()
			fits := lengths[i] <= p.remaining
			frame := groupFrame{
				style:            tok.Style(),
				cumulativeOffset: p.indentStack.Columns() + tok.Offset(),
				indentDepth:      p.indentStack.Depth(),
			}
			if tok.Style() == token.Consistent && !fits {
				frame.broken = true
			}
			p.groupStack = append(p.groupStack, frame)

		case token.Close:
			p.flush()
			if len(p.groupStack) == 0 {
				return "", perr.Malformedf("close with no matching open at token %d", i)
			}
			top := p.groupStack[len(p.groupStack)-1]
			p.groupStack = p.groupStack[:len(p.groupStack)-1]
			p.indentStack.Truncate(top.indentDepth)

		case token.Break:
			p.doBreak(tok, lengths[i])

		case token.Newline:
			p.flush()
			for range tok.Size() - 1 {
				p.out.WriteByte('\n')
			}
			p.out.WriteByte('\n')
			p.fireIndent(tok.Offset())
			p.latchEnclosing()

		case token.Reset:
			p.pend = nil

		case token.Comment:
			p.flush()
			p.writeComment(tok)

		case token.Verbatim:
			p.flush()
			p.writeVerbatim(tok.Text())
		}
	}

	if len(p.groupStack) != 0 {
		return "", perr.Malformedf("unbalanced token stream: %d unclosed open", len(p.groupStack))
	}

	return p.out.String(), nil
}

// flush commits a buffered pending break to plain whitespace, since some
// non-break token followed it without the break ever firing.
func (p *printer) flush() {
	if p.pend == nil {
		return
	}
	n := p.pend.size
	p.pend = nil
	if n > 0 {
		p.out.WriteString(strings.Repeat(" ", n))
		p.remaining -= n
	}
}

// enclosing returns the innermost live group, or the implicit top-level
// group, which is always considered broken (matching the printer's
// topmost scope, which is never laid out flat).
func (p *printer) enclosing() groupFrame {
	if len(p.groupStack) == 0 {
		return groupFrame{style: token.Consistent, broken: true}
	}
	return p.groupStack[len(p.groupStack)-1]
}

func (p *printer) doBreak(tok token.Token, length int) {
	group := p.enclosing()
	fire := (group.style == token.Consistent && group.broken) || length > p.remaining
	if !fire {
		p.pend = &pending{size: tok.Size(), offset: tok.Offset()}
		return
	}
	// This break supersedes whatever break was previously deferred;
	// its spaces are never emitted.
	p.pend = nil
	p.out.WriteByte('\n')
	p.fireIndent(tok.Offset())
	p.latchEnclosing()
}

// fireIndent applies offset on top of the enclosing group's cumulative
// offset, renders the resulting indentation, and resets remaining.
//
// A frame is pushed only when the resulting column differs from the
// current top of stack, so runs of same-depth breaks (the common case: blank lines between declarations,
// successive statements) don't grow the indent stack once per break.
func (p *printer) fireIndent(offset int) {
	base := p.enclosing().cumulativeOffset
	total := base + offset
	if total != p.indentStack.Columns() {
		p.indentStack.Push(total)
	}
	p.out.WriteString(p.indentStack.Render())
	p.remaining = p.opts.MaxLineLength - p.indentStack.Columns()
}

// latchEnclosing marks the innermost live consistent group as broken, so
// that every further break within it fires (spec.md §8.6).
func (p *printer) latchEnclosing() {
	if len(p.groupStack) == 0 {
		return
	}
	top := &p.groupStack[len(p.groupStack)-1]
	if top.style == token.Consistent {
		top.broken = true
	}
}
