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

	"github.com/vosper-lang/vosperfmt/token"
)

// writeComment emits a comment token per spec.md §4.7. Line, Block, and
// DocBlock comments are written exactly as authored; DocLine comments
// have each continuation line re-indented to the current indentation.
func (p *printer) writeComment(tok token.Token) {
	text := tok.Text()
	if tok.CommentKind() != token.DocLine || !strings.Contains(text, "\n") {
		p.out.WriteString(text)
		p.afterMultiline(text)
		return
	}

	lines := strings.Split(text, "\n")
	p.out.WriteString(lines[0])
	indent := p.indentStack.Render()
	for _, line := range lines[1:] {
		p.out.WriteByte('\n')
		p.out.WriteString(indent)
		p.out.WriteString(strings.TrimLeft(line, " \t"))
	}
	p.afterMultiline(text)
}

// writeVerbatim emits text unchanged except for leading indentation
// adjustment, per spec.md §4.5: the first line is aligned to the current
// indentation, and each subsequent line keeps its indentation relative
// to the first line, except that lines shallower than the first are
// raised to match it.
func (p *printer) writeVerbatim(text string) {
	lines := strings.Split(text, "\n")
	indent := p.indentStack.Render()

	first := strings.TrimLeft(lines[0], " \t")
	baseLen := len(lines[0]) - len(first)
	p.out.WriteString(indent)
	p.out.WriteString(first)

	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		lineIndentLen := len(line) - len(trimmed)
		extra := lineIndentLen - baseLen
		if extra < 0 {
			extra = 0
		}
		p.out.WriteByte('\n')
		p.out.WriteString(indent)
		p.out.WriteString(strings.Repeat(" ", extra))
		p.out.WriteString(trimmed)
	}
	p.afterMultiline(text)
}

// afterMultiline updates remaining after writing text that may contain
// embedded newlines: the relevant column budget is whatever is left on
// the text's last physical line.
func (p *printer) afterMultiline(text string) {
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		p.remaining = p.opts.MaxLineLength - columnWidth(text[idx+1:], p.opts.TabWidth)
		return
	}
	p.remaining -= columnWidth(text, p.opts.TabWidth)
}
