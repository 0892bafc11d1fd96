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
	"github.com/vosper-lang/vosperfmt/perr"
	"github.com/vosper-lang/vosperfmt/token"
)

// Scan computes the parallel length array for a token stream, per
// spec.md §4.4. It is the first of the engine's two passes; Print is the
// second.
//
// Scan runs in a single left-to-right pass, using a running total and a
// stack of indices referring to open/break tokens whose lengths cannot
// be finalized until the matching close (or the next break/newline) is
// seen.
func Scan(tokens []token.Token, opts Options) ([]int, error) {
	opts = opts.WithDefaults()

	lengths := make([]int, len(tokens))
	var total int
	var delimIndexStack []int

	top := func() (int, bool) {
		if len(delimIndexStack) == 0 {
			return 0, false
		}
		return delimIndexStack[len(delimIndexStack)-1], true
	}
	pop := func() (int, bool) {
		idx, ok := top()
		if ok {
			delimIndexStack = delimIndexStack[:len(delimIndexStack)-1]
		}
		return idx, ok
	}
	push := func(i int) { delimIndexStack = append(delimIndexStack, i) }

	// finalizeTopBreak finalizes and pops the top of stack if it is a
	// Break, used by Break/Newline/Reset to collapse a pending,
	// never-fired break. Close finalizes its break inline, since it must
	// then also finalize the matching open.
	finalizeTopBreak := func() {
		if idx, ok := top(); ok && tokens[idx].Kind() == token.Break {
			lengths[idx] += total
			pop()
		}
	}

	for i, tok := range tokens {
		switch tok.Kind() {
		case token.Syntax:
			w := columnWidth(tok.Text(), opts.TabWidth)
			lengths[i] = w
			total += w

		case token.Open:
			push(i)
			lengths[i] = -total

		case token.Close:
			idx, ok := pop()
			if !ok {
				return nil, perr.Malformedf("close with no matching open at token %d", i)
			}
			if tokens[idx].Kind() == token.Break {
				lengths[idx] += total
				openIdx, ok := pop()
				if !ok || tokens[openIdx].Kind() != token.Open {
					return nil, perr.Malformedf("break at token %d is not nested in an open", idx)
				}
				lengths[openIdx] += total
			} else if tokens[idx].Kind() == token.Open {
				lengths[idx] += total
			} else {
				return nil, perr.Malformedf("close at token %d does not match an open or break", i)
			}
			lengths[i] = 0

		case token.Break:
			finalizeTopBreak()
			push(i)
			lengths[i] = -total
			total += tok.Size()

		case token.Newline:
			finalizeTopBreak()
			lengths[i] = opts.MaxLineLength
			total += opts.MaxLineLength

		case token.Space:
			lengths[i] = tok.Size()
			total += tok.Size()

		case token.Reset:
			finalizeTopBreak()
			lengths[i] = 0

		case token.Comment:
			w := columnWidth(tok.Text(), opts.TabWidth)
			lengths[i] = w
			total += w

		case token.Verbatim:
			lengths[i] = opts.MaxLineLength
			total += opts.MaxLineLength
		}
	}

	if len(delimIndexStack) != 0 {
		return nil, perr.Malformedf("unbalanced token stream: %d unclosed open/break", len(delimIndexStack))
	}

	return lengths, nil
}
