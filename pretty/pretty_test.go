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

package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vosper-lang/vosperfmt/indent"
	"github.com/vosper-lang/vosperfmt/pretty"
	"github.com/vosper-lang/vosperfmt/token"
)

func opts(width int) pretty.Options {
	return pretty.Options{
		MaxLineLength: width,
		Indent:        indent.Unit{Kind: indent.Spaces, Count: 2},
		TabWidth:      4,
	}.WithDefaults()
}

// list builds the common "name(a, b, c)" shape: an inconsistent group
// with a zero-width break at each end and a Break(1,0) after each comma.
func list(elems ...string) []token.Token {
	toks := []token.Token{
		token.Syntax("foo"),
		token.Syntax("("),
		token.Open(token.Inconsistent, 2),
		token.Break(0, 0),
	}
	for i, e := range elems {
		if i > 0 {
			toks = append(toks, token.Syntax(","), token.Break(1, 0))
		}
		toks = append(toks, token.Syntax(e))
	}
	toks = append(toks, token.Break(0, -2), token.Close(), token.Syntax(")"))
	return toks
}

func TestRenderFitsOnOneLine(t *testing.T) {
	t.Parallel()

	out, err := pretty.Render(list("a", "b", "c"), opts(80))
	require.NoError(t, err)
	require.Equal(t, "foo(a, b, c)", out)
}

func TestRenderWrapsWhenTooNarrow(t *testing.T) {
	t.Parallel()

	out, err := pretty.Render(list("aaaa", "bbbb", "cccc"), opts(10))
	require.NoError(t, err)
	require.Equal(t, "foo(\n  aaaa,\n  bbbb,\n  cccc\n)", out)
}

func TestConsistentGroupBreaksAllOrNothing(t *testing.T) {
	t.Parallel()

	toks := []token.Token{
		token.Syntax("foo"),
		token.Syntax("("),
		token.Open(token.Consistent, 2),
		token.Break(0, 0),
		token.Syntax("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		token.Syntax(","),
		token.Break(1, 0),
		token.Syntax("b"),
		token.Break(0, -2),
		token.Close(),
		token.Syntax(")"),
	}
	out, err := pretty.Render(toks, opts(20))
	require.NoError(t, err)
	require.Equal(t, "foo(\n  aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa,\n  b\n)", out)
}

func TestNewlineForcesLineBreak(t *testing.T) {
	t.Parallel()

	toks := []token.Token{
		token.Syntax("a"),
		token.Newline(1, 0),
		token.Syntax("b"),
	}
	out, err := pretty.Render(toks, opts(80))
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestResetCancelsPendingBreak(t *testing.T) {
	t.Parallel()

	// The break sits inside a group that fits, so it stays pending rather
	// than firing the way a break in the always-broken top level does.
	toks := []token.Token{
		token.Open(token.Inconsistent, 0),
		token.Syntax("a"),
		token.Break(1, 0),
		token.Reset(),
		token.Syntax("b"),
		token.Close(),
	}
	out, err := pretty.Render(toks, opts(80))
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestUnbalancedCloseIsAnError(t *testing.T) {
	t.Parallel()

	_, err := pretty.Render([]token.Token{token.Close()}, opts(80))
	require.Error(t, err)
}

func TestDiffReportsMismatch(t *testing.T) {
	t.Parallel()

	d, err := pretty.Diff("a\nb\n", "a\nc\n")
	require.NoError(t, err)
	require.NotEmpty(t, d)

	d, err = pretty.Diff("same", "same")
	require.NoError(t, err)
	require.Empty(t, d)
}
