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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vosper-lang/vosperfmt/config"
	"github.com/vosper-lang/vosperfmt/indent"
)

func TestWithDefaultsFillsZeroFields(t *testing.T) {
	t.Parallel()

	c := config.Config{MaxLineLength: 120}.WithDefaults()
	require.Equal(t, 120, c.MaxLineLength)
	require.Equal(t, "spaces", c.IndentKind)
	require.Equal(t, 2, c.IndentCount)
	require.Equal(t, 4, c.TabWidth)
}

func TestLoadParsesYAML(t *testing.T) {
	t.Parallel()

	c, err := config.Load([]byte(`
maxLineLength: 80
indentKind: tabs
indentCount: 1
respectsExistingLineBreaks: true
`))
	require.NoError(t, err)
	require.Equal(t, 80, c.MaxLineLength)
	require.Equal(t, "tabs", c.IndentKind)
	require.Equal(t, 1, c.IndentCount)
	require.True(t, c.RespectsExistingLineBreaks)
	// TabWidth was left unset in the document, so WithDefaults filled it.
	require.Equal(t, 4, c.TabWidth)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load([]byte("maxLineLength: [this is not an int"))
	require.Error(t, err)
}

func TestOptionsConvertsIndentKind(t *testing.T) {
	t.Parallel()

	c := config.Config{IndentKind: "tabs", IndentCount: 1}
	opts := c.Options()
	require.Equal(t, indent.Tabs, opts.Indent.Kind)
	require.Equal(t, 1, opts.Indent.Count)
}

func TestIndentUnitMatchesOptions(t *testing.T) {
	t.Parallel()

	c := config.Default()
	require.Equal(t, c.Options().Indent, c.IndentUnit())
}
