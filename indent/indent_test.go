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

package indent_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vosper-lang/vosperfmt/indent"
)

func TestUnitColumns(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, indent.Unit{Kind: indent.Spaces, Count: 2}.Columns(4))
	require.Equal(t, 8, indent.Unit{Kind: indent.Tabs, Count: 2}.Columns(4))
}

func TestStackPushPopRender(t *testing.T) {
	t.Parallel()

	s := indent.NewStack(indent.Spaces, 4)
	require.Equal(t, 0, s.Columns())
	require.Equal(t, "", s.Render())

	s.Push(2)
	require.Equal(t, 1, s.Depth())
	require.Equal(t, "  ", s.Render())

	s.Push(4)
	require.Equal(t, "    ", s.Render())

	s.Pop()
	require.Equal(t, "  ", s.Render())

	s.Truncate(0)
	require.Equal(t, 0, s.Depth())
	require.Equal(t, "", s.Render())
}

func TestStackRenderTabs(t *testing.T) {
	t.Parallel()

	s := indent.NewStack(indent.Tabs, 4)
	s.Push(10)
	require.Equal(t, "\t\t  ", s.Render())
}
