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

package perr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vosper-lang/vosperfmt/perr"
)

func TestErrorFormatsKindAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := perr.New(perr.IOFailure, cause)
	require.Equal(t, "io failure: boom", err.Error())
	require.True(t, errors.Is(err, cause))
}

func TestErrorWithoutCauseFormatsKindAlone(t *testing.T) {
	t.Parallel()

	err := perr.New(perr.ParseFailure, nil)
	require.Equal(t, "parse failure", err.Error())
}

func TestMalformedfPrefixesMessage(t *testing.T) {
	t.Parallel()

	err := perr.Malformedf("unbalanced close at %d", 3)
	require.Equal(t, perr.MalformedTokenStream, err.Kind)
	require.Contains(t, err.Error(), "unbalanced close at 3")
}
