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

// Package pretty is the Scan+Print engine: Oppen's classical two-pass
// pretty-printing algorithm, specialized to the token model in package
// token.
//
// Scan computes a length for every token in a single forward pass; Print
// consumes the token stream and its lengths in a second pass, committing
// to line breaks only when a group would not otherwise fit in the
// configured width. Render ties the two passes together.
package pretty

import "github.com/vosper-lang/vosperfmt/token"

// Render runs Scan followed by Print, the engine's complete pipeline.
func Render(tokens []token.Token, opts Options) (string, error) {
	lengths, err := Scan(tokens, opts)
	if err != nil {
		return "", err
	}
	return Print(tokens, lengths, opts)
}
