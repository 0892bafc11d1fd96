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

import "github.com/vosper-lang/vosperfmt/indent"

// Options controls the Scan+Print engine. It mirrors the enumerated
// configuration options of spec.md §6; higher-level front ends (e.g.
// package config) translate their own settings into this type the way
// the teacher's printer.Options.domOptions translates into dom.Options.
type Options struct {
	// MaxLineLength is the target column limit. Must be > 0.
	MaxLineLength int

	// Indent is the unit added per indentation level.
	Indent indent.Unit

	// TabWidth is the column width of a tab when measuring length. Must
	// be >= 1.
	TabWidth int
}

// WithDefaults returns a copy of opts with zero-valued fields replaced by
// their defaults.
func (o Options) WithDefaults() Options {
	if o.MaxLineLength == 0 {
		o.MaxLineLength = 100
	}
	if o.TabWidth == 0 {
		o.TabWidth = 4
	}
	if o.Indent.Count == 0 && o.Indent.Kind == indent.Spaces {
		o.Indent.Count = 2
	}
	return o
}
