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

// Package indent models physical indentation: the units a Printer pushes
// and pops as groups break, and the column/text arithmetic used to
// render and measure them.
package indent

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// atLeast clamps v up to floor when it falls below it. Used for the
// handful of small bounds checks a Stack makes on caller-supplied
// integers (a tab width, a truncation depth) — generic so the same
// helper serves both int and int-derived column types.
func atLeast[T constraints.Ordered](v, floor T) T {
	if v < floor {
		return floor
	}
	return v
}

// Kind is the physical character an indentation unit is made of.
type Kind byte

const (
	Spaces Kind = iota
	Tabs
)

// Unit is one indentation level: Count repetitions of Kind. It is the
// per-level increment a TokenStreamBuilder uses when it hands a break or
// open token its Offset (see token.Break, token.Open): one level of
// nesting contributes Unit.Columns(tabWidth) to the cumulative offset.
type Unit struct {
	Kind  Kind
	Count int
}

// Columns reports the rendered column width of a unit: Count for spaces,
// Count*tabWidth for tabs.
func (u Unit) Columns(tabWidth int) int {
	if u.Kind == Tabs {
		return u.Count * tabWidth
	}
	return u.Count
}

// Stack tracks the Printer's active indentation as a sequence of
// cumulative column totals, one per break that is currently broken. Each
// frame is the total column indentation in effect once that break fired;
// popping a frame returns to whatever the enclosing group's indentation
// was. It is owned exclusively by a single pretty.Printer.
type Stack struct {
	kind     Kind
	tabWidth int
	totals   []int
}

// NewStack returns an empty indentation stack that renders using kind and
// measures tab columns using tabWidth.
func NewStack(kind Kind, tabWidth int) *Stack {
	return &Stack{kind: kind, tabWidth: atLeast(tabWidth, 1)}
}

// Push records a new cumulative column total as the innermost frame.
func (s *Stack) Push(totalColumns int) { s.totals = append(s.totals, totalColumns) }

// Pop removes the innermost frame, if any.
func (s *Stack) Pop() {
	if len(s.totals) > 0 {
		s.totals = s.totals[:len(s.totals)-1]
	}
}

// Depth reports how many frames are currently pushed.
func (s *Stack) Depth() int { return len(s.totals) }

// Truncate pops frames until only depth remain.
func (s *Stack) Truncate(depth int) {
	depth = atLeast(depth, 0)
	if depth < len(s.totals) {
		s.totals = s.totals[:depth]
	}
}

// Columns returns the stack's current cumulative column total (0 if
// empty).
func (s *Stack) Columns() int {
	if len(s.totals) == 0 {
		return 0
	}
	return s.totals[len(s.totals)-1]
}

// Render returns the literal text that should prefix a new line at the
// stack's current indentation.
func (s *Stack) Render() string {
	cols := s.Columns()
	if cols <= 0 {
		return ""
	}
	if s.kind == Tabs {
		tabs := cols / s.tabWidth
		rem := cols % s.tabWidth
		return strings.Repeat("\t", tabs) + strings.Repeat(" ", rem)
	}
	return strings.Repeat(" ", cols)
}
