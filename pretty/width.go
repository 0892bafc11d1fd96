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

	"github.com/rivo/uniseg"
)

// columnWidth measures the rendered column width of text. For multi-line
// text (block/doc-block comments), this is the width of the widest line,
// per §4.4's "columnsToRender" rule. Tabs expand to tabWidth columns,
// matching the teacher's dom.stringWidth, which must also be pessimistic
// about tab width since the column a comment starts in is not known
// during Scan.
func columnWidth(text string, tabWidth int) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		if w := lineWidth(line, tabWidth); w > widest {
			widest = w
		}
	}
	return widest
}

func lineWidth(line string, tabWidth int) int {
	if !strings.Contains(line, "\t") {
		return uniseg.StringWidth(line)
	}
	column := 0
	for i, part := range strings.Split(line, "\t") {
		if i > 0 {
			column += tabWidth
		}
		column += uniseg.StringWidth(part)
	}
	return column
}
