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

// Package config is the externally-facing configuration surface named in
// spec.md §6: the enumerated options the core recognizes, loadable from
// a YAML settings file the way a front end would keep one on disk.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vosper-lang/vosperfmt/indent"
	"github.com/vosper-lang/vosperfmt/perr"
	"github.com/vosper-lang/vosperfmt/pretty"
)

// Config is the full set of options spec.md §6 enumerates.
type Config struct {
	// MaxLineLength is the target column limit. Must be > 0.
	MaxLineLength int `yaml:"maxLineLength"`

	// Indent is the unit added per indentation level.
	IndentKind  string `yaml:"indentKind"`  // "spaces" or "tabs"
	IndentCount int    `yaml:"indentCount"`

	// TabWidth is the column width of a tab when measuring length.
	TabWidth int `yaml:"tabWidth"`

	// RespectsExistingLineBreaks preserves single blank lines between
	// top-level declarations (capped at one blank line) when true.
	RespectsExistingLineBreaks bool `yaml:"respectsExistingLineBreaks"`

	// LineBreakBeforeControlFlowKeywords is read by no formatting code:
	// package ast models no statements, so no else/catch keyword ever
	// reaches the builder and this option has no effect.
	LineBreakBeforeControlFlowKeywords bool `yaml:"lineBreakBeforeControlFlowKeywords"`

	// LineBreakBeforeEachArgument forces a break before every argument in
	// any wrapped call.
	LineBreakBeforeEachArgument bool `yaml:"lineBreakBeforeEachArgument"`
}

// Default returns the configuration the teacher's own printer.Options
// defaults to: two-space indent, a 100 column width, and a four-column
// tab width.
func Default() Config {
	return Config{
		MaxLineLength: 100,
		IndentKind:    "spaces",
		IndentCount:   2,
		TabWidth:      4,
	}
}

// WithDefaults returns a copy of c with zero-valued fields replaced by
// Default's values.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.MaxLineLength == 0 {
		c.MaxLineLength = d.MaxLineLength
	}
	if c.IndentKind == "" {
		c.IndentKind = d.IndentKind
	}
	if c.IndentCount == 0 {
		c.IndentCount = d.IndentCount
	}
	if c.TabWidth == 0 {
		c.TabWidth = d.TabWidth
	}
	return c
}

// Load parses a YAML configuration document.
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, perr.New(perr.IOFailure, fmt.Errorf("parsing config: %w", err))
	}
	return c.WithDefaults(), nil
}

// Options converts a Config to the lower-level pretty.Options the
// Scan+Print engine consumes, the way the teacher's printer.Options
// converts to dom.Options via domOptions.
func (c Config) Options() pretty.Options {
	c = c.WithDefaults()
	kind := indent.Spaces
	if c.IndentKind == "tabs" {
		kind = indent.Tabs
	}
	return pretty.Options{
		MaxLineLength: c.MaxLineLength,
		Indent:        indent.Unit{Kind: kind, Count: c.IndentCount},
		TabWidth:      c.TabWidth,
	}
}

// IndentUnit returns the single indentation level Config configures, for
// use by package builder when computing offsets for nested groups.
func (c Config) IndentUnit() indent.Unit {
	return c.Options().Indent
}
