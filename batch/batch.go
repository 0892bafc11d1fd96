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

// Package batch formats many files concurrently. The core (packages
// token, indent, pretty, ast, builder) is deliberately pure and
// single-threaded, one file at a time; this package is the "level above
// the core" where independent files are formatted in parallel.
package batch

import (
	"context"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/semaphore"

	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/builder"
	"github.com/vosper-lang/vosperfmt/config"
)

// Glob expands a doublestar pattern (e.g. "src/**/*.vp") against the
// filesystem, for callers that want to pass a pattern straight through to
// FormatFiles rather than walking a directory themselves.
func Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("batch: invalid glob %q: %w", pattern, err)
	}
	return matches, nil
}

// Parse builds an *ast.File from a single source file. The core takes no
// position on how an AST is produced (parsing is out of scope); this is
// the seam a real front end plugs a parser into. Tests and this
// package's only caller (FormatFiles) use it as the hook point.
type Parse func(path string, src []byte) (*ast.File, error)

// Result is one file's formatting outcome.
type Result struct {
	Path string
	Text string
	Err  error
}

// FormatFiles formats every file in paths concurrently, bounding the
// number of files in flight at once to concurrency, and returns one
// Result per input path in input order.
//
// A concurrency of 0 or less is treated as 1.
func FormatFiles(ctx context.Context, paths []string, parse Parse, cfg config.Config, concurrency int) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	cfg = cfg.WithDefaults()

	results := make([]Result, len(paths))
	sem := semaphore.NewWeighted(int64(concurrency))

	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			return results, fmt.Errorf("batch: acquiring slot for %q: %w", path, err)
		}
		i, path := i, path
		go func() {
			defer sem.Release(1)
			results[i] = formatOne(path, parse, cfg)
		}()
	}

	// Acquiring the full weight blocks until every goroutine above has
	// released its slot, without needing a separate WaitGroup.
	if err := sem.Acquire(ctx, int64(concurrency)); err != nil {
		return results, fmt.Errorf("batch: waiting for formatting to finish: %w", err)
	}

	return results, ctx.Err()
}

func formatOne(path string, parse Parse, cfg config.Config) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("reading %q: %w", path, err)}
	}
	file, err := parse(path, src)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("parsing %q: %w", path, err)}
	}
	text, err := builder.Format(file, cfg)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("formatting %q: %w", path, err)}
	}
	return Result{Path: path, Text: text}
}
