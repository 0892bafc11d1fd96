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

// Package token defines the formatting token model consumed by the
// Scan+Print engine in package pretty.
//
// A Token is a small tagged value: exactly one of the Kind constants
// below, plus whatever payload that kind needs. Tokens are produced once,
// in order, by a TokenStreamBuilder and are immutable afterwards.
package token

// Kind is the tag of a Token.
type Kind byte

const (
	// Syntax is literal text to emit; its length is the column width of
	// its Text.
	Syntax Kind = iota
	// Break is an optional breakpoint. It contributes Size spaces when not
	// broken, or a newline plus the enclosing group's indentation (plus its
	// own Offset) when broken.
	Break
	// Space is hard whitespace of Size columns. It is never a breakpoint.
	Space
	// Open begins a Group.
	Open
	// Close ends the nearest unclosed Group. Zero length.
	Close
	// Newline is a forced line break. Count is always >= 1.
	Newline
	// Reset cancels a pending break, so that subsequent content is treated
	// as though it started fresh on the line. Zero length.
	Reset
	// Comment is a source comment of some CommentKind.
	Comment
	// Verbatim is raw text whose internal relative indentation is
	// preserved exactly.
	Verbatim
)

// String renders a Kind's name, for debugging.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax"
	case Break:
		return "break"
	case Space:
		return "space"
	case Open:
		return "open"
	case Close:
		return "close"
	case Newline:
		return "newline"
	case Reset:
		return "reset"
	case Comment:
		return "comment"
	case Verbatim:
		return "verbatim"
	default:
		return "unknown"
	}
}

// Style is the breaking discipline of a Group.
type Style byte

const (
	// Consistent groups break all of their breaks together, once any one
	// of them must fire.
	Consistent Style = iota
	// Inconsistent groups decide each break independently based on the
	// space remaining at that point.
	Inconsistent
)

func (s Style) String() string {
	if s == Consistent {
		return "consistent"
	}
	return "inconsistent"
}

// CommentKind distinguishes the four comment shapes the core recognizes.
type CommentKind byte

const (
	Line CommentKind = iota
	DocLine
	Block
	DocBlock
)

// Token is a single formatting primitive. Exactly one Kind's fields are
// meaningful for any given value; the others are zero.
//
// Token is a plain value type: it is safe to copy and compare, and a
// []Token is the sole owner of the strings it references.
type Token struct {
	kind Kind

	text string // Syntax, Verbatim, Comment text.

	size   int // Break, Space size; Newline count.
	offset int // Break, Open, Newline offset.

	style Style       // Open only.
	ckind CommentKind // Comment only.
}

// Kind reports this token's tag.
func (t Token) Kind() Kind { return t.kind }

// Text returns the literal text of a Syntax, Verbatim, or Comment token.
func (t Token) Text() string { return t.text }

// Size returns the not-broken width of a Break, the column count of a
// Space, or the line count of a Newline.
func (t Token) Size() int { return t.size }

// Offset returns the indentation delta of a Break, Open, or Newline.
func (t Token) Offset() int { return t.offset }

// Style returns the breaking discipline of an Open token.
func (t Token) Style() Style { return t.style }

// CommentKind returns the kind of a Comment token.
func (t Token) CommentKind() CommentKind { return t.ckind }

// Syntax returns a token that emits text verbatim; its length is the
// column width of text.
func Syntax(text string) Token { return Token{kind: Syntax, text: text} }

// Break returns an optional breakpoint of the given not-broken size and
// broken indentation offset.
func Break(size, offset int) Token { return Token{kind: Break, size: size, offset: offset} }

// Space returns size columns of hard whitespace.
func Space(size int) Token { return Token{kind: Space, size: size} }

// Open begins a group with the given breaking style and indentation
// offset, which is added to the indentation of breaks that fire inside
// the group.
func Open(style Style, offset int) Token { return Token{kind: Open, style: style, offset: offset} }

// Close ends the nearest unclosed group.
func Close() Token { return Token{kind: Close} }

// Newline forces count (>=1) line breaks, plus the given indentation
// offset. Its effective length is always the configured max line width,
// which forces every enclosing group to break.
func Newline(count, offset int) Token {
	if count < 1 {
		count = 1
	}
	return Token{kind: Newline, size: count, offset: offset}
}

// Reset cancels any pending break, so that whatever follows is treated
// as if it started fresh on the current line.
func Reset() Token { return Token{kind: Reset} }

// NewComment returns a comment token of the given kind and exact text
// (including its delimiters, e.g. "// foo" or "/* foo */").
func NewComment(kind CommentKind, text string) Token {
	return Token{kind: Comment, ckind: kind, text: text}
}

// Verbatim returns raw text emitted unchanged except for leading
// indentation adjustment; see the printer's writeVerbatim in package
// pretty for the adjustment rule.
func Verbatim(text string) Token { return Token{kind: Verbatim, text: text} }
