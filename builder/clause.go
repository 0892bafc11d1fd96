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

package builder

import (
	"github.com/vosper-lang/vosperfmt/ast"
	"github.com/vosper-lang/vosperfmt/token"
)

// openList is the bracket-less counterpart of delimitedList, used by
// clauses introduced by a keyword ("where ...") rather than a paired
// delimiter.
func (b *Builder) openList(style token.Style) int {
	off := b.indent
	b.push(token.Open(style, off))
	b.push(token.Break(0, 0))
	return off
}

func (b *Builder) closeList(off int) {
	b.push(token.Break(0, -off))
	b.push(token.Close())
}

// emitAttributes emits a declaration's attribute list. A single
// attribute stays inline with whatever follows it. Two or more are
// wrapped in one group, so that either all of them fit on the
// declaration's own line or each gets its own — never a mix.
func (b *Builder) emitAttributes(attrs []ast.Attribute, gap **token.Token) {
	if len(attrs) == 0 {
		return
	}
	if len(attrs) == 1 {
		b.emitAttribute(attrs[0], gap)
		b.push(token.Space(1))
		return
	}
	// The first "@" consumes the declaration list's pending separator
	// before the group opens, so that forced newline does not count
	// against the group's fit.
	b.emitLeafMaybe(attrs[0].At, gap)
	b.push(token.Open(token.Consistent, 0))
	for i, a := range attrs {
		if i > 0 {
			b.push(token.Break(1, 0))
			b.leaf(a.At)
		}
		b.leaf(a.Name)
		b.emitArgumentList(a.Arguments)
	}
	b.push(token.Break(1, 0))
	b.push(token.Close())
}

func (b *Builder) emitAttribute(a ast.Attribute, gap **token.Token) {
	b.emitLeafMaybe(a.At, gap)
	b.leaf(a.Name)
	b.emitArgumentList(a.Arguments)
}

// emitModifiers emits a declaration's modifier keywords ("public",
// "static", ...), each followed by a hard space.
func (b *Builder) emitModifiers(mods []*ast.Leaf, gap **token.Token) {
	for _, m := range mods {
		b.emitLeafMaybe(m, gap)
		b.push(token.Space(1))
	}
}

// emitGenericParams emits a "<T, U: Bound>" clause, wrapping
// independently of whatever list encloses the declaration it decorates.
func (b *Builder) emitGenericParams(g *ast.GenericParameterClause) {
	if g == nil {
		return
	}
	b.delimitedList(g.Lt, token.Inconsistent, len(g.Params),
		func(i int) {
			p := g.Params[i]
			b.leaf(p.Name)
			if p.Colon != nil {
				b.leaf(p.Colon)
				b.push(token.Space(1))
				b.emitExpr(p.Bound)
			}
		},
		func(i int) *ast.Leaf { return g.Params[i].Comma },
		g.Gt,
	)
}

// emitWhereClause emits a trailing "where T: Comparable, U == V" clause.
func (b *Builder) emitWhereClause(w *ast.GenericWhereClause) {
	if w == nil {
		return
	}
	b.leaf(w.Where)
	b.push(token.Space(1))
	if len(w.Requirements) == 0 {
		return
	}
	off := b.openList(token.Inconsistent)
	for _, r := range w.Requirements {
		b.leaf(r.LHS)
		b.push(token.Space(1))
		b.leaf(r.Op)
		b.push(token.Space(1))
		b.emitExpr(r.RHS)
		if r.Comma != nil {
			b.leaf(r.Comma)
			b.push(token.Break(1, 0))
		}
	}
	b.closeList(off)
}

// emitInheritance emits a type declaration's ": A, B, C" clause. Three or
// more entries wrap as a consistent group; one or two stay inline, since
// they virtually never need to wrap and a Non-goal-free reading of the
// idiom reserves the wrapping machinery for the case it actually exists
// to solve.
func (b *Builder) emitInheritance(inh *ast.InheritanceClause) {
	if inh == nil {
		return
	}
	b.leaf(inh.Colon)
	b.push(token.Space(1))
	if len(inh.Types) < 3 {
		for _, t := range inh.Types {
			b.emitExpr(t.Name)
			if t.Comma != nil {
				b.leaf(t.Comma)
				b.push(token.Space(1))
			}
		}
		return
	}
	off := b.openList(token.Consistent)
	for _, t := range inh.Types {
		b.emitExpr(t.Name)
		if t.Comma != nil {
			b.leaf(t.Comma)
			b.push(token.Break(1, 0))
		}
	}
	b.closeList(off)
}

// emitParamList emits a "(...)" function/initializer parameter list.
func (b *Builder) emitParamList(p *ast.ParameterList) {
	if p == nil {
		return
	}
	b.delimitedList(p.LParen, token.Inconsistent, len(p.Params),
		func(i int) {
			prm := p.Params[i]
			if prm.ExternalName != nil {
				b.leaf(prm.ExternalName)
				b.push(token.Space(1))
			}
			b.leaf(prm.LocalName)
			if prm.Colon != nil {
				b.leaf(prm.Colon)
				b.push(token.Space(1))
				b.emitExpr(prm.Type)
			}
			if prm.Default != nil {
				b.push(token.Space(1))
				b.leaf(prm.Default.Equals)
				b.push(token.Space(1))
				b.emitExpr(prm.Default.Value)
			}
		},
		func(i int) *ast.Leaf { return p.Params[i].Comma },
		p.RParen,
	)
}

// emitArgumentList emits a call's "(...)" argument list. When the
// configuration asks for a break before every argument of a wrapped
// call, the group is consistent instead of the usual inconsistent list
// style, so that once any argument doesn't fit, every argument does.
func (b *Builder) emitArgumentList(a *ast.ArgumentList) {
	if a == nil {
		return
	}
	style := token.Inconsistent
	if b.cfg.LineBreakBeforeEachArgument {
		style = token.Consistent
	}
	b.delimitedList(a.LParen, style, len(a.Args),
		func(i int) {
			arg := a.Args[i]
			if arg.Label != nil {
				b.leaf(arg.Label)
				b.leaf(arg.Colon)
				b.push(token.Space(1))
			}
			b.emitExpr(arg.Value)
		},
		func(i int) *ast.Leaf { return a.Args[i].Comma },
		a.RParen,
	)
}

// emitBody emits a brace-delimited member list shared by types, funcs,
// and extensions.
func (b *Builder) emitBody(body *ast.Body) {
	if body == nil {
		return
	}
	b.bracedBlock(body.LBrace, body.Members, body.RBrace)
}

// emitAccessorBlock emits a computed property's accessor list. When
// every accessor is a bare keyword with no body (a protocol requirement
// like "{ get set }"), its keywords are wrapped in one consistent group
// so the printer collapses them onto one line when they fit and wraps
// each onto its own line, indented, when they don't — exactly like any
// other bracket-list idiom. Otherwise (some accessor has a body) each
// accessor unconditionally gets its own braced block on its own line.
func (b *Builder) emitAccessorBlock(a *ast.AccessorBlock) {
	if a == nil {
		return
	}
	b.leaf(a.LBrace)
	if len(a.Accessors) == 0 {
		b.leaf(a.RBrace)
		return
	}
	allBare := true
	for _, acc := range a.Accessors {
		if acc.Body != nil {
			allBare = false
			break
		}
	}
	if allBare {
		off := b.indent
		b.push(token.Open(token.Consistent, off))
		b.push(token.Break(1, 0))
		for i, acc := range a.Accessors {
			if i > 0 {
				b.push(token.Break(1, 0))
			}
			b.leaf(acc.Keyword)
		}
		b.push(token.Break(1, -off))
		b.push(token.Close())
		b.leaf(a.RBrace)
		return
	}
	off := b.indent
	b.push(token.Open(token.Consistent, off))
	b.push(token.Newline(1, 0))
	for i, acc := range a.Accessors {
		if i > 0 {
			b.push(token.Newline(1, 0))
		}
		b.leaf(acc.Keyword)
		if acc.Body != nil {
			b.push(token.Space(1))
			b.emitBody(acc.Body)
		}
	}
	b.push(token.Newline(1, -off))
	b.push(token.Close())
	b.leaf(a.RBrace)
}
