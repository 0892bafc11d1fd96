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

// emitExpr dispatches on e's concrete type with a type switch.
func (b *Builder) emitExpr(e ast.Expr) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ast.Identifier:
		b.leaf(v.Name)

	case *ast.Member:
		b.emitExpr(v.Base)
		b.leaf(v.Dot)
		b.leaf(v.Name)

	case *ast.Call:
		b.emitExpr(v.Callee)
		b.emitArgumentList(v.Args)
		if v.TrailingClosure != nil {
			b.push(token.Space(1))
			b.emitClosure(v.TrailingClosure)
		}

	case *ast.Literal:
		b.leaf(v.Token)

	case *ast.Binary:
		b.emitBinary(v)

	case *ast.Tuple:
		b.delimitedList(v.LParen, token.Inconsistent, len(v.Elements),
			func(i int) {
				el := v.Elements[i]
				if el.Label != nil {
					b.leaf(el.Label)
					b.leaf(el.Colon)
					b.push(token.Space(1))
				}
				b.emitExpr(el.Value)
			},
			func(i int) *ast.Leaf { return v.Elements[i].Comma },
			v.RParen,
		)

	case *ast.Generic:
		b.emitExpr(v.Base)
		b.delimitedList(v.Lt, token.Inconsistent, len(v.Args),
			func(i int) { b.emitExpr(v.Args[i].Value) },
			func(i int) *ast.Leaf { return v.Args[i].Comma },
			v.Gt,
		)

	case *ast.Optional:
		b.emitExpr(v.Base)
		b.leaf(v.Question)

	case *ast.Array:
		off := b.indent
		b.leaf(v.LBracket)
		b.push(token.Open(token.Inconsistent, off))
		b.push(token.Break(0, 0))
		b.emitExpr(v.Element)
		b.push(token.Break(0, -off))
		b.push(token.Close())
		b.leaf(v.RBracket)

	case *ast.Dictionary:
		off := b.indent
		b.leaf(v.LBracket)
		b.push(token.Open(token.Inconsistent, off))
		b.push(token.Break(0, 0))
		b.emitExpr(v.Key)
		b.leaf(v.Colon)
		b.push(token.Space(1))
		b.emitExpr(v.Value)
		b.push(token.Break(0, -off))
		b.push(token.Close())
		b.leaf(v.RBracket)

	case *ast.Closure:
		b.emitClosure(v)
	}
}

// emitBinary flattens a left-leaning chain of Binary nodes into a single
// group so a long operator chain wraps as one unit, breaking before each
// operator, rather than nesting a nearly-invisible group per operand.
func (b *Builder) emitBinary(v *ast.Binary) {
	operands, ops := flattenBinary(v)
	off := b.indent
	b.push(token.Open(token.Inconsistent, off))
	b.emitExpr(operands[0])
	for i, op := range ops {
		b.push(token.Break(1, 0))
		b.leaf(op)
		b.push(token.Space(1))
		b.emitExpr(operands[i+1])
	}
	b.push(token.Close())
}

func flattenBinary(e ast.Expr) ([]ast.Expr, []*ast.Leaf) {
	bin, ok := e.(*ast.Binary)
	if !ok {
		return []ast.Expr{e}, nil
	}
	operands, ops := flattenBinary(bin.LHS)
	return append(operands, bin.RHS), append(ops, bin.Op)
}

// emitClosure emits a closure literal, whether standalone or used as a
// call's trailing closure.
func (b *Builder) emitClosure(c *ast.Closure) {
	b.leaf(c.LBrace)
	if len(c.Params) > 0 || c.In != nil {
		b.push(token.Space(1))
		for i, p := range c.Params {
			if i > 0 {
				b.push(token.Space(1))
			}
			if p.ExternalName != nil {
				b.leaf(p.ExternalName)
				b.push(token.Space(1))
			}
			b.leaf(p.LocalName)
			if p.Colon != nil {
				b.leaf(p.Colon)
				b.push(token.Space(1))
				b.emitExpr(p.Type)
			}
			if p.Comma != nil {
				b.leaf(p.Comma)
			}
		}
		b.push(token.Space(1))
		b.leaf(c.In)
	}
	if len(c.Members) == 0 {
		b.push(token.Space(1))
		b.leaf(c.RBrace)
		return
	}
	off := b.indent
	b.push(token.Open(token.Consistent, off))
	b.push(token.Newline(1, 0))
	b.declList(c.Members)
	b.push(token.Newline(1, -off))
	b.push(token.Close())
	b.leaf(c.RBrace)
}
