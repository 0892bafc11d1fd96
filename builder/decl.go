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
	"github.com/vosper-lang/vosperfmt/config"
	"github.com/vosper-lang/vosperfmt/token"
)

// File walks a whole file's AST and returns the token stream package
// pretty's Scan+Print engine consumes.
func File(f *ast.File, cfg config.Config) []token.Token {
	toks, _ := BuildFile(f, cfg)
	return toks
}

// BuildFile is File, additionally returning the LeafIndex built up over
// the walk (see LeafIndex).
func BuildFile(f *ast.File, cfg config.Config) ([]token.Token, *LeafIndex) {
	b := New(cfg)
	b.declList(f.Decls)
	return b.Tokens(), b.Index()
}

// firstLeaf returns the leaf a declaration list consults to decide
// whether a blank line preceded d in the source, without emitting
// anything.
func firstLeaf(d ast.Decl) *ast.Leaf {
	switch v := d.(type) {
	case *ast.Empty:
		return v.Semicolon
	case *ast.Import:
		return v.Keyword
	case *ast.Typealias:
		if len(v.Attributes) > 0 {
			return v.Attributes[0].At
		}
		return v.Keyword
	case *ast.TypeDecl:
		if len(v.Attributes) > 0 {
			return v.Attributes[0].At
		}
		if len(v.Modifiers) > 0 {
			return v.Modifiers[0]
		}
		return v.Keyword
	case *ast.EnumCase:
		return v.Keyword
	case *ast.Func:
		if len(v.Attributes) > 0 {
			return v.Attributes[0].At
		}
		if len(v.Modifiers) > 0 {
			return v.Modifiers[0]
		}
		return v.Keyword
	case *ast.Init:
		if len(v.Attributes) > 0 {
			return v.Attributes[0].At
		}
		if len(v.Modifiers) > 0 {
			return v.Modifiers[0]
		}
		return v.Keyword
	case *ast.Var:
		if len(v.Attributes) > 0 {
			return v.Attributes[0].At
		}
		if len(v.Modifiers) > 0 {
			return v.Modifiers[0]
		}
		return v.Keyword
	case *ast.IfConfig:
		if len(v.Clauses) > 0 {
			return v.Clauses[0].Directive
		}
		return v.End
	default:
		return nil
	}
}

// leadingBlank reports whether d's first leaf's leading trivia records a
// blank line in the source, skipping past an end-of-line comment
// attributed to the previous declaration if one is present.
func leadingBlank(d ast.Decl) bool {
	l := firstLeaf(d)
	if l == nil || len(l.Leading) == 0 {
		return false
	}
	t := l.Leading[0]
	if t.Kind == ast.TriviaComment && t.NewlineCount == 0 {
		if len(l.Leading) < 2 {
			return false
		}
		t = l.Leading[1]
	}
	return t.Kind == ast.TriviaBlankRun && t.NewlineCount >= 2
}

// declList emits a sequence of declarations (a file's top level, a
// body's members, or an #if clause's members), separating them with
// exactly one forced line break, widened to two when the source held a
// blank line there and the configuration is set to respect that.
//
// The separating newline is not simply pushed onto the stream: it is
// handed to the next declaration's emitter as a gap token, so that if
// that declaration's first leaf turns out to carry an end-of-line
// comment left over from the previous line, the comment is flushed
// before the gap rather than after it.
func (b *Builder) declList(decls []ast.Decl) {
	for i, d := range decls {
		if i == 0 {
			b.emitDecl(d, nil)
			continue
		}
		var n int
		if leadingBlank(d) && b.cfg.RespectsExistingLineBreaks {
			n = 2
		} else {
			n = 1
		}
		gap := token.Newline(n, 0)
		b.emitDecl(d, &gap)
	}
}

// emitDecl dispatches on d's concrete type. gap, when non-nil, is the
// declaration list's pending separator: the per-kind printer's first
// emitted leaf consumes it via emitLeafMaybe.
func (b *Builder) emitDecl(d ast.Decl, gap *token.Token) {
	switch v := d.(type) {
	case *ast.Empty:
		g := gap
		b.emitLeafMaybe(v.Semicolon, &g)
	case *ast.Import:
		b.emitImport(v, gap)
	case *ast.Typealias:
		b.emitTypealias(v, gap)
	case *ast.TypeDecl:
		b.emitTypeDecl(v, gap)
	case *ast.EnumCase:
		b.emitEnumCase(v, gap)
	case *ast.Func:
		b.emitFunc(v, gap)
	case *ast.Init:
		b.emitInit(v, gap)
	case *ast.Var:
		b.emitVar(v, gap)
	case *ast.IfConfig:
		b.emitIfConfig(v, gap)
	}
}

func (b *Builder) emitImport(v *ast.Import, gap *token.Token) {
	g := gap
	b.emitLeafMaybe(v.Keyword, &g)
	b.push(token.Space(1))
	for i, p := range v.Path {
		if i > 0 {
			b.push(token.Syntax("."))
		}
		b.leaf(p)
	}
	if v.Semicolon != nil {
		b.leaf(v.Semicolon)
	}
}

func (b *Builder) emitTypealias(v *ast.Typealias, gap *token.Token) {
	g := gap
	b.emitAttributes(v.Attributes, &g)
	b.emitLeafMaybe(v.Keyword, &g)
	b.push(token.Space(1))
	b.leaf(v.Name)
	b.emitGenericParams(v.Generics)
	b.push(token.Space(1))
	b.leaf(v.Equals)
	b.push(token.Space(1))
	b.emitExpr(v.Value)
	if v.Semicolon != nil {
		b.leaf(v.Semicolon)
	}
}

// emitTypeDecl emits a protocol, struct, class, enum, or extension
// declaration: they all share the same shape, per spec.md's grouping of
// these five kinds under one node.
func (b *Builder) emitTypeDecl(v *ast.TypeDecl, gap *token.Token) {
	g := gap
	b.emitAttributes(v.Attributes, &g)
	b.emitModifiers(v.Modifiers, &g)
	b.emitLeafMaybe(v.Keyword, &g)
	if v.Name != nil {
		b.push(token.Space(1))
		b.leaf(v.Name)
	}
	b.emitGenericParams(v.Generics)
	if v.Inheritance != nil {
		b.push(token.Space(1))
		b.emitInheritance(v.Inheritance)
	}
	if v.Where != nil {
		b.push(token.Space(1))
		b.emitWhereClause(v.Where)
	}
	b.push(token.Space(1))
	b.emitBody(v.Body)
}

func (b *Builder) emitEnumCase(v *ast.EnumCase, gap *token.Token) {
	g := gap
	b.emitLeafMaybe(v.Keyword, &g)
	b.push(token.Space(1))
	b.leaf(v.Name)
	b.emitParamList(v.Args)
	if v.Semicolon != nil {
		b.leaf(v.Semicolon)
	}
}

func (b *Builder) emitFunc(v *ast.Func, gap *token.Token) {
	g := gap
	b.emitAttributes(v.Attributes, &g)
	b.emitModifiers(v.Modifiers, &g)
	b.emitLeafMaybe(v.Keyword, &g)
	b.push(token.Space(1))
	b.leaf(v.Name)
	b.emitGenericParams(v.Generics)
	b.emitParamList(v.Params)
	if v.Throws != nil {
		b.push(token.Space(1))
		b.leaf(v.Throws)
	}
	if v.Arrow != nil {
		b.push(token.Space(1))
		b.leaf(v.Arrow)
		b.push(token.Space(1))
		b.emitExpr(v.ReturnType)
	}
	if v.Where != nil {
		b.push(token.Space(1))
		b.emitWhereClause(v.Where)
	}
	switch {
	case v.Body != nil:
		b.push(token.Space(1))
		b.emitBody(v.Body)
	case v.Semicolon != nil:
		b.leaf(v.Semicolon)
	}
}

func (b *Builder) emitInit(v *ast.Init, gap *token.Token) {
	g := gap
	b.emitAttributes(v.Attributes, &g)
	b.emitModifiers(v.Modifiers, &g)
	b.emitLeafMaybe(v.Keyword, &g)
	if v.Failable != nil {
		b.leaf(v.Failable)
	}
	b.emitGenericParams(v.Generics)
	b.emitParamList(v.Params)
	if v.Throws != nil {
		b.push(token.Space(1))
		b.leaf(v.Throws)
	}
	if v.Where != nil {
		b.push(token.Space(1))
		b.emitWhereClause(v.Where)
	}
	b.push(token.Space(1))
	b.emitBody(v.Body)
}

func (b *Builder) emitVar(v *ast.Var, gap *token.Token) {
	g := gap
	b.emitAttributes(v.Attributes, &g)
	b.emitModifiers(v.Modifiers, &g)
	b.emitLeafMaybe(v.Keyword, &g)
	b.push(token.Space(1))
	b.leaf(v.Name)
	if v.Colon != nil {
		b.leaf(v.Colon)
		b.push(token.Space(1))
		b.emitExpr(v.Type)
	}
	if v.Accessor != nil {
		b.push(token.Space(1))
		b.emitAccessorBlock(v.Accessor)
	}
	if v.Equals != nil {
		b.push(token.Space(1))
		b.leaf(v.Equals)
		b.push(token.Space(1))
		b.emitExpr(v.Value)
	}
	if v.Semicolon != nil {
		b.leaf(v.Semicolon)
	}
}

// emitIfConfig emits a "#if/#elseif/#else/#endif" region. Each clause's
// members are indented one level below the directive regardless of
// whether they would have fit unindented: conditional-compilation
// regions always show their nesting, per spec.md §4.3.
func (b *Builder) emitIfConfig(v *ast.IfConfig, gap *token.Token) {
	g := gap
	for ci, cl := range v.Clauses {
		if ci == 0 {
			b.emitLeafMaybe(cl.Directive, &g)
		} else {
			b.push(token.Newline(1, 0))
			b.leaf(cl.Directive)
		}
		if cl.Condition != nil {
			b.push(token.Space(1))
			b.emitExpr(cl.Condition)
		}
		if len(cl.Members) > 0 {
			off := b.indent
			b.push(token.Open(token.Consistent, off))
			b.push(token.Newline(1, 0))
			b.declList(cl.Members)
			b.push(token.Close())
		}
	}
	b.push(token.Newline(1, 0))
	b.leaf(v.End)
}
