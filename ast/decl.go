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

package ast

// Decl is the tagged variant of every declaration kind.
type Decl interface {
	declNode()
	DeclKind() DeclKind
}

// DeclKind identifies which concrete type implements Decl.
type DeclKind int

const (
	DeclKindEmpty DeclKind = iota
	DeclKindImport
	DeclKindTypealias
	DeclKindProtocol
	DeclKindStruct
	DeclKindClass
	DeclKindEnum
	DeclKindEnumCase
	DeclKindExtension
	DeclKindFunc
	DeclKindInit
	DeclKindVar
	DeclKindIfConfig
)

// File is the root of a single source file's AST.
type File struct {
	Decls []Decl
}

// Empty is a stray ";" with no other content.
type Empty struct {
	Semicolon *Leaf
}

func (*Empty) declNode()            {}
func (*Empty) DeclKind() DeclKind { return DeclKindEmpty }

// Import is an "import Foo" declaration.
type Import struct {
	Keyword   *Leaf
	Path      []*Leaf // dotted path components
	Semicolon *Leaf   // nil if the language does not require one
}

func (*Import) declNode()            {}
func (*Import) DeclKind() DeclKind { return DeclKindImport }

// Typealias is a "typealias Name<T> = Expr" declaration.
type Typealias struct {
	Attributes []Attribute
	Keyword    *Leaf
	Name       *Leaf
	Generics   *GenericParameterClause
	Equals     *Leaf
	Value      Expr
	Semicolon  *Leaf
}

func (*Typealias) declNode()            {}
func (*Typealias) DeclKind() DeclKind { return DeclKindTypealias }

// TypeDecl covers protocol/struct/class/enum/extension, which all share
// the same shape: attributes, a keyword, an optional name (extensions
// name the type being extended), optional generics, an optional
// inheritance clause, an optional where clause, and a body.
type TypeDecl struct {
	Attributes  []Attribute
	Modifiers   []*Leaf
	Keyword     *Leaf
	Name        *Leaf
	Generics    *GenericParameterClause
	Inheritance *InheritanceClause
	Where       *GenericWhereClause
	Body        *Body

	kind DeclKind
}

// NewTypeDecl constructs a TypeDecl of the given kind (one of
// DeclKindProtocol, DeclKindStruct, DeclKindClass, DeclKindEnum,
// DeclKindExtension).
func NewTypeDecl(kind DeclKind) *TypeDecl { return &TypeDecl{kind: kind} }

func (*TypeDecl) declNode()          {}
func (d *TypeDecl) DeclKind() DeclKind { return d.kind }

// EnumCase is a single "case foo" or "case foo(Int)" enum member.
type EnumCase struct {
	Keyword   *Leaf
	Name      *Leaf
	Args      *ParameterList // nil for a case with no associated values
	Semicolon *Leaf
}

func (*EnumCase) declNode()            {}
func (*EnumCase) DeclKind() DeclKind { return DeclKindEnumCase }

// Func is a "func name<T>(...) throws -> T where ... { ... }"
// declaration. Body is nil for a protocol requirement.
type Func struct {
	Attributes []Attribute
	Modifiers  []*Leaf
	Keyword    *Leaf
	Name       *Leaf
	Generics   *GenericParameterClause
	Params     *ParameterList
	Throws     *Leaf
	Arrow      *Leaf
	ReturnType Expr
	Where      *GenericWhereClause
	Body       *Body
	Semicolon  *Leaf // used only when Body == nil
}

func (*Func) declNode()            {}
func (*Func) DeclKind() DeclKind { return DeclKindFunc }

// Init is a "init?(...) { ... }" initializer declaration.
type Init struct {
	Attributes []Attribute
	Modifiers  []*Leaf
	Keyword    *Leaf
	Failable   *Leaf // nil, or "?"/"!"
	Generics   *GenericParameterClause
	Params     *ParameterList
	Throws     *Leaf
	Where      *GenericWhereClause
	Body       *Body
}

func (*Init) declNode()            {}
func (*Init) DeclKind() DeclKind { return DeclKindInit }

// Var is a "var"/"let" property or local binding.
type Var struct {
	Attributes []Attribute
	Modifiers  []*Leaf
	Keyword    *Leaf // "var" or "let"
	Name       *Leaf
	Colon      *Leaf
	Type       Expr
	Accessor   *AccessorBlock
	Equals     *Leaf
	Value      Expr
	Semicolon  *Leaf
}

func (*Var) declNode()            {}
func (*Var) DeclKind() DeclKind { return DeclKindVar }

// IfConfig is a "#if/#elseif/#else/#endif" conditional-compilation
// region, spanning one or more declaration lists.
type IfConfig struct {
	Clauses []IfConfigClause
	End     *Leaf // "#endif"
}

func (*IfConfig) declNode()            {}
func (*IfConfig) DeclKind() DeclKind { return DeclKindIfConfig }

// IfConfigClause is one "#if"/"#elseif"/"#else" branch.
type IfConfigClause struct {
	Directive *Leaf // "#if", "#elseif", or "#else"
	Condition Expr  // nil for "#else"
	Members   []Decl
}
