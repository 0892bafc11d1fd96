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

// Attribute is a single declaration attribute, e.g. "@discardableResult"
// or "@available(*, deprecated)".
type Attribute struct {
	At        *Leaf
	Name      *Leaf
	Arguments *ArgumentList // nil if the attribute takes no arguments
}

// GenericParameterClause is a declaration's "<...>" generic parameter
// list.
type GenericParameterClause struct {
	Lt     *Leaf
	Params []GenericParameter
	Gt     *Leaf
}

// GenericParameter is one entry of a GenericParameterClause.
type GenericParameter struct {
	Name  *Leaf
	Colon *Leaf // nil unless the parameter has an inline conformance
	Bound Expr  // nil unless Colon is set
	Comma *Leaf // nil for the last parameter
}

// GenericWhereClause is a declaration's trailing "where ..." clause.
type GenericWhereClause struct {
	Where        *Leaf
	Requirements []WhereRequirement
}

// WhereRequirement is one entry of a GenericWhereClause, e.g.
// "T: Comparable" or "T == U".
type WhereRequirement struct {
	LHS   *Leaf
	Op    *Leaf // ":" or "=="
	RHS   Expr
	Comma *Leaf // nil for the last requirement
}

// InheritanceClause is a type declaration's ": A, B, C" conformance and
// superclass list.
type InheritanceClause struct {
	Colon *Leaf
	Types []InheritedType
}

// InheritedType is one entry of an InheritanceClause.
type InheritedType struct {
	Name  Expr
	Comma *Leaf // nil for the last entry
}

// ParameterList is a function or initializer's "(...)" parameter list.
type ParameterList struct {
	LParen *Leaf
	Params []Parameter
	RParen *Leaf
}

// Parameter is one function parameter, possibly with a distinct external
// argument label.
type Parameter struct {
	ExternalName *Leaf // nil if the parameter has no separate external label
	LocalName    *Leaf
	Colon        *Leaf
	Type         Expr
	Default      *DefaultValue // nil if the parameter has no default
	Comma        *Leaf         // nil for the last parameter
}

// DefaultValue is a parameter's "= <expr>" default.
type DefaultValue struct {
	Equals *Leaf
	Value  Expr
}

// Body is a brace-delimited block of member declarations, shared by
// types, functions, and extensions.
type Body struct {
	LBrace  *Leaf
	Members []Decl
	RBrace  *Leaf
}

// AccessorBlock is a computed property's "{ get set }" (or multi-line
// equivalent) accessor list.
type AccessorBlock struct {
	LBrace    *Leaf
	Accessors []Accessor
	RBrace    *Leaf
}

// Accessor is a single get/set/willSet/didSet accessor.
type Accessor struct {
	Keyword *Leaf
	Body    *Body // nil for a protocol requirement's bare "get"/"set"
}

// ArgumentList is a call's "(...)" argument list.
type ArgumentList struct {
	LParen *Leaf
	Args   []Argument
	RParen *Leaf
}

// Argument is one call argument, optionally labeled.
type Argument struct {
	Label *Leaf // nil for an unlabeled argument
	Colon *Leaf // nil unless Label is set
	Value Expr
	Comma *Leaf // nil for the last argument
}
