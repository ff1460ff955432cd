// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

// Expr is the base for all expressions.
//
// The set of expressions is closed: *Var, *Literal, *Call, *Func and *Let.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Id returns the identifier assigned to the expression by AssignIds, or DummyId.
	Id() ExprId

	setId(id ExprId)
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Let)(nil)
)

// Variable
type Var struct {
	Name string
	id   ExprId
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

func (e *Var) Id() ExprId       { return e.id }
func (e *Var) setId(id ExprId) { e.id = id }

// LiteralKind distinguishes integer and boolean literals.
type LiteralKind uint8

const (
	IntLiteral LiteralKind = iota
	BoolLiteral
)

// Literal value: `42` or `true`
type Literal struct {
	Kind LiteralKind
	Int  int32
	Bool bool
	id   ExprId
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }

func (e *Literal) Id() ExprId       { return e.id }
func (e *Literal) setId(id ExprId) { e.id = id }

// Application: `f(x)`
type Call struct {
	Func Expr
	Arg  Expr
	id   ExprId
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

func (e *Call) Id() ExprId       { return e.id }
func (e *Call) setId(id ExprId) { e.id = id }

// Abstraction: `fun x -> x`
type Func struct {
	Param string
	Body  Expr
	id    ExprId
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

func (e *Func) Id() ExprId       { return e.id }
func (e *Func) setId(id ExprId) { e.id = id }

// Let-binding: `let a = 1 in e`
type Let struct {
	Var   string
	Value Expr
	Body  Expr
	id    ExprId
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

func (e *Let) Id() ExprId       { return e.id }
func (e *Let) setId(id ExprId) { e.id = id }

// IsNil returns true if e is nil or a nil pointer to an expression node.
func IsNil(e Expr) bool {
	switch e := e.(type) {
	case *Var:
		return e == nil
	case *Literal:
		return e == nil
	case *Call:
		return e == nil
	case *Func:
		return e == nil
	case *Let:
		return e == nil
	}
	return e == nil
}
