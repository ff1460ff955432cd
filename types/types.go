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

package types

// Type is the base interface for all monotypes.
//
// The set of monotypes is closed: *Var, *Const and *Arrow. Types are immutable once constructed.
type Type interface {
	TypeName() string
	// Apply a substitution to the type. The receiver is never modified.
	Apply(s Subst) Type
	// String renders the type with unknown type-variables shown as `?`.
	String() string

	collectFreeVars(vars *TypeVarSet)
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Const)(nil)
	_ Type = (*Arrow)(nil)
)

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *Arrow) TypeName() string { return "Arrow" }

// Type-variable reference: `a` or `?`
type Var struct {
	TypeVar TypeVar
}

// Create a reference to a type-variable.
func NewVar(v TypeVar) *Var { return &Var{TypeVar: v} }

// Type constant: `int` or `bool`
type Const struct {
	name string
}

// Name returns the name of the type constant.
func (t *Const) Name() string { return t.name }

var (
	Int  = &Const{name: "int"}
	Bool = &Const{name: "bool"}
)

// Function type: `int -> bool`
type Arrow struct {
	Param  Type
	Return Type
}

// Create a function type.
func NewArrow(param, ret Type) *Arrow { return &Arrow{Param: param, Return: ret} }

// Apply resolves the type-variable through s. Chained bindings are followed, so `a: b, b: int` resolves `a` to `int`.
// A binding from the type-variable to itself is ignored.
func (t *Var) Apply(s Subst) Type {
	found, ok := s.Get(t.TypeVar)
	if !ok {
		return t
	}
	if v, isVar := found.(*Var); isVar && v.TypeVar == t.TypeVar {
		return t
	}
	return found.Apply(s)
}

func (t *Const) Apply(s Subst) Type { return t }

func (t *Arrow) Apply(s Subst) Type {
	if s.Len() == 0 {
		return t
	}
	return &Arrow{Param: t.Param.Apply(s), Return: t.Return.Apply(s)}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.TypeVar == b.TypeVar
	case *Const:
		b, ok := b.(*Const)
		return ok && a.name == b.name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Param, b.Param) && Equal(a.Return, b.Return)
	}
	return false
}

// Occurs reports whether v occurs free in t.
func Occurs(v TypeVar, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.TypeVar == v
	case *Arrow:
		return Occurs(v, t.Param) || Occurs(v, t.Return)
	}
	return false
}
