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

// Type scheme: `forall a b . a -> b -> a`
type Scheme struct {
	// Bound (universally quantified) type-variables
	Vars []TypeVar
	Type Type
}

// Create a type scheme quantified over vars.
func Forall(vars []TypeVar, t Type) *Scheme { return &Scheme{Vars: vars, Type: t} }

// Create a type scheme without bound type-variables.
func Mono(t Type) *Scheme { return &Scheme{Type: t} }

// IsMono returns true if the scheme does not bind any type-variables.
func (s *Scheme) IsMono() bool { return len(s.Vars) == 0 }

// Binds reports whether v is quantified by the scheme.
func (s *Scheme) Binds(v TypeVar) bool {
	for _, bound := range s.Vars {
		if bound == v {
			return true
		}
	}
	return false
}

// FreeTypeVars returns the type-variables occurring in the body of the scheme which are not bound by it.
func (s *Scheme) FreeTypeVars() *TypeVarSet {
	vars := FreeTypeVars(s.Type)
	for _, v := range s.Vars {
		vars.Remove(v)
	}
	return vars
}

// Apply a substitution to the body of the scheme. Bound type-variables are not substituted.
// The receiver is returned when the substitution is empty.
func (s *Scheme) Apply(subst Subst) *Scheme {
	if subst.Len() == 0 {
		return s
	}
	return &Scheme{Vars: s.Vars, Type: s.Type.Apply(subst.Without(s.Vars))}
}

// Equal reports whether s and other bind the same type-variables, in the same order, over structurally identical types.
func (s *Scheme) Equal(other *Scheme) bool {
	if len(s.Vars) != len(other.Vars) {
		return false
	}
	for i := range s.Vars {
		if s.Vars[i] != other.Vars[i] {
			return false
		}
	}
	return Equal(s.Type, other.Type)
}
