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

import (
	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap(typeVarComparer{})

// EmptySubst is the identity substitution.
var EmptySubst = Subst{}

// Subst contains immutable mappings from type-variables to types. The zero value is the identity substitution.
//
// Entries are kept sorted by CompareTypeVars; the order of insertion has no effect.
type Subst struct {
	m *immutable.SortedMap
}

// Pair of a type-variable and the type it is substituted with.
type SubstPair struct {
	Var  TypeVar
	Type Type
}

// Create a substitution from a list of pairs. Later pairs overwrite earlier pairs for the same type-variable.
func NewSubst(pairs ...SubstPair) Subst {
	b := immutable.NewSortedMapBuilder(emptySubstMap)
	for _, p := range pairs {
		b.Set(p.Var, p.Type)
	}
	return Subst{b.Map()}
}

// Create a substitution with a single entry.
func SingletonSubst(v TypeVar, t Type) Subst {
	return Subst{emptySubstMap.Set(v, t)}
}

func (s Subst) mapping() *immutable.SortedMap {
	if s.m == nil {
		return emptySubstMap
	}
	return s.m
}

// Get the number of entries in the substitution.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the type substituted for v.
func (s Subst) Get(v TypeVar) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(v)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of s which maps v to t. An existing entry for v is overwritten.
func (s Subst) Set(v TypeVar, t Type) Subst { return Subst{s.mapping().Set(v, t)} }

// Delete returns a copy of s without an entry for v.
func (s Subst) Delete(v TypeVar) Subst {
	if s.m == nil {
		return s
	}
	return Subst{s.m.Delete(v)}
}

// Iterate over entries in the substitution, ordered by type-variable.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(TypeVar, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(TypeVar), v.(Type)) {
			return
		}
	}
}

// Compose returns the substitution `s ∘ other`, which applies other first and then s. When the domain of s
// is disjoint from the domain of other:
//
//	t.Apply(s.Compose(other)) == t.Apply(other).Apply(s)
//
// Entries of s are kept as-is; each entry of other is added with s applied to its type, unless s already
// contains an entry for the same type-variable. Composition is not commutative.
func (s Subst) Compose(other Subst) Subst {
	if other.Len() == 0 {
		return s
	}
	b := immutable.NewSortedMapBuilder(s.mapping())
	other.Range(func(v TypeVar, t Type) bool {
		if _, exists := b.Get(v); !exists {
			b.Set(v, t.Apply(s))
		}
		return true
	})
	return Subst{b.Map()}
}

// Without returns a copy of s with no entries for the given type-variables.
func (s Subst) Without(vars []TypeVar) Subst {
	if s.Len() == 0 || len(vars) == 0 {
		return s
	}
	m := s.m
	for _, v := range vars {
		m = m.Delete(v)
	}
	return Subst{m}
}

// Equal reports whether s and other contain structurally identical entries.
func (s Subst) Equal(other Subst) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.Range(func(v TypeVar, t Type) bool {
		ot, ok := other.Get(v)
		equal = ok && Equal(t, ot)
		return equal
	})
	return equal
}

// Pairs returns the entries of s, ordered by type-variable.
func (s Subst) Pairs() []SubstPair {
	pairs := make([]SubstPair, 0, s.Len())
	s.Range(func(v TypeVar, t Type) bool {
		pairs = append(pairs, SubstPair{v, t})
		return true
	})
	return pairs
}
