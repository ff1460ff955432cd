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

package algw

import (
	"github.com/wdamron/algw/types"
)

// MostGeneralUnifier computes the most general substitution which makes a and b structurally identical.
//
// Arrow parameters are unified before arrow results, and the parameter substitution is applied to both
// results before they are compared. A *UnificationError or *OccursCheckError is returned on failure.
func MostGeneralUnifier(a, b types.Type) (types.Subst, error) {
	switch a := a.(type) {
	case *types.Var:
		return Bind(a.TypeVar, b)

	case *types.Const:
		switch b := b.(type) {
		case *types.Var:
			return Bind(b.TypeVar, a)
		case *types.Const:
			if a.Name() == b.Name() {
				return types.EmptySubst, nil
			}
		}

	case *types.Arrow:
		switch b := b.(type) {
		case *types.Var:
			return Bind(b.TypeVar, a)
		case *types.Arrow:
			s1, err := MostGeneralUnifier(a.Param, b.Param)
			if err != nil {
				return types.EmptySubst, err
			}
			s2, err := MostGeneralUnifier(a.Return.Apply(s1), b.Return.Apply(s1))
			if err != nil {
				return types.EmptySubst, err
			}
			return s1.Compose(s2), nil
		}
	}

	return types.EmptySubst, &UnificationError{Left: a, Right: b}
}

// Bind produces the substitution `{v: t}`.
//
// Binding a type-variable to itself produces the identity substitution. If v occurs within t, an
// *OccursCheckError is returned.
func Bind(v types.TypeVar, t types.Type) (types.Subst, error) {
	if tv, ok := t.(*types.Var); ok && tv.TypeVar == v {
		return types.EmptySubst, nil
	}
	if types.Occurs(v, t) {
		return types.EmptySubst, &OccursCheckError{Var: v, Type: t}
	}
	return types.SingletonSubst(v, t), nil
}

func (ti *InferenceContext) unify(a, b types.Type) (types.Subst, error) {
	s, err := MostGeneralUnifier(a, b)
	if err != nil {
		ti.logger.Debug("unification failed", "left", types.DebugString(a), "right", types.DebugString(b), "error", err)
		return s, err
	}
	ti.logger.Debug("unified", "left", types.DebugString(a), "right", types.DebugString(b), "subst", debugSubstString(s))
	return s, nil
}
