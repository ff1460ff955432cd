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
	"strconv"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

func (ti *InferenceContext) record(e ast.Expr, t types.Type) {
	if ti.cacheEnabled {
		ti.cache.Write(e.Id(), t)
	}
}

func (ti *InferenceContext) fail(e ast.Expr, err error) (types.Subst, types.Type, error) {
	ti.invalid, ti.err = e, err
	return types.EmptySubst, nil, err
}

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Subst, types.Type, error) {
	if ast.IsNil(e) {
		return ti.fail(nil, errEmptyExpr)
	}
	switch e := e.(type) {
	case *ast.Var:
		s := env.Lookup(e.Name)
		if s == nil {
			return ti.fail(e, &UnboundVariableError{Name: e.Name})
		}
		t := instantiate(&ti.varTracker, s)
		ti.record(e, t)
		return types.EmptySubst, t, nil

	case *ast.Literal:
		var t types.Type
		switch e.Kind {
		case ast.IntLiteral:
			t = types.Int
		case ast.BoolLiteral:
			t = types.Bool
		default:
			panic("invalid literal kind: " + strconv.Itoa(int(e.Kind)))
		}
		ti.record(e, t)
		return types.EmptySubst, t, nil

	case *ast.Func:
		tv := ti.varTracker.NewVar()
		env.NewScope()
		env.Add(e.Param, types.Mono(tv))
		s1, t1, err := ti.infer(env, e.Body)
		env.ExitScope()
		if err != nil {
			return types.EmptySubst, nil, err
		}
		t := types.NewArrow(tv.Apply(s1), t1)
		ti.record(e, t)
		return s1, t, nil

	case *ast.Call:
		tr := ti.varTracker.NewVar()
		s1, t1, err := ti.infer(env, e.Func)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		env.Apply(s1)
		s2, t2, err := ti.infer(env, e.Arg)
		if err != nil {
			return types.EmptySubst, nil, err
		}
		s3, err := ti.unify(t1.Apply(s1).Apply(s2), types.NewArrow(t2.Apply(s2), tr))
		if err != nil {
			return ti.fail(e, err)
		}
		t := tr.Apply(s3)
		ti.record(e, t)
		return s3.Compose(s2.Compose(s1)), t, nil

	case *ast.Let:
		env.NewScope()
		s1, t1, err := ti.infer(env, e.Value)
		if err != nil {
			env.ExitScope()
			return types.EmptySubst, nil, err
		}
		env.Apply(s1)
		env.Add(e.Var, ti.generalize(env, t1.Apply(s1)))
		env.Apply(s1)
		s2, t2, err := ti.infer(env, e.Body)
		env.ExitScope()
		if err != nil {
			return types.EmptySubst, nil, err
		}
		ti.record(e, t2)
		return s2.Compose(s1), t2, nil
	}

	panic("unknown expression type: " + e.ExprName())
}
