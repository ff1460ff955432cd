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

package algw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/algw"
	. "github.com/wdamron/algw/construct"

	"github.com/wdamron/algw/types"
)

func TestGeneralize(t *testing.T) {
	env := algw.NewTypeEnv()

	s := algw.Generalize(env, TInt())
	assert.True(t, s.IsMono())

	s = algw.Generalize(env, TArrowN(TVar("b"), TVar("a"), TVar("b")))
	assert.Equal(t, "forall a b . b -> a -> b", s.String())

	env.NewScope()
	env.DeclareInvariant("x", TVar("a"))
	s = algw.Generalize(env, TArrow(TVar("a"), TVar("b")))
	assert.Equal(t, "forall b . a -> b", s.String())

	s = algw.Generalize(env, TVar("a"))
	assert.True(t, s.IsMono())
}

func TestInstantiate(t *testing.T) {
	ctx := algw.NewContext()
	scheme := Forall([]string{"a", "b"}, TArrowN(TVar("a"), TVar("b"), TVar("c")))

	first := ctx.Instantiate(scheme)
	second := ctx.Instantiate(scheme)
	assert.Equal(t, "?0 -> ?1 -> c", types.DebugString(first))
	assert.Equal(t, "?2 -> ?3 -> c", types.DebugString(second))

	mono := types.Mono(TArrow(TVar("a"), TInt()))
	assert.Same(t, mono.Type, ctx.Instantiate(mono))

	// Generalizing an instantiated scheme in an empty environment binds every fresh variable:
	s := algw.Generalize(algw.NewTypeEnv(), first)
	assert.Equal(t, 3, len(s.Vars))
}

// alphaEquivalent reports whether a and b are identical up to a consistent, one-to-one renaming of
// type-variables. Pairs already present in the renaming must match exactly.
func alphaEquivalent(a, b types.Type, fwd, back map[types.TypeVar]types.TypeVar) bool {
	switch a := a.(type) {
	case *types.Var:
		bv, ok := b.(*types.Var)
		if !ok {
			return false
		}
		if mapped, seen := fwd[a.TypeVar]; seen {
			return mapped == bv.TypeVar
		}
		if _, taken := back[bv.TypeVar]; taken {
			return false
		}
		fwd[a.TypeVar], back[bv.TypeVar] = bv.TypeVar, a.TypeVar
		return true
	case *types.Arrow:
		ba, ok := b.(*types.Arrow)
		return ok && alphaEquivalent(a.Param, ba.Param, fwd, back) && alphaEquivalent(a.Return, ba.Return, fwd, back)
	}
	return types.Equal(a, b)
}

func TestGeneralizeInstantiateRoundTrip(t *testing.T) {
	a, b, c := TVar("a"), TVar("b"), TVar("c")

	cases := []struct {
		name  string
		fixed []string // names bound in the environment
		t     types.Type
	}{
		{"constant", nil, TInt()},
		{"variable", nil, a},
		{"arrow", nil, TArrow(a, b)},
		{"repeated", nil, TArrowN(TArrow(a, b), a, b)},
		{"unknown and named", nil, TArrowN(TUnknown(5), a, TBool())},
		{"fixed variable", []string{"a"}, a},
		{"partly fixed", []string{"a"}, TArrow(a, b)},
		{"nested partly fixed", []string{"a", "c"}, TArrowN(TArrow(a, a), b, TArrow(c, b))},
		{"fixed elsewhere", []string{"c"}, TArrowN(a, b, TInt())},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := algw.NewTypeEnv()
			env.NewScope()
			for _, name := range tc.fixed {
				env.DeclareInvariant("x_"+name, TVar(name))
			}
			ctx := algw.NewContext()

			s := algw.Generalize(env, tc.t)
			inst := ctx.Instantiate(s)

			fwd, back := map[types.TypeVar]types.TypeVar{}, map[types.TypeVar]types.TypeVar{}
			fixed := env.FreeTypeVars()
			for _, v := range fixed.Slice() {
				fwd[v], back[v] = v, v
			}
			if !alphaEquivalent(tc.t, inst, fwd, back) {
				t.Fatalf("type: %s, instance: %s", types.DebugString(tc.t), types.DebugString(inst))
			}

			free := types.FreeTypeVars(inst)
			for _, v := range s.Vars {
				assert.False(t, fixed.Contains(v), "%s is free in the environment", v)
				assert.False(t, free.Contains(v), "%s survived instantiation", v)
			}
			for _, v := range types.FreeTypeVars(tc.t).Slice() {
				if fixed.Contains(v) {
					assert.True(t, free.Contains(v), "%s was renamed", v)
				}
			}
		})
	}
}
