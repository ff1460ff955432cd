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
	"github.com/stretchr/testify/require"

	"github.com/wdamron/algw"
	. "github.com/wdamron/algw/construct"

	"github.com/wdamron/algw/types"
)

func TestTypeEnvScopes(t *testing.T) {
	env := algw.NewTypeEnv()
	assert.Equal(t, 0, env.Depth())
	assert.Nil(t, env.Lookup("x"))

	env.NewScope()
	env.DeclareInvariant("x", TInt())
	env.NewScope()
	assert.Equal(t, "int", env.Lookup("x").String())

	// Inner bindings shadow outer bindings until the inner scope is exited:
	env.DeclareInvariant("x", TBool())
	assert.Equal(t, "bool", env.Lookup("x").String())
	env.ExitScope()
	assert.Equal(t, "int", env.Lookup("x").String())

	// Re-adding within the same scope replaces the binding:
	env.DeclareInvariant("x", TArrow(TInt(), TInt()))
	assert.Equal(t, "int -> int", env.Lookup("x").String())
	env.ExitScope()
	assert.Nil(t, env.Lookup("x"))
	assert.Equal(t, 0, env.Depth())
}

func TestTypeEnvMisuse(t *testing.T) {
	env := algw.NewTypeEnv()
	assert.PanicsWithValue(t, "ExitScope called without entering any scopes", env.ExitScope)
	assert.PanicsWithValue(t, "Add called without entering any scopes", func() {
		env.Add("x", types.Mono(TInt()))
	})
}

func TestTypeEnvDeclare(t *testing.T) {
	env := algw.NewTypeEnv()
	env.NewScope()
	env.DeclareInvariant("y", TVar("b"))
	env.Declare("f", TArrow(TVar("a"), TVar("b")))

	// b is free in the environment, so only a is generalized:
	s := env.Lookup("f")
	require.NotNil(t, s)
	assert.Equal(t, "forall a . a -> b", s.String())

	free := env.FreeTypeVars()
	assert.Equal(t, []types.TypeVar{types.NamedVar("b")}, free.Slice())

	env.Apply(types.NewSubst(
		types.SubstPair{Var: types.NamedVar("a"), Type: TInt()},
		types.SubstPair{Var: types.NamedVar("b"), Type: TBool()},
	))
	assert.Equal(t, "forall a . a -> bool", env.Lookup("f").String())
	assert.Equal(t, "bool", env.Lookup("y").String())
	assert.True(t, env.FreeTypeVars().Empty())
}

func TestTypeEnvClone(t *testing.T) {
	env := algw.NewTypeEnv()
	env.NewScope()
	env.DeclareInvariant("x", TVar("a"))

	clone := env.Clone()
	clone.DeclareInvariant("y", TInt())
	clone.Apply(types.SingletonSubst(types.NamedVar("a"), TBool()))
	clone.NewScope()
	clone.DeclareInvariant("z", TInt())

	assert.Equal(t, 1, env.Depth())
	assert.Equal(t, "a", env.Lookup("x").String())
	assert.Nil(t, env.Lookup("y"))
	assert.Nil(t, env.Lookup("z"))
	assert.Equal(t, "bool", clone.Lookup("x").String())

	names := []string{}
	clone.Range(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"z", "x", "y"}, names)
}

func TestTypeEnvApplyIdentity(t *testing.T) {
	env := algw.NewTypeEnv()
	env.NewScope()
	env.DeclareScheme("id", Forall([]string{"a"}, TArrow(TVar("a"), TVar("a"))))
	before := env.Lookup("id")
	env.Apply(types.EmptySubst)
	assert.Same(t, before, env.Lookup("id"))

	// Bound type-variables are never substituted:
	env.Apply(types.SingletonSubst(types.NamedVar("a"), TInt()))
	assert.True(t, before.Equal(env.Lookup("id")))
}
