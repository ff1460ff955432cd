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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/construct"
)

func sample() Expr {
	return construct.Let("id", construct.Func("x", construct.Var("x")),
		construct.Call(construct.Var("id"), construct.Call(construct.Var("id"), construct.Int(42))))
}

func TestAssignIds(t *testing.T) {
	expr := sample()
	WalkExpr(expr, func(e Expr) { assert.Equal(t, DummyId, e.Id()) })

	n := AssignIds(expr)
	require.Equal(t, 8, n)

	var names []string
	var ids []ExprId
	WalkExpr(expr, func(e Expr) {
		names = append(names, e.ExprName())
		ids = append(ids, e.Id())
	})
	assert.Equal(t, []string{"Let", "Func", "Var", "Call", "Var", "Call", "Var", "Literal"}, names)
	assert.Equal(t, []ExprId{1, 2, 3, 4, 5, 6, 7, 8}, ids)
	assert.Equal(t, "#3", ids[2].String())

	// Re-assigning restarts from 1:
	AssignIds(expr.(*Let).Body)
	assert.Equal(t, ExprId(1), expr.(*Let).Body.Id())
}

func TestCopyExpr(t *testing.T) {
	expr := sample()
	AssignIds(expr)

	cp := CopyExpr(expr)
	require.NotSame(t, expr, cp)
	assert.Equal(t, ExprString(expr), ExprString(cp))

	var orig, copied []Expr
	WalkExpr(expr, func(e Expr) { orig = append(orig, e) })
	WalkExpr(cp, func(e Expr) { copied = append(copied, e) })
	require.Equal(t, len(orig), len(copied))
	for i := range orig {
		assert.NotSame(t, orig[i], copied[i])
		assert.Equal(t, orig[i].Id(), copied[i].Id())
	}

	assert.Nil(t, CopyExpr(nil))
}

func TestExprString(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{construct.Int(-7), "-7"},
		{construct.Bool(false), "false"},
		{sample(), "let id = fun x -> x in id(id(42))"},
		{construct.Call(construct.Func("x", construct.Var("x")), construct.Bool(true)), "(fun x -> x)(true)"},
		{construct.FuncN([]string{"f", "x"}, construct.Call(construct.Var("f"), construct.Var("x"))), "fun f -> fun x -> f(x)"},
		{construct.CallN(construct.Var("f"), construct.Int(1), construct.Int(2)), "f(1)(2)"},
	}
	for _, c := range cases {
		if s := ExprString(c.expr); s != c.want {
			t.Fatalf("expr: %s", s)
		}
	}
}

func TestNilNodes(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil((*Var)(nil)))
	assert.True(t, IsNil((*Let)(nil)))
	assert.False(t, IsNil(construct.Int(1)))

	expr := construct.Call(construct.Var("f"), (*Literal)(nil))
	assert.Equal(t, "f(<nil>)", ExprString(expr))
	assert.Equal(t, 2, AssignIds(expr))
	assert.Nil(t, CopyExpr((*Var)(nil)))
	assert.Nil(t, CopyExpr(expr).(*Call).Arg)
}
