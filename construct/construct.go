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

package construct

import (
	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

// Types

// Named type-variable: `a`
func TVar(name string) *types.Var {
	return types.NewVar(types.NamedVar(name))
}

// Unknown type-variable with the given id: `?`
func TUnknown(id int) *types.Var {
	return types.NewVar(types.UnknownVar(id))
}

// Type constant: `int`
func TInt() *types.Const { return types.Int }

// Type constant: `bool`
func TBool() *types.Const { return types.Bool }

// Function type: `int -> int`
func TArrow(param, ret types.Type) *types.Arrow {
	return types.NewArrow(param, ret)
}

// Curried function type: `int -> int -> int`
//
// The last type is the return type; at least one type must be given.
func TArrowN(ts ...types.Type) types.Type {
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = types.NewArrow(ts[i], t)
	}
	return t
}

// Type scheme over named type-variables: `forall a b . a -> b`
func Forall(names []string, t types.Type) *types.Scheme {
	vars := make([]types.TypeVar, len(names))
	for i, name := range names {
		vars[i] = types.NamedVar(name)
	}
	return types.Forall(vars, t)
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Integer literal: `42`
func Int(value int32) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLiteral, Int: value}
}

// Boolean literal: `true`
func Bool(value bool) *ast.Literal {
	return &ast.Literal{Kind: ast.BoolLiteral, Bool: value}
}

// Application: `f(x)`
func Call(f ast.Expr, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `f(x)(y)`
func CallN(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `fun x -> x`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Curried abstraction: `fun x -> fun y -> x`
func FuncN(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Func{Param: params[i], Body: body}
	}
	return body
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}
