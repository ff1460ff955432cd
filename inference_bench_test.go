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

	. "github.com/wdamron/algw"
	. "github.com/wdamron/algw/construct"
)

func BenchmarkNestedLet(b *testing.B) {
	env := NewTypeEnv()
	ctx := NewContext()

	env.NewScope()
	env.Declare("add", TArrowN(TInt(), TInt(), TInt()))
	env.DeclareScheme("if", Forall([]string{"a"}, TArrowN(TBool(), TVar("a"), TVar("a"), TVar("a"))))

	x := Var("x")
	id := Var("id")
	expr := Let("id", Func("x", x),
		Let("twice", FuncN([]string{"f", "x"}, Call(Var("f"), Call(Var("f"), x))),
			Let("inc", Func("x", CallN(Var("add"), x, Int(1))),
				CallN(Var("if"),
					Call(id, Bool(true)),
					CallN(Var("twice"), Var("inc"), Call(id, Int(1))),
					CallN(Var("twice"), id, Int(2))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.InferWithEnv(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIdentityChain(b *testing.B) {
	ctx := NewContext()

	var expr = Call(Var("id"), Int(0))
	for i := 0; i < 32; i++ {
		expr = Call(Var("id"), expr)
	}
	root := Let("id", Func("x", Var("x")), expr)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(root)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}
