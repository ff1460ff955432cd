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

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

func TestTypeCache(t *testing.T) {
	var zero algw.TypeCache
	assert.Equal(t, 0, zero.Len())
	_, ok := zero.Read(1)
	assert.False(t, ok)

	cache := algw.NewTypeCache()
	cache.Write(3, TInt())
	cache.Write(1, TBool())
	cache.Write(3, TArrow(TInt(), TInt()))
	require.Equal(t, 2, cache.Len())

	ty, ok := cache.Read(3)
	require.True(t, ok)
	assert.Equal(t, "int -> int", ty.String())

	var ids []ast.ExprId
	cache.Range(func(id ast.ExprId, _ types.Type) bool {
		ids = append(ids, id)
		return false
	})
	assert.Equal(t, []ast.ExprId{1}, ids)
}

func TestZeroContext(t *testing.T) {
	var ctx algw.InferenceContext
	ty, err := ctx.Infer(Let("x", Int(1), Var("x")))
	require.NoError(t, err)
	assert.Equal(t, "int", ty.String())
}
