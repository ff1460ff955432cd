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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

type exprIdComparer struct{}

func (exprIdComparer) Compare(a, b interface{}) int {
	x, y := a.(ast.ExprId), b.(ast.ExprId)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

var emptyCacheMap = immutable.NewSortedMap(exprIdComparer{})

// TypeCache records the monotype inferred for each sub-expression, keyed by expression id.
//
// The zero value is an empty cache.
type TypeCache struct {
	m *immutable.SortedMap
}

// Create an empty type cache.
func NewTypeCache() *TypeCache { return &TypeCache{m: emptyCacheMap} }

func (c *TypeCache) mapping() *immutable.SortedMap {
	if c.m == nil {
		c.m = emptyCacheMap
	}
	return c.m
}

// Write records t as the type of the expression with the given id, replacing any previous entry.
func (c *TypeCache) Write(id ast.ExprId, t types.Type) { c.m = c.mapping().Set(id, t) }

// Read the recorded type of the expression with the given id.
func (c *TypeCache) Read(id ast.ExprId) (types.Type, bool) {
	t, ok := c.mapping().Get(id)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Len returns the number of recorded entries.
func (c *TypeCache) Len() int { return c.mapping().Len() }

// Iterate over entries in order of expression ids.
// If f returns false, iteration will be stopped.
func (c *TypeCache) Range(f func(ast.ExprId, types.Type) bool) {
	iter := c.mapping().Iterator()
	for !iter.Done() {
		id, t := iter.Next()
		if !f(id.(ast.ExprId), t.(types.Type)) {
			return
		}
	}
}

// apply s to every recorded type
func (c *TypeCache) apply(s types.Subst) {
	if s.Len() == 0 || c.Len() == 0 {
		return
	}
	b := immutable.NewSortedMapBuilder(c.m)
	c.Range(func(id ast.ExprId, t types.Type) bool {
		b.Set(id, t.Apply(s))
		return true
	})
	c.m = b.Map()
}

func (c *TypeCache) reset() { c.m = emptyCacheMap }
