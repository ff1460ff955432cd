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

package ast

import "strconv"

// ExprId identifies an expression within a tree. Ids are assigned in preorder, starting from 1.
type ExprId uint32

// DummyId is the id of an expression which has not been assigned an id.
const DummyId ExprId = 0

func (id ExprId) String() string { return "#" + strconv.FormatUint(uint64(id), 10) }

// AssignIds numbers every expression in the tree rooted at e, in preorder, starting from 1.
// Existing ids are overwritten. The number of assigned ids is returned.
func AssignIds(e Expr) int {
	var next ExprId
	WalkExpr(e, func(sub Expr) {
		next++
		sub.setId(next)
	})
	return int(next)
}
