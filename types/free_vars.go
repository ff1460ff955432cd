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

package types

import (
	"github.com/hashicorp/go-set/v3"
)

// TypeVarSet is an ordered set of type-variables. Iteration follows CompareTypeVars.
type TypeVarSet = set.TreeSet[TypeVar]

// Create an empty set of type-variables.
func NewTypeVarSet() *TypeVarSet { return set.NewTreeSet[TypeVar](CompareTypeVars) }

// Create a set containing the given type-variables.
func TypeVarSetOf(vars ...TypeVar) *TypeVarSet { return set.TreeSetFrom[TypeVar](vars, CompareTypeVars) }

// FreeTypeVars returns the type-variables occurring in t.
func FreeTypeVars(t Type) *TypeVarSet {
	vars := NewTypeVarSet()
	t.collectFreeVars(vars)
	return vars
}

// CollectFreeTypeVars adds the type-variables occurring in t to vars.
func CollectFreeTypeVars(vars *TypeVarSet, t Type) { t.collectFreeVars(vars) }

func (t *Var) collectFreeVars(vars *TypeVarSet) { vars.Insert(t.TypeVar) }

func (t *Const) collectFreeVars(vars *TypeVarSet) {}

func (t *Arrow) collectFreeVars(vars *TypeVarSet) {
	t.Param.collectFreeVars(vars)
	t.Return.collectFreeVars(vars)
}
