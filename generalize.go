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
	"github.com/wdamron/algw/types"
)

// Generalize t into a type scheme quantified over every type-variable which is free in t but not free in env.
//
// Bound type-variables are listed in the order given by types.CompareTypeVars.
func Generalize(env *TypeEnv, t types.Type) *types.Scheme {
	vars := types.FreeTypeVars(t)
	if vars.Empty() {
		return types.Mono(t)
	}
	vars.RemoveSet(env.FreeTypeVars())
	return types.Forall(vars.Slice(), t)
}

func (ti *InferenceContext) generalize(env *TypeEnv, t types.Type) *types.Scheme {
	s := Generalize(env, t)
	ti.logger.Debug("generalized", "type", types.DebugString(t), "vars", len(s.Vars))
	return s
}
