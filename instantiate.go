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
	"github.com/wdamron/algw/internal/typeutil"
	"github.com/wdamron/algw/types"
)

// Instantiate a type scheme, replacing each bound type-variable with a fresh unknown type-variable
// allocated by the context.
//
// Each call produces type-variables distinct from those produced by every previous call within the
// same run.
func (ti *InferenceContext) Instantiate(s *types.Scheme) types.Type {
	return instantiate(&ti.varTracker, s)
}

func instantiate(vt *typeutil.VarTracker, s *types.Scheme) types.Type {
	if s.IsMono() {
		return s.Type
	}
	pairs := make([]types.SubstPair, len(s.Vars))
	for i, v := range s.Vars {
		pairs[i] = types.SubstPair{Var: v, Type: vt.NewVar()}
	}
	return s.Type.Apply(types.NewSubst(pairs...))
}
