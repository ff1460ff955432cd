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

	"github.com/wdamron/algw/types"
)

var emptyFrame = immutable.NewSortedMap(nil)

// TypeEnv is a type-environment containing mappings from identifiers to type schemes, organized as a
// stack of lexical scopes (frames).
//
// Lookups search frames from the innermost to the outermost, so inner bindings shadow outer bindings.
// Leaving a scope discards every binding added within it.
//
// A type-environment cannot be used concurrently; Clone may be used to give each thread its own copy.
type TypeEnv struct {
	frames []*immutable.SortedMap
}

// Create an empty type-environment. No scope is open; call NewScope before adding bindings.
func NewTypeEnv() *TypeEnv { return &TypeEnv{} }

// NewScope opens a new innermost scope.
func (e *TypeEnv) NewScope() { e.frames = append(e.frames, emptyFrame) }

// ExitScope closes the innermost scope, discarding its bindings.
//
// Closing a scope which was never opened is a programming error and will panic.
func (e *TypeEnv) ExitScope() {
	if len(e.frames) == 0 {
		panic("ExitScope called without entering any scopes")
	}
	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth returns the number of open scopes.
func (e *TypeEnv) Depth() int { return len(e.frames) }

// Add a binding to the innermost scope. An existing binding for name in the same scope is replaced.
//
// Adding a binding when no scope is open is a programming error and will panic.
func (e *TypeEnv) Add(name string, s *types.Scheme) {
	if len(e.frames) == 0 {
		panic("Add called without entering any scopes")
	}
	top := len(e.frames) - 1
	e.frames[top] = e.frames[top].Set(name, s)
}

// Declare a type for an identifier within the innermost scope.
//
// Type-variables in t which are not free in the environment will be generalized.
func (e *TypeEnv) Declare(name string, t types.Type) { e.Add(name, Generalize(e, t)) }

// Declare a type scheme for an identifier within the innermost scope.
func (e *TypeEnv) DeclareScheme(name string, s *types.Scheme) { e.Add(name, s) }

// Declare a type for an identifier within the innermost scope.
//
// Type-variables will not be generalized.
func (e *TypeEnv) DeclareInvariant(name string, t types.Type) { e.Add(name, types.Mono(t)) }

// Lookup the type scheme for an identifier, searching from the innermost scope outwards.
// A nil scheme is returned if the identifier is unbound.
func (e *TypeEnv) Lookup(name string) *types.Scheme {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if s, ok := e.frames[i].Get(name); ok {
			return s.(*types.Scheme)
		}
	}
	return nil
}

// FreeTypeVars returns the free type-variables of every scheme in every open scope.
func (e *TypeEnv) FreeTypeVars() *types.TypeVarSet {
	vars := types.NewTypeVarSet()
	e.Range(func(_ string, s *types.Scheme) bool {
		vars.InsertSet(s.FreeTypeVars())
		return true
	})
	return vars
}

// Apply a substitution to every scheme in every open scope.
func (e *TypeEnv) Apply(s types.Subst) {
	if s.Len() == 0 {
		return
	}
	for i, frame := range e.frames {
		if frame.Len() == 0 {
			continue
		}
		b := immutable.NewSortedMapBuilder(frame)
		iter := frame.Iterator()
		for !iter.Done() {
			name, scheme := iter.Next()
			b.Set(name, scheme.(*types.Scheme).Apply(s))
		}
		e.frames[i] = b.Map()
	}
}

// Iterate over bindings in every open scope, from the innermost scope outwards; bindings within a scope
// are visited in order of their names. Shadowed bindings are included.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, *types.Scheme) bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		iter := e.frames[i].Iterator()
		for !iter.Done() {
			name, s := iter.Next()
			if !f(name.(string), s.(*types.Scheme)) {
				return
			}
		}
	}
}

// Clone returns a copy of the environment. Scopes opened, closed or modified in the copy do not affect e.
func (e *TypeEnv) Clone() *TypeEnv {
	frames := make([]*immutable.SortedMap, len(e.frames))
	copy(frames, e.frames)
	return &TypeEnv{frames: frames}
}
