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
	"errors"

	"github.com/wdamron/algw/types"
)

// Kinds of type errors. Each error returned by inference or unification matches exactly one kind with errors.Is.
var (
	ErrUnboundVariable     = errors.New("unbound variable")
	ErrUnificationMismatch = errors.New("unification mismatch")
	ErrOccursCheck         = errors.New("occurs check failure")
)

// UnboundVariableError is returned when a variable is referenced outside the scope of any binding for it.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Unbound variable " + e.Name }

func (e *UnboundVariableError) Is(target error) bool { return target == ErrUnboundVariable }

// UnificationError is returned when two types have incompatible shapes.
type UnificationError struct {
	Left, Right types.Type
}

func (e *UnificationError) Error() string {
	return "Failed to unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}

func (e *UnificationError) Is(target error) bool { return target == ErrUnificationMismatch }

// OccursCheckError is returned when binding a type-variable would construct an infinite type.
type OccursCheckError struct {
	Var  types.TypeVar
	Type types.Type
}

func (e *OccursCheckError) Error() string {
	return "Occurs check failed: " + e.Var.String() + " occurs in " + types.TypeString(e.Type)
}

func (e *OccursCheckError) Is(target error) bool { return target == ErrOccursCheck }
