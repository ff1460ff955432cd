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
	"strconv"
	"strings"
)

// TypeVar identifies a type-variable. A type-variable is either named (declared in source, e.g. within
// an explicit scheme) or unknown (allocated during inference and identified by an integer).
//
// TypeVar values are comparable; two type-variables are equal iff both their kind and payload match.
type TypeVar struct {
	name    string
	id      int
	unknown bool
}

// Create a named type-variable.
func NamedVar(name string) TypeVar { return TypeVar{name: name} }

// Create an unknown type-variable with the given id.
func UnknownVar(id int) TypeVar { return TypeVar{id: id, unknown: true} }

// IsUnknown returns true if the type-variable was allocated during inference.
func (v TypeVar) IsUnknown() bool { return v.unknown }

// Name returns the source-level name of a named type-variable, or an empty string.
func (v TypeVar) Name() string { return v.name }

// Id returns the identifier of an unknown type-variable, or 0.
func (v TypeVar) Id() int { return v.id }

// String renders named type-variables by name. Unknown type-variables carry no name and render as `?`.
func (v TypeVar) String() string {
	if v.unknown {
		return "?"
	}
	return v.name
}

// DebugString renders unknown type-variables with their id: `?3`.
func (v TypeVar) DebugString() string {
	if v.unknown {
		return "?" + strconv.Itoa(v.id)
	}
	return v.name
}

// CompareTypeVars orders named type-variables before unknown type-variables, names lexicographically,
// and unknown type-variables by id.
func CompareTypeVars(a, b TypeVar) int {
	switch {
	case a.unknown != b.unknown:
		if a.unknown {
			return 1
		}
		return -1
	case a.unknown:
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	default:
		return strings.Compare(a.name, b.name)
	}
}

// typeVarComparer orders keys of persistent maps keyed by TypeVar.
type typeVarComparer struct{}

func (typeVarComparer) Compare(a, b interface{}) int {
	return CompareTypeVars(a.(TypeVar), b.(TypeVar))
}
