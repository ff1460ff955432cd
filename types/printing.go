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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter(debug bool) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.debug = debug
	return p
}

func (p *typePrinter) Release() {
	p.sb.Reset()
	p.debug = false
	printerPool.Put(p)
}

type typePrinter struct {
	sb    strings.Builder
	debug bool
}

// TypeString returns a string representation of a Type. Unknown type-variables are printed as `?`.
func TypeString(t Type) string {
	p := newTypePrinter(false)
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// DebugString returns a string representation of a Type. Unknown type-variables are printed with their id: `?3`.
func DebugString(t Type) string {
	p := newTypePrinter(true)
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a type scheme: `forall a b . a -> b`
func SchemeString(s *Scheme) string {
	p := newTypePrinter(false)
	schemeString(p, s)
	str := p.sb.String()
	p.Release()
	return str
}

// SubstString returns a string representation of a substitution: `[a: int, b: int -> int]`
func SubstString(s Subst) string {
	p := newTypePrinter(false)
	substString(p, s)
	str := p.sb.String()
	p.Release()
	return str
}

func (t *Var) String() string   { return TypeString(t) }
func (t *Const) String() string { return t.name }
func (t *Arrow) String() string { return TypeString(t) }

func (s *Scheme) String() string { return SchemeString(s) }

func (s Subst) String() string { return SubstString(s) }

func (p *typePrinter) writeVar(v TypeVar) {
	if p.debug {
		p.sb.WriteString(v.DebugString())
	} else {
		p.sb.WriteString(v.String())
	}
}

// Arrows are right-associative; simple is set for the parameter of an arrow.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		p.writeVar(t.TypeVar)

	case *Const:
		p.sb.WriteString(t.name)

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Param)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}

// Monomorphic schemes are printed as their body.
func schemeString(p *typePrinter, s *Scheme) {
	if len(s.Vars) == 0 {
		typeString(p, false, s.Type)
		return
	}
	p.sb.WriteString("forall")
	for _, v := range s.Vars {
		p.sb.WriteByte(' ')
		p.writeVar(v)
	}
	p.sb.WriteString(" . ")
	typeString(p, false, s.Type)
}

func substString(p *typePrinter, s Subst) {
	p.sb.WriteByte('[')
	i := 0
	s.Range(func(v TypeVar, t Type) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.writeVar(v)
		p.sb.WriteString(": ")
		typeString(p, false, t)
		i++
		return true
	})
	p.sb.WriteByte(']')
}
