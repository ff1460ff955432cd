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

// Package exprfile decodes expression trees, types and type-environments from YAML documents.
//
// Expressions:
//
//	42                                 integer literal
//	true                               boolean literal
//	x                                  variable
//	{fun: x, body: E}                  abstraction
//	{app: E, arg: E}                   application
//	{let: x, value: E, body: E}        let-binding
//
// Types:
//
//	int, bool                          type constants
//	a                                  named type-variable
//	{param: T, return: T}              function type
//	[T1, T2, T3]                       curried function type: T1 -> T2 -> T3
//	{forall: [a, b], type: T}          type scheme (environments only)
package exprfile

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

// Binding is a declaration read from an environment document. Exactly one of Type or Scheme is set;
// free type-variables of Type are expected to be generalized by the caller.
type Binding struct {
	Name   string
	Type   types.Type
	Scheme *types.Scheme
}

// TypePair is a pair of types read from a unification document: `{left: T, right: T}`
type TypePair struct {
	Left, Right types.Type
}

// ReadExprs decodes one expression from each document in r.
func ReadExprs(r io.Reader) ([]ast.Expr, error) {
	var exprs []ast.Expr
	err := eachDocument(r, func(n *yaml.Node) error {
		e, err := DecodeExpr(n)
		if err != nil {
			return err
		}
		exprs = append(exprs, e)
		return nil
	})
	return exprs, err
}

// ReadEnv decodes bindings from each document in r. Each document must be a mapping from names to
// types or type schemes. Bindings are returned in document order.
func ReadEnv(r io.Reader) ([]Binding, error) {
	var bindings []Binding
	err := eachDocument(r, func(n *yaml.Node) error {
		if n.Kind != yaml.MappingNode {
			return errorf(n, "environment must be a mapping of names to types")
		}
		for i := 0; i < len(n.Content); i += 2 {
			name, err := decodeName(n.Content[i])
			if err != nil {
				return err
			}
			value := resolve(n.Content[i+1])
			if value.Kind == yaml.MappingNode && hasKey(value, "forall") {
				s, err := DecodeScheme(value)
				if err != nil {
					return fmt.Errorf("binding %s: %w", name, err)
				}
				bindings = append(bindings, Binding{Name: name, Scheme: s})
				continue
			}
			t, err := DecodeType(value)
			if err != nil {
				return fmt.Errorf("binding %s: %w", name, err)
			}
			bindings = append(bindings, Binding{Name: name, Type: t})
		}
		return nil
	})
	return bindings, err
}

// ReadTypePairs decodes a pair of types from each document in r.
func ReadTypePairs(r io.Reader) ([]TypePair, error) {
	var pairs []TypePair
	err := eachDocument(r, func(n *yaml.Node) error {
		fields, err := decodeFields(n, "left", "right")
		if err != nil {
			return err
		}
		if fields["left"] == nil || fields["right"] == nil {
			return errorf(n, "type pair requires left and right")
		}
		left, err := DecodeType(fields["left"])
		if err != nil {
			return err
		}
		right, err := DecodeType(fields["right"])
		if err != nil {
			return err
		}
		pairs = append(pairs, TypePair{Left: left, Right: right})
		return nil
	})
	return pairs, err
}

// ReadSubsts decodes a substitution from each document in r. Each document must be a mapping from
// type-variable names to types.
func ReadSubsts(r io.Reader) ([]types.Subst, error) {
	var substs []types.Subst
	err := eachDocument(r, func(n *yaml.Node) error {
		if n.Kind != yaml.MappingNode {
			return errorf(n, "substitution must be a mapping of type-variables to types")
		}
		pairs := make([]types.SubstPair, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			name, err := decodeName(n.Content[i])
			if err != nil {
				return err
			}
			t, err := DecodeType(n.Content[i+1])
			if err != nil {
				return err
			}
			pairs = append(pairs, types.SubstPair{Var: types.NamedVar(name), Type: t})
		}
		substs = append(substs, types.NewSubst(pairs...))
		return nil
	})
	return substs, err
}

// DecodeExpr decodes an expression tree from a YAML node.
func DecodeExpr(n *yaml.Node) (ast.Expr, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			v, err := strconv.ParseInt(n.Value, 0, 32)
			if err != nil {
				return nil, errorf(n, "integer literal %s out of range", n.Value)
			}
			return &ast.Literal{Kind: ast.IntLiteral, Int: int32(v)}, nil
		case "!!bool":
			var v bool
			if err := n.Decode(&v); err != nil {
				return nil, errorf(n, "invalid boolean literal %s", n.Value)
			}
			return &ast.Literal{Kind: ast.BoolLiteral, Bool: v}, nil
		case "!!str":
			name, err := decodeName(n)
			if err != nil {
				return nil, err
			}
			return &ast.Var{Name: name}, nil
		}
		return nil, errorf(n, "unsupported literal %s (%s)", n.Value, n.ShortTag())

	case yaml.MappingNode:
		switch {
		case hasKey(n, "fun"):
			fields, err := decodeFields(n, "fun", "body")
			if err != nil {
				return nil, err
			}
			param, err := decodeName(fields["fun"])
			if err != nil {
				return nil, err
			}
			body, err := decodeChild(n, fields, "body")
			if err != nil {
				return nil, err
			}
			return &ast.Func{Param: param, Body: body}, nil

		case hasKey(n, "let"):
			fields, err := decodeFields(n, "let", "value", "body")
			if err != nil {
				return nil, err
			}
			name, err := decodeName(fields["let"])
			if err != nil {
				return nil, err
			}
			value, err := decodeChild(n, fields, "value")
			if err != nil {
				return nil, err
			}
			body, err := decodeChild(n, fields, "body")
			if err != nil {
				return nil, err
			}
			return &ast.Let{Var: name, Value: value, Body: body}, nil

		case hasKey(n, "app"):
			fields, err := decodeFields(n, "app", "arg")
			if err != nil {
				return nil, err
			}
			f, err := decodeChild(n, fields, "app")
			if err != nil {
				return nil, err
			}
			arg, err := decodeChild(n, fields, "arg")
			if err != nil {
				return nil, err
			}
			return &ast.Call{Func: f, Arg: arg}, nil
		}
		return nil, errorf(n, "expression mapping requires one of fun, let or app")
	}
	return nil, errorf(n, "invalid expression")
}

// DecodeType decodes a monotype from a YAML node.
func DecodeType(n *yaml.Node) (types.Type, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		name, err := decodeName(n)
		if err != nil {
			return nil, err
		}
		switch name {
		case "int":
			return types.Int, nil
		case "bool":
			return types.Bool, nil
		}
		return types.NewVar(types.NamedVar(name)), nil

	case yaml.SequenceNode:
		if len(n.Content) < 2 {
			return nil, errorf(n, "function type requires at least two types")
		}
		t, err := DecodeType(n.Content[len(n.Content)-1])
		if err != nil {
			return nil, err
		}
		for i := len(n.Content) - 2; i >= 0; i-- {
			param, err := DecodeType(n.Content[i])
			if err != nil {
				return nil, err
			}
			t = types.NewArrow(param, t)
		}
		return t, nil

	case yaml.MappingNode:
		fields, err := decodeFields(n, "param", "return")
		if err != nil {
			return nil, err
		}
		if fields["param"] == nil || fields["return"] == nil {
			return nil, errorf(n, "function type requires param and return")
		}
		param, err := DecodeType(fields["param"])
		if err != nil {
			return nil, err
		}
		ret, err := DecodeType(fields["return"])
		if err != nil {
			return nil, err
		}
		return types.NewArrow(param, ret), nil
	}
	return nil, errorf(n, "invalid type")
}

// DecodeScheme decodes a type scheme from a YAML node. A plain type is decoded as a monomorphic scheme.
func DecodeScheme(n *yaml.Node) (*types.Scheme, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode || !hasKey(n, "forall") {
		t, err := DecodeType(n)
		if err != nil {
			return nil, err
		}
		return types.Mono(t), nil
	}
	fields, err := decodeFields(n, "forall", "type")
	if err != nil {
		return nil, err
	}
	if fields["type"] == nil {
		return nil, errorf(n, "type scheme requires type")
	}
	var names []string
	if err := fields["forall"].Decode(&names); err != nil {
		return nil, errorf(fields["forall"], "forall requires a list of type-variable names")
	}
	vars := make([]types.TypeVar, len(names))
	for i, name := range names {
		vars[i] = types.NamedVar(name)
	}
	t, err := DecodeType(fields["type"])
	if err != nil {
		return nil, err
	}
	return types.Forall(vars, t), nil
}

func eachDocument(r io.Reader, f func(*yaml.Node) error) error {
	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding document: %w", err)
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			continue
		}
		if err := f(doc.Content[0]); err != nil {
			return err
		}
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

// map the allowed keys of a mapping node to their values; unknown or repeated keys are rejected
func decodeFields(n *yaml.Node, keys ...string) (map[string]*yaml.Node, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(keys))
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i]
		allowed := false
		for _, k := range keys {
			if key.Value == k {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, errorf(key, "unexpected key %s", key.Value)
		}
		if _, dup := fields[key.Value]; dup {
			return nil, errorf(key, "duplicate key %s", key.Value)
		}
		fields[key.Value] = n.Content[i+1]
	}
	return fields, nil
}

func decodeChild(parent *yaml.Node, fields map[string]*yaml.Node, key string) (ast.Expr, error) {
	child := fields[key]
	if child == nil {
		return nil, errorf(parent, "missing %s", key)
	}
	return DecodeExpr(child)
}

func decodeName(n *yaml.Node) (string, error) {
	if n == nil {
		return "", errors.New("missing name")
	}
	n = resolve(n)
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" || n.Value == "" {
		return "", errorf(n, "expected a name")
	}
	return n.Value, nil
}

func errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("line %d, column %d: %s", n.Line, n.Column, fmt.Sprintf(format, args...))
}
