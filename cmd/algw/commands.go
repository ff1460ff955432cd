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

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wdamron/algw"
	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/internal/exprfile"
	"github.com/wdamron/algw/types"
)

func inferAction(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	files, err := inputFiles(cmd)
	if err != nil {
		return err
	}

	env := algw.NewTypeEnv()
	if path := cmd.String("env"); path != "" {
		if env, err = loadEnv(path); err != nil {
			return err
		}
	}

	ti := algw.NewContext()
	ti.SetLogger(opts.logger)
	showTypes := cmd.Bool("types")

	total, failed := 0, 0
	for _, path := range files {
		exprs, err := readExprs(path)
		if err != nil {
			return err
		}
		for _, expr := range exprs {
			total++
			if !inferOne(ti, env, expr, showTypes, opts.out) {
				failed++
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to type-check", failed, total)
	}
	return nil
}

func inferOne(ti *algw.InferenceContext, env *algw.TypeEnv, expr ast.Expr, showTypes bool, out *printer) bool {
	subject := ast.ExprString(expr)
	if !showTypes {
		t, err := ti.InferWithEnv(expr, env)
		if err != nil {
			out.failed(subject, err)
			return false
		}
		out.typed(subject, t.String())
		return true
	}

	ast.AssignIds(expr)
	ti.EnableTypeCache(true)
	defer ti.EnableTypeCache(false)
	t, err := ti.InferWithEnv(expr, env)
	if err != nil {
		out.failed(subject, err)
		return false
	}
	out.typed(subject, t.String())
	ast.WalkExpr(expr, func(e ast.Expr) {
		if sub, ok := ti.Cache().Read(e.Id()); ok {
			out.line(fmt.Sprintf("  %s %s : %s", e.Id(), ast.ExprString(e), types.DebugString(sub)))
		}
	})
	return true
}

func mguAction(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	files, err := inputFiles(cmd)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range files {
		pairs, err := readInput(path, exprfile.ReadTypePairs)
		if err != nil {
			return err
		}
		for _, p := range pairs {
			subject := fmt.Sprintf("mgu of '%s' and '%s'", p.Left, p.Right)
			s, err := algw.MostGeneralUnifier(p.Left, p.Right)
			if err != nil {
				opts.logger.Debug("unification failed", "section", "mgu", "error", err)
				opts.out.failed(subject, err)
				failed++
				continue
			}
			opts.out.line(fmt.Sprintf("%s is '%s'", subject, s))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d unifications failed", failed)
	}
	return nil
}

func substAction(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	files, err := inputFiles(cmd)
	if err != nil {
		return err
	}

	for _, path := range files {
		substs, err := readInput(path, exprfile.ReadSubsts)
		if err != nil {
			return err
		}
		if len(files) > 1 {
			opts.out.heading(path)
		}
		for _, s := range substs {
			opts.out.line(s.String())
		}
	}
	return nil
}

func loadEnv(path string) (*algw.TypeEnv, error) {
	bindings, err := readInput(path, exprfile.ReadEnv)
	if err != nil {
		return nil, err
	}
	env := algw.NewTypeEnv()
	env.NewScope()
	for _, b := range bindings {
		if b.Scheme != nil {
			env.DeclareScheme(b.Name, b.Scheme)
		} else {
			env.Declare(b.Name, b.Type)
		}
	}
	return env, nil
}

func readExprs(path string) ([]ast.Expr, error) { return readInput(path, exprfile.ReadExprs) }
