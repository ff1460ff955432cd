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
	"io"
	"log/slog"
	"strings"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/internal/typeutil"
	"github.com/wdamron/algw/types"
)

var errEmptyExpr = errors.New("Empty expression")

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	cacheEnabled bool
	needsReset   bool

	varTracker typeutil.VarTracker
	cache      TypeCache
	logger     *slog.Logger

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{logger: discardLogger.With("section", "infer")}
}

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	ti.cache.reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Set the logger used to trace unification, generalization and results. By default, log records are discarded.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger
	}
	ti.logger = logger.With("section", "infer")
}

// When the type cache is enabled, the type of each sub-expression is recorded by expression id.
// Sub-expression ids should be assigned (see ast.AssignIds) before inference.
//
// By default, the type cache is disabled.
func (ti *InferenceContext) EnableTypeCache(enabled bool) { ti.cacheEnabled = enabled }

// Get the type cache populated by the most recent inference.
func (ti *InferenceContext) Cache() *TypeCache { return &ti.cache }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within an empty type-environment.
func (ti *InferenceContext) Infer(expr ast.Expr) (types.Type, error) {
	return ti.inferRoot(expr, NewTypeEnv())
}

// Infer the type of expr within env. Bindings predeclared in env are visible to expr;
// env itself is not modified.
//
// A type-environment cannot be used concurrently for inference; to share a type-environment
// across threads, clone the shared environment for each thread.
func (ti *InferenceContext) InferWithEnv(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if env == nil {
		env = NewTypeEnv()
	}
	return ti.inferRoot(expr, env.Clone())
}

// Infer the type of expr within an empty type-environment, recording the type of each sub-expression.
// Ids are assigned to a copy of expr, which will be returned along with the populated type cache.
func (ti *InferenceContext) Annotate(expr ast.Expr) (ast.Expr, *TypeCache, error) {
	if ast.IsNil(expr) {
		return nil, nil, errEmptyExpr
	}
	root := ast.CopyExpr(expr)
	cache, err := ti.annotate(root)
	return root, cache, err
}

// Infer the type of expr within an empty type-environment, recording the type of each sub-expression.
// Ids are assigned directly to expr. All sub-expressions of expr must have unique addresses.
func (ti *InferenceContext) AnnotateDirect(expr ast.Expr) (*TypeCache, error) {
	if ast.IsNil(expr) {
		return nil, errEmptyExpr
	}
	return ti.annotate(expr)
}

func (ti *InferenceContext) annotate(root ast.Expr) (*TypeCache, error) {
	ast.AssignIds(root)
	enabled := ti.cacheEnabled
	ti.cacheEnabled = true
	_, err := ti.inferRoot(root, NewTypeEnv())
	ti.cacheEnabled = enabled
	cache := &TypeCache{m: ti.cache.mapping()}
	return cache, err
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (types.Type, error) {
	if ti.needsReset {
		ti.reset()
	}
	if ti.logger == nil {
		ti.logger = discardLogger
	}
	ti.needsReset = true
	s, t, err := ti.infer(env, root)
	if err != nil {
		ti.logger.Info("inference failed", "expr", ast.ExprString(ti.invalid), "error", err)
		return nil, err
	}
	t = t.Apply(s)
	if ti.cacheEnabled {
		ti.cache.apply(s)
	}
	ti.logger.Debug("inferred", "type", types.DebugString(t), "vars", ti.varTracker.Count())
	return t, nil
}

// render a substitution with unknown type-variables distinguished by id
func debugSubstString(s types.Subst) string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	s.Range(func(v types.TypeVar, t types.Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.DebugString())
		sb.WriteString(": ")
		sb.WriteString(types.DebugString(t))
		i++
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
