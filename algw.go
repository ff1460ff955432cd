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

// algw provides type inference for a small applied lambda calculus with let-polymorphism.
//
// Inference follows Algorithm W: each rule returns a substitution along with the inferred monotype,
// and substitutions are composed explicitly as inference proceeds. Types are immutable; unification
// produces a new substitution rather than mutating type-variables in place.
//
//
// Supported Features:
//
//   * Variables, integer and boolean literals, single-argument functions and applications
//   * Let-bound (generic) values with generalization over the free type-variables of the binding
//   * Predeclared type schemes within caller-built type-environments
//   * Per-expression type caches keyed by expression ids
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Principal type-schemes for functional programs (Damas, Milner, 1982): https://doi.org/10.1145/582153.582176
package algw
