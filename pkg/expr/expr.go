// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-symexpr/pkg/util"
	"github.com/consensys/go-symexpr/pkg/util/source/sexp"
)

// Expression represents an arbitrary node within an (immutable) expression
// tree.  Every node exclusively owns its children, hence an expression is
// always a tree and never a general graph.
type Expression interface {
	// Represent returns the canonical textual form of this expression.  This
	// is purely structural and never triggers any computation.
	Represent() string
	// Lisp converts this expression into a simple S-Expression, for example
	// so it can be printed in a fully bracketed form.
	Lisp() sexp.SExp
}

// Numeric represents an expression which evaluates to a number.
type Numeric interface {
	Expression
	// Calculate simplifies this expression as far as the given mode allows,
	// returning an expression which is semantically equal to this one.  In
	// exact mode, values are computed wherever possible (e.g. irreducible
	// fractions become real numbers).  In inexact mode, irreducible symbolic
	// forms are left as they are.  A single call is not guaranteed to reach a
	// fixed point (see Reduce).
	Calculate(exact bool) Numeric
}

// Boolean represents an expression which evaluates to either true or false.
type Boolean interface {
	Expression
	// Calculate simplifies this expression as far as possible.
	Calculate() Boolean
}

// RealNumber captures any numeric expression which is representable as a
// floating-point value.
type RealNumber interface {
	Numeric
	// Float64 returns the floating-point value of this number.
	Float64() float64
}

// NaturalNumber refines RealNumber for expressions which are additionally
// representable as non-negative integers of arbitrary precision.  The
// floating-point value of a natural number is always the conversion of its
// integer value.
type NaturalNumber interface {
	RealNumber
	// BigInt returns (a copy of) the integer value of this number.
	BigInt() *big.Int
}

// Unary captures an expression with exactly one child, which can be
// reconstructed around a replacement child.  Generic tree algorithms (e.g.
// Substitute) operate through this capability rather than enumerating
// concrete node types.
type Unary interface {
	Expression
	// Child returns the only child of this expression.
	Child() Expression
	// Reconstruct an expression of the same kind around a given child.  This
	// panics if the child cannot occupy this position (e.g. a boolean in a
	// numeric position).
	Reconstruct(child Expression) Expression
}

// Binary captures an expression with exactly two children, which can be
// reconstructed around a pair of replacement children.
type Binary interface {
	Expression
	// Children returns the (ordered) children of this expression.
	Children() util.Pair[Expression, Expression]
	// Reconstruct an expression of the same kind around the given children.
	// This panics if either child cannot occupy its position.
	Reconstruct(left Expression, right Expression) Expression
}

// asNumeric narrows an expression to a numeric expression, or panics.
func asNumeric(node string, e Expression) Numeric {
	if n, ok := e.(Numeric); ok {
		return n
	}
	//
	panic(fmt.Sprintf("%s expects a numeric operand (was \"%s\")", node, e.Represent()))
}
