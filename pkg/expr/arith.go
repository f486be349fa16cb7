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
	"math"

	"github.com/consensys/go-symexpr/pkg/util"
	util_math "github.com/consensys/go-symexpr/pkg/util/math"
	"github.com/consensys/go-symexpr/pkg/util/source/sexp"
)

// ============================================================================
// Square Root
// ============================================================================

// SquareRoot represents the (positive) square root of a given expression.
type SquareRoot struct {
	Arg Numeric
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Unary = (*SquareRoot)(nil)

// Sqrt constructs the square root of a given expression.
func Sqrt(arg Numeric) *SquareRoot {
	return &SquareRoot{arg}
}

// Calculate implementation for Numeric interface.  The square root of a natural
// number is computed as a real number in exact mode.  In inexact mode, it
// becomes a natural number only for perfect squares, and is otherwise left
// symbolic.
func (p *SquareRoot) Calculate(exact bool) Numeric {
	arg := p.Arg.Calculate(exact)
	//
	switch a := arg.(type) {
	case NaturalNumber:
		if exact {
			return Real(math.Sqrt(a.Float64()))
		} else if root, ok := util_math.SqrtExact(a.BigInt()); ok {
			// Decided on the integer root rather than on a float64 root with
			// zero fractional part, which misclassifies values beyond 2^53.
			return NewNatural(root)
		}
	case RealNumber:
		return Real(math.Sqrt(a.Float64()))
	}
	// Irrational, or not yet resolved.
	if arg == p.Arg {
		return p
	}
	//
	return &SquareRoot{arg}
}

// Child implementation for Unary interface.
func (p *SquareRoot) Child() Expression { return p.Arg }

// Lisp implementation for Expression interface.
func (p *SquareRoot) Lisp() sexp.SExp {
	return sexp.NewApplication("sqrt", p.Arg.Lisp())
}

// Reconstruct implementation for Unary interface.
func (p *SquareRoot) Reconstruct(child Expression) Expression {
	return &SquareRoot{asNumeric("sqrt", child)}
}

// Represent implementation for Expression interface.
func (p *SquareRoot) Represent() string {
	return fmt.Sprintf("sqrt(%s)", p.Arg.Represent())
}

// ============================================================================
// Addition
// ============================================================================

// Addition represents the sum of two expressions.
type Addition struct {
	Lhs Numeric
	Rhs Numeric
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Binary = (*Addition)(nil)

// Add constructs the sum of two expressions.
func Add(lhs Numeric, rhs Numeric) *Addition {
	return &Addition{lhs, rhs}
}

// Calculate implementation for Numeric interface.  The sum of two natural
// numbers is a natural number, whilst the sum of a natural and a real number
// (in either order) or of two real numbers is a real number.
func (p *Addition) Calculate(exact bool) Numeric {
	var (
		lhs = p.Lhs.Calculate(exact)
		rhs = p.Rhs.Calculate(exact)
	)
	//
	if l, ok := lhs.(NaturalNumber); ok {
		if r, ok := rhs.(NaturalNumber); ok {
			sum := l.BigInt()
			//
			return NewNatural(sum.Add(sum, r.BigInt()))
		}
	}
	//
	if l, ok := lhs.(RealNumber); ok {
		if r, ok := rhs.(RealNumber); ok {
			return Real(l.Float64() + r.Float64())
		}
	}
	// Retain the partially reduced operands.
	if lhs == p.Lhs && rhs == p.Rhs {
		return p
	}
	//
	return &Addition{lhs, rhs}
}

// Children implementation for Binary interface.
func (p *Addition) Children() util.Pair[Expression, Expression] {
	return util.NewPair[Expression, Expression](p.Lhs, p.Rhs)
}

// Lisp implementation for Expression interface.
func (p *Addition) Lisp() sexp.SExp {
	return sexp.NewApplication("+", p.Lhs.Lisp(), p.Rhs.Lisp())
}

// Reconstruct implementation for Binary interface.
func (p *Addition) Reconstruct(lhs Expression, rhs Expression) Expression {
	return &Addition{asNumeric("+", lhs), asNumeric("+", rhs)}
}

// Represent implementation for Expression interface.
func (p *Addition) Represent() string {
	return fmt.Sprintf("%s+%s", p.Lhs.Represent(), p.Rhs.Represent())
}
