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
	util_math "github.com/consensys/go-symexpr/pkg/util/math"
	"github.com/consensys/go-symexpr/pkg/util/source/sexp"
)

var bigOne = big.NewInt(1)

// Fraction represents the division of a numerator by a denominator.
type Fraction struct {
	Numerator   Numeric
	Denominator Numeric
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Binary = (*Fraction)(nil)

// Frac constructs the fraction of two expressions.
func Frac(numerator Numeric, denominator Numeric) *Fraction {
	return &Fraction{numerator, denominator}
}

// Calculate implementation for Numeric interface.  A fraction of natural
// numbers becomes a natural number when the numerator is divisible by the
// denominator.  Otherwise, it is reduced by the greatest common divisor of
// both sides (where that exceeds one) or, failing that, computed as a real
// number in exact mode only.  A zero denominator is never divided, hence
// "n/0" is either left as is or computed under IEEE rules (i.e. giving an
// infinity or NaN).
func (p *Fraction) Calculate(exact bool) Numeric {
	var (
		num = p.Numerator.Calculate(exact)
		den = p.Denominator.Calculate(exact)
	)
	//
	if n, ok := num.(NaturalNumber); ok {
		if d, ok := den.(NaturalNumber); ok {
			if r := reduceFraction(n.BigInt(), d.BigInt()); r != nil {
				return r
			} else if exact {
				return Real(n.Float64() / d.Float64())
			}
			//
			return p.rebuild(num, den)
		}
	}
	//
	if n, ok := num.(RealNumber); ok {
		if d, ok := den.(RealNumber); ok {
			return Real(n.Float64() / d.Float64())
		}
	}
	//
	return p.rebuild(num, den)
}

// Children implementation for Binary interface.
func (p *Fraction) Children() util.Pair[Expression, Expression] {
	return util.NewPair[Expression, Expression](p.Numerator, p.Denominator)
}

// Lisp implementation for Expression interface.
func (p *Fraction) Lisp() sexp.SExp {
	return sexp.NewApplication("/", p.Numerator.Lisp(), p.Denominator.Lisp())
}

// Reconstruct implementation for Binary interface.
func (p *Fraction) Reconstruct(numerator Expression, denominator Expression) Expression {
	return &Fraction{asNumeric("/", numerator), asNumeric("/", denominator)}
}

// Represent implementation for Expression interface.
func (p *Fraction) Represent() string {
	return fmt.Sprintf("(%s/%s)", p.Numerator.Represent(), p.Denominator.Represent())
}

func (p *Fraction) rebuild(num Numeric, den Numeric) *Fraction {
	if num == p.Numerator && den == p.Denominator {
		return p
	}
	//
	return &Fraction{num, den}
}

// reduceFraction attempts to simplify the fraction n/d of two natural numbers.
// Exact division takes priority over reduction by the greatest common divisor.
// This returns nil when no (further) simplification is possible.
func reduceFraction(n *big.Int, d *big.Int) Numeric {
	var q, r big.Int
	//
	if d.Sign() == 0 {
		return nil
	}
	// Check whether divisible
	if q.QuoRem(n, d, &r); r.Sign() == 0 {
		return NewNatural(&q)
	}
	// Try to simplify the fraction
	gcd, err := util_math.Gcd(n, d)
	if err != nil {
		// Unreachable, since d is a natural number.
		panic(err)
	} else if gcd.Cmp(bigOne) <= 0 {
		return nil
	}
	//
	return &Fraction{NewNatural(n.Quo(n, gcd)), NewNatural(d.Quo(d, gcd))}
}
