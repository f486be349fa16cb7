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

	"github.com/consensys/go-symexpr/pkg/util"
	"github.com/consensys/go-symexpr/pkg/util/source/sexp"
)

// Equals represents the equality of two numeric expressions.
type Equals struct {
	Lhs Numeric
	Rhs Numeric
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Boolean = (*Equals)(nil)
var _ Binary = (*Equals)(nil)

// Equal constructs an equality between two expressions.
func Equal(lhs Numeric, rhs Numeric) *Equals {
	return &Equals{lhs, rhs}
}

// Calculate implementation for Boolean interface.  Both sides are always
// calculated in exact mode and, when both resolve to real numbers, their
// floating-point values are compared for (exact) equality.  Otherwise, the
// equality remains symbolic.
func (p *Equals) Calculate() Boolean {
	var (
		lhs = p.Lhs.Calculate(true)
		rhs = p.Rhs.Calculate(true)
	)
	//
	if l, ok := lhs.(RealNumber); ok {
		if r, ok := rhs.(RealNumber); ok {
			return Bool(l.Float64() == r.Float64())
		}
	}
	//
	if lhs == p.Lhs && rhs == p.Rhs {
		return p
	}
	//
	return &Equals{lhs, rhs}
}

// Children implementation for Binary interface.
func (p *Equals) Children() util.Pair[Expression, Expression] {
	return util.NewPair[Expression, Expression](p.Lhs, p.Rhs)
}

// Lisp implementation for Expression interface.
func (p *Equals) Lisp() sexp.SExp {
	return sexp.NewApplication("==", p.Lhs.Lisp(), p.Rhs.Lisp())
}

// Reconstruct implementation for Binary interface.
func (p *Equals) Reconstruct(lhs Expression, rhs Expression) Expression {
	return &Equals{asNumeric("=", lhs), asNumeric("=", rhs)}
}

// Represent implementation for Expression interface.
func (p *Equals) Represent() string {
	return fmt.Sprintf("%s = %s", p.Lhs.Represent(), p.Rhs.Represent())
}
