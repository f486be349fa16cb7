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
	"strconv"

	"github.com/consensys/go-symexpr/pkg/util/source/sexp"
)

// ============================================================================
// Booleans
// ============================================================================

// True is the canonical true constant.
var True = &BoolConstant{true}

// False is the canonical false constant.
var False = &BoolConstant{false}

// BoolConstant represents a boolean constant value.
type BoolConstant struct {
	Value bool
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Boolean = (*BoolConstant)(nil)

// Bool wraps a primitive boolean, returning one of the canonical constants.
func Bool(value bool) *BoolConstant {
	if value {
		return True
	}
	//
	return False
}

// Calculate implementation for Boolean interface.
func (p *BoolConstant) Calculate() Boolean { return p }

// Lisp implementation for Expression interface.
func (p *BoolConstant) Lisp() sexp.SExp { return sexp.NewSymbol(p.Represent()) }

// Represent implementation for Expression interface.
func (p *BoolConstant) Represent() string { return strconv.FormatBool(p.Value) }

// ============================================================================
// Natural Numbers
// ============================================================================

// NaturalNumberConstant represents a non-negative integer constant of arbitrary
// precision.
type NaturalNumberConstant struct {
	value big.Int
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ NaturalNumber = (*NaturalNumberConstant)(nil)

// Natural wraps a primitive unsigned integer as a natural number constant.
func Natural(value uint64) *NaturalNumberConstant {
	var c NaturalNumberConstant
	//
	c.value.SetUint64(value)
	//
	return &c
}

// NewNatural constructs a natural number constant from a given big integer,
// which is copied.  This panics if the value is negative.
func NewNatural(value *big.Int) *NaturalNumberConstant {
	var c NaturalNumberConstant
	//
	if value.Sign() < 0 {
		panic(fmt.Sprintf("natural number cannot be negative (was %s)", value.String()))
	}
	//
	c.value.Set(value)
	//
	return &c
}

// BigInt implementation for NaturalNumber interface.
func (p *NaturalNumberConstant) BigInt() *big.Int { return new(big.Int).Set(&p.value) }

// Calculate implementation for Numeric interface.
func (p *NaturalNumberConstant) Calculate(bool) Numeric { return p }

// Float64 implementation for RealNumber interface.
func (p *NaturalNumberConstant) Float64() float64 {
	f, _ := new(big.Float).SetInt(&p.value).Float64()
	return f
}

// Lisp implementation for Expression interface.
func (p *NaturalNumberConstant) Lisp() sexp.SExp { return sexp.NewSymbol(p.Represent()) }

// Represent implementation for Expression interface.
func (p *NaturalNumberConstant) Represent() string { return p.value.String() }

// ============================================================================
// Real Numbers
// ============================================================================

// RealNumberConstant represents a floating-point constant.
type RealNumberConstant struct {
	Value float64
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ RealNumber = (*RealNumberConstant)(nil)

// Real wraps a primitive floating-point value as a real number constant.
func Real(value float64) *RealNumberConstant {
	return &RealNumberConstant{value}
}

// Calculate implementation for Numeric interface.
func (p *RealNumberConstant) Calculate(bool) Numeric { return p }

// Float64 implementation for RealNumber interface.
func (p *RealNumberConstant) Float64() float64 { return p.Value }

// Lisp implementation for Expression interface.
func (p *RealNumberConstant) Lisp() sexp.SExp { return sexp.NewSymbol(p.Represent()) }

// Represent implementation for Expression interface.  Values are always given
// with four fractional digits.
func (p *RealNumberConstant) Represent() string { return fmt.Sprintf("%.4f", p.Value) }
