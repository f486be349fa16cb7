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
// Package modular evaluates expression trees over the scalar field of the
// BLS12-377 curve.  Within a prime field, every non-zero denominator has an
// inverse, hence fractions of natural numbers always evaluate exactly.
// Likewise, square roots exist for (roughly) half of all field elements.
package modular

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-symexpr/pkg/expr"
)

// ErrDivisionByZero signals a fraction whose denominator evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNoSquareRoot signals a square root of a quadratic non-residue.
var ErrNoSquareRoot = errors.New("no square root")

// ErrNotIntegral signals a real number constant, which has no field
// representation.
var ErrNotIntegral = errors.New("real number has no field representation")

// ErrUnbound signals a variable which has not been substituted.
var ErrUnbound = errors.New("unbound variable")

// Eval evaluates a given numeric expression to a field element, or fails with
// an error identifying the offending subexpression.
func Eval(e expr.Numeric) (fr.Element, error) {
	var res fr.Element
	//
	switch e := e.(type) {
	case expr.NaturalNumber:
		res.SetBigInt(e.BigInt())
	case *expr.Addition:
		lhs, err := Eval(e.Lhs)
		if err != nil {
			return res, err
		}
		//
		rhs, err := Eval(e.Rhs)
		if err != nil {
			return res, err
		}
		//
		res.Add(&lhs, &rhs)
	case *expr.Fraction:
		num, err := Eval(e.Numerator)
		if err != nil {
			return res, err
		}
		//
		den, err := Eval(e.Denominator)
		if err != nil {
			return res, err
		} else if den.IsZero() {
			return res, fmt.Errorf("%w: %s", ErrDivisionByZero, e.Represent())
		}
		//
		res.Inverse(&den)
		res.Mul(&num, &res)
	case *expr.SquareRoot:
		arg, err := Eval(e.Arg)
		if err != nil {
			return res, err
		} else if res.Sqrt(&arg) == nil {
			return res, fmt.Errorf("%w: %s", ErrNoSquareRoot, e.Represent())
		}
	case *expr.RealNumberConstant:
		return res, fmt.Errorf("%w: %s", ErrNotIntegral, e.Represent())
	case *expr.Variable:
		return res, fmt.Errorf("%w: %s", ErrUnbound, e.Name)
	default:
		name := reflect.TypeOf(e).String()
		panic(fmt.Sprintf("unknown numeric expression \"%s\"", name))
	}
	//
	return res, nil
}

// Test evaluates a given boolean expression within the field.  Equalities hold
// when both sides evaluate to the same field element.
func Test(e expr.Boolean) (bool, error) {
	switch e := e.(type) {
	case *expr.BoolConstant:
		return e.Value, nil
	case *expr.Equals:
		lhs, err := Eval(e.Lhs)
		if err != nil {
			return false, err
		}
		//
		rhs, err := Eval(e.Rhs)
		if err != nil {
			return false, err
		}
		//
		return lhs.Equal(&rhs), nil
	default:
		name := reflect.TypeOf(e).String()
		panic(fmt.Sprintf("unknown boolean expression \"%s\"", name))
	}
}
