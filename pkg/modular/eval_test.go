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
package modular

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-symexpr/pkg/expr"
	"github.com/consensys/go-symexpr/pkg/util/assert"
)

func Test_Eval_01(t *testing.T) {
	checkEval(t, expr.Add(expr.Natural(1), expr.Natural(2)), 3)
}

func Test_Eval_02(t *testing.T) {
	checkEval(t, expr.Frac(expr.Natural(6), expr.Natural(3)), 2)
}

// One half, when doubled, gives one.
func Test_Eval_03(t *testing.T) {
	var (
		half, err = Eval(expr.Frac(expr.Natural(1), expr.Natural(2)))
		two       = fr.NewElement(2)
	)
	//
	assert.NoError(t, err)
	half.Mul(&half, &two)
	assert.True(t, half.IsOne(), "expected one, got %s", half.String())
}

// The field modulus is congruent to zero.
func Test_Eval_04(t *testing.T) {
	checkEval(t, expr.NewNatural(fr.Modulus()), 0)
	checkEval(t, expr.Add(expr.NewNatural(fr.Modulus()), expr.Natural(5)), 5)
}

func Test_Eval_05(t *testing.T) {
	checkSqrt(t, 9)
	checkSqrt(t, 2)
	checkSqrt(t, 0)
}

func Test_Eval_06(t *testing.T) {
	_, err := Eval(expr.Sqrt(expr.Natural(11)))
	assert.ErrorIs(t, err, ErrNoSquareRoot)
}

func Test_Eval_07(t *testing.T) {
	_, err := Eval(expr.Frac(expr.Natural(1), expr.Natural(0)))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	// The field modulus is itself zero
	_, err = Eval(expr.Frac(expr.Natural(1), expr.NewNatural(fr.Modulus())))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func Test_Eval_08(t *testing.T) {
	_, err := Eval(expr.Add(expr.Natural(1), expr.Real(1.5)))
	assert.ErrorIs(t, err, ErrNotIntegral)
}

func Test_Eval_09(t *testing.T) {
	e := expr.Add(expr.Var("x"), expr.Natural(1))
	_, err := Eval(e)
	assert.ErrorIs(t, err, ErrUnbound)
	// Substitute and try again
	bound := expr.Substitute(e, map[string]expr.Expression{"x": expr.Natural(41)})
	checkEval(t, bound.(expr.Numeric), 42)
}

func Test_Test_01(t *testing.T) {
	checkTest(t, expr.Equal(expr.Frac(expr.Natural(1), expr.Natural(2)), expr.Frac(expr.Natural(2), expr.Natural(4))),
		true)
}

func Test_Test_02(t *testing.T) {
	checkTest(t, expr.Equal(expr.Natural(1), expr.Natural(2)), false)
}

func Test_Test_03(t *testing.T) {
	checkTest(t, expr.True, true)
	checkTest(t, expr.False, false)
}

func Test_Test_04(t *testing.T) {
	_, err := Test(expr.Equal(expr.Var("x"), expr.Natural(2)))
	assert.ErrorIs(t, err, ErrUnbound)
}

func checkEval(t *testing.T, e expr.Numeric, expected uint64) {
	t.Helper()
	//
	actual, err := Eval(e)
	assert.NoError(t, err)
	//
	if exp := fr.NewElement(expected); !actual.Equal(&exp) {
		t.Errorf("%s evaluated to %s, expected %d", e.Represent(), actual.String(), expected)
	}
}

// Either root may be returned, hence check the square instead.
func checkSqrt(t *testing.T, n uint64) {
	t.Helper()
	//
	root, err := Eval(expr.Sqrt(expr.Natural(n)))
	assert.NoError(t, err)
	//
	var (
		sq       fr.Element
		expected = fr.NewElement(n)
		rootInt  big.Int
	)
	//
	sq.Square(&root)
	assert.True(t, sq.Equal(&expected), "sqrt(%d) = %s", n, root.BigInt(&rootInt).String())
}

func checkTest(t *testing.T, e expr.Boolean, expected bool) {
	t.Helper()
	//
	actual, err := Test(e)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual, "testing %s", e.Represent())
}
