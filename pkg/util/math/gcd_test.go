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
package math

import (
	"errors"
	"math/big"
	"testing"
)

func Test_Gcd_01(t *testing.T) {
	checkGcd(t, 6, 4, 2)
}

func Test_Gcd_02(t *testing.T) {
	checkGcd(t, 7, 3, 1)
}

func Test_Gcd_03(t *testing.T) {
	checkGcd(t, 0, 5, 5)
}

func Test_Gcd_04(t *testing.T) {
	checkGcd(t, 12, 0, 12)
}

func Test_Gcd_05(t *testing.T) {
	checkGcd(t, 0, 0, 0)
}

func Test_Gcd_06(t *testing.T) {
	checkGcd(t, 1071, 462, 21)
}

// Only the second argument is validated.
func Test_Gcd_07(t *testing.T) {
	checkGcd(t, -4, 0, -4)
}

func Test_Gcd_08(t *testing.T) {
	_, err := Gcd(big.NewInt(3), big.NewInt(-1))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
}

func Test_Gcd_09(t *testing.T) {
	var (
		x, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
		y, _ = new(big.Int).SetString("18446744073709551616", 10)
	)
	//
	g, err := Gcd(x, y)
	if err != nil || g.Cmp(y) != 0 {
		t.Errorf("gcd(2^128, 2^64) = %v (%v)", g, err)
	}
}

// Gcd is symmetric for non-negative arguments, and does not modify them.
func Test_Gcd_10(t *testing.T) {
	for a := int64(0); a < 30; a++ {
		for b := int64(0); b < 30; b++ {
			x, y := big.NewInt(a), big.NewInt(b)
			lhs, err1 := Gcd(x, y)
			rhs, err2 := Gcd(y, x)
			//
			if err1 != nil || err2 != nil {
				t.Fatalf("unexpected error for (%d,%d): %v %v", a, b, err1, err2)
			} else if lhs.Cmp(rhs) != 0 {
				t.Errorf("gcd(%d,%d)=%s != gcd(%d,%d)=%s", a, b, lhs, b, a, rhs)
			} else if x.Int64() != a || y.Int64() != b {
				t.Errorf("arguments modified: %s, %s", x, y)
			}
		}
	}
}

func Test_SqrtExact_01(t *testing.T) {
	for i := int64(0); i < 100; i++ {
		root, ok := SqrtExact(big.NewInt(i * i))
		if !ok || root.Int64() != i {
			t.Errorf("sqrt(%d) = %s (%t)", i*i, root, ok)
		}
	}
}

func Test_SqrtExact_02(t *testing.T) {
	for _, n := range []int64{2, 3, 5, 8, 99} {
		if _, ok := SqrtExact(big.NewInt(n)); ok {
			t.Errorf("%d is not a perfect square", n)
		}
	}
}

func Test_SqrtExact_03(t *testing.T) {
	// (2^64+1)^2 cannot be decided using float64
	var (
		r, _ = new(big.Int).SetString("18446744073709551617", 10)
		n    = new(big.Int).Mul(r, r)
	)
	//
	root, ok := SqrtExact(n)
	if !ok || root.Cmp(r) != 0 {
		t.Errorf("sqrt(%s) = %s (%t)", n, root, ok)
	}
	//
	if _, ok := SqrtExact(n.Add(n, big.NewInt(1))); ok {
		t.Errorf("%s is not a perfect square", n)
	}
}

// A negative x surfaces as a negative remainder on the next step.
func Test_Gcd_11(t *testing.T) {
	_, err := Gcd(big.NewInt(-4), big.NewInt(6))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
}

func checkGcd(t *testing.T, x, y, expected int64) {
	t.Helper()
	//
	g, err := Gcd(big.NewInt(x), big.NewInt(y))
	if err != nil {
		t.Fatalf("gcd(%d,%d) failed: %v", x, y, err)
	} else if g.Int64() != expected {
		t.Errorf("gcd(%d,%d) = %s, expected %d", x, y, g, expected)
	}
}
