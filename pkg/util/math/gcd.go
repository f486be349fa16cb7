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
	"fmt"
	"math/big"
)

// ErrInvalidArgument signals that an arithmetic utility was called with an
// argument outside of its domain.
var ErrInvalidArgument = errors.New("invalid argument")

var bigZero = big.NewInt(0)

// Gcd computes the greatest common divisor of x and y using Euclid's
// algorithm.  Only y is validated: a negative y is rejected, whilst x is taken
// as is.  Neither argument is modified.
func Gcd(x *big.Int, y *big.Int) (*big.Int, error) {
	switch y.Cmp(bigZero) {
	case 1:
		var rem big.Int
		// x rem y (truncated, sign follows x)
		rem.Rem(x, y)
		//
		return Gcd(y, &rem)
	case 0:
		return new(big.Int).Set(x), nil
	default:
		return nil, fmt.Errorf("%w: y = %s (values below zero are not allowed)", ErrInvalidArgument, y.String())
	}
}

// SqrtExact returns the integer square root of a non-negative integer n, along
// with a flag indicating whether n is a perfect square.
func SqrtExact(n *big.Int) (*big.Int, bool) {
	var (
		root big.Int
		sq   big.Int
	)
	//
	if n.Sign() < 0 {
		return nil, false
	}
	//
	root.Sqrt(n)
	sq.Mul(&root, &root)
	//
	return &root, sq.Cmp(n) == 0
}
