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
	"testing"

	"github.com/consensys/go-symexpr/pkg/util/assert"
)

func Test_Equals_01(t *testing.T) {
	checkEquals(t, Equal(Natural(1), Real(1.0)), True)
}

func Test_Equals_02(t *testing.T) {
	checkEquals(t, Equal(Natural(2), Real(2.1)), False)
}

// Both sides are calculated in exact mode
func Test_Equals_03(t *testing.T) {
	checkEquals(t, Equal(Frac(Natural(7), Natural(3)), Real(7.0/3.0)), True)
}

func Test_Equals_04(t *testing.T) {
	checkEquals(t, Equal(Sqrt(Natural(4)), Natural(2)), True)
}

func Test_Equals_05(t *testing.T) {
	checkEquals(t, Equal(Add(Natural(1), Natural(2)), Natural(3)), True)
}

func Test_Equals_06(t *testing.T) {
	e := Equal(Var("x"), Natural(1))
	assert.True(t, e.Calculate() == e, "symbolic equality should be returned as is")
}

func Test_Equals_07(t *testing.T) {
	e := Equal(Var("x"), Add(Natural(1), Natural(1)))
	checkEquals(t, e, Equal(Var("x"), Natural(2)))
}

// Floating-point comparison is exact, hence sensitive to rounding.
func Test_Equals_08(t *testing.T) {
	checkEquals(t, Equal(Add(Real(0.1), Real(0.2)), Real(0.3)), False)
}

func checkEquals(t *testing.T, e Boolean, expected Boolean) {
	t.Helper()
	//
	actual := e.Calculate()
	//
	if !Equivalent(expected, actual) {
		t.Errorf("%s calculated as %s, expected %s", e.Represent(), actual.Represent(), expected.Represent())
	}
}
