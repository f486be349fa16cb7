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
package sexp

import "testing"

func Test_SExp_01(t *testing.T) {
	checkString(t, NewSymbol("x"), "x")
}

func Test_SExp_02(t *testing.T) {
	checkString(t, NewList(nil), "()")
}

func Test_SExp_03(t *testing.T) {
	checkString(t, NewApplication("+", NewSymbol("x"), NewSymbol("1")), "(+ x 1)")
}

func Test_SExp_04(t *testing.T) {
	inner := NewApplication("sqrt", NewSymbol("2"))
	checkString(t, NewApplication("/", inner, NewSymbol("y")), "(/ (sqrt 2) y)")
}

func Test_SExp_05(t *testing.T) {
	checkString(t, NewSymbol("a b"), "\"a b\"")
}

func Test_SExp_06(t *testing.T) {
	list := NewApplication("==", NewSymbol("x"), NewSymbol("y"))
	//
	if list.Len() != 3 || list.Get(0).AsSymbol() == nil || list.Get(0).AsSymbol().Value != "==" {
		t.Errorf("expected head symbol \"==\" followed by two operands, got %s", list.String(true))
	}
}

func Test_Format_01(t *testing.T) {
	sexp := NewApplication("+", NewApplication("+", NewSymbol("a"), NewSymbol("b")), NewSymbol("c"))
	checkFormat(t, sexp, 80, "(+ (+ a b) c)\n")
}

func Test_Format_02(t *testing.T) {
	sexp := NewApplication("+", NewApplication("+", NewSymbol("aaa"), NewSymbol("bbb")), NewSymbol("ccc"))
	checkFormat(t, sexp, 8, "(+ (+ aaa\n      bbb)\n   ccc)\n")
}

func Test_Format_03(t *testing.T) {
	checkFormat(t, NewSymbol("toolongforwidth"), 4, "toolongforwidth\n")
}

func checkString(t *testing.T, sexp SExp, expected string) {
	if actual := sexp.String(true); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func checkFormat(t *testing.T, sexp SExp, width uint, expected string) {
	if actual := NewFormatter(width).Format(sexp); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}
