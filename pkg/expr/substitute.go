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
	"math"
	"reflect"
	"slices"
)

// Substitute replaces every variable within a given expression which is bound
// in the given mapping by its binding, whilst unbound variables are left as they
// are.  This is purely structural and performs no calculation, hence a
// subsequent call to Calculate is required to fold any resulting constants.
// Nodes are reconstructed through the Unary and Binary capabilities, so new
// kinds of node require no changes here.  Nodes which are unaffected by the
// substitution are returned as is.
func Substitute(e Expression, bindings map[string]Expression) Expression {
	switch e := e.(type) {
	case *Variable:
		if binding, ok := bindings[e.Name]; ok {
			return binding
		}
		//
		return e
	case Unary:
		var (
			child  = e.Child()
			nchild = Substitute(child, bindings)
		)
		//
		if nchild == child {
			return e
		}
		//
		return e.Reconstruct(nchild)
	case Binary:
		var (
			children = e.Children()
			lhs      = Substitute(children.Left, bindings)
			rhs      = Substitute(children.Right, bindings)
		)
		//
		if lhs == children.Left && rhs == children.Right {
			return e
		}
		//
		return e.Reconstruct(lhs, rhs)
	default:
		// Constants
		return e
	}
}

// Walk visits every node of a given expression in pre-order (i.e. parents
// before their children, and children from left to right).
func Walk(e Expression, visitor func(Expression)) {
	visitor(e)
	//
	switch e := e.(type) {
	case Unary:
		Walk(e.Child(), visitor)
	case Binary:
		lhs, rhs := e.Children().Unpack()
		Walk(lhs, visitor)
		Walk(rhs, visitor)
	}
}

// Variables returns the (sorted) names of all variables used within a given
// expression, without duplicates.
func Variables(e Expression) []string {
	var names []string
	//
	Walk(e, func(node Expression) {
		if v, ok := node.(*Variable); ok {
			names = append(names, v.Name)
		}
	})
	//
	slices.Sort(names)
	//
	return slices.Compact(names)
}

// Equivalent determines whether two expressions are structurally identical.
// That is, they have the same shape, the same kinds of node and the same leaf
// values.  Real numbers are compared by their bit patterns, such that NaN is
// equivalent to itself.
func Equivalent(lhs Expression, rhs Expression) bool {
	if lhs == rhs {
		return true
	} else if reflect.TypeOf(lhs) != reflect.TypeOf(rhs) {
		return false
	}
	//
	switch l := lhs.(type) {
	case *BoolConstant:
		return l.Value == rhs.(*BoolConstant).Value
	case *NaturalNumberConstant:
		return l.value.Cmp(&rhs.(*NaturalNumberConstant).value) == 0
	case *RealNumberConstant:
		return math.Float64bits(l.Value) == math.Float64bits(rhs.(*RealNumberConstant).Value)
	case *Variable:
		return l.Name == rhs.(*Variable).Name
	case Unary:
		return Equivalent(l.Child(), rhs.(Unary).Child())
	case Binary:
		var (
			ll, lr = l.Children().Unpack()
			rl, rr = rhs.(Binary).Children().Unpack()
		)
		//
		return Equivalent(ll, rl) && Equivalent(lr, rr)
	default:
		return false
	}
}
