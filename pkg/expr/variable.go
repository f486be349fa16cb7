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

import "github.com/consensys/go-symexpr/pkg/util/source/sexp"

// Variable represents a named, unknown quantity.  Variables are only ever
// resolved through substitution, hence calculating a variable leaves it
// unchanged.
type Variable struct {
	Name string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Numeric = (*Variable)(nil)

// Var constructs a variable with the given name.
func Var(name string) *Variable {
	return &Variable{name}
}

// Calculate implementation for Numeric interface.
func (p *Variable) Calculate(bool) Numeric { return p }

// Lisp implementation for Expression interface.
func (p *Variable) Lisp() sexp.SExp { return sexp.NewSymbol(p.Name) }

// Represent implementation for Expression interface.
func (p *Variable) Represent() string { return p.Name }
