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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/consensys/go-symexpr/pkg/expr"
	"github.com/consensys/go-symexpr/pkg/util/source/sexp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Width assumed when output is not a terminal.
const defaultWidth = 80

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parseOperand converts a literal into an expression.  A literal is either a
// natural number (e.g. "42"), a variable name (e.g. "x") or a real number (e.g.
// "2.5").  Names take priority, hence "inf" and "nan" are variables.
func parseOperand(literal string) (expr.Numeric, error) {
	if n, ok := new(big.Int).SetString(literal, 10); ok {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative natural number \"%s\"", literal)
		}
		//
		return expr.NewNatural(n), nil
	} else if isIdentifier(literal) {
		return expr.Var(literal), nil
	} else if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return expr.Real(f), nil
	}
	//
	return nil, fmt.Errorf("invalid operand \"%s\"", literal)
}

// parseOperands converts a set of literals into expressions, or exits if any
// is malformed.
func parseOperands(literals []string) []expr.Numeric {
	operands := make([]expr.Numeric, len(literals))
	//
	for i, literal := range literals {
		operand, err := parseOperand(literal)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		operands[i] = operand
	}
	//
	return operands
}

// parseBindings converts a set of "name=value" items into a substitution.
func parseBindings(items []string) (map[string]expr.Expression, error) {
	bindings := make(map[string]expr.Expression)
	//
	for _, item := range items {
		split := strings.Split(item, "=")
		if len(split) != 2 || !isIdentifier(split[0]) {
			return nil, fmt.Errorf("malformed binding \"%s\"", item)
		}
		//
		value, err := parseOperand(split[1])
		if err != nil {
			return nil, err
		}
		//
		bindings[split[0]] = value
	}
	//
	return bindings, nil
}

func isIdentifier(name string) bool {
	for i, r := range name {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	//
	return name != ""
}

// render an expression either in its canonical form, or as an S-expression
// formatted to fit the terminal.
func render(e expr.Expression, lisp bool) string {
	if !lisp {
		return e.Represent()
	}
	//
	text := sexp.NewFormatter(terminalWidth()).Format(e.Lisp())
	//
	return strings.TrimSuffix(text, "\n")
}

func terminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return defaultWidth
}
