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
	"os"

	"github.com/consensys/go-symexpr/pkg/expr"
	"github.com/consensys/go-symexpr/pkg/modular"
	"github.com/consensys/go-symexpr/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// calculateConfig captures the options which determine how an expression is
// calculated and printed.
type calculateConfig struct {
	// Calculate in exact mode
	exact bool
	// Calculate until a fixed point is reached
	reduce bool
	// Print as S-Expressions
	lisp bool
	// Evaluate within the prime field
	field bool
	// Variable bindings
	bindings map[string]expr.Expression
}

var addCmd = &cobra.Command{
	Use:   "add [flags] lhs rhs",
	Short: "calculate the sum of two operands.",
	Run: func(cmd *cobra.Command, args []string) {
		runCalculation(cmd, args, 2, func(ops []expr.Numeric) expr.Expression {
			return expr.Add(ops[0], ops[1])
		})
	},
}

var fracCmd = &cobra.Command{
	Use:   "frac [flags] numerator denominator",
	Short: "calculate the fraction of two operands.",
	Run: func(cmd *cobra.Command, args []string) {
		runCalculation(cmd, args, 2, func(ops []expr.Numeric) expr.Expression {
			return expr.Frac(ops[0], ops[1])
		})
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt [flags] operand",
	Short: "calculate the square root of an operand.",
	Run: func(cmd *cobra.Command, args []string) {
		runCalculation(cmd, args, 1, func(ops []expr.Numeric) expr.Expression {
			return expr.Sqrt(ops[0])
		})
	},
}

var equalsCmd = &cobra.Command{
	Use:   "equals [flags] lhs rhs",
	Short: "check whether two operands are equal.",
	Long: `Check whether two operands are equal.  Both sides are always calculated in
	exact mode before being compared.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCalculation(cmd, args, 2, func(ops []expr.Numeric) expr.Expression {
			return expr.Equal(ops[0], ops[1])
		})
	},
}

// runCalculation constructs an expression from the given literal arguments,
// substitutes any bindings and then calculates and prints it.
func runCalculation(cmd *cobra.Command, args []string, arity int, build func([]expr.Numeric) expr.Expression) {
	var cfg calculateConfig
	//
	if len(args) != arity {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	bindings, err := parseBindings(GetStringArray(cmd, "bind"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	cfg.exact = GetFlag(cmd, "exact")
	cfg.reduce = GetFlag(cmd, "reduce")
	cfg.lisp = GetFlag(cmd, "lisp")
	cfg.field = GetFlag(cmd, "field")
	cfg.bindings = bindings
	//
	result, err := calculate(cfg, build(parseOperands(args)))
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	//
	fmt.Println(result)
}

// calculate a given expression according to a given configuration, returning
// the text to be printed.
func calculate(cfg calculateConfig, e expr.Expression) (string, error) {
	stats := util.NewPerfStats()
	// Bind variables
	e = expr.Substitute(e, cfg.bindings)
	//
	log.Debugf("calculating %s (exact=%t)", e.Represent(), cfg.exact)
	// Evaluate or simplify
	switch e := e.(type) {
	case expr.Numeric:
		if cfg.field {
			val, err := modular.Eval(e)
			return val.String(), err
		}
		//
		var res expr.Numeric
		//
		if cfg.reduce {
			res = expr.Reduce(e, cfg.exact)
		} else {
			res = e.Calculate(cfg.exact)
		}
		//
		stats.Log("Calculation")
		//
		return render(res, cfg.lisp), nil
	case expr.Boolean:
		if cfg.field {
			val, err := modular.Test(e)
			return fmt.Sprintf("%t", val), err
		}
		//
		var res expr.Boolean
		//
		if cfg.reduce {
			res = expr.ReduceBoolean(e)
		} else {
			res = e.Calculate()
		}
		//
		stats.Log("Calculation")
		//
		return render(res, cfg.lisp), nil
	default:
		return "", fmt.Errorf("cannot calculate \"%s\"", e.Represent())
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(fracCmd)
	rootCmd.AddCommand(sqrtCmd)
	rootCmd.AddCommand(equalsCmd)
}
