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

	util_math "github.com/consensys/go-symexpr/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd [flags] x y",
	Short: "compute the greatest common divisor of two integers.",
	Long: `Compute the greatest common divisor of two integers using Euclid's algorithm.
	The second argument must not be negative.`,
	Run: func(cmd *cobra.Command, args []string) {
		var x, y big.Int
		//
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if _, ok := x.SetString(args[0], 10); !ok {
			fmt.Printf("invalid integer \"%s\"\n", args[0])
			os.Exit(2)
		} else if _, ok := y.SetString(args[1], 10); !ok {
			fmt.Printf("invalid integer \"%s\"\n", args[1])
			os.Exit(2)
		}
		//
		gcd, err := util_math.Gcd(&x, &y)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		fmt.Println(gcd.String())
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd)
}
