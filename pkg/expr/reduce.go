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
	log "github.com/sirupsen/logrus"
)

// Reduce repeatedly calculates a given expression until it no longer changes
// (structurally), thus reaching a fixed point.  This is needed because a single
// call to Calculate does not always fully reduce an expression.
func Reduce(e Numeric, exact bool) Numeric {
	for pass := 1; ; pass++ {
		next := e.Calculate(exact)
		//
		log.Debugf("reduction pass %d: %s => %s", pass, e.Represent(), next.Represent())
		//
		if Equivalent(e, next) {
			return next
		}
		//
		e = next
	}
}

// ReduceBoolean repeatedly calculates a given boolean expression until it no
// longer changes (structurally).
func ReduceBoolean(e Boolean) Boolean {
	for pass := 1; ; pass++ {
		next := e.Calculate()
		//
		log.Debugf("reduction pass %d: %s => %s", pass, e.Represent(), next.Represent())
		//
		if Equivalent(e, next) {
			return next
		}
		//
		e = next
	}
}
