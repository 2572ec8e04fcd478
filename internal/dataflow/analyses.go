/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataflow

import (
	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/ir"
)

func defines(ins ir.Instr) ([]*ir.Value, []*ir.Value) {
	return ins.Defines(), nil
}

func uses(ins ir.Instr) ([]*ir.Value, []*ir.Value) {
	return ins.Uses(), ins.Defines()
}

func undefines(ins ir.Instr) ([]*ir.Value, []*ir.Value) {
	return nil, ins.Defines()
}

// invalidates returns the arguments an instruction redefines or takes the
// ownership of. Those are no longer borrowed from the caller.
func invalidates(ins ir.Instr) ([]*ir.Value, []*ir.Value) {
	var kill []*ir.Value
	vals := ins.Defines()

	/* stolen operands are gone as well */
	if st, ok := ins.(ir.Stealer); ok {
		vals = append(append([]*ir.Value(nil), vals...), st.Stolen()...)
	}

	/* only arguments can be borrowed */
	for _, v := range vals {
		if v.IsArg() {
			kill = append(kill, v)
		}
	}
	return nil, kill
}

// MaybeDefined computes the values that are assigned on at least one path
// reaching each point. Arguments are defined on entry.
func MaybeDefined(fn *ir.Func) *Analysis {
	return &Analysis{
		Name:      "maybe-defined",
		Direction: Forward,
		Join:      Union,
		Transfer:  defines,
		Boundary:  factset.Of(fn.Args...),
	}
}

// MustDefined computes the values that are assigned on every path reaching
// each point. Unreachable code is considered to define everything.
func MustDefined(fn *ir.Func) *Analysis {
	return &Analysis{
		Name:      "must-defined",
		Direction: Forward,
		Join:      Intersection,
		Transfer:  defines,
		Boundary:  factset.Of(fn.Args...),
		Universe:  factset.Of(fn.Values()...),
	}
}

// Liveness computes the values that may be read on some path leaving each
// point before being redefined.
func Liveness(fn *ir.Func) *Analysis {
	return &Analysis{
		Name:      "liveness",
		Direction: Backward,
		Join:      Union,
		Transfer:  uses,
		Boundary:  factset.New(),
	}
}

// BorrowedArguments computes the arguments that are still borrowed from the
// caller on every path reaching each point. An argument stops being borrowed
// once it is reassigned or stolen, and never becomes borrowed again.
func BorrowedArguments(fn *ir.Func) *Analysis {
	return &Analysis{
		Name:      "borrowed-arguments",
		Direction: Forward,
		Join:      Intersection,
		Transfer:  invalidates,
		Boundary:  factset.Of(fn.Args...),
		Universe:  factset.Of(fn.Args...),
	}
}

// MaybeUndefined computes the registers that are not assigned on at least
// one path reaching each point. Error handlers use it to find the registers
// that can not be released unconditionally.
func MaybeUndefined(fn *ir.Func) *Analysis {
	undef := factset.Of(fn.Values()...)
	undef.Subtract(factset.Of(fn.Args...))

	/* every register starts undefined */
	return &Analysis{
		Name:      "maybe-undefined",
		Direction: Forward,
		Join:      Union,
		Transfer:  undefines,
		Boundary:  undef,
	}
}
