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

package regflow

import (
	"strconv"

	"github.com/cloudwego/regflow/internal/dataflow"
	"github.com/cloudwego/regflow/ir"
)

// Kind selects one of the built-in analyses.
type Kind uint8

const (
	// MaybeDefined is the set of values assigned on at least one path.
	MaybeDefined Kind = iota

	// MustDefined is the set of values assigned on every path.
	MustDefined

	// Liveness is the set of values that may be read later.
	Liveness

	// BorrowedArgument is the set of arguments still borrowed from the caller
	// on every path.
	BorrowedArgument

	// MaybeUndefined is the set of registers left unassigned on at least one path.
	MaybeUndefined
)

var _KindNames = [...]string{
	MaybeDefined:     "maybe-defined",
	MustDefined:      "must-defined",
	Liveness:         "liveness",
	BorrowedArgument: "borrowed-arguments",
	MaybeUndefined:   "maybe-undefined",
}

var _KindAnalyses = [...]func(*ir.Func) *dataflow.Analysis{
	MaybeDefined:     dataflow.MaybeDefined,
	MustDefined:      dataflow.MustDefined,
	Liveness:         dataflow.Liveness,
	BorrowedArgument: dataflow.BorrowedArguments,
	MaybeUndefined:   dataflow.MaybeUndefined,
}

// Kinds returns every built-in analysis.
func Kinds() []Kind {
	ret := make([]Kind, len(_KindNames))
	for i := range ret {
		ret[i] = Kind(i)
	}
	return ret
}

func (self Kind) String() string {
	if int(self) < len(_KindNames) {
		return _KindNames[self]
	} else {
		return "Kind(" + strconv.Itoa(int(self)) + ")"
	}
}

// ParseKind converts an analysis name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, v := range _KindNames {
		if v == name {
			return Kind(i), nil
		}
	}
	return 0, KindError{Name: name}
}

// Analysis instantiates the analysis for fn.
func (self Kind) Analysis(fn *ir.Func) (*dataflow.Analysis, error) {
	if int(self) < len(_KindAnalyses) {
		return _KindAnalyses[self](fn), nil
	} else {
		return nil, KindError{Name: self.String()}
	}
}
