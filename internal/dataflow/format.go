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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/ir"
)

// Names returns the names of the values of fn in s, sorted.
func Names(fn *ir.Func, s *factset.Set) []string {
	ids := s.IDs()
	ret := make([]string, 0, len(ids))

	/* convert every index */
	for _, id := range ids {
		if v := fn.Value(id); v == nil {
			panic(fmt.Sprintf("dataflow: value %d is not declared by %s", id, fn.Name))
		} else {
			ret = append(ret, v.Name())
		}
	}

	/* sort by name */
	slices.Sort(ret)
	return ret
}

// Format renders the facts around every instruction of fn, one line per
// instruction in block then index order:
//
//	(L0, 1)  {a}                     {a, b}
func Format(fn *ir.Func, res *Result) []string {
	var ret []string
	for _, p := range res.Points() {
		pre, err := res.Before(p)
		if err != nil {
			panic(err)
		}

		/* every point returned by Points has both sides */
		post, err := res.After(p)
		if err != nil {
			panic(err)
		}

		/* format the line */
		ret = append(ret, fmt.Sprintf(
			"%-8s %-23s %s",
			p.String(),
			"{"+strings.Join(Names(fn, pre), ", ")+"}",
			"{"+strings.Join(Names(fn, post), ", ")+"}",
		))
	}
	return ret
}
