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

package cfg

import (
	"sort"

	"github.com/yourbasic/graph"
)

var _ graph.Iterator = (*CFG)(nil)

// Order implements graph.Iterator.
func (self *CFG) Order() int {
	return len(self.Blocks)
}

// Visit implements graph.Iterator, edges are visited in successor order.
func (self *CFG) Visit(v int, do func(w int, c int64) bool) bool {
	for _, w := range self.succ[v] {
		if do(w, 0) {
			return true
		}
	}
	return false
}

// Reachable marks the blocks that can be reached from the entry.
func (self *CFG) Reachable() []bool {
	ret := make([]bool, self.Len())
	ret[0] = true

	/* breadth-first from the entry */
	graph.BFS(self, 0, func(_ int, w int, _ int64) {
		ret[w] = true
	})
	return ret
}

// CanReachExit marks the blocks from which at least one exit can be reached.
func (self *CFG) CanReachExit() []bool {
	ret := make([]bool, self.Len())
	rev := graph.Transpose(self)

	/* walk backwards from every exit */
	for _, e := range self.exits {
		if !ret[e] {
			ret[e] = true
			graph.BFS(rev, e, func(_ int, w int, _ int64) {
				ret[w] = true
			})
		}
	}
	return ret
}

// Cycles returns the strongly connected components that contain a cycle,
// including single blocks branching to themselves. Each component is sorted
// by block index, and components are ordered by their first block.
func (self *CFG) Cycles() [][]int {
	var ret [][]int
	for _, comp := range graph.StrongComponents(self) {
		if len(comp) > 1 || self.hasSelfLoop(comp[0]) {
			sort.Ints(comp)
			ret = append(ret, comp)
		}
	}

	/* sort by the first block */
	sort.Slice(ret, func(i int, j int) bool {
		return ret[i][0] < ret[j][0]
	})
	return ret
}

func (self *CFG) hasSelfLoop(i int) bool {
	for _, j := range self.succ[i] {
		if i == j {
			return true
		}
	}
	return false
}
